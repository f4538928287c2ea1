package usecase

import (
	"bytes"
	"decidir_refunds/internal/domain/entities"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PaymentConverter turns successful gateway responses into typed results.
type PaymentConverter[T any] struct {
	errors ErrorConverter
}

func NewPaymentConverter[T any]() PaymentConverter[T] {
	return PaymentConverter[T]{errors: ErrorConverter{}}
}

// Convert decodes the body of a successful response. An empty body (e.g. 204) yields the
// zero value of T.
func (c PaymentConverter[T]) Convert(resp entities.RawResponse) (entities.DecidirResult[T], error) {
	var payload T
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, &payload); err != nil {
			return entities.DecidirResult[T]{}, newDeserializationFault(err)
		}
	}
	return entities.DecidirResult[T]{Status: resp.StatusCode, Message: resp.Message, Result: payload}, nil
}

// ConvertOrError converts successful responses and turns every other one into a
// DOMAIN_ERROR built from the standard error shape.
func (c PaymentConverter[T]) ConvertOrError(resp entities.RawResponse) (entities.DecidirResult[T], error) {
	if resp.IsSuccessful() {
		return c.Convert(resp)
	}
	info, err := c.errors.Convert(resp)
	if err != nil {
		return entities.DecidirResult[T]{}, err
	}
	return entities.DecidirResult[T]{}, newDomainError(info.Result)
}

// ErrorConverter parses the standard {status, message, result} error body.
type ErrorConverter struct{}

func (ErrorConverter) Convert(resp entities.RawResponse) (entities.DecidirResult[entities.DecidirErrorInfo], error) {
	info := entities.DecidirErrorInfo{Status: resp.StatusCode, Message: resp.Message}

	if raw := bytes.TrimSpace(resp.ErrorBody); len(raw) > 0 {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return entities.DecidirResult[entities.DecidirErrorInfo]{}, newDeserializationFault(err)
		}
		if body != nil {
			if status, ok := body["status"].(float64); ok {
				info.Status = int(status)
			}
			if message, ok := body["message"].(string); ok {
				info.Message = message
			}
			info.Result = errorResult(body)
		}
	}

	return entities.DecidirResult[entities.DecidirErrorInfo]{Status: resp.StatusCode, Message: resp.Message, Result: info}, nil
}

// errorResult picks the structured "result" member, or the whole body when the gateway
// answered a bare error object.
func errorResult(body map[string]any) map[string]any {
	v, ok := body["result"]
	if !ok {
		return body
	}
	switch r := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return r
	default:
		return map[string]any{"result": r}
	}
}
