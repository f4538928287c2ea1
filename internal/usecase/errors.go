package usecase

import (
	"decidir_refunds/internal/domain/entities"
	"errors"
	"fmt"
)

const (
	// HTTP402 is the status the gateway uses to reject an annulment for a business reason.
	HTTP402 = 402
	// HTTP500 is reported for every failure that did not come with a gateway status.
	HTTP500 = 500
)

// ErrorKind tags a DecidirError with the failure mode of the call.
type ErrorKind string

const (
	KindTransportFault       ErrorKind = "TRANSPORT_FAULT"
	KindDomainError          ErrorKind = "DOMAIN_ERROR"
	KindBusinessRejection    ErrorKind = "BUSINESS_REJECTION"
	KindDeserializationFault ErrorKind = "DESERIALIZATION_FAULT"
)

var (
	ErrTransportFault       = errors.New("payment gateway transport fault")
	ErrDomainError          = errors.New("payment gateway domain error")
	ErrBusinessRejection    = errors.New("payment gateway business rejection")
	ErrDeserializationFault = errors.New("payment gateway deserialization fault")

	ErrInvalidPaymentID = errors.New("invalid payment_id")
)

// DecidirError is the single error type returned by the refunds facade.
//
// Result is only set for KindDomainError and AnnulRefund only for KindBusinessRejection.
// errors.Is matches the sentinel of the error's kind.
type DecidirError struct {
	Kind        ErrorKind
	Status      int
	Message     string
	Result      map[string]any
	AnnulRefund *entities.AnnulRefundResponse
	Err         error
}

func (e *DecidirError) Error() string {
	return fmt.Sprintf("%s: status=%d message=%s", e.Kind, e.Status, e.Message)
}

func (e *DecidirError) Unwrap() error {
	return e.Err
}

func (e *DecidirError) Is(target error) bool {
	switch e.Kind {
	case KindTransportFault:
		return target == ErrTransportFault
	case KindDomainError:
		return target == ErrDomainError
	case KindBusinessRejection:
		return target == ErrBusinessRejection
	case KindDeserializationFault:
		return target == ErrDeserializationFault
	}
	return false
}

func newTransportFault(err error) *DecidirError {
	return &DecidirError{Kind: KindTransportFault, Status: HTTP500, Message: err.Error(), Err: err}
}

func newDomainError(info entities.DecidirErrorInfo) *DecidirError {
	return &DecidirError{Kind: KindDomainError, Status: info.Status, Message: info.Message, Result: info.Result}
}

func newBusinessRejection(status int, message string, payload entities.AnnulRefundResponse) *DecidirError {
	return &DecidirError{Kind: KindBusinessRejection, Status: status, Message: message, AnnulRefund: &payload}
}

func newDeserializationFault(err error) *DecidirError {
	return &DecidirError{Kind: KindDeserializationFault, Status: HTTP500, Message: err.Error(), Err: err}
}

// AsDecidirError unwraps err into a *DecidirError when it carries one.
func AsDecidirError(err error) (*DecidirError, bool) {
	var de *DecidirError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
