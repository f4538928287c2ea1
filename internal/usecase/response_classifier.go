package usecase

import "decidir_refunds/internal/domain/entities"

// Endpoint identifies which refunds endpoint produced a response.
type Endpoint string

const (
	EndpointGetRefunds    Endpoint = "get_refunds"
	EndpointRefundPayment Endpoint = "refund_payment"
	EndpointCancelRefund  Endpoint = "cancel_refund"
)

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeGenericError
	// OutcomeSpecialError is only produced for EndpointCancelRefund answering 402.
	OutcomeSpecialError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSpecialError:
		return "special_error"
	default:
		return "generic_error"
	}
}

// ClassifyResponse decides how a response must be parsed before any parsing happens.
func ClassifyResponse(endpoint Endpoint, resp entities.RawResponse) Outcome {
	if resp.IsSuccessful() {
		return OutcomeSuccess
	}
	if endpoint == EndpointCancelRefund && resp.StatusCode == HTTP402 {
		return OutcomeSpecialError
	}
	return OutcomeGenericError
}
