package request

import (
	"decidir_refunds/internal/domain/entities"
	"errors"
)

var (
	ErrInvalidRefundAmount     = errors.New("invalid refund amount")
	ErrInvalidSubPaymentAmount = errors.New("invalid sub payment amount")
)

type SubPaymentRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Amount *int64 `json:"amount"`
}

// RefundPaymentRequest is the payload of the refund creation route.
//
// Omitting amount asks for a total refund. Amounts are in cents.
type RefundPaymentRequest struct {
	Amount      *int64              `json:"amount"`
	SubPayments []SubPaymentRequest `json:"sub_payments"`
}

func (r RefundPaymentRequest) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return ErrInvalidRefundAmount
	}
	for _, sp := range r.SubPayments {
		if sp.Amount != nil && *sp.Amount <= 0 {
			return ErrInvalidSubPaymentAmount
		}
	}
	return nil
}

func (r RefundPaymentRequest) ToEntity() entities.RefundPayment {
	out := entities.RefundPayment{Amount: r.Amount}
	for _, sp := range r.SubPayments {
		out.SubPayments = append(out.SubPayments, entities.SubPayment{ID: sp.ID, Amount: sp.Amount})
	}
	return out
}
