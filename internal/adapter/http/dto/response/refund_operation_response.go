package response

import (
	"decidir_refunds/internal/domain/entities"
	"encoding/json"
	"time"
)

type RefundOperationResponse struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	PaymentID int64     `json:"payment_id"`
	RefundID  int64     `json:"refund_id,omitempty"`
	User      string    `json:"user,omitempty"`
	Outcome   string    `json:"outcome"`
	Status    int       `json:"status"`
	Message   string    `json:"message,omitempty"`
	Date      time.Time `json:"date"`

	ResponseRaw string `json:"response_raw,omitempty"`
	Response    any    `json:"response,omitempty"`
}

func FromRefundOperation(op entities.RefundOperation) RefundOperationResponse {
	res := RefundOperationResponse{
		ID:          op.ID,
		Operation:   string(op.Operation),
		PaymentID:   op.PaymentID,
		RefundID:    op.RefundID,
		User:        op.User,
		Outcome:     op.Outcome,
		Status:      op.Status,
		Message:     op.Message,
		Date:        op.Date,
		ResponseRaw: string(op.ResponseRaw),
	}
	if len(op.ResponseRaw) > 0 {
		var parsed any
		if err := json.Unmarshal(op.ResponseRaw, &parsed); err == nil {
			res.Response = parsed
		}
	}
	return res
}

func FromRefundOperations(ops []entities.RefundOperation) []RefundOperationResponse {
	out := make([]RefundOperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, FromRefundOperation(op))
	}
	return out
}
