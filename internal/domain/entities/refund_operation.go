package entities

import (
	"encoding/json"
	"time"
)

type RefundOperationType string

const (
	RefundOperationList   RefundOperationType = "list"
	RefundOperationCreate RefundOperationType = "create"
	RefundOperationCancel RefundOperationType = "cancel"
)

// RefundOperation is the audit record of one call made through the refunds facade.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
//
// Outcome is "success" or the failure kind reported by the facade.
type RefundOperation struct {
	ID        string              `json:"id"`
	Operation RefundOperationType `json:"operation"`
	PaymentID int64               `json:"payment_id"`
	RefundID  int64               `json:"refund_id,omitempty"`
	User      string              `json:"user,omitempty"`
	Outcome   string              `json:"outcome"`
	Status    int                 `json:"status"`
	Message   string              `json:"message,omitempty"`
	Date      time.Time           `json:"date"`

	ResponseRaw json.RawMessage `json:"response_raw,omitempty"`
}
