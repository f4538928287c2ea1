package entities

// SubPayment is a per-site split of a distributed payment.
type SubPayment struct {
	ID     int64  `json:"id"`
	Amount *int64 `json:"amount,omitempty"`
}

// RefundPayment is the body sent when issuing a refund.
//
// A nil Amount asks the gateway for a total refund; amounts are expressed in cents.
type RefundPayment struct {
	Amount      *int64       `json:"amount,omitempty"`
	SubPayments []SubPayment `json:"sub_payments,omitempty"`
}

// RefundPaymentResponse is one refund attempt tied to a payment.
type RefundPaymentResponse struct {
	ID          int64        `json:"id"`
	PaymentID   int64        `json:"payment_id,omitempty"`
	Amount      int64        `json:"amount"`
	Status      string       `json:"status"`
	SubPayments []SubPayment `json:"sub_payments,omitempty"`
}

type RefundPaymentHistoryResponse struct {
	History []RefundPaymentResponse `json:"history"`
}

// AnnulRefundResponse is returned when a refund is annulled, and also as the body of a
// 402 rejection of the annulment.
type AnnulRefundResponse struct {
	ID          int64        `json:"id,omitempty"`
	Amount      int64        `json:"amount,omitempty"`
	Status      string       `json:"status"`
	SubPayments []SubPayment `json:"sub_payments,omitempty"`
}
