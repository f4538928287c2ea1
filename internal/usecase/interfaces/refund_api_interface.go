package interfaces

import (
	"context"
	"decidir_refunds/internal/domain/entities"
)

// IRefundAPI abstracts the transport towards the refunds endpoints of a payment gateway.
//
// Implementations return a RawResponse whenever an HTTP status was obtained, whatever
// that status is. An error means no status could be obtained (connectivity, IO).
type IRefundAPI interface {
	GetRefunds(ctx context.Context, paymentID int64) (entities.RawResponse, error)
	PostRefund(ctx context.Context, user string, paymentID int64, body entities.RefundPayment) (entities.RawResponse, error)
	PostCancelRefund(ctx context.Context, user string, paymentID int64, refundID int64) (entities.RawResponse, error)
}
