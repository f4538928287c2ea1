package interfaces

import (
	"context"
	"decidir_refunds/internal/domain/entities"
)

// IRefundOperationRepository abstracts DynamoDB persistence for RefundOperation.

type IRefundOperationRepository interface {
	Create(ctx context.Context, op entities.RefundOperation) (entities.RefundOperation, error)
	ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.RefundOperation, error)
}
