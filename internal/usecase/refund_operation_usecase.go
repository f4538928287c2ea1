package usecase

import (
	"context"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"
	"errors"
	"sort"
)

// IRefundOperationUseCase reads the audit trail left by AuditedRefundsUseCase.
type IRefundOperationUseCase interface {
	ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.RefundOperation, error)
}

type RefundOperationUseCase struct {
	repo interfaces.IRefundOperationRepository
}

var _ IRefundOperationUseCase = (*RefundOperationUseCase)(nil)

func NewRefundOperationUseCase(repo interfaces.IRefundOperationRepository) *RefundOperationUseCase {
	return &RefundOperationUseCase{repo: repo}
}

// ListByPaymentID returns the operations recorded for a payment, newest first.
func (u *RefundOperationUseCase) ListByPaymentID(ctx context.Context, paymentID int64) ([]entities.RefundOperation, error) {
	if paymentID <= 0 {
		return nil, ErrInvalidPaymentID
	}
	if u.repo == nil {
		return nil, errors.New("refund operation repository not configured")
	}

	ops, err := u.repo.ListByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].Date.After(ops[j].Date)
	})
	return ops, nil
}
