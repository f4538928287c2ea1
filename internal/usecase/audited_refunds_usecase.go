package usecase

import (
	"context"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"
	"log"
	"time"

	"github.com/google/uuid"
)

const outcomeSuccess = "success"

// AuditedRefundsUseCase records every refunds call in the operation repository.
//
// Recording never changes what the caller gets back: repository failures are only logged.
type AuditedRefundsUseCase struct {
	next IRefundsUseCase
	repo interfaces.IRefundOperationRepository
	now  func() time.Time
}

var _ IRefundsUseCase = (*AuditedRefundsUseCase)(nil)

func NewAuditedRefundsUseCase(next IRefundsUseCase, repo interfaces.IRefundOperationRepository) *AuditedRefundsUseCase {
	return &AuditedRefundsUseCase{next: next, repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *AuditedRefundsUseCase) GetRefunds(ctx context.Context, paymentID int64) (entities.DecidirResult[entities.RefundPaymentHistoryResponse], error) {
	res, err := u.next.GetRefunds(ctx, paymentID)
	u.record(ctx, operationFor(u.newOperation(entities.RefundOperationList, paymentID, 0, ""), res, err))
	return res, err
}

func (u *AuditedRefundsUseCase) RefundPayment(ctx context.Context, paymentID int64, refund entities.RefundPayment, user string) (entities.DecidirResult[entities.RefundPaymentResponse], error) {
	res, err := u.next.RefundPayment(ctx, paymentID, refund, user)
	op := u.newOperation(entities.RefundOperationCreate, paymentID, 0, user)
	if err == nil {
		op.RefundID = res.Result.ID
	}
	u.record(ctx, operationFor(op, res, err))
	return res, err
}

func (u *AuditedRefundsUseCase) CancelRefund(ctx context.Context, paymentID int64, refundID int64, user string) (entities.DecidirResult[entities.AnnulRefundResponse], error) {
	res, err := u.next.CancelRefund(ctx, paymentID, refundID, user)
	u.record(ctx, operationFor(u.newOperation(entities.RefundOperationCancel, paymentID, refundID, user), res, err))
	return res, err
}

func (u *AuditedRefundsUseCase) newOperation(kind entities.RefundOperationType, paymentID, refundID int64, user string) entities.RefundOperation {
	return entities.RefundOperation{
		ID:        uuid.NewString(),
		Operation: kind,
		PaymentID: paymentID,
		RefundID:  refundID,
		User:      user,
		Date:      u.now(),
	}
}

func (u *AuditedRefundsUseCase) record(ctx context.Context, op entities.RefundOperation) {
	if u.repo == nil {
		return
	}
	if _, err := u.repo.Create(ctx, op); err != nil {
		log.Printf("[refund][audit] record failed operation=%s payment_id=%d outcome=%s err=%v", op.Operation, op.PaymentID, op.Outcome, err)
		return
	}
	log.Printf("[refund][audit] recorded id=%s operation=%s payment_id=%d outcome=%s status=%d", op.ID, op.Operation, op.PaymentID, op.Outcome, op.Status)
}

func operationFor[T any](op entities.RefundOperation, res entities.DecidirResult[T], err error) entities.RefundOperation {
	if err == nil {
		op.Outcome = outcomeSuccess
		op.Status = res.Status
		op.Message = res.Message
		op.ResponseRaw = marshalRaw(res.Result)
		return op
	}

	de, ok := AsDecidirError(err)
	if !ok {
		op.Outcome = string(KindTransportFault)
		op.Status = HTTP500
		op.Message = err.Error()
		return op
	}
	op.Outcome = string(de.Kind)
	op.Status = de.Status
	op.Message = de.Message
	switch {
	case de.AnnulRefund != nil:
		op.ResponseRaw = marshalRaw(de.AnnulRefund)
	case de.Result != nil:
		op.ResponseRaw = marshalRaw(de.Result)
	}
	return op
}

func marshalRaw(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[refund][audit] response marshal failed err=%v", err)
		return nil
	}
	return b
}
