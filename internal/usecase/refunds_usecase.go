package usecase

import (
	"bytes"
	"context"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"
	"errors"
	"log"
)

var ErrRefundAPINotConfigured = errors.New("refund api not configured")

// IRefundsUseCase exposes the refunds endpoints of the payment gateway as typed calls.
//
// Every failure is a *DecidirError:
//   - TRANSPORT_FAULT when no HTTP status was obtained (status 500)
//   - DOMAIN_ERROR for non-2xx answers carrying the standard error shape
//   - BUSINESS_REJECTION when an annulment is refused with 402
//   - DESERIALIZATION_FAULT when a body does not match the expected shape
type IRefundsUseCase interface {
	GetRefunds(ctx context.Context, paymentID int64) (entities.DecidirResult[entities.RefundPaymentHistoryResponse], error)
	RefundPayment(ctx context.Context, paymentID int64, refund entities.RefundPayment, user string) (entities.DecidirResult[entities.RefundPaymentResponse], error)
	CancelRefund(ctx context.Context, paymentID int64, refundID int64, user string) (entities.DecidirResult[entities.AnnulRefundResponse], error)
}

type RefundsUseCase struct {
	api     interfaces.IRefundAPI
	history PaymentConverter[entities.RefundPaymentHistoryResponse]
	refunds PaymentConverter[entities.RefundPaymentResponse]
	annuls  PaymentConverter[entities.AnnulRefundResponse]
	errors  ErrorConverter
}

var _ IRefundsUseCase = (*RefundsUseCase)(nil)

func NewRefundsUseCase(api interfaces.IRefundAPI) *RefundsUseCase {
	return &RefundsUseCase{
		api:     api,
		history: NewPaymentConverter[entities.RefundPaymentHistoryResponse](),
		refunds: NewPaymentConverter[entities.RefundPaymentResponse](),
		annuls:  NewPaymentConverter[entities.AnnulRefundResponse](),
		errors:  ErrorConverter{},
	}
}

func (u *RefundsUseCase) GetRefunds(ctx context.Context, paymentID int64) (entities.DecidirResult[entities.RefundPaymentHistoryResponse], error) {
	log.Printf("[refund][usecase] list start payment_id=%d", paymentID)
	if u.api == nil {
		return entities.DecidirResult[entities.RefundPaymentHistoryResponse]{}, newTransportFault(ErrRefundAPINotConfigured)
	}

	resp, err := u.api.GetRefunds(ctx, paymentID)
	if err != nil {
		log.Printf("[refund][usecase] list transport failed payment_id=%d err=%v", paymentID, err)
		return entities.DecidirResult[entities.RefundPaymentHistoryResponse]{}, newTransportFault(err)
	}

	if ClassifyResponse(EndpointGetRefunds, resp) != OutcomeSuccess {
		err := u.domainError(resp)
		log.Printf("[refund][usecase] list failed payment_id=%d status=%d err=%v", paymentID, resp.StatusCode, err)
		return entities.DecidirResult[entities.RefundPaymentHistoryResponse]{}, err
	}

	result, err := u.history.Convert(resp)
	if err != nil {
		log.Printf("[refund][usecase] list response invalid payment_id=%d err=%v", paymentID, err)
		return result, err
	}
	log.Printf("[refund][usecase] list success payment_id=%d refunds=%d", paymentID, len(result.Result.History))
	return result, nil
}

func (u *RefundsUseCase) RefundPayment(ctx context.Context, paymentID int64, refund entities.RefundPayment, user string) (entities.DecidirResult[entities.RefundPaymentResponse], error) {
	log.Printf("[refund][usecase] create start payment_id=%d user=%s partial=%t", paymentID, user, refund.Amount != nil)
	if u.api == nil {
		return entities.DecidirResult[entities.RefundPaymentResponse]{}, newTransportFault(ErrRefundAPINotConfigured)
	}

	resp, err := u.api.PostRefund(ctx, user, paymentID, refund)
	if err != nil {
		log.Printf("[refund][usecase] create transport failed payment_id=%d err=%v", paymentID, err)
		return entities.DecidirResult[entities.RefundPaymentResponse]{}, newTransportFault(err)
	}

	result, err := u.refunds.ConvertOrError(resp)
	if err != nil {
		log.Printf("[refund][usecase] create failed payment_id=%d status=%d err=%v", paymentID, resp.StatusCode, err)
		return result, err
	}
	log.Printf("[refund][usecase] create success payment_id=%d refund_id=%d status=%s", paymentID, result.Result.ID, result.Result.Status)
	return result, nil
}

func (u *RefundsUseCase) CancelRefund(ctx context.Context, paymentID int64, refundID int64, user string) (entities.DecidirResult[entities.AnnulRefundResponse], error) {
	log.Printf("[refund][usecase] cancel start payment_id=%d refund_id=%d user=%s", paymentID, refundID, user)
	if u.api == nil {
		return entities.DecidirResult[entities.AnnulRefundResponse]{}, newTransportFault(ErrRefundAPINotConfigured)
	}

	resp, err := u.api.PostCancelRefund(ctx, user, paymentID, refundID)
	if err != nil {
		log.Printf("[refund][usecase] cancel transport failed payment_id=%d refund_id=%d err=%v", paymentID, refundID, err)
		return entities.DecidirResult[entities.AnnulRefundResponse]{}, newTransportFault(err)
	}

	switch ClassifyResponse(EndpointCancelRefund, resp) {
	case OutcomeSuccess:
		result, err := u.annuls.Convert(resp)
		if err != nil {
			log.Printf("[refund][usecase] cancel response invalid payment_id=%d refund_id=%d err=%v", paymentID, refundID, err)
			return result, err
		}
		log.Printf("[refund][usecase] cancel success payment_id=%d refund_id=%d status=%s", paymentID, refundID, result.Result.Status)
		return result, nil
	case OutcomeSpecialError:
		err := rejectionError(resp)
		log.Printf("[refund][usecase] cancel rejected payment_id=%d refund_id=%d err=%v", paymentID, refundID, err)
		return entities.DecidirResult[entities.AnnulRefundResponse]{}, err
	default:
		err := u.domainError(resp)
		log.Printf("[refund][usecase] cancel failed payment_id=%d refund_id=%d status=%d err=%v", paymentID, refundID, resp.StatusCode, err)
		return entities.DecidirResult[entities.AnnulRefundResponse]{}, err
	}
}

func (u *RefundsUseCase) domainError(resp entities.RawResponse) error {
	info, err := u.errors.Convert(resp)
	if err != nil {
		return err
	}
	return newDomainError(info.Result)
}

// rejectionError decodes the annulment payload the gateway sends along with a 402.
func rejectionError(resp entities.RawResponse) error {
	var payload entities.AnnulRefundResponse
	if raw := bytes.TrimSpace(resp.ErrorBody); len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return newDeserializationFault(err)
		}
	}
	return newBusinessRejection(resp.StatusCode, resp.Message, payload)
}
