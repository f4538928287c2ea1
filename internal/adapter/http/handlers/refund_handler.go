package handlers

import (
	"bytes"
	"decidir_refunds/internal/adapter/http/dto/request"
	"decidir_refunds/internal/adapter/http/dto/response"
	"decidir_refunds/internal/usecase"
	"decidir_refunds/pkg"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderConsumerUsername carries the acting user of refund mutations.
const HeaderConsumerUsername = "X-Consumer-Username"

const maxRefundPayloadBytes = 16 << 10

var (
	errInvalidPaymentID     = pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment_id", http.StatusBadRequest)
	errInvalidRefundID      = pkg.NewDomainErrorSimple("INVALID_REFUND_ID", "Invalid refund_id", http.StatusBadRequest)
	errMissingUser          = pkg.NewDomainErrorSimple("MISSING_USER", "Missing "+HeaderConsumerUsername+" header", http.StatusBadRequest)
	errInvalidRefundPayload = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)
)

// RefundHandler exposes the refunds facade over HTTP.
type RefundHandler struct {
	refunds    usecase.IRefundsUseCase
	operations usecase.IRefundOperationUseCase
}

func NewRefundHandler(refunds usecase.IRefundsUseCase, operations usecase.IRefundOperationUseCase) *RefundHandler {
	return &RefundHandler{refunds: refunds, operations: operations}
}

// GetRefunds godoc
// @Summary      List refunds of a payment
// @Tags         refunds
// @Produce      json
// @Param        payment_id  path  int  true  "Payment ID"
// @Success      200  {object}  entities.DecidirResult[entities.RefundPaymentHistoryResponse]
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/refunds [get]
func (h *RefundHandler) GetRefunds(c *gin.Context) {
	paymentID, ok := pathID(c, "payment_id", errInvalidPaymentID)
	if !ok {
		return
	}
	log.Printf("[refund][handler] list start payment_id=%d", paymentID)

	res, err := h.refunds.GetRefunds(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[refund][handler] list failed payment_id=%d err=%v", paymentID, err)
		writeAppError(c, mapRefundError(err))
		return
	}
	c.JSON(successStatus(res.Status, http.StatusOK), res)
}

// RefundPayment godoc
// @Summary      Refund a payment (total when amount is omitted)
// @Tags         refunds
// @Accept       json
// @Produce      json
// @Param        payment_id           path    int                           true   "Payment ID"
// @Param        X-Consumer-Username  header  string                        true   "Acting user"
// @Param        body                 body    request.RefundPaymentRequest  false  "Refund"
// @Success      201  {object}  entities.DecidirResult[entities.RefundPaymentResponse]
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/refunds [post]
func (h *RefundHandler) RefundPayment(c *gin.Context) {
	paymentID, ok := pathID(c, "payment_id", errInvalidPaymentID)
	if !ok {
		return
	}
	user, ok := actingUser(c)
	if !ok {
		return
	}

	payload, err := readRefundPayload(c)
	if err != nil {
		log.Printf("[refund][handler] invalid payload payment_id=%d err=%v", paymentID, err)
		writeAppError(c, errInvalidRefundPayload)
		return
	}
	log.Printf("[refund][handler] create start payment_id=%d user=%s", paymentID, user)

	res, err := h.refunds.RefundPayment(c.Request.Context(), paymentID, payload.ToEntity(), user)
	if err != nil {
		log.Printf("[refund][handler] create failed payment_id=%d err=%v", paymentID, err)
		writeAppError(c, mapRefundError(err))
		return
	}
	log.Printf("[refund][handler] create success payment_id=%d refund_id=%d status=%s", paymentID, res.Result.ID, res.Result.Status)
	c.JSON(successStatus(res.Status, http.StatusCreated), res)
}

// CancelRefund godoc
// @Summary      Annul a refund
// @Tags         refunds
// @Produce      json
// @Param        payment_id           path    int     true  "Payment ID"
// @Param        refund_id            path    int     true  "Refund ID"
// @Param        X-Consumer-Username  header  string  true  "Acting user"
// @Success      200  {object}  entities.DecidirResult[entities.AnnulRefundResponse]
// @Failure      402  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/refunds/{refund_id} [delete]
func (h *RefundHandler) CancelRefund(c *gin.Context) {
	paymentID, ok := pathID(c, "payment_id", errInvalidPaymentID)
	if !ok {
		return
	}
	refundID, ok := pathID(c, "refund_id", errInvalidRefundID)
	if !ok {
		return
	}
	user, ok := actingUser(c)
	if !ok {
		return
	}
	log.Printf("[refund][handler] cancel start payment_id=%d refund_id=%d user=%s", paymentID, refundID, user)

	res, err := h.refunds.CancelRefund(c.Request.Context(), paymentID, refundID, user)
	if err != nil {
		log.Printf("[refund][handler] cancel failed payment_id=%d refund_id=%d err=%v", paymentID, refundID, err)
		writeAppError(c, mapRefundError(err))
		return
	}
	c.JSON(successStatus(res.Status, http.StatusOK), res)
}

// ListRefundOperations godoc
// @Summary      Audit trail of refund calls for a payment
// @Tags         refunds
// @Produce      json
// @Param        payment_id  path  int  true  "Payment ID"
// @Success      200  {array}   response.RefundOperationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/refund-operations [get]
func (h *RefundHandler) ListRefundOperations(c *gin.Context) {
	paymentID, ok := pathID(c, "payment_id", errInvalidPaymentID)
	if !ok {
		return
	}

	ops, err := h.operations.ListByPaymentID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[refund][handler] list operations failed payment_id=%d err=%v", paymentID, err)
		writeAppError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRefundOperations(ops))
}

func pathID(c *gin.Context, name string, invalid *pkg.AppError) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		writeAppError(c, invalid)
		return 0, false
	}
	return id, true
}

func actingUser(c *gin.Context) (string, bool) {
	user := strings.TrimSpace(c.GetHeader(HeaderConsumerUsername))
	if user == "" {
		writeAppError(c, errMissingUser)
		return "", false
	}
	return user, true
}

// readRefundPayload accepts an empty body as a total refund.
func readRefundPayload(c *gin.Context) (request.RefundPaymentRequest, error) {
	var payload request.RefundPaymentRequest
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRefundPayloadBytes)
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, payload.Validate()
}

func successStatus(status, def int) int {
	if status >= 200 && status <= 299 {
		return status
	}
	return def
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapRefundError(err error) *pkg.AppError {
	de, ok := usecase.AsDecidirError(err)
	if !ok {
		if errors.Is(err, usecase.ErrInvalidPaymentID) {
			return errInvalidPaymentID
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	switch de.Kind {
	case usecase.KindDomainError:
		status := de.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := de.Message
		if message == "" {
			message = "Payment provider error"
		}
		appErr := pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", message, err, status)
		if de.Result != nil {
			appErr = appErr.WithDetails(de.Result)
		}
		return appErr
	case usecase.KindBusinessRejection:
		return pkg.NewDomainError("REFUND_ANNULMENT_REJECTED", "Refund annulment rejected", err, http.StatusPaymentRequired).WithDetails(de.AnnulRefund)
	case usecase.KindDeserializationFault:
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_RESPONSE", "Payment provider returned an invalid response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	}
}
