package handlers

import (
	"bytes"
	"context"
	"decidir_refunds/internal/adapter/http/handlers/mocks"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRefundRouter(h *RefundHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/payments/:payment_id/refunds", h.GetRefunds)
	r.POST("/v1/payments/:payment_id/refunds", h.RefundPayment)
	r.DELETE("/v1/payments/:payment_id/refunds/:refund_id", h.CancelRefund)
	r.GET("/v1/payments/:payment_id/refund-operations", h.ListRefundOperations)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRefundHandler_GetRefunds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), mocks.NewMockIRefundOperationUseCase(ctrl))

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/abc/refunds", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["code"] != "INVALID_PAYMENT_ID" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().GetRefunds(gomock.Any(), int64(123)).Return(entities.DecidirResult[entities.RefundPaymentHistoryResponse]{
			Status: 200,
			Result: entities.RefundPaymentHistoryResponse{History: []entities.RefundPaymentResponse{{ID: 1, Amount: 500, Status: "approved"}}},
		}, nil)

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/refunds", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		result, _ := decodeBody(t, w)["result"].(map[string]any)
		history, _ := result["history"].([]any)
		if len(history) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("domain error keeps remote status and details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().GetRefunds(gomock.Any(), int64(123)).Return(entities.DecidirResult[entities.RefundPaymentHistoryResponse]{}, &usecase.DecidirError{
			Kind:    usecase.KindDomainError,
			Status:  404,
			Message: "payment not found",
			Result:  map[string]any{"entity_name": "payment"},
		})

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/refunds", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "PAYMENT_PROVIDER_ERROR" || body["message"] != "payment not found" || details["entity_name"] != "payment" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("transport fault maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().GetRefunds(gomock.Any(), int64(123)).Return(entities.DecidirResult[entities.RefundPaymentHistoryResponse]{}, &usecase.DecidirError{
			Kind: usecase.KindTransportFault, Status: 500, Message: "timeout",
		})

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/refunds", nil))
		if w.Code != http.StatusBadGateway || decodeBody(t, w)["code"] != "PAYMENT_PROVIDER_UNAVAILABLE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRefundHandler_RefundPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), mocks.NewMockIRefundOperationUseCase(ctrl))

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", nil))
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "MISSING_USER" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), mocks.NewMockIRefundOperationUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(`{"amount":-5}`))
		req.Header.Set(HeaderConsumerUsername, "alice")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_REFUND_INPUT" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("oversized payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), mocks.NewMockIRefundOperationUseCase(ctrl))

		body := `{"amount":700,"sub_payments":[` + strings.Repeat(`{"id":1,"amount":1},`, maxRefundPayloadBytes/10) + `{"id":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(body))
		req.Header.Set(HeaderConsumerUsername, "alice")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_REFUND_INPUT" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty body is a total refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().RefundPayment(gomock.Any(), int64(123), entities.RefundPayment{}, "alice").Return(entities.DecidirResult[entities.RefundPaymentResponse]{
			Status: 201,
			Result: entities.RefundPaymentResponse{ID: 45, Amount: 1500, Status: "approved"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", nil)
		req.Header.Set(HeaderConsumerUsername, "alice")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("partial refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().RefundPayment(gomock.Any(), int64(123), gomock.Any(), "alice").DoAndReturn(
			func(_ context.Context, _ int64, refund entities.RefundPayment, _ string) (entities.DecidirResult[entities.RefundPaymentResponse], error) {
				if refund.Amount == nil || *refund.Amount != 700 {
					t.Fatalf("unexpected refund: %+v", refund)
				}
				return entities.DecidirResult[entities.RefundPaymentResponse]{Status: 200, Result: entities.RefundPaymentResponse{ID: 46, Amount: 700}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", bytes.NewBufferString(`{"amount":700}`))
		req.Header.Set(HeaderConsumerUsername, "alice")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deserialization fault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().RefundPayment(gomock.Any(), int64(123), gomock.Any(), "alice").Return(entities.DecidirResult[entities.RefundPaymentResponse]{}, &usecase.DecidirError{
			Kind: usecase.KindDeserializationFault, Status: 500, Message: "unexpected end of JSON input",
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/123/refunds", nil)
		req.Header.Set(HeaderConsumerUsername, "alice")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadGateway || decodeBody(t, w)["code"] != "PAYMENT_PROVIDER_INVALID_RESPONSE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRefundHandler_CancelRefund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid refund id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), mocks.NewMockIRefundOperationUseCase(ctrl))

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/123/refunds/0", nil)
		req.Header.Set(HeaderConsumerUsername, "bob")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != "INVALID_REFUND_ID" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("business rejection carries the payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().CancelRefund(gomock.Any(), int64(123), int64(45), "bob").Return(entities.DecidirResult[entities.AnnulRefundResponse]{}, &usecase.DecidirError{
			Kind:        usecase.KindBusinessRejection,
			Status:      402,
			AnnulRefund: &entities.AnnulRefundResponse{ID: 45, Status: "rejected"},
		})

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/123/refunds/45", nil)
		req.Header.Set(HeaderConsumerUsername, "bob")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		if body["code"] != "REFUND_ANNULMENT_REJECTED" || details["status"] != "rejected" || details["id"] != float64(45) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRefundsUseCase(ctrl)
		h := NewRefundHandler(uc, mocks.NewMockIRefundOperationUseCase(ctrl))

		uc.EXPECT().CancelRefund(gomock.Any(), int64(123), int64(45), "bob").Return(entities.DecidirResult[entities.AnnulRefundResponse]{
			Status: 200, Result: entities.AnnulRefundResponse{Amount: 1500, Status: "annulled"},
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/123/refunds/45", nil)
		req.Header.Set(HeaderConsumerUsername, "bob")
		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRefundHandler_ListRefundOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mocks.NewMockIRefundOperationUseCase(ctrl)
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), ops)

		ops.EXPECT().ListByPaymentID(gomock.Any(), int64(123)).Return([]entities.RefundOperation{
			{ID: "op-1", Operation: entities.RefundOperationCreate, PaymentID: 123, Outcome: "success", Status: 201, Date: time.Now().UTC()},
		}, nil)

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/refund-operations", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["id"] != "op-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ops := mocks.NewMockIRefundOperationUseCase(ctrl)
		h := NewRefundHandler(mocks.NewMockIRefundsUseCase(ctrl), ops)

		ops.EXPECT().ListByPaymentID(gomock.Any(), int64(123)).Return(nil, errors.New("db"))

		w := httptest.NewRecorder()
		newRefundRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/123/refund-operations", nil))
		if w.Code != http.StatusInternalServerError || decodeBody(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
