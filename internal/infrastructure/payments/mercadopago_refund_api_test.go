package payments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"decidir_refunds/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/mperror"
)

func TestNewMercadoPagoRefundAPI(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoRefundAPI("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoRefundAPI("")
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoRefundAPI_MockMode(t *testing.T) {
	g := &MercadoPagoRefundAPI{mockMode: true}

	t.Run("list", func(t *testing.T) {
		resp, err := g.GetRefunds(context.Background(), 123)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		var history entities.RefundPaymentHistoryResponse
		if err := json.Unmarshal(resp.Body, &history); err != nil {
			t.Fatalf("unexpected body: %s", resp.Body)
		}
		if resp.StatusCode != 200 || len(history.History) != 1 || history.History[0].PaymentID != 123 {
			t.Fatalf("unexpected response: %+v", history)
		}
	})

	t.Run("create keeps amount", func(t *testing.T) {
		amount := int64(990)
		resp, err := g.PostRefund(context.Background(), "alice", 123, entities.RefundPayment{Amount: &amount})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		var r entities.RefundPaymentResponse
		if err := json.Unmarshal(resp.Body, &r); err != nil {
			t.Fatalf("unexpected body: %s", resp.Body)
		}
		if resp.StatusCode != 201 || r.Amount != 990 || r.Status != "approved" {
			t.Fatalf("unexpected refund: %+v", r)
		}
	})
}

func TestMercadoPagoRefundAPI_CancelUnsupported(t *testing.T) {
	g := &MercadoPagoRefundAPI{}
	resp, err := g.PostCancelRefund(context.Background(), "bob", 123, 45)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != 405 || resp.Body != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	var info entities.DecidirErrorInfo
	if err := json.Unmarshal(resp.ErrorBody, &info); err != nil {
		t.Fatalf("unexpected error body: %s", resp.ErrorBody)
	}
	if info.Status != 405 || info.Message == "" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestMercadoPagoRefundAPI_NotConfigured(t *testing.T) {
	g := &MercadoPagoRefundAPI{}
	if _, err := g.GetRefunds(context.Background(), 1); !errors.Is(err, ErrMercadoPagoRefundAPINotConfigured) {
		t.Fatalf("expected ErrMercadoPagoRefundAPINotConfigured, got %v", err)
	}
	if _, err := g.PostRefund(context.Background(), "alice", 1, entities.RefundPayment{}); !errors.Is(err, ErrMercadoPagoRefundAPINotConfigured) {
		t.Fatalf("expected ErrMercadoPagoRefundAPINotConfigured, got %v", err)
	}
}

func TestFromSDKError(t *testing.T) {
	t.Run("provider answer becomes a response", func(t *testing.T) {
		sdkErr := &mperror.ResponseError{StatusCode: 400, Message: `{"status":400,"message":"invalid amount"}`}
		resp, err := fromSDKError("create", fmt.Errorf("wrapped: %w", sdkErr))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if resp.StatusCode != 400 || resp.Message != "Bad Request" || string(resp.ErrorBody) != sdkErr.Message {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("unreadable body on a success status is a transport fault", func(t *testing.T) {
		sdkErr := &mperror.ResponseError{StatusCode: 200, Message: "error reading response body: unexpected EOF"}
		resp, err := fromSDKError("list", sdkErr)
		if !errors.Is(err, sdkErr) {
			t.Fatalf("expected sdk error, got %v", err)
		}
		if resp.StatusCode != 0 || len(resp.Body) != 0 || len(resp.ErrorBody) != 0 {
			t.Fatalf("expected empty response, got %+v", resp)
		}
	})

	t.Run("unreadable body on an error status is a transport fault", func(t *testing.T) {
		sdkErr := &mperror.ResponseError{StatusCode: 503, Message: "error reading response body: connection reset"}
		if _, err := fromSDKError("create", sdkErr); !errors.Is(err, sdkErr) {
			t.Fatalf("expected sdk error, got %v", err)
		}
	})

	t.Run("other errors stay errors", func(t *testing.T) {
		cause := errors.New("dial tcp: timeout")
		if _, err := fromSDKError("list", cause); !errors.Is(err, cause) {
			t.Fatalf("expected cause, got %v", err)
		}
	})
}

func TestToRefundPaymentResponse(t *testing.T) {
	r, err := toRefundPaymentResponse(map[string]any{"id": 9, "payment_id": 123, "amount": 10.55, "status": "approved"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.ID != 9 || r.PaymentID != 123 || r.Amount != 1055 || r.Status != "approved" {
		t.Fatalf("unexpected refund: %+v", r)
	}
}
