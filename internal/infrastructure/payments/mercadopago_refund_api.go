package payments

import (
	"context"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoRefundAPINotConfigured = errors.New("mercado pago refund api not configured")

// sdkBodyReadPrefix marks the ResponseError the SDK builds when reading the answer failed.
const sdkBodyReadPrefix = "error reading response body"

// MercadoPagoRefundAPI serves the refunds endpoints from Mercado Pago.
//
// Mercado Pago amounts are decimal; they are exposed in cents like the Decidir ones.
// Annulment does not exist there, so cancellation always answers 405 with the standard
// error shape.
type MercadoPagoRefundAPI struct {
	client   refund.Client
	mockMode bool
}

var _ interfaces.IRefundAPI = (*MercadoPagoRefundAPI)(nil)

// mpRefund is the subset of the Mercado Pago refund resource mapped to the gateway shape.
type mpRefund struct {
	ID        int64   `json:"id"`
	PaymentID int64   `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

func NewMercadoPagoRefundAPI(accessToken string) (*MercadoPagoRefundAPI, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[refund][mercadopago] mock mode enabled")
		return &MercadoPagoRefundAPI{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[refund][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[refund][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[refund][mercadopago] Mercado Pago refund client initialized")

	return &MercadoPagoRefundAPI{client: refund.NewClient(cfg)}, nil
}

func (g *MercadoPagoRefundAPI) GetRefunds(ctx context.Context, paymentID int64) (entities.RawResponse, error) {
	if g != nil && g.mockMode {
		log.Printf("[refund][mercadopago] mock list payment_id=%d", paymentID)
		return jsonResponse(http.StatusOK, entities.RefundPaymentHistoryResponse{
			History: []entities.RefundPaymentResponse{mockRefund(paymentID, 0)},
		})
	}
	if g == nil || g.client == nil {
		return entities.RawResponse{}, ErrMercadoPagoRefundAPINotConfigured
	}

	log.Printf("[refund][mercadopago] list start payment_id=%d", paymentID)
	resp, err := g.client.List(ctx, int(paymentID))
	if err != nil {
		return fromSDKError("list", err)
	}

	history := entities.RefundPaymentHistoryResponse{History: make([]entities.RefundPaymentResponse, 0, len(resp))}
	for _, r := range resp {
		converted, err := toRefundPaymentResponse(r)
		if err != nil {
			return entities.RawResponse{}, err
		}
		history.History = append(history.History, converted)
	}
	log.Printf("[refund][mercadopago] list success payment_id=%d refunds=%d", paymentID, len(history.History))
	return jsonResponse(http.StatusOK, history)
}

func (g *MercadoPagoRefundAPI) PostRefund(ctx context.Context, user string, paymentID int64, body entities.RefundPayment) (entities.RawResponse, error) {
	if g != nil && g.mockMode {
		log.Printf("[refund][mercadopago] mock create payment_id=%d user=%s", paymentID, user)
		amount := int64(0)
		if body.Amount != nil {
			amount = *body.Amount
		}
		return jsonResponse(http.StatusCreated, mockRefund(paymentID, amount))
	}
	if g == nil || g.client == nil {
		return entities.RawResponse{}, ErrMercadoPagoRefundAPINotConfigured
	}

	log.Printf("[refund][mercadopago] create start payment_id=%d user=%s partial=%t", paymentID, user, body.Amount != nil)
	var (
		resp *refund.Response
		err  error
	)
	if body.Amount != nil {
		resp, err = g.client.CreatePartialRefund(ctx, int(paymentID), centsToDecimal(*body.Amount))
	} else {
		resp, err = g.client.Create(ctx, int(paymentID))
	}
	if err != nil {
		return fromSDKError("create", err)
	}

	converted, err := toRefundPaymentResponse(resp)
	if err != nil {
		return entities.RawResponse{}, err
	}
	log.Printf("[refund][mercadopago] create success payment_id=%d refund_id=%d status=%s", paymentID, converted.ID, converted.Status)
	return jsonResponse(http.StatusCreated, converted)
}

func (g *MercadoPagoRefundAPI) PostCancelRefund(_ context.Context, user string, paymentID int64, refundID int64) (entities.RawResponse, error) {
	log.Printf("[refund][mercadopago] cancel unsupported payment_id=%d refund_id=%d user=%s", paymentID, refundID, user)
	return jsonResponse(http.StatusMethodNotAllowed, entities.DecidirErrorInfo{
		Status:  http.StatusMethodNotAllowed,
		Message: "refund annulment is not supported by mercado pago",
		Result:  map[string]any{"payment_id": paymentID, "refund_id": refundID},
	})
}

// fromSDKError keeps provider error answers as responses; anything else, including an
// unreadable body, is a transport fault.
func fromSDKError(op string, err error) (entities.RawResponse, error) {
	var respErr *mperror.ResponseError
	if errors.As(err, &respErr) && respErr.StatusCode >= 400 && !strings.HasPrefix(respErr.Message, sdkBodyReadPrefix) {
		log.Printf("[refund][mercadopago] %s rejected status=%d", op, respErr.StatusCode)
		return entities.RawResponse{
			StatusCode: respErr.StatusCode,
			Message:    http.StatusText(respErr.StatusCode),
			ErrorBody:  []byte(respErr.Message),
		}, nil
	}
	log.Printf("[refund][mercadopago] sdk %s failed err=%v", op, err)
	return entities.RawResponse{}, err
}

func toRefundPaymentResponse(v any) (entities.RefundPaymentResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return entities.RefundPaymentResponse{}, fmt.Errorf("failed to marshal mercado pago refund: %w", err)
	}
	var r mpRefund
	if err := json.Unmarshal(b, &r); err != nil {
		return entities.RefundPaymentResponse{}, fmt.Errorf("failed to read mercado pago refund: %w", err)
	}
	return entities.RefundPaymentResponse{
		ID:        r.ID,
		PaymentID: r.PaymentID,
		Amount:    decimalToCents(r.Amount),
		Status:    r.Status,
	}, nil
}

func jsonResponse(status int, v any) (entities.RawResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[refund][mercadopago] response marshal failed err=%v", err)
		return entities.RawResponse{}, err
	}
	raw := entities.RawResponse{StatusCode: status, Message: http.StatusText(status)}
	if raw.IsSuccessful() {
		raw.Body = b
	} else {
		raw.ErrorBody = b
	}
	return raw, nil
}

func mockRefund(paymentID, amount int64) entities.RefundPaymentResponse {
	return entities.RefundPaymentResponse{
		ID:        time.Now().UTC().UnixNano() % 1_000_000_000,
		PaymentID: paymentID,
		Amount:    amount,
		Status:    "approved",
	}
}

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

func decimalToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
