package decidir

import (
	"bytes"
	"context"
	"decidir_refunds/internal/domain/entities"
	"decidir_refunds/internal/usecase/interfaces"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultBaseURL   = "https://developers.decidir.com/api/v2/"
	defaultTimeoutMS = 8000

	headerAPIKey       = "apikey"
	headerConsumerUser = "X-Consumer-Username"
	headerRequestID    = "X-Request-Id"
)

var ErrMissingDecidirAPIKey = errors.New("missing DECIDIR_PRIVATE_API_KEY")

// RefundAPIClient talks to the refunds endpoints of the Decidir REST API.
//
// Any HTTP status is handed back as a RawResponse; only failures that prevent obtaining
// a status are returned as errors.
type RefundAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IRefundAPI = (*RefundAPIClient)(nil)

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

func NewRefundAPIClient(opts Options) (*RefundAPIClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		log.Printf("[refund][decidir] missing DECIDIR_PRIVATE_API_KEY")
		return nil, ErrMissingDecidirAPIKey
	}

	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeoutMS * time.Millisecond
		}
		client = &http.Client{Timeout: timeout}
	}

	log.Printf("[refund][decidir] client initialized base_url=%s timeout=%s", baseURL, client.Timeout)
	return &RefundAPIClient{baseURL: baseURL, apiKey: opts.APIKey, client: client}, nil
}

// NewRefundAPIClientFromEnv reads DECIDIR_BASE_URL, DECIDIR_PRIVATE_API_KEY and DECIDIR_TIMEOUT_MS.
func NewRefundAPIClientFromEnv() (*RefundAPIClient, error) {
	timeoutMS, err := strconv.Atoi(getenvDefault("DECIDIR_TIMEOUT_MS", strconv.Itoa(defaultTimeoutMS)))
	if err != nil {
		log.Printf("[refund][decidir] invalid DECIDIR_TIMEOUT_MS, using default err=%v", err)
		timeoutMS = defaultTimeoutMS
	}
	return NewRefundAPIClient(Options{
		BaseURL: getenvDefault("DECIDIR_BASE_URL", DefaultBaseURL),
		APIKey:  os.Getenv("DECIDIR_PRIVATE_API_KEY"),
		Timeout: time.Duration(timeoutMS) * time.Millisecond,
	})
}

func (c *RefundAPIClient) GetRefunds(ctx context.Context, paymentID int64) (entities.RawResponse, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("payments/%d/refunds", paymentID), "", nil)
}

func (c *RefundAPIClient) PostRefund(ctx context.Context, user string, paymentID int64, body entities.RefundPayment) (entities.RawResponse, error) {
	payload, err := jsoniter.Marshal(body)
	if err != nil {
		return entities.RawResponse{}, fmt.Errorf("failed to marshal refund body: %w", err)
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("payments/%d/refunds", paymentID), user, payload)
}

func (c *RefundAPIClient) PostCancelRefund(ctx context.Context, user string, paymentID int64, refundID int64) (entities.RawResponse, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("payments/%d/refunds/%d", paymentID, refundID), user, nil)
}

func (c *RefundAPIClient) do(ctx context.Context, method, path, user string, body []byte) (entities.RawResponse, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return entities.RawResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(headerRequestID, requestID)
	if user != "" {
		req.Header.Set(headerConsumerUser, user)
	}

	log.Printf("[refund][decidir] request start method=%s path=%s request_id=%s", method, path, requestID)
	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[refund][decidir] request failed method=%s path=%s request_id=%s err=%v", method, path, requestID, err)
		return entities.RawResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[refund][decidir] read body failed method=%s path=%s request_id=%s err=%v", method, path, requestID, err)
		return entities.RawResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}
	log.Printf("[refund][decidir] request done method=%s path=%s request_id=%s status=%d body_len=%d", method, path, requestID, resp.StatusCode, len(data))

	raw := entities.RawResponse{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	if raw.IsSuccessful() {
		raw.Body = data
	} else {
		raw.ErrorBody = data
	}
	return raw, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
