// Package razorpay is a minimal client for the Razorpay Orders API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lemono/storefront-api/internal/domains/payments/ports"
)

const defaultBaseURL = "https://api.razorpay.com"

var _ ports.GatewayClient = (*Client)(nil)

// Client calls the Razorpay REST API with basic-auth credentials.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API host, used by tests and sandboxes.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient instantiates the gateway client with sane defaults.
func NewClient(keyID, keySecret string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(keyID) == "" || strings.TrimSpace(keySecret) == "" {
		return nil, ports.ErrGatewayNotConfigured
	}
	client := &Client{
		baseURL:    defaultBaseURL,
		keyID:      keyID,
		keySecret:  keySecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type apiErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder opens an order with the gateway. Amount is in minor units.
func (c *Client) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.RemoteOrder, error) {
	if c == nil || c.httpClient == nil {
		return nil, ports.ErrGatewayNotConfigured
	}
	payload := createOrderRequest{
		Amount:   input.Amount,
		Currency: input.Currency,
		Receipt:  input.Receipt,
		Notes:    map[string]string{"store": "lemono"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode order: %w", ports.ErrGatewayRequest, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ports.ErrGatewayRequest, err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrGatewayRequest, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ports.ErrGatewayRequest, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ports.ErrGatewayRequest, errorMessage(raw, resp.Status))
	}

	var order createOrderResponse
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ports.ErrGatewayRequest, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: response missing order id", ports.ErrGatewayRequest)
	}
	return &ports.RemoteOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

func errorMessage(raw []byte, fallback string) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil {
		if desc := strings.TrimSpace(apiErr.Error.Description); desc != "" {
			return desc
		}
		if code := strings.TrimSpace(apiErr.Error.Code); code != "" {
			return code
		}
	}
	if fallback != "" {
		return fallback
	}
	return "unexpected gateway response"
}
