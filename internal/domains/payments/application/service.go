package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lemono/storefront-api/internal/domains/payments/domain"
	"github.com/lemono/storefront-api/internal/domains/payments/ports"
)

const defaultCurrency = "INR"

// Credentials are the gateway key pair. The secret signs callback
// verification and must never leave the process; only the key id is
// safe to hand to a browser client.
type Credentials struct {
	KeyID     string
	KeySecret string
}

// Configured reports whether both halves of the key pair are present.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.KeyID) != "" && strings.TrimSpace(c.KeySecret) != ""
}

// Service exposes the payment use cases: opening remote gateway orders
// and verifying callback signatures.
type Service struct {
	client ports.GatewayClient
	creds  Credentials
	now    func() time.Time
}

func NewService(client ports.GatewayClient, creds Credentials) *Service {
	return &Service{client: client, creds: creds, now: time.Now}
}

// CreateOrder opens a remote order for an amount already expressed in
// minor units.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.RemoteOrder, error) {
	if !s.creds.Configured() || s.client == nil {
		return nil, ports.ErrGatewayNotConfigured
	}
	if input.Currency == "" {
		input.Currency = defaultCurrency
	}
	if strings.TrimSpace(input.Receipt) == "" {
		input.Receipt = fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	}
	return s.client.CreateOrder(ctx, input)
}

// CreateDecimalOrder opens a remote order for a decimal major-unit
// amount, converting to minor units with deterministic rounding.
func (s *Service) CreateDecimalOrder(ctx context.Context, amount float64, currency, receipt string) (*ports.RemoteOrder, error) {
	return s.CreateOrder(ctx, ports.CreateOrderInput{
		Amount:   domain.ToMinorUnits(amount),
		Currency: currency,
		Receipt:  receipt,
	})
}

// VerifyPayment checks the gateway callback signature against the
// configured secret. Missing credentials verify nothing.
func (s *Service) VerifyPayment(gatewayOrderID, paymentID, signature string) bool {
	return domain.VerifySignature(gatewayOrderID, paymentID, signature, s.creds.KeySecret)
}

// KeyID returns the public half of the gateway credentials.
func (s *Service) KeyID() string {
	return s.creds.KeyID
}
