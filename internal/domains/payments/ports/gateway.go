package ports

import (
	"context"
	"errors"
)

var (
	// ErrGatewayNotConfigured signals missing gateway credentials: a
	// fatal misconfiguration, not a user-actionable failure.
	ErrGatewayNotConfigured = errors.New("payment gateway credentials are not configured")
	// ErrGatewayRequest wraps remote gateway failures (network, 4xx/5xx).
	ErrGatewayRequest = errors.New("payment gateway request failed")
)

// CreateOrderInput describes the remote order to open with the gateway.
// Amount is in integer minor units.
type CreateOrderInput struct {
	Amount   int64
	Currency string
	Receipt  string
}

// RemoteOrder is the gateway's view of a created payment order.
type RemoteOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// GatewayClient talks to the remote payment provider.
type GatewayClient interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*RemoteOrder, error)
}
