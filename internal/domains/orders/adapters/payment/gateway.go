// Package payment adapts the payments bounded context to the gateway
// port the checkout orchestration depends on.
package payment

import (
	"context"

	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	paymentsapp "github.com/lemono/storefront-api/internal/domains/payments/application"
	paymentsports "github.com/lemono/storefront-api/internal/domains/payments/ports"
)

var _ ordersports.PaymentGateway = (*Gateway)(nil)

// Gateway bridges the payments service into the orders context.
type Gateway struct {
	payments *paymentsapp.Service
}

func NewGateway(payments *paymentsapp.Service) *Gateway {
	return &Gateway{payments: payments}
}

func (g *Gateway) CreateRemoteOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*ordersports.RemoteOrder, error) {
	remote, err := g.payments.CreateOrder(ctx, paymentsports.CreateOrderInput{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}
	return &ordersports.RemoteOrder{
		ID:       remote.ID,
		Amount:   remote.Amount,
		Currency: remote.Currency,
		Receipt:  remote.Receipt,
	}, nil
}

func (g *Gateway) VerifyCallback(gatewayOrderID, paymentID, signature string) bool {
	return g.payments.VerifyPayment(gatewayOrderID, paymentID, signature)
}

func (g *Gateway) KeyID() string {
	return g.payments.KeyID()
}
