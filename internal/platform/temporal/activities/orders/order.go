package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName prices and persists a checkout submission.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder prices the cart and stores the order, returning the
// persisted aggregate.
func (a *Activities) PlaceOrder(ctx context.Context, input ordersports.CheckoutInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized")
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "items", len(input.Items))
	order, err := a.service.SubmitCheckout(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderNumber", order.OrderNumber)
	return order, nil
}
