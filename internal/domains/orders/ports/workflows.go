package ports

import (
	"context"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
)

// CheckoutOrchestrator abstracts how a checkout submission is executed:
// inline in-process or as a durable workflow.
type CheckoutOrchestrator interface {
	PlaceOrder(ctx context.Context, input CheckoutInput) (*domain.Order, error)
}
