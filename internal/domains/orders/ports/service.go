package ports

import (
	"context"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
)

// CheckoutInput is a submitted cart plus shipping details. Client-side
// prices are deliberately absent from this shape.
type CheckoutInput struct {
	Items           []domain.CartItem
	ShippingAddress domain.ShippingAddress
	UserID          string
	GuestEmail      string
	GuestPhone      string
}

// PaymentOrder describes the remote gateway order backing a checkout.
type PaymentOrder struct {
	GatewayOrderID string
	Amount         int64
	Currency       string
	Receipt        string
	KeyID          string
}

// PaymentConfirmation is the gateway callback payload for one order.
type PaymentConfirmation struct {
	OrderNumber      string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// Service exposes the order/checkout use cases to adapters.
type Service interface {
	SubmitCheckout(ctx context.Context, input CheckoutInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListFilter, page Page) ([]*domain.Order, int64, error)
	InitiatePayment(ctx context.Context, orderID string) (*PaymentOrder, error)
	ConfirmPayment(ctx context.Context, confirmation PaymentConfirmation) (*domain.Order, error)
}
