package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
	"github.com/lemono/storefront-api/internal/domains/orders/ports"
)

// maxOrderNumberAttempts bounds regeneration after a uniqueness conflict.
const maxOrderNumberAttempts = 3

// paymentCurrency is the only currency the store charges in.
const paymentCurrency = "INR"

// Service orchestrates the checkout and payment use cases: pricing from
// trusted catalog data, atomic order persistence, and the payment
// confirmation transition.
type Service struct {
	repo    ports.Repository
	catalog ports.ProductFinder
	gateway ports.PaymentGateway
	now     func() time.Time
}

// NewService wires the orders service with its collaborators. The
// gateway may be nil when payments are not configured; payment
// operations then fail with the gateway's configuration error.
func NewService(repo ports.Repository, catalog ports.ProductFinder, gateway ports.PaymentGateway) *Service {
	return &Service{repo: repo, catalog: catalog, gateway: gateway, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// SubmitCheckout prices the cart against the catalog, never trusting any
// client-side price, and persists the order atomically in PENDING state.
// Any pricing failure aborts with no side effects.
func (s *Service) SubmitCheckout(ctx context.Context, input ports.CheckoutInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, mapError(domain.ErrEmptyItems)
	}
	ids := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	quote, err := domain.PriceCart(input.Items, products)
	if err != nil {
		return nil, mapError(err)
	}

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		order, err := domain.NewOrder(domain.NewOrderNumber(s.now()), *quote, input.ShippingAddress, quote.LineItems())
		if err != nil {
			return nil, mapError(err)
		}
		order.UserID = strings.TrimSpace(input.UserID)
		order.GuestEmail = strings.TrimSpace(input.GuestEmail)
		order.GuestPhone = strings.TrimSpace(input.GuestPhone)

		saved, err := s.repo.Create(ctx, order)
		if errors.Is(err, ports.ErrDuplicateOrderNumber) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return saved, nil
	}
	return nil, ErrOrderNumberExhausted
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

// UpdateOrderStatus applies a transition after checking it against the
// state machine; illegal moves are rejected without touching the row.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(status); err != nil {
		return nil, mapError(err)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) ListOrders(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]*domain.Order, int64, error) {
	if filter.Status != "" && !domain.IsValidStatus(filter.Status) {
		return nil, 0, mapError(domain.ErrInvalidStatus)
	}
	return s.repo.List(ctx, filter, page)
}

// InitiatePayment creates the remote gateway order for an existing
// order. The charged amount is derived from the order's own stored
// total, never from the caller.
func (s *Service) InitiatePayment(ctx context.Context, orderID string) (*ports.PaymentOrder, error) {
	if s.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Totals are stored in major-unit integers; the gateway charges in
	// minor units, so the conversion is an exact integer multiply.
	remote, err := s.gateway.CreateRemoteOrder(ctx, order.Total*100, paymentCurrency, order.OrderNumber)
	if err != nil {
		return nil, err
	}
	return &ports.PaymentOrder{
		GatewayOrderID: remote.ID,
		Amount:         remote.Amount,
		Currency:       remote.Currency,
		Receipt:        remote.Receipt,
		KeyID:          s.gateway.KeyID(),
	}, nil
}

// ConfirmPayment verifies the gateway callback signature and, when
// authentic, transitions the order PENDING -> CONFIRMED. Re-confirming
// an already CONFIRMED order is a no-op so replayed callbacks cannot
// double-fulfill. A failed verification leaves the order untouched.
func (s *Service) ConfirmPayment(ctx context.Context, confirmation ports.PaymentConfirmation) (*domain.Order, error) {
	if s.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	if !s.gateway.VerifyCallback(confirmation.GatewayOrderID, confirmation.GatewayPaymentID, confirmation.Signature) {
		return nil, ErrSignatureMismatch
	}
	order, err := s.repo.GetByNumber(ctx, confirmation.OrderNumber)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusConfirmed {
		return order, nil
	}
	if err := order.TransitionTo(domain.StatusConfirmed); err != nil {
		return nil, mapError(err)
	}
	return s.repo.UpdateStatus(ctx, order.ID, domain.StatusConfirmed)
}

var _ ports.Service = (*Service)(nil)
