package ports

import (
	"context"
	"errors"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber signals the generated order number collided
	// with an existing row; callers regenerate and retry.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Status domain.Status
	UserID string
}

// Page bounds a List query.
type Page struct {
	Limit  int
	Offset int
}

// Repository persists order aggregates. Create must write the order,
// its shipping address, and all line items atomically.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
	List(ctx context.Context, filter ListFilter, page Page) ([]*domain.Order, int64, error)
}
