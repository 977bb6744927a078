package ports

import (
	"context"
	"errors"

	"github.com/lemono/storefront-api/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Sort orders for product listings.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ListFilter narrows List results. Nil/zero fields mean "no filter".
type ListFilter struct {
	Category string
	Color    string
	InStock  *bool
	Sort     string
}

// Page bounds a List query.
type Page struct {
	Limit  int
	Offset int
}

// Repository persists catalog products.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	List(ctx context.Context, filter ListFilter, page Page) ([]*domain.Product, int64, error)
}
