// Package catalog adapts the catalog bounded context into the narrow
// read-only view the pricing step consumes.
package catalog

import (
	"context"

	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"
	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
)

var _ ordersports.ProductFinder = (*Finder)(nil)

// Finder resolves cart product references through the catalog service.
type Finder struct {
	catalog catalogports.Service
}

func NewFinder(catalog catalogports.Service) *Finder {
	return &Finder{catalog: catalog}
}

// FindByIDs projects catalog products onto the pricing view. Unknown
// ids are simply absent from the result; pricing reports them as
// not-found per line.
func (f *Finder) FindByIDs(ctx context.Context, ids []string) ([]ordersdomain.CatalogProduct, error) {
	products, err := f.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	view := make([]ordersdomain.CatalogProduct, 0, len(products))
	for _, p := range products {
		view = append(view, ordersdomain.CatalogProduct{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			Sizes:   p.Sizes,
			InStock: p.InStock,
		})
	}
	return view, nil
}
