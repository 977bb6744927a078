package domain

import (
	"errors"
	"fmt"
)

const (
	// FreeShippingThreshold is the subtotal (whole rupees) at which
	// shipping becomes free.
	FreeShippingThreshold int64 = 999
	// FlatShippingFee applies below the free-shipping threshold.
	FlatShippingFee int64 = 99
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// CartItem is the client-submitted shape: a product reference, quantity,
// and size. Any price the client attaches to its payload never reaches
// this type; prices come exclusively from the catalog.
type CartItem struct {
	ProductID string
	Quantity  int
	Size      string
}

// CatalogProduct is the slice of catalog data pricing needs.
type CatalogProduct struct {
	ID      string
	Name    string
	Price   int64
	Sizes   []string
	InStock bool
}

// PricedLine is one cart line with the catalog-resolved unit price.
type PricedLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	Size        string
	UnitPrice   int64
	Subtotal    int64
}

// Quote is a server-side computed price breakdown for a cart.
type Quote struct {
	Lines        []PricedLine
	Subtotal     int64
	ShippingCost int64
	Total        int64
}

// PriceCart resolves every cart line against the catalog and computes
// the order totals. It fails on the first unknown or out-of-stock
// product, and on a size the product does not offer.
func PriceCart(items []CartItem, products []CatalogProduct) (*Quote, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	byID := make(map[string]CatalogProduct, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	quote := &Quote{Lines: make([]PricedLine, 0, len(items))}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
		}
		if !product.InStock {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
		}
		if !offersSize(product.Sizes, item.Size) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSize, item.Size)
		}
		line := PricedLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Size:        item.Size,
			UnitPrice:   product.Price,
			Subtotal:    product.Price * int64(item.Quantity),
		}
		quote.Lines = append(quote.Lines, line)
		quote.Subtotal += line.Subtotal
	}

	if quote.Subtotal < FreeShippingThreshold {
		quote.ShippingCost = FlatShippingFee
	}
	quote.Total = quote.Subtotal + quote.ShippingCost
	return quote, nil
}

// LineItems converts the quote into order line items carrying the
// captured unit prices.
func (q *Quote) LineItems() []LineItem {
	items := make([]LineItem, 0, len(q.Lines))
	for _, line := range q.Lines {
		items = append(items, LineItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Size:        line.Size,
			Price:       line.UnitPrice,
		})
	}
	return items
}

func offersSize(sizes []string, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
