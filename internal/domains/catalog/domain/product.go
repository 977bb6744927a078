package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName    = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be greater than zero")
	ErrEmptySizes   = errors.New("product must declare at least one size")
)

// Product is a catalog entry. The order flow treats it as a read-only
// price source; only catalog administration mutates it.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Color       string
	Sizes       []string
	Images      []string
	Category    string
	InStock     bool
	CreatedAt   time.Time
}

// NewProduct validates and constructs a product.
func NewProduct(id, name, description string, price int64, color string, sizes, images []string, category string, inStock bool) (*Product, error) {
	product := &Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Color:       strings.TrimSpace(color),
		Sizes:       sizes,
		Images:      images,
		Category:    strings.TrimSpace(category),
		InStock:     inStock,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces the catalog invariants.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if len(p.Sizes) == 0 {
		return ErrEmptySizes
	}
	return nil
}

// OffersSize reports whether the size is part of the declared set.
func (p *Product) OffersSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
