package mapper

import (
	"time"

	catalogdomain "github.com/lemono/storefront-api/internal/domains/catalog/domain"
)

// Product is the transport-layer product shape.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Color       string    `json:"color"`
	Sizes       []string  `json:"sizes"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MutationProduct is the inbound shape for create and update requests.
// InStock defaults to true when omitted.
type MutationProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Color       string   `json:"color"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// ToDomainProduct converts a mutation payload into the catalog domain model.
func ToDomainProduct(id string, payload MutationProduct) (*catalogdomain.Product, error) {
	inStock := true
	if payload.InStock != nil {
		inStock = *payload.InStock
	}
	return catalogdomain.NewProduct(
		id,
		payload.Name,
		payload.Description,
		payload.Price,
		payload.Color,
		payload.Sizes,
		payload.Images,
		payload.Category,
		inStock,
	)
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Color:       product.Color,
		Sizes:       product.Sizes,
		Images:      product.Images,
		Category:    product.Category,
		InStock:     product.InStock,
		CreatedAt:   product.CreatedAt,
	}
}

// FromDomainProducts converts a slice of domain products.
func FromDomainProducts(products []*catalogdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
