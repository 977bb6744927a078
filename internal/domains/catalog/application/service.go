package application

import (
	"context"
	"errors"

	"github.com/lemono/storefront-api/internal/domains/catalog/domain"
	"github.com/lemono/storefront-api/internal/domains/catalog/ports"
)

const defaultPageLimit = 12

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

// UpdateProduct replaces an existing product. The creation timestamp of
// the stored row is kept.
func (s *Service) UpdateProduct(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	clone := *product
	clone.ID = existing.ID
	clone.CreatedAt = existing.CreatedAt
	if err := clone.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, &clone)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByIDs resolves a batch of product references. Unknown ids are
// omitted rather than failing the batch; pricing decides what a missing
// product means.
func (s *Service) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}

func (s *Service) ListProducts(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]*domain.Product, int64, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return s.repo.List(ctx, filter, page)
}

var _ ports.Service = (*Service)(nil)
