package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lemono/storefront-api/internal/domains/catalog/adapters/memory"
	"github.com/lemono/storefront-api/internal/domains/catalog/domain"
	"github.com/lemono/storefront-api/internal/domains/catalog/ports"
)

func seedCatalog(t *testing.T, svc *Service) {
	t.Helper()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range []*domain.Product{
		{Name: "Citrus Tee", Price: 1299, Color: "yellow", Sizes: []string{"S", "M", "L"}, Category: "tees", InStock: true},
		{Name: "Lemon Cap", Price: 500, Color: "yellow", Sizes: []string{"M"}, Category: "accessories", InStock: true},
		{Name: "Zest Hoodie", Price: 2199, Color: "green", Sizes: []string{"L"}, Category: "hoodies", InStock: false},
	} {
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := svc.AddProduct(context.Background(), p)
		require.NoError(t, err)
	}
}

func TestAddProduct_Validates(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.AddProduct(context.Background(), &domain.Product{Name: " ", Price: 100, Sizes: []string{"M"}})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.AddProduct(context.Background(), &domain.Product{Name: "Tee", Price: 0, Sizes: []string{"M"}})
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = svc.AddProduct(context.Background(), &domain.Product{Name: "Tee", Price: 100})
	require.ErrorIs(t, err, domain.ErrEmptySizes)
}

func TestAddProduct_AssignsID(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.AddProduct(context.Background(), &domain.Product{
		Name: "Citrus Tee", Price: 1299, Sizes: []string{"M"}, InStock: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	fetched, err := svc.GetProduct(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "Citrus Tee", fetched.Name)
}

func TestUpdateProduct_ReplacesAndKeepsCreatedAt(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.AddProduct(context.Background(), &domain.Product{
		Name: "Citrus Tee", Price: 1299, Sizes: []string{"M"}, Category: "tees", InStock: true,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), saved.ID, &domain.Product{
		Name: "Citrus Tee v2", Price: 1499, Sizes: []string{"M", "L"}, Category: "tees", InStock: false,
	})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, "Citrus Tee v2", updated.Name)
	require.Equal(t, int64(1499), updated.Price)
	require.False(t, updated.InStock)
	require.Equal(t, saved.CreatedAt, updated.CreatedAt)

	fetched, err := svc.GetProduct(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, "Citrus Tee v2", fetched.Name)
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.UpdateProduct(context.Background(), "missing", &domain.Product{
		Name: "Tee", Price: 100, Sizes: []string{"M"},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateProduct_Validates(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.AddProduct(context.Background(), &domain.Product{
		Name: "Citrus Tee", Price: 1299, Sizes: []string{"M"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), saved.ID, &domain.Product{Name: "Tee", Price: 0, Sizes: []string{"M"}})
	require.ErrorIs(t, err, ErrInvalidInput)

	unchanged, err := svc.GetProduct(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1299), unchanged.Price)
}

func TestDeleteProduct_Removes(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.AddProduct(context.Background(), &domain.Product{
		Name: "Citrus Tee", Price: 1299, Sizes: []string{"M"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), saved.ID))

	_, err = svc.GetProduct(context.Background(), saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteProduct_Unknown(t *testing.T) {
	svc := NewService(memory.NewRepository())

	require.ErrorIs(t, svc.DeleteProduct(context.Background(), "missing"), ports.ErrNotFound)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.GetProduct(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestFindByIDs_OmitsUnknown(t *testing.T) {
	svc := NewService(memory.NewRepository())
	seedCatalog(t, svc)

	all, _, err := svc.ListProducts(context.Background(), ports.ListFilter{}, ports.Page{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	found, err := svc.FindByIDs(context.Background(), []string{all[0].ID, "missing"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	none, err := svc.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListProducts_FiltersByCategoryAndStock(t *testing.T) {
	svc := NewService(memory.NewRepository())
	seedCatalog(t, svc)

	tees, total, err := svc.ListProducts(context.Background(), ports.ListFilter{Category: "tees"}, ports.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Citrus Tee", tees[0].Name)

	inStock := true
	available, total, err := svc.ListProducts(context.Background(), ports.ListFilter{InStock: &inStock}, ports.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, p := range available {
		require.True(t, p.InStock)
	}
}

func TestListProducts_SortOrders(t *testing.T) {
	svc := NewService(memory.NewRepository())
	seedCatalog(t, svc)

	asc, _, err := svc.ListProducts(context.Background(), ports.ListFilter{Sort: ports.SortPriceAsc}, ports.Page{})
	require.NoError(t, err)
	require.Equal(t, int64(500), asc[0].Price)
	require.Equal(t, int64(2199), asc[2].Price)

	desc, _, err := svc.ListProducts(context.Background(), ports.ListFilter{Sort: ports.SortPriceDesc}, ports.Page{})
	require.NoError(t, err)
	require.Equal(t, int64(2199), desc[0].Price)

	newest, _, err := svc.ListProducts(context.Background(), ports.ListFilter{}, ports.Page{})
	require.NoError(t, err)
	require.Equal(t, "Zest Hoodie", newest[0].Name)
}

func TestListProducts_DefaultsPageLimit(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo)
	base := time.Now()
	for i := 0; i < 15; i++ {
		_, err := repo.Save(context.Background(), &domain.Product{
			Name:      "Tee",
			Price:     100,
			Sizes:     []string{"M"},
			InStock:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	page, total, err := svc.ListProducts(context.Background(), ports.ListFilter{}, ports.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 15, total)
	require.Len(t, page, defaultPageLimit)

	rest, _, err := svc.ListProducts(context.Background(), ports.ListFilter{}, ports.Page{Limit: 10, Offset: 12})
	require.NoError(t, err)
	require.Len(t, rest, 3)
}
