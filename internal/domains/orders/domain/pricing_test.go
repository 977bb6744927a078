package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func catalogFixture() []CatalogProduct {
	return []CatalogProduct{
		{ID: "p-tee", Name: "Citrus Tee", Price: 1299, Sizes: []string{"S", "M", "L"}, InStock: true},
		{ID: "p-cap", Name: "Lemon Cap", Price: 500, Sizes: []string{"M"}, InStock: true},
		{ID: "p-sold", Name: "Sold Out Hoodie", Price: 2199, Sizes: []string{"L"}, InStock: false},
	}
}

func TestPriceCart_FreeShippingAboveThreshold(t *testing.T) {
	quote, err := PriceCart(
		[]CartItem{{ProductID: "p-tee", Quantity: 2, Size: "M"}},
		catalogFixture(),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2598), quote.Subtotal)
	require.Equal(t, int64(0), quote.ShippingCost)
	require.Equal(t, int64(2598), quote.Total)
	require.Len(t, quote.Lines, 1)
	require.Equal(t, int64(1299), quote.Lines[0].UnitPrice)
	require.Equal(t, "Citrus Tee", quote.Lines[0].ProductName)
}

func TestPriceCart_FlatFeeBelowThreshold(t *testing.T) {
	quote, err := PriceCart(
		[]CartItem{{ProductID: "p-cap", Quantity: 1, Size: "M"}},
		catalogFixture(),
	)
	require.NoError(t, err)
	require.Equal(t, int64(500), quote.Subtotal)
	require.Equal(t, FlatShippingFee, quote.ShippingCost)
	require.Equal(t, int64(599), quote.Total)
}

func TestPriceCart_ThresholdBoundary(t *testing.T) {
	// Subtotal exactly at the threshold ships free.
	quote, err := PriceCart(
		[]CartItem{{ProductID: "p-tee", Quantity: 1, Size: "S"}},
		catalogFixture(),
	)
	require.NoError(t, err)
	require.Equal(t, int64(1299), quote.Subtotal)
	require.Equal(t, int64(0), quote.ShippingCost)
}

func TestPriceCart_UnknownProduct(t *testing.T) {
	_, err := PriceCart(
		[]CartItem{{ProductID: "p-ghost", Quantity: 1, Size: "M"}},
		catalogFixture(),
	)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.Contains(t, err.Error(), "p-ghost")
}

func TestPriceCart_OutOfStock(t *testing.T) {
	_, err := PriceCart(
		[]CartItem{{ProductID: "p-sold", Quantity: 1, Size: "L"}},
		catalogFixture(),
	)
	require.ErrorIs(t, err, ErrOutOfStock)
	require.Contains(t, err.Error(), "Sold Out Hoodie")
}

func TestPriceCart_SizeNotOffered(t *testing.T) {
	_, err := PriceCart(
		[]CartItem{{ProductID: "p-cap", Quantity: 1, Size: "XL"}},
		catalogFixture(),
	)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestPriceCart_QuantityBelowOne(t *testing.T) {
	_, err := PriceCart(
		[]CartItem{{ProductID: "p-tee", Quantity: 0, Size: "M"}},
		catalogFixture(),
	)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestPriceCart_EmptyCart(t *testing.T) {
	_, err := PriceCart(nil, catalogFixture())
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestQuote_LineItemsCaptureUnitPrices(t *testing.T) {
	quote, err := PriceCart(
		[]CartItem{
			{ProductID: "p-tee", Quantity: 1, Size: "M"},
			{ProductID: "p-cap", Quantity: 3, Size: "M"},
		},
		catalogFixture(),
	)
	require.NoError(t, err)

	items := quote.LineItems()
	require.Len(t, items, 2)
	require.Equal(t, int64(1299), items[0].Price)
	require.Equal(t, int64(500), items[1].Price)
	require.Equal(t, int64(1500), items[1].Subtotal())
}
