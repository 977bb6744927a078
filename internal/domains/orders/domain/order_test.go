package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validAddress() ShippingAddress {
	return ShippingAddress{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Line1:   "14 Lake View Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func validQuote() Quote {
	return Quote{Subtotal: 2598, ShippingCost: 0, Total: 2598}
}

func validItems() []LineItem {
	return []LineItem{
		{ProductID: "p-tee", ProductName: "Citrus Tee", Quantity: 2, Size: "M", Price: 1299},
	}
}

func TestNewOrder_StartsPending(t *testing.T) {
	order, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), validItems())
	require.NoError(t, err)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, int64(2598), order.Total)
	require.Equal(t, "LO-ABC123-XY12", order.OrderNumber)
}

func TestNewOrder_RejectsEmptyItems(t *testing.T) {
	_, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), nil)
	require.ErrorIs(t, err, ErrEmptyItems)
}

func TestNewOrder_RejectsIncompleteAddress(t *testing.T) {
	address := validAddress()
	address.Pincode = "  "
	_, err := NewOrder("LO-ABC123-XY12", validQuote(), address, validItems())
	require.ErrorIs(t, err, ErrIncompleteAddress)
}

func TestValidate_TotalMustEqualSubtotalPlusShipping(t *testing.T) {
	order, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), validItems())
	require.NoError(t, err)

	order.Total = order.Subtotal + order.ShippingCost + 1
	require.Error(t, order.Validate())
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to Status
		legal    bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusConfirmed, StatusProcessing, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.legal, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionTo_RejectsIllegalJump(t *testing.T) {
	order, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), validItems())
	require.NoError(t, err)

	err = order.TransitionTo(StatusDelivered)
	require.ErrorIs(t, err, ErrIllegalTransition)
	require.Equal(t, StatusPending, order.Status)
}

func TestTransitionTo_RejectsUnknownStatus(t *testing.T) {
	order, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), validItems())
	require.NoError(t, err)

	err = order.TransitionTo(Status("RETURNED"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransitionTo_WalksFullLifecycle(t *testing.T) {
	order, err := NewOrder("LO-ABC123-XY12", validQuote(), validAddress(), validItems())
	require.NoError(t, err)

	for _, next := range []Status{StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered} {
		require.NoError(t, order.TransitionTo(next))
	}
	require.True(t, IsTerminal(order.Status))
}

func TestIsValidStatus(t *testing.T) {
	require.True(t, IsValidStatus(StatusProcessing))
	require.False(t, IsValidStatus(Status("pending")))
	require.False(t, IsValidStatus(Status("")))
}
