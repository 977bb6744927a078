package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

var (
	ErrInvalidStatus     = errors.New("order status is invalid")
	ErrIllegalTransition = errors.New("illegal order status transition")
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be at least one")
	ErrInvalidSize       = errors.New("item size is not offered for this product")
	ErrIncompleteAddress = errors.New("shipping address is incomplete")
)

// transitions is the closed set of legal forward moves. CANCELLED is a
// terminal side branch reachable from every non-terminal state.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// IsValidStatus reports whether the value belongs to the status enum.
func IsValidStatus(status Status) bool {
	_, ok := transitions[status]
	return ok
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(status Status) bool {
	targets, ok := transitions[status]
	return ok && len(targets) == 0
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, target := range transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// LineItem is a purchased product position. Price is the unit price in
// whole rupees, captured from the catalog at order time and never
// recomputed afterwards.
type LineItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Size        string
	Price       int64
}

// Subtotal is the line contribution to the order subtotal.
func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// ShippingAddress is owned by exactly one order and written with it.
type ShippingAddress struct {
	Name    string
	Phone   string
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
}

// Validate checks the required address fields.
func (a ShippingAddress) Validate() error {
	for _, field := range []string{a.Name, a.Phone, a.Line1, a.City, a.State, a.Pincode} {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteAddress
		}
	}
	return nil
}

// Order models the purchase aggregate: totals, status, shipping address,
// and line items as one consistent unit.
type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	GuestEmail      string
	GuestPhone      string
	Subtotal        int64
	ShippingCost    int64
	Total           int64
	Status          Status
	ShippingAddress ShippingAddress
	Items           []LineItem
	CreatedAt       time.Time
}

// NewOrder assembles a pending order from a priced quote and validates it.
func NewOrder(orderNumber string, quote Quote, address ShippingAddress, items []LineItem) (*Order, error) {
	order := &Order{
		OrderNumber:     orderNumber,
		Subtotal:        quote.Subtotal,
		ShippingCost:    quote.ShippingCost,
		Total:           quote.Total,
		Status:          StatusPending,
		ShippingAddress: address,
		Items:           items,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	if err := o.ShippingAddress.Validate(); err != nil {
		return err
	}
	if !IsValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	if o.Total != o.Subtotal+o.ShippingCost {
		return errors.New("order total does not equal subtotal plus shipping")
	}
	return nil
}

// TransitionTo moves the order along the state machine, rejecting
// illegal jumps such as DELIVERED back to PENDING.
func (o *Order) TransitionTo(status Status) error {
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}
	if !CanTransition(o.Status, status) {
		return ErrIllegalTransition
	}
	o.Status = status
	return nil
}
