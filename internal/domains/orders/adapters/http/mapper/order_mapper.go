package mapper

import (
	"time"

	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
)

// CartItem is one inbound cart position. No price field: unit prices
// are always resolved from the catalog on the server.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// ShippingAddress is the transport address shape.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// CheckoutRequest is the create-order payload.
type CheckoutRequest struct {
	Items           []CartItem      `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	UserID          string          `json:"userId,omitempty"`
	GuestEmail      string          `json:"guestEmail,omitempty"`
	GuestPhone      string          `json:"guestPhone,omitempty"`
}

// LineItem is an outbound order position with its captured unit price.
type LineItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Price       int64  `json:"price"`
}

// Order is the outbound order shape.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          string          `json:"userId,omitempty"`
	GuestEmail      string          `json:"guestEmail,omitempty"`
	GuestPhone      string          `json:"guestPhone,omitempty"`
	Subtotal        int64           `json:"subtotal"`
	ShippingCost    int64           `json:"shippingCost"`
	Total           int64           `json:"total"`
	Status          string          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []LineItem      `json:"items"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// StatusUpdate is the admin status-change payload.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ToCheckoutInput converts the transport payload into the use-case input.
func ToCheckoutInput(payload CheckoutRequest) ordersports.CheckoutInput {
	items := make([]ordersdomain.CartItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, ordersdomain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}
	return ordersports.CheckoutInput{
		Items: items,
		ShippingAddress: ordersdomain.ShippingAddress{
			Name:    payload.ShippingAddress.Name,
			Phone:   payload.ShippingAddress.Phone,
			Line1:   payload.ShippingAddress.Line1,
			Line2:   payload.ShippingAddress.Line2,
			City:    payload.ShippingAddress.City,
			State:   payload.ShippingAddress.State,
			Pincode: payload.ShippingAddress.Pincode,
		},
		UserID:     payload.UserID,
		GuestEmail: payload.GuestEmail,
		GuestPhone: payload.GuestPhone,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Size:        item.Size,
			Price:       item.Price,
		})
	}
	return Order{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		UserID:       order.UserID,
		GuestEmail:   order.GuestEmail,
		GuestPhone:   order.GuestPhone,
		Subtotal:     order.Subtotal,
		ShippingCost: order.ShippingCost,
		Total:        order.Total,
		Status:       string(order.Status),
		ShippingAddress: ShippingAddress{
			Name:    order.ShippingAddress.Name,
			Phone:   order.ShippingAddress.Phone,
			Line1:   order.ShippingAddress.Line1,
			Line2:   order.ShippingAddress.Line2,
			City:    order.ShippingAddress.City,
			State:   order.ShippingAddress.State,
			Pincode: order.ShippingAddress.Pincode,
		},
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

// FromDomainOrders converts a slice of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
