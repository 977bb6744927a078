package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordershttpmapper "github.com/lemono/storefront-api/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/lemono/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
)

const (
	defaultOrderLimit = 20
	maxOrderLimit     = 100
)

// OrderAPI wires HTTP transport with the orders bounded context service
// and the checkout orchestrator.
type OrderAPI struct {
	service   ordersports.Service
	workflows ordersports.CheckoutOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service, workflows ordersports.CheckoutOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /api/orders
// Submit a checkout and create a pending order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload ordershttpmapper.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.placeOrder(c.Request.Context(), ordershttpmapper.ToCheckoutInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordershttpmapper.FromDomainOrder(order))
}

func (api *OrderAPI) placeOrder(ctx context.Context, input ordersports.CheckoutInput) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.SubmitCheckout(ctx, input)
}

// Get /api/orders/track/:orderNumber
// Track an order by its public order number
func (api *OrderAPI) TrackOrder(c *gin.Context) {
	order, err := api.service.GetOrderByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrder(order))
}

// Get /api/orders/:id
// Find order by ID
func (api *OrderAPI) GetOrder(c *gin.Context) {
	order, err := api.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrder(order))
}

// Patch /api/orders/:id/status
// Update order status along the fulfillment state machine
func (api *OrderAPI) UpdateOrderStatus(c *gin.Context) {
	var payload ordershttpmapper.StatusUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	status := ordersdomain.Status(payload.Status)
	if !ordersdomain.IsValidStatus(status) {
		respondError(c, http.StatusBadRequest, ordersdomain.ErrInvalidStatus)
		return
	}
	order, err := api.service.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, ordersdomain.ErrIllegalTransition) {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrder(order))
}

// Get /api/orders
// List orders with optional status filter and pagination
func (api *OrderAPI) ListOrders(c *gin.Context) {
	filter := ordersports.ListFilter{
		Status: ordersdomain.Status(c.Query("status")),
		UserID: c.Query("userId"),
	}
	page, ok := parsePage(c, defaultOrderLimit, maxOrderLimit)
	if !ok {
		return
	}

	orders, total, err := api.service.ListOrders(c.Request.Context(), filter, ordersports.Page(page))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": ordershttpmapper.FromDomainOrders(orders),
		"pagination": gin.H{
			"total":  total,
			"limit":  page.Limit,
			"offset": page.Offset,
		},
	})
}
