package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordershttpmapper "github.com/lemono/storefront-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	paymentsapp "github.com/lemono/storefront-api/internal/domains/payments/application"
)

// PaymentAPI wires HTTP transport with the payment gateway and the
// order confirmation flow.
type PaymentAPI struct {
	payments *paymentsapp.Service
	orders   ordersports.Service
}

// NewPaymentAPI creates a PaymentAPI backed by the provided services.
func NewPaymentAPI(payments *paymentsapp.Service, orders ordersports.Service) PaymentAPI {
	return PaymentAPI{payments: payments, orders: orders}
}

type createPaymentOrderRequest struct {
	// OrderID references an existing order; when set, the charged
	// amount comes from the stored order total, not the client.
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type verifyPaymentRequest struct {
	OrderNumber       string `json:"orderNumber"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPayment   string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// Post /api/payment/create-order
// Create a gateway order for checkout payment
func (api *PaymentAPI) CreatePaymentOrder(c *gin.Context) {
	var payload createPaymentOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if payload.OrderID != "" {
		order, err := api.orders.InitiatePayment(c.Request.Context(), payload.OrderID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order": gin.H{
				"id":       order.GatewayOrderID,
				"amount":   order.Amount,
				"currency": order.Currency,
				"receipt":  order.Receipt,
			},
			"key_id": order.KeyID,
		})
		return
	}

	if payload.Amount <= 0 {
		respondError(c, http.StatusBadRequest, errors.New("amount must be a positive number"))
		return
	}
	remote, err := api.payments.CreateDecimalOrder(c.Request.Context(), payload.Amount, payload.Currency, payload.Receipt)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order": gin.H{
			"id":       remote.ID,
			"amount":   remote.Amount,
			"currency": remote.Currency,
			"receipt":  remote.Receipt,
		},
		"key_id": api.payments.KeyID(),
	})
}

// Post /api/payment/verify
// Verify a gateway callback signature and confirm the order
func (api *PaymentAPI) VerifyPayment(c *gin.Context) {
	var payload verifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if payload.RazorpayOrderID == "" || payload.RazorpayPayment == "" || payload.RazorpaySignature == "" {
		respondError(c, http.StatusBadRequest, errors.New("razorpay_order_id, razorpay_payment_id and razorpay_signature are required"))
		return
	}

	// Without an order number only the signature is checked; with one,
	// a valid signature also confirms the order.
	if payload.OrderNumber == "" {
		if !api.payments.VerifyPayment(payload.RazorpayOrderID, payload.RazorpayPayment, payload.RazorpaySignature) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Payment verification failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Payment verified successfully",
			"payment_id": payload.RazorpayPayment,
		})
		return
	}

	order, err := api.orders.ConfirmPayment(c.Request.Context(), ordersports.PaymentConfirmation{
		OrderNumber:      payload.OrderNumber,
		GatewayOrderID:   payload.RazorpayOrderID,
		GatewayPaymentID: payload.RazorpayPayment,
		Signature:        payload.RazorpaySignature,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment verified successfully",
		"payment_id": payload.RazorpayPayment,
		"order":      ordershttpmapper.FromDomainOrder(order),
	})
}
