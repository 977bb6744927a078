package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the per-context handler sets the router mounts.
type ApiHandleFunctions struct {
	ProductAPI ProductAPI
	OrderAPI   OrderAPI
	PaymentAPI PaymentAPI
	AuthAPI    AuthAPI
	ContactAPI ContactAPI
}

// NewRouter returns a gin engine with all storefront routes mounted.
func NewRouter(handlers ApiHandleFunctions) *gin.Engine {
	router := gin.Default()
	for _, route := range getRoutes(handlers) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return router
}

func getRoutes(handlers ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/api/health", healthCheck},

		{http.MethodGet, "/api/products", handlers.ProductAPI.ListProducts},
		{http.MethodGet, "/api/products/:id", handlers.ProductAPI.GetProduct},
		{http.MethodPost, "/api/products", handlers.ProductAPI.AddProduct},
		{http.MethodPut, "/api/products/:id", handlers.ProductAPI.UpdateProduct},
		{http.MethodDelete, "/api/products/:id", handlers.ProductAPI.DeleteProduct},

		{http.MethodPost, "/api/orders", handlers.OrderAPI.CreateOrder},
		{http.MethodGet, "/api/orders", handlers.OrderAPI.ListOrders},
		{http.MethodGet, "/api/orders/track/:orderNumber", handlers.OrderAPI.TrackOrder},
		{http.MethodGet, "/api/orders/:id", handlers.OrderAPI.GetOrder},
		{http.MethodPatch, "/api/orders/:id/status", handlers.OrderAPI.UpdateOrderStatus},

		{http.MethodPost, "/api/payment/create-order", handlers.PaymentAPI.CreatePaymentOrder},
		{http.MethodPost, "/api/payment/verify", handlers.PaymentAPI.VerifyPayment},

		{http.MethodPost, "/api/auth/register", handlers.AuthAPI.Register},
		{http.MethodPost, "/api/auth/login", handlers.AuthAPI.Login},
		{http.MethodPost, "/api/auth/google", handlers.AuthAPI.GoogleLogin},
		{http.MethodPost, "/api/auth/logout", handlers.AuthAPI.Logout},
		{http.MethodGet, "/api/auth/profile/:userId", handlers.AuthAPI.GetProfile},
		{http.MethodGet, "/api/auth/orders/:userId", handlers.AuthAPI.GetUserOrders},
		{http.MethodGet, "/api/auth/favorites/:userId", handlers.AuthAPI.GetFavorites},
		{http.MethodPost, "/api/auth/favorites", handlers.AuthAPI.AddFavorite},
		{http.MethodDelete, "/api/auth/favorites/:userId/:productId", handlers.AuthAPI.RemoveFavorite},

		{http.MethodPost, "/api/contact", handlers.ContactAPI.SubmitMessage},
		{http.MethodPost, "/api/contact/newsletter", handlers.ContactAPI.Subscribe},
		{http.MethodGet, "/api/contact/messages", handlers.ContactAPI.ListMessages},
		{http.MethodPatch, "/api/contact/messages/:id/read", handlers.ContactAPI.MarkMessageRead},
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "lemonO API is running"})
}

func defaultHandler(c *gin.Context) {
	c.Status(http.StatusNotImplemented)
}
