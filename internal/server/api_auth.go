package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/lemono/storefront-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"
	ordershttpmapper "github.com/lemono/storefront-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/lemono/storefront-api/internal/domains/orders/ports"
	usershttpmapper "github.com/lemono/storefront-api/internal/domains/users/adapters/http/mapper"
	usersports "github.com/lemono/storefront-api/internal/domains/users/ports"
)

// AuthAPI wires HTTP transport with the accounts bounded context plus
// the read-side collaborators it needs for history and favorites.
type AuthAPI struct {
	users   usersports.Service
	orders  ordersports.Service
	catalog catalogports.Service
}

// NewAuthAPI creates an AuthAPI backed by the provided services.
func NewAuthAPI(users usersports.Service, orders ordersports.Service, catalog catalogports.Service) AuthAPI {
	return AuthAPI{users: users, orders: orders, catalog: catalog}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type logoutRequest struct {
	UserID string `json:"userId"`
}

type favoriteRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

// Post /api/auth/register
// Create an account with email and password
func (api *AuthAPI) Register(c *gin.Context) {
	var payload registerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	user, err := api.users.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":    usershttpmapper.FromDomainUser(user),
		"message": "Account created successfully",
	})
}

// Post /api/auth/login
// Log in with email and password
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.users.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    usershttpmapper.FromDomainUser(result.User),
		"token":   result.Token,
		"message": "Login successful",
	})
}

// Post /api/auth/google
// Log in or sign up via a Google identity
func (api *AuthAPI) GoogleLogin(c *gin.Context) {
	var payload googleLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.users.GoogleLogin(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    usershttpmapper.FromDomainUser(result.User),
		"token":   result.Token,
		"message": "Login successful",
	})
}

// Post /api/auth/logout
// End the user's active sessions
func (api *AuthAPI) Logout(c *gin.Context) {
	var payload logoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.users.Logout(c.Request.Context(), payload.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Get /api/auth/profile/:userId
// Get account profile
func (api *AuthAPI) GetProfile(c *gin.Context) {
	user, err := api.users.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usershttpmapper.FromDomainUser(user))
}

// Get /api/auth/orders/:userId
// Get the user's order history, newest first
func (api *AuthAPI) GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	orders, _, err := api.orders.ListOrders(c.Request.Context(),
		ordersports.ListFilter{UserID: userID}, ordersports.Page{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordershttpmapper.FromDomainOrders(orders))
}

// Get /api/auth/favorites/:userId
// Get the user's favorited products
func (api *AuthAPI) GetFavorites(c *gin.Context) {
	productIDs, err := api.users.ListFavorites(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	products, err := api.catalog.FindByIDs(c.Request.Context(), productIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProducts(products))
}

// Post /api/auth/favorites
// Add a product to the user's favorites
func (api *AuthAPI) AddFavorite(c *gin.Context) {
	var payload favoriteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if payload.UserID == "" || payload.ProductID == "" {
		respondError(c, http.StatusBadRequest, errors.New("userId and productId are required"))
		return
	}
	if err := api.users.AddFavorite(c.Request.Context(), payload.UserID, payload.ProductID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"userId":    payload.UserID,
		"productId": payload.ProductID,
	})
}

// Delete /api/auth/favorites/:userId/:productId
// Remove a product from the user's favorites
func (api *AuthAPI) RemoveFavorite(c *gin.Context) {
	if err := api.users.RemoveFavorite(c.Request.Context(), c.Param("userId"), c.Param("productId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
