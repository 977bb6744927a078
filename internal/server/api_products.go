package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/lemono/storefront-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/lemono/storefront-api/internal/domains/catalog/ports"
)

const (
	defaultProductLimit = 12
	maxProductLimit     = 50
)

// ProductAPI wires HTTP transport with the catalog bounded context.
type ProductAPI struct {
	service catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service catalogports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Get /api/products
// List products with filters, sorting, and pagination
func (api *ProductAPI) ListProducts(c *gin.Context) {
	filter := catalogports.ListFilter{
		Category: c.Query("category"),
		Color:    c.Query("color"),
		Sort:     c.Query("sort"),
	}
	if raw := c.Query("inStock"); raw != "" {
		inStock := raw == "true"
		filter.InStock = &inStock
	}
	page, ok := parsePage(c, defaultProductLimit, maxProductLimit)
	if !ok {
		return
	}

	products, total, err := api.service.ListProducts(c.Request.Context(), filter, catalogports.Page(page))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": cataloghttpmapper.FromDomainProducts(products),
		"pagination": gin.H{
			"total":  total,
			"limit":  page.Limit,
			"offset": page.Offset,
		},
	})
}

// Get /api/products/:id
// Find product by ID
func (api *ProductAPI) GetProduct(c *gin.Context) {
	product, err := api.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(product))
}

// Post /api/products
// Add a product to the catalog
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload cataloghttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := cataloghttpmapper.ToDomainProduct("", payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.AddProduct(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cataloghttpmapper.FromDomainProduct(saved))
}

// Put /api/products/:id
// Replace an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	var payload cataloghttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	id := c.Param("id")
	product, err := cataloghttpmapper.ToDomainProduct(id, payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.UpdateProduct(c.Request.Context(), id, product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProduct(updated))
}

// Delete /api/products/:id
// Remove a product from the catalog
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	if err := api.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// pagination is a bounded limit/offset pair shared by list endpoints.
type pagination struct {
	Limit  int
	Offset int
}

func parsePage(c *gin.Context, defaultLimit, maxLimit int) (pagination, bool) {
	page := pagination{Limit: defaultLimit}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			respondProblem(c, badQueryParam("limit"))
			return pagination{}, false
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		page.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondProblem(c, badQueryParam("offset"))
			return pagination{}, false
		}
		page.Offset = offset
	}
	return page, true
}
