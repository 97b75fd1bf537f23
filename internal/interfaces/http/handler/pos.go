package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	posapp "github.com/srpos/backend/internal/application/pos"
	"github.com/srpos/backend/internal/interfaces/http/middleware"
)

// POSHandler handles the register screen endpoints
type POSHandler struct {
	BaseHandler
	pos *posapp.Service
	// productImageURL resolves a product's thumbnail for the register grid.
	// Nil leaves image URLs empty.
	productImageURL func(uuid.UUID) string
}

// NewPOSHandler creates a new POSHandler
func NewPOSHandler(pos *posapp.Service, productImageURL func(uuid.UUID) string) *POSHandler {
	return &POSHandler{pos: pos, productImageURL: productImageURL}
}

// CreateOrder checks out a register cart.
//
// POST /pos/orders
func (h *POSHandler) CreateOrder(c *gin.Context) {
	var req posapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.pos.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// SearchProducts returns active catalog entries matching the query.
//
// GET /pos/products?q=panjabi&limit=20
func (h *POSHandler) SearchProducts(c *gin.Context) {
	var req posapp.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	products, err := h.pos.SearchProducts(c.Request.Context(), req, h.productImageURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// SearchCustomers returns customers matching the query.
//
// GET /pos/customers?q=rahim
func (h *POSHandler) SearchCustomers(c *gin.Context) {
	var req posapp.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customers, err := h.pos.SearchCustomers(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customers)
}

// RegisterRoutes registers POS routes
func (h *POSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pos := rg.Group("/pos")
	{
		pos.POST("/orders", h.CreateOrder)
		pos.GET("/products", h.SearchProducts)
		pos.GET("/customers", h.SearchCustomers)
	}
}
