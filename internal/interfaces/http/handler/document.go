package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	documentapp "github.com/srpos/backend/internal/application/document"
)

// DocumentHandler serves rendered order documents
type DocumentHandler struct {
	BaseHandler
	documents *documentapp.Service
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documents *documentapp.Service) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Serve streams the invoice or packing slip for an order.
//
// GET /orders/:id/document?type=invoice|packing&mode=print|view|download
//
// Unknown types fall back to the invoice and unknown modes to the shop's
// configured default, so stale links keep working after a settings change.
func (h *DocumentHandler) Serve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	err = h.documents.Serve(c.Request.Context(), c.Writer, id, c.Query("type"), c.Query("mode"))
	if err != nil {
		h.HandleError(c, err)
	}
}

// RegisterRoutes registers document routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("/:id/document", h.Serve)
	}
}
