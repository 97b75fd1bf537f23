package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srpos/backend/internal/infrastructure/persistence"
	"github.com/srpos/backend/internal/infrastructure/rendering"
)

// SystemHandler reports service health
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	engines rendering.EngineFactory
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, engines rendering.EngineFactory) *SystemHandler {
	return &SystemHandler{db: db, engines: engines}
}

// Health reports database and PDF engine status.
//
// GET /health
//
// An unavailable engine is reported but does not make the service
// unhealthy; print-mode documents still work without one.
func (h *SystemHandler) Health(c *gin.Context) {
	engineName := "none"
	engineAvailable := false
	if h.engines != nil {
		engineName = h.engines.Name()
		engineAvailable = h.engines.Available()
	}

	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "error",
			"engine":   gin.H{"name": engineName, "available": engineAvailable},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": "ok",
		"engine":   gin.H{"name": engineName, "available": engineAvailable},
	})
}

// Ping is a minimal liveness probe.
//
// GET /ping
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ping", h.Ping)
}
