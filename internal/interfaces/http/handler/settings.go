package handler

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/interfaces/http/dto"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SettingsHandler handles the shop configuration record
type SettingsHandler struct {
	BaseHandler
	settings settings.Repository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(repo settings.Repository) *SettingsHandler {
	return &SettingsHandler{settings: repo}
}

// Get returns the current settings, normalized.
//
// GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg.Normalized())
}

// Update replaces the settings record.
//
// PUT /settings
//
// Malformed-but-repairable values (opacity scale, empty strings) are
// normalized rather than rejected; only an unparseable color fails.
func (h *SettingsHandler) Update(c *gin.Context) {
	var cfg settings.Settings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		h.Error(c, 400, dto.ErrCodeInvalidJSON, "Invalid settings payload")
		return
	}

	if cfg.PrimaryColor != "" && !hexColorPattern.MatchString(cfg.PrimaryColor) {
		h.ValidationError(c, []dto.ValidationDetail{{
			Field:   "pdf_primary_color",
			Message: "Must be a hex color like #1d5196",
		}})
		return
	}

	cfg = cfg.Normalized()
	if err := h.settings.Save(c.Request.Context(), cfg); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cfg)
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/settings")
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
	}
}
