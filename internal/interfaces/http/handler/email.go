package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	emailapp "github.com/srpos/backend/internal/application/email"
	"go.uber.org/zap"
)

// EmailHandler exposes the email attachment decision to the host's mailer
type EmailHandler struct {
	BaseHandler
	attachments *emailapp.Service
	logger      *zap.Logger
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(attachments *emailapp.Service, logger *zap.Logger) *EmailHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailHandler{attachments: attachments, logger: logger}
}

// Attachment streams the document that should accompany the given host
// email, or 204 when the settings produce none.
//
// GET /emails/:email_id/orders/:id/attachment
//
// The mailer calls this while composing an order email. Attachments being
// optional by design, every skip condition (disabled, non-target email,
// no PDF engine) answers 204 rather than an error.
func (h *EmailHandler) Attachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	set, err := h.attachments.Attachments(c.Request.Context(), c.Param("email_id"), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer func() {
		if err := set.Close(); err != nil {
			h.logger.Warn("failed to clean up attachment files", zap.Error(err))
		}
	}()

	paths := set.Paths()
	if len(paths) == 0 {
		h.NoContent(c)
		return
	}

	c.FileAttachment(paths[0], set.Names()[0])
}

// RegisterRoutes registers email routes
func (h *EmailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	emails := rg.Group("/emails")
	{
		emails.GET("/:email_id/orders/:id/attachment", h.Attachment)
	}
}
