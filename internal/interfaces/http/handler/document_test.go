package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	documentapp "github.com/srpos/backend/internal/application/document"
	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/media"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/srpos/backend/internal/infrastructure/rendering"
	"github.com/srpos/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
)

type stubAttachmentRepo struct{}

func (stubAttachmentRepo) FindByID(context.Context, uuid.UUID) (*media.Attachment, error) {
	return nil, shared.ErrNotFound
}

func newDocumentRouter(t *testing.T, engines rendering.EngineFactory) (*gin.Engine, *order.Order) {
	t.Helper()

	o := &order.Order{
		ID:         uuid.New(),
		Number:     "1042",
		Status:     order.StatusProcessing,
		Currency:   "BDT",
		CreatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Subtotal:   decimal.NewFromInt(1500),
		GrandTotal: decimal.NewFromInt(1500),
		Items: []order.LineItem{{
			ID:        uuid.New(),
			Name:      "Cotton Panjabi",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(750),
			Total:     decimal.NewFromInt(1500),
		}},
	}
	orders := &stubOrderRepo{orders: map[uuid.UUID]*order.Order{o.ID: o}}

	lib := storage.NewMediaLibrary(stubAttachmentRepo{}, t.TempDir(), "http://shop.example/media", nil)
	dispatcher := &rendering.Dispatcher{
		Engines: engines,
		Fonts:   rendering.FontConfigurator{FontDir: t.TempDir()},
		TempDir: t.TempDir(),
		DocumentURL: func(orderID uuid.UUID, typ document.Type, mode document.Mode) string {
			return "/api/v1/orders/" + orderID.String() + "/document?type=" + typ.String() + "&mode=" + mode.String()
		},
	}
	svc := documentapp.NewService(
		orders,
		&stubSettingsRepo{current: settings.Defaults()},
		lib,
		dispatcher,
		t.TempDir(),
		"/assets/fonts",
		"en",
		nil,
	)

	router := gin.New()
	api := router.Group("/api/v1")
	NewDocumentHandler(svc).RegisterRoutes(api)
	return router, o
}

func TestDocumentHandler_Serve(t *testing.T) {
	t.Run("serves the print page", func(t *testing.T) {
		router, o := newDocumentRouter(t, rendering.DisabledFactory{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+o.ID.String()+"/document?type=invoice&mode=print", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "#1042")
	})

	t.Run("streams a PDF in view mode", func(t *testing.T) {
		router, o := newDocumentRouter(t, rendering.GofpdfFactory{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+o.ID.String()+"/document?type=invoice&mode=view", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-1042.pdf")
	})

	t.Run("rejects a malformed order id", func(t *testing.T) {
		router, _ := newDocumentRouter(t, rendering.DisabledFactory{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid/document", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_BAD_REQUEST")
	})

	t.Run("returns 404 for a missing order", func(t *testing.T) {
		router, _ := newDocumentRouter(t, rendering.DisabledFactory{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+uuid.NewString()+"/document", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})
}
