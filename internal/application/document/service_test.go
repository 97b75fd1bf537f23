package document

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/media"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/domain/shared"
	"github.com/srpos/backend/internal/infrastructure/rendering"
	"github.com/srpos/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	byID map[uuid.UUID]*order.Order
}

func (s *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if o, ok := s.byID[id]; ok {
		return o, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubOrderRepo) Create(context.Context, *order.Order) error { return nil }

type stubSettingsRepo struct {
	current settings.Settings
}

func (s *stubSettingsRepo) Get(context.Context) (settings.Settings, error) {
	return s.current, nil
}

func (s *stubSettingsRepo) Save(_ context.Context, v settings.Settings) error {
	s.current = v
	return nil
}

type stubAttachmentRepo struct {
	byID map[uuid.UUID]*media.Attachment
}

func (s *stubAttachmentRepo) FindByID(_ context.Context, id uuid.UUID) (*media.Attachment, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, shared.ErrNotFound
}

func sampleOrder() *order.Order {
	return &order.Order{
		ID:            uuid.New(),
		Number:        "1042",
		Status:        order.StatusProcessing,
		Currency:      "BDT",
		CreatedAt:     time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Subtotal:      decimal.NewFromInt(1500),
		GrandTotal:    decimal.NewFromInt(1500),
		Items: []order.LineItem{{
			ID:        uuid.New(),
			Name:      "Cotton Panjabi",
			SKU:       "PNJ-01",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(750),
			Total:     decimal.NewFromInt(1500),
		}},
	}
}

func newTestService(t *testing.T, engines rendering.EngineFactory, cfg settings.Settings) (*Service, *order.Order, string) {
	t.Helper()

	o := sampleOrder()
	orders := &stubOrderRepo{byID: map[uuid.UUID]*order.Order{o.ID: o}}

	uploadDir := t.TempDir()
	attachments := &stubAttachmentRepo{byID: map[uuid.UUID]*media.Attachment{}}
	lib := storage.NewMediaLibrary(attachments, uploadDir, "http://shop.example/media", nil)

	dispatcher := &rendering.Dispatcher{
		Engines: engines,
		Fonts:   rendering.FontConfigurator{FontDir: t.TempDir()},
		TempDir: t.TempDir(),
		DocumentURL: func(orderID uuid.UUID, typ document.Type, mode document.Mode) string {
			return "/orders/" + orderID.String() + "/document?type=" + typ.String() + "&mode=" + mode.String()
		},
	}

	svc := NewService(orders, &stubSettingsRepo{current: cfg}, lib, dispatcher, uploadDir, "/assets/fonts", "en", nil)
	return svc, o, uploadDir
}

func TestService_Serve(t *testing.T) {
	t.Run("print mode serves the print page", func(t *testing.T) {
		svc, o, _ := newTestService(t, rendering.DisabledFactory{}, settings.Defaults())

		w := httptest.NewRecorder()
		err := svc.Serve(context.Background(), w, o.ID, "invoice", "print")

		require.NoError(t, err)
		body := w.Body.String()
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, body, "#1042")
		assert.Contains(t, body, "window.print")
	})

	t.Run("unknown mode falls back to the configured default", func(t *testing.T) {
		cfg := settings.Defaults()
		cfg.DefaultMode = "print"
		svc, o, _ := newTestService(t, rendering.DisabledFactory{}, cfg)

		w := httptest.NewRecorder()
		err := svc.Serve(context.Background(), w, o.ID, "invoice", "bogus")

		require.NoError(t, err)
		assert.Contains(t, w.Body.String(), "window.print")
	})

	t.Run("view mode streams a PDF", func(t *testing.T) {
		svc, o, _ := newTestService(t, rendering.GofpdfFactory{}, settings.Defaults())

		w := httptest.NewRecorder()
		err := svc.Serve(context.Background(), w, o.ID, "invoice", "view")

		require.NoError(t, err)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-1042.pdf")
	})

	t.Run("missing order is surfaced", func(t *testing.T) {
		svc, _, _ := newTestService(t, rendering.DisabledFactory{}, settings.Defaults())

		w := httptest.NewRecorder()
		err := svc.Serve(context.Background(), w, uuid.New(), "invoice", "print")

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestService_GenerateFile(t *testing.T) {
	t.Run("writes the document to a temp file", func(t *testing.T) {
		svc, o, _ := newTestService(t, rendering.GofpdfFactory{}, settings.Defaults())

		f, err := svc.GenerateFile(context.Background(), o.ID, document.TypePackingSlip)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, "packing-slip-1042.pdf", f.Name)
		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "%PDF")
	})

	t.Run("reports a missing engine", func(t *testing.T) {
		svc, o, _ := newTestService(t, rendering.DisabledFactory{}, settings.Defaults())

		_, err := svc.GenerateFile(context.Background(), o.ID, document.TypeInvoice)
		assert.ErrorIs(t, err, rendering.ErrEngineUnavailable)
	})
}

func TestService_RenderInputAssets(t *testing.T) {
	t.Run("custom font resolves from the uploads dir", func(t *testing.T) {
		cfg := settings.Defaults()
		cfg.CustomFontFile = "fonts/ShopFont.ttf"
		svc, o, uploadDir := newTestService(t, rendering.DisabledFactory{}, cfg)
		require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "fonts"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "fonts", "ShopFont.ttf"), []byte("ttf"), 0o644))

		in := svc.renderInput(context.Background(), o, cfg.Normalized(), document.TypeInvoice, document.ModePrint)

		assert.Equal(t, filepath.Join(uploadDir, "fonts", "ShopFont.ttf"), in.CustomFontPath)
		assert.Equal(t, "http://shop.example/media/fonts/ShopFont.ttf", in.Builder.Assets.CustomFontURL)
	})

	t.Run("missing font file is ignored", func(t *testing.T) {
		cfg := settings.Defaults()
		cfg.CustomFontFile = "fonts/Gone.ttf"
		svc, o, _ := newTestService(t, rendering.DisabledFactory{}, cfg)

		in := svc.renderInput(context.Background(), o, cfg.Normalized(), document.TypeInvoice, document.ModePrint)

		assert.Empty(t, in.CustomFontPath)
		assert.Empty(t, in.Builder.Assets.CustomFontURL)
	})

	t.Run("bundled fonts are linked for the print view", func(t *testing.T) {
		svc, o, _ := newTestService(t, rendering.DisabledFactory{}, settings.Defaults())

		in := svc.renderInput(context.Background(), o, settings.Defaults(), document.TypeInvoice, document.ModePrint)

		assert.Equal(t, "/assets/fonts/NotoSansBengali-Regular.ttf", in.Builder.Assets.BengaliFontRegularURL)
		assert.Equal(t, "/assets/fonts/NotoSansBengali-Bold.ttf", in.Builder.Assets.BengaliFontBoldURL)
	})
}
