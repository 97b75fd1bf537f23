package document

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/order"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/infrastructure/rendering"
	"github.com/srpos/backend/internal/infrastructure/storage"
)

// Service produces order documents. It resolves the order and the shop
// settings, binds media assets, and hands the render to the dispatcher.
type Service struct {
	orders     order.Repository
	settings   settings.Repository
	media      *storage.MediaLibrary
	dispatcher *rendering.Dispatcher
	// uploadDir resolves the shop's custom font file.
	uploadDir string
	// fontBaseURL is the public prefix the bundled fonts are served under.
	fontBaseURL string
	locale      string
	logger      *zap.Logger
}

// NewService creates a document Service
func NewService(
	orders order.Repository,
	settingsRepo settings.Repository,
	media *storage.MediaLibrary,
	dispatcher *rendering.Dispatcher,
	uploadDir string,
	fontBaseURL string,
	locale string,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orders:      orders,
		settings:    settingsRepo,
		media:       media,
		dispatcher:  dispatcher,
		uploadDir:   uploadDir,
		fontBaseURL: fontBaseURL,
		locale:      locale,
		logger:      logger,
	}
}

// Serve writes the requested document to the response. typeQ and modeQ are
// the raw request values; unknown types fall back to the invoice and unknown
// modes to the configured default delivery mode. A missing order is the only
// error surfaced to the caller.
func (s *Service) Serve(ctx context.Context, w http.ResponseWriter, orderID uuid.UUID, typeQ, modeQ string) error {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	cfg = cfg.Normalized()

	mode := document.Mode(modeQ)
	if !mode.IsValid() {
		mode = document.Mode(cfg.DefaultMode)
		if !mode.IsValid() {
			mode = document.ModePrint
		}
	}

	in := s.renderInput(ctx, o, cfg, document.ParseType(typeQ), mode)
	return s.dispatcher.Dispatch(w, in)
}

// GenerateFile renders a document to a temp file for use as an email
// attachment. The caller owns the returned handle; Close removes the file.
// Returns rendering.ErrEngineUnavailable when no PDF engine is configured.
func (s *Service) GenerateFile(ctx context.Context, orderID uuid.UUID, typ document.Type) (*rendering.GeneratedFile, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	cfg = cfg.Normalized()

	in := s.renderInput(ctx, o, cfg, typ, document.ModeDownload)
	return s.dispatcher.GenerateFile(in)
}

// renderInput binds the order, settings and resolved media into one render.
func (s *Service) renderInput(ctx context.Context, o *order.Order, cfg settings.Settings, typ document.Type, mode document.Mode) rendering.RenderInput {
	assets := rendering.Assets{}

	if cfg.LogoID != uuid.Nil {
		if u, err := s.media.URL(ctx, cfg.LogoID, "medium"); err == nil {
			assets.LogoURL = u
		}
	}
	if cfg.WatermarkID != uuid.Nil {
		// the print view embeds the image so the watermark survives
		// printing from a file:// save of the page
		assets.WatermarkSrc = s.media.DataURI(ctx, cfg.WatermarkID)
		if assets.WatermarkSrc == "" {
			if u, err := s.media.URL(ctx, cfg.WatermarkID, ""); err == nil {
				assets.WatermarkSrc = u
			}
		}
	}
	if cfg.ShowImage {
		assets.ItemImageURL = func(id uuid.UUID) string {
			u, err := s.media.URL(ctx, id, "thumbnail")
			if err != nil {
				return ""
			}
			return u
		}
	}

	bnRegular, bnBold := rendering.BengaliFontFiles()
	assets.BengaliFontRegularURL = s.fontBaseURL + "/" + bnRegular
	assets.BengaliFontBoldURL = s.fontBaseURL + "/" + bnBold

	customFontPath := ""
	if cfg.CustomFontFile != "" {
		p := filepath.Join(s.uploadDir, filepath.FromSlash(cfg.CustomFontFile))
		if _, err := os.Stat(p); err == nil {
			customFontPath = p
			assets.CustomFontURL = s.media.FileURL(cfg.CustomFontFile)
		}
	}

	var watermark *rendering.WatermarkSpec
	if cfg.WatermarkID != uuid.Nil {
		if p, err := s.media.Path(ctx, cfg.WatermarkID); err == nil {
			watermark = &rendering.WatermarkSpec{
				ImagePath: p,
				Opacity:   settings.NormalizeOpacity(cfg.WatermarkOpacity),
			}
		}
	}

	return rendering.RenderInput{
		Order: o,
		Type:  typ,
		Mode:  mode,
		Builder: &rendering.Builder{
			Settings: cfg,
			Assets:   assets,
			Locale:   s.locale,
		},
		CustomFontPath: customFontPath,
		Watermark:      watermark,
	}
}
