package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	documentapp "github.com/srpos/backend/internal/application/document"
	emailapp "github.com/srpos/backend/internal/application/email"
	posapp "github.com/srpos/backend/internal/application/pos"
	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/infrastructure/auth"
	"github.com/srpos/backend/internal/infrastructure/cache"
	"github.com/srpos/backend/internal/infrastructure/config"
	"github.com/srpos/backend/internal/infrastructure/logger"
	"github.com/srpos/backend/internal/infrastructure/persistence"
	"github.com/srpos/backend/internal/infrastructure/rendering"
	"github.com/srpos/backend/internal/infrastructure/storage"
	"github.com/srpos/backend/internal/interfaces/http/handler"
	"github.com/srpos/backend/internal/interfaces/http/middleware"
	"github.com/srpos/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SR POS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)

	// Optional Redis-backed settings cache
	redisClient, err := cache.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer func() {
			_ = redisClient.Close()
		}()
		log.Info("Redis connected, settings cache enabled")
	}
	cachedSettings := cache.NewCachedSettingsRepository(settingsRepo, redisClient,
		cache.WithLogger(log))

	// Media library over the host's attachment table and uploads dir
	mediaLib := storage.NewMediaLibrary(attachmentRepo, cfg.Media.UploadDir, cfg.Media.BaseURL, log)

	// PDF engine selection
	engines := newEngineFactory(cfg.PDF, log)
	log.Info("PDF engine configured",
		zap.String("engine", engines.Name()),
		zap.Bool("available", engines.Available()),
	)

	dispatcher := &rendering.Dispatcher{
		Engines: engines,
		Fonts:   rendering.FontConfigurator{FontDir: cfg.PDF.FontDir},
		TempDir: cfg.PDF.TempDir,
		Logger:  log,
		DocumentURL: func(orderID uuid.UUID, typ document.Type, mode document.Mode) string {
			return "/api/v1/orders/" + orderID.String() + "/document?type=" + typ.String() + "&mode=" + mode.String()
		},
	}

	// Application services
	documentSvc := documentapp.NewService(
		orderRepo,
		cachedSettings,
		mediaLib,
		dispatcher,
		cfg.Media.UploadDir,
		"/assets/fonts",
		cfg.App.Locale,
		log,
	)
	posSvc := posapp.NewService(orderRepo, productRepo, customerRepo, cachedSettings, cfg.App.Currency, log)
	emailSvc := emailapp.NewService(documentSvc, cachedSettings, log)

	verifier := auth.NewTokenVerifier(cfg.JWT)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	middleware.SetupValidator()

	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	authCfg := middleware.DefaultAuthConfig(verifier)
	authCfg.SkipPaths = append(authCfg.SkipPaths, "/api/v1/ping")
	authCfg.Logger = log
	engine.Use(middleware.AuthMiddlewareWithConfig(authCfg))

	// Bundled fonts and uploaded media are served as static assets so
	// browser-rendered documents can reach them.
	engine.Static("/assets/fonts", cfg.PDF.FontDir)
	engine.Static("/media", cfg.Media.UploadDir)

	// Routes
	staffOnly := middleware.RequireCapability(auth.CapabilityManageStore)

	productImageURL := func(id uuid.UUID) string {
		url, err := mediaLib.URL(context.Background(), id, "thumbnail")
		if err != nil {
			return ""
		}
		return url
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db, engines))
	r.Register(handler.NewDocumentHandler(documentSvc), staffOnly)
	r.Register(handler.NewPOSHandler(posSvc, productImageURL), staffOnly)
	r.Register(handler.NewSettingsHandler(cachedSettings), staffOnly)
	r.Register(handler.NewEmailHandler(emailSvc, log), staffOnly)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newEngineFactory maps the configured engine name to a factory. An unknown
// name disables PDF generation rather than failing startup; print-mode
// documents keep working.
func newEngineFactory(cfg config.PDFConfig, log *zap.Logger) rendering.EngineFactory {
	switch cfg.Engine {
	case "gofpdf":
		return rendering.GofpdfFactory{}
	case "chromedp":
		return rendering.ChromedpFactory{
			RemoteURL: cfg.ChromeRemoteURL,
			Timeout:   cfg.RenderTimeout,
			Logger:    log,
		}
	case "none", "":
		return rendering.DisabledFactory{}
	default:
		log.Warn("Unknown PDF engine, PDF generation disabled", zap.String("engine", cfg.Engine))
		return rendering.DisabledFactory{}
	}
}
