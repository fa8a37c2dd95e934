package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/cart"
	checkoutapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/checkout"
	orderapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/order"
	sessionapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/session"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/checkout"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/config"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/logger"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/state"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/interfaces/http/handler"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/interfaces/http/middleware"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/interfaces/http/router"
)

const version = "1.0.0"

// refreshWindow is how close to expiry the access token may get before
// the background refresher exchanges it
const refreshWindow = 2 * time.Minute

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

	log.Info("Starting FormerMobilya storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Snapshot persistence backend
	snapshots, cleanup, err := newSnapshotStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize state backend", zap.Error(err))
	}
	defer cleanup()
	log.Info("State backend ready", zap.String("backend", cfg.State.Backend))

	// Stores rehydrate from persisted state before serving
	ctx := context.Background()
	sessions := sessionapp.NewStore(ctx, snapshots, log)
	carts := cartapp.NewStore(ctx, snapshots, log)
	drafts := checkoutapp.NewStore(ctx, snapshots, cfg.Checkout.DefaultCountry, log)

	// Backend REST client, authenticated with the session's access token
	apiConfig := api.NewConfig(cfg.API.BaseURL)
	apiConfig.Timeout = cfg.API.Timeout
	apiConfig.MaxResponseBytes = cfg.API.MaxResponseBytes
	client, err := api.NewClient(apiConfig, sessions)
	if err != nil {
		log.Fatal("Failed to initialize backend client", zap.Error(err))
	}
	sessions.SetAuthAPI(client)

	policy := checkout.ShippingPolicy{
		FlatRate:      decimal.NewFromFloat(cfg.Checkout.ShippingFlatRate),
		FreeThreshold: decimal.NewFromFloat(cfg.Checkout.FreeShippingThreshold),
	}
	orders := orderapp.NewService(carts, drafts, client, policy, log)

	// Gin engine
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order: RequestID, Recovery, Logger, Security, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSessionHandler(sessions)).
		Register(handler.NewCartHandler(carts)).
		Register(handler.NewCheckoutHandler(drafts, orders)).
		Register(handler.NewOrderHandler(orders)).
		Register(handler.NewCatalogHandler(client)).
		Register(handler.NewUploadHandler(client, sessions)).
		Register(handler.NewSystemHandler(cfg.App.Name, version))
	r.Setup()

	// Background token refresh keeps the session alive while signed in
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go refreshLoop(refreshCtx, sessions, log)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newSnapshotStore builds the configured persistence backend. The
// returned cleanup closes any underlying connection.
func newSnapshotStore(cfg *config.Config, log *zap.Logger) (state.SnapshotStore, func(), error) {
	switch cfg.State.Backend {
	case "redis":
		store, err := state.NewRedisStore(state.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing redis connection", zap.Error(err))
			}
		}, nil
	case "memory":
		return state.NewMemoryStore(), func() {}, nil
	default:
		store, err := state.NewFileStore(cfg.State.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

// refreshLoop renews the access token shortly before it expires
func refreshLoop(ctx context.Context, sessions *sessionapp.Store, log *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !sessions.NeedsRefresh(refreshWindow) {
				continue
			}
			if err := sessions.Refresh(ctx); err != nil {
				log.Warn("Token refresh failed", zap.Error(err))
			}
		}
	}
}
