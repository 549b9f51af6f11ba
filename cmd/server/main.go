package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/code-100-precent/LingDrill/internal/handler"
	"github.com/code-100-precent/LingDrill/internal/models"
	"github.com/code-100-precent/LingDrill/pkg/audiostore"
	"github.com/code-100-precent/LingDrill/pkg/config"
	"github.com/code-100-precent/LingDrill/pkg/logger"
	"github.com/code-100-precent/LingDrill/pkg/middleware"
	"github.com/code-100-precent/LingDrill/pkg/synthesizer"
	"github.com/code-100-precent/LingDrill/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}
	cfg := config.GlobalConfig
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	if err := logger.Init(&cfg.Log, cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := utils.InitDatabase(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	if err := models.SeedLanguages(db); err != nil {
		logger.Fatal("failed to seed languages", zap.Error(err))
	}

	provider := synthesizer.NewHTTPProvider(
		synthesizer.NewProviderConfig(cfg.Synthesis.BaseURL, cfg.Synthesis.ChunkTimeout),
	)
	synth := synthesizer.NewOrchestrator(provider,
		synthesizer.WithMaxChunkLen(cfg.Synthesis.MaxChunkLen),
		synthesizer.WithPacing(cfg.Synthesis.PacingDelay),
		synthesizer.WithChunkTimeout(cfg.Synthesis.ChunkTimeout),
	)
	store := audiostore.NewStore(db, cfg.Synthesis.CacheTTL)

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorsMiddleware())
	engine.Use(middleware.RequestLogger())
	if cfg.Middleware.EnableRateLimit {
		engine.Use(middleware.RateLimiter(cfg.Middleware.RateLimitFormat))
	}

	handlers.NewHandlers(db, store, synth).Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Server.Addr),
			zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
