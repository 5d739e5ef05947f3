package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/database"
	"github.com/pageza/foodfight/backend/internal/dataset"
	"github.com/pageza/foodfight/backend/internal/logger"
	"github.com/pageza/foodfight/backend/internal/middleware"
	"github.com/pageza/foodfight/backend/internal/server"
	"github.com/pageza/foodfight/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(logger.Options{
		Level:      cfg.LogLevel,
		Production: cfg.Env.IsProduction(),
		FilePath:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !cfg.Env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
	zl.Info("server stopped")
}

func run(cfg *config.Config, zl *zap.Logger) error {
	// Stop on an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return err
	}

	src, err := dataset.Open(ctx, cfg.DatasetSource, cfg.AWSRegion)
	if err != nil {
		return err
	}
	snap, err := dataset.Load(ctx, src, zl)
	if err != nil {
		return err
	}

	catalogService := service.NewCatalogService(snap, profile, nil, cfg.SearchCacheTTL, zl)

	// Rate limiting is optional, the catalog is served without it
	var limiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		var redisClient *redis.Client
		redisClient, err = database.NewRedisClient(ctx, cfg)
		if err != nil {
			zl.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = middleware.NewSearchRateLimiter(redisClient, cfg.RateLimit, cfg.RateLimitWindow, zl)
		}
	}

	zl.Info("starting server",
		zap.String("env", string(cfg.Env)),
		zap.String("addr", cfg.Addr()),
		zap.String("dataset", snap.Source),
		zap.Bool("rate_limit", limiter != nil),
	)
	return server.New(cfg, catalogService, limiter, zl).Run(ctx)
}
