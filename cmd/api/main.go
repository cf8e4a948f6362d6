package main

// @title Directory Platform API
// @version 1.0.0
// @description Multi-tenant business directory platform. Each tenant site is a
// @description (vertical, state) pair served on its own domain; one deployment
// @description answers for every domain and resolves the host per request.
// @description
// @description The admin host exposes the management API: tenant registration,
// @description per-site category and city enablement, listing imports and
// @description platform statistics. Every other host is routed through the
// @description directory grammar.

// @contact.name API Support
// @contact.email support@directoryplatform.local

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/directory-platform/docs"
	"github.com/directory-platform/internal/config"
	httpDelivery "github.com/directory-platform/internal/delivery/http"
	"github.com/directory-platform/internal/delivery/http/handler"
	"github.com/directory-platform/internal/pkg/logger"
	"github.com/directory-platform/internal/repository/cache"
	"github.com/directory-platform/internal/repository/postgres"
	redisRepo "github.com/directory-platform/internal/repository/redis"
	"github.com/directory-platform/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Directory Platform API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("admin_host", cfg.Admin.Host),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Connect a dedicated Redis client for the job queue streams
	streamsClient, err := cache.NewRedisStreams(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis Streams", zap.Error(err))
	}
	defer func() {
		if err := streamsClient.Close(); err != nil {
			log.Error("Failed to close Redis Streams connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize repositories
	siteRepo := postgres.NewSiteRepository(db)
	taxonomyRepo := postgres.NewTaxonomyRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	statsRepo := postgres.NewStatsRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(streamsClient, log)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	resolveUC := usecase.NewResolveUseCase(siteRepo, cfg.Admin.Host, log)
	taxonomyUC := usecase.NewTaxonomyUseCase(taxonomyRepo, cacheRepo, log, cfg.Cache.TaxonomyTTL)
	pageUC := usecase.NewPageUseCase(businessRepo, log)
	adminUC := usecase.NewAdminUseCase(siteRepo, taxonomyRepo, taxonomyUC, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log)

	// The API side only enqueues import jobs; the worker binary does
	// the external fetching, so no places or search client here.
	importUC := usecase.NewImportUseCase(
		siteRepo,
		taxonomyUC,
		businessRepo,
		nil,
		nil,
		streamRepo,
		log,
		cfg.Places.ResultLimit,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	pageHandler := handler.NewPageHandler(taxonomyUC, pageUC, log)
	siteHandler := handler.NewSiteHandler(adminUC, log)
	importHandler := handler.NewImportHandler(importUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		resolveUC,
		pageHandler,
		siteHandler,
		importHandler,
		statsHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
