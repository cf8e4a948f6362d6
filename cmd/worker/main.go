package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/directory-platform/internal/config"
	"github.com/directory-platform/internal/infrastructure/places"
	"github.com/directory-platform/internal/infrastructure/search"
	"github.com/directory-platform/internal/pkg/logger"
	"github.com/directory-platform/internal/repository/cache"
	"github.com/directory-platform/internal/repository/postgres"
	redisRepo "github.com/directory-platform/internal/repository/redis"
	"github.com/directory-platform/internal/usecase"
	"github.com/directory-platform/internal/worker"
	placesWorker "github.com/directory-platform/internal/worker/places"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Import Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("result_limit", cfg.Places.ResultLimit))

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

	// 6. Initialize repositories and clients
	siteRepo := postgres.NewSiteRepository(db)
	taxonomyRepo := postgres.NewTaxonomyRepository(db)
	businessRepo := postgres.NewBusinessRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(streamsClient, log)
	placesRepo := places.NewPlacesClient(&cfg.Places, log)
	searchRepo := search.NewSearchClient(&cfg.Search, log)

	// 7. Initialize use cases
	taxonomyUC := usecase.NewTaxonomyUseCase(taxonomyRepo, cacheRepo, log, cfg.Cache.TaxonomyTTL)
	importUC := usecase.NewImportUseCase(
		siteRepo,
		taxonomyUC,
		businessRepo,
		placesRepo,
		searchRepo,
		streamRepo,
		log,
		cfg.Places.ResultLimit,
	)

	// 8. Initialize workers
	importWorker := placesWorker.NewImportWorker(
		streamRepo,
		importUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	)

	// 9. Create worker manager and register workers
	manager := worker.NewManager(log)
	manager.Register(importWorker)

	// 10. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
