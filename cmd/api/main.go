// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/pantry-backend/internal/config"
	"github.com/your-org/pantry-backend/internal/domain/kitchen"
	"github.com/your-org/pantry-backend/internal/domain/suggestion"
	"github.com/your-org/pantry-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/pantry-backend/internal/infrastructure/database/redis"
	"github.com/your-org/pantry-backend/internal/infrastructure/llm/gemini"
	"github.com/your-org/pantry-backend/internal/infrastructure/storage/local"
	"github.com/your-org/pantry-backend/internal/interfaces/http"
	"github.com/your-org/pantry-backend/internal/interfaces/http/routes"
	"github.com/your-org/pantry-backend/internal/pkg/logger"
	"github.com/your-org/pantry-backend/internal/pkg/pdf"
)

// documentStore is a kitchen gateway that can also be health checked
type documentStore interface {
	kitchen.Gateway
	http.Pinger
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"backend":     cfg.Persistence.Backend,
	}).Info("Starting")

	// Redis serves rate limiting and, when selected, persistence
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewConnection(cfg, appLogger)
		if err != nil {
			if cfg.Persistence.Backend == config.BackendRedis {
				appLogger.WithError(err).Fatal("Failed to connect to Redis")
			}
			appLogger.WithError(err).Warn("Redis unavailable, rate limiting disabled")
		} else {
			defer redisClient.Close()
		}
	}

	var store documentStore
	switch cfg.Persistence.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(cfg, appLogger)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		migration := postgres.NewMigration(db.GetDB(), appLogger)
		if err := migration.RunAutoMigrations(); err != nil {
			appLogger.WithError(err).Fatal("Database migration failed")
		}
		if err := migration.CreateIndexes(); err != nil {
			appLogger.WithError(err).Warn("Index creation failed")
		}

		store = postgres.NewDocumentStore(db.GetDB(), cfg.Persistence.DocumentID)
	case config.BackendRedis:
		store = redis.NewDocumentStore(redisClient.GetClient(), cfg.Persistence.DocumentID)
	default:
		store = local.NewDocumentStore(cfg.Persistence.FilePath)
	}

	// Hydrate the pantry; on failure keep serving the default state
	pantryService := kitchen.NewService(store, cfg, appLogger)
	initCtx, initCancel := context.WithTimeout(context.Background(), cfg.Persistence.SaveTimeout)
	if err := pantryService.Init(initCtx); err != nil {
		appLogger.WithError(err).Warn("Starting with an empty pantry")
	}
	initCancel()

	runCtx, stopRetries := context.WithCancel(context.Background())
	defer stopRetries()
	go pantryService.Run(runCtx, cfg.Persistence.RetryInterval)

	// The assistant is optional
	var model suggestion.Model
	if cfg.SuggestionsEnabled() {
		client, err := gemini.NewClient(context.Background(), cfg, appLogger)
		if err != nil {
			appLogger.WithError(err).Warn("Suggestions disabled")
		} else {
			model = client
		}
	} else {
		appLogger.Info("GEMINI_API_KEY not set, suggestions disabled")
	}

	var rdb *goredis.Client
	if redisClient != nil {
		rdb = redisClient.GetClient()
	}

	server := http.NewServer(routes.Dependencies{
		Config:      cfg,
		Logger:      appLogger,
		Kitchen:     pantryService,
		Suggestions: suggestion.NewService(model, cfg, appLogger),
		PDF:         pdf.NewService(cfg),
	}, rdb, store)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	stopRetries()
	if pantryService.Pending() {
		if err := pantryService.Flush(ctx); err != nil {
			appLogger.WithError(err).Error("Unsaved pantry changes were lost")
		}
	}

	appLogger.Info("Server shutdown completed")
}
