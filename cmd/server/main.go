// Command server runs the prompt library HTTP API.
//
// @title        Prompt Library API
// @version      1.0
// @description  Personal prompt library: prompts, templates, tool recommendations and session auth.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/promptvault/prompt-library/internal/api"
	"github.com/promptvault/prompt-library/internal/api/metrics"
	"github.com/promptvault/prompt-library/internal/core/ports"
	"github.com/promptvault/prompt-library/internal/core/service"
	"github.com/promptvault/prompt-library/internal/infrastructure/config"
	"github.com/promptvault/prompt-library/internal/infrastructure/db/mongo"
	"github.com/promptvault/prompt-library/internal/infrastructure/db/redis"
	"github.com/promptvault/prompt-library/internal/infrastructure/storage"
	"github.com/promptvault/prompt-library/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Snapshot backend ---
	var (
		store   ports.SnapshotStore
		mongoDB *gomongo.Database
		rdb     *goredis.Client
		dataDir string
	)
	switch cfg.StorageDriver {
	case config.DriverRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = client.Close() }()
		rdb = client
		store = redis.NewSnapshotStore(client)
	case config.DriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db
		store = mongo.NewSnapshotStore(db)
	case config.DriverFile:
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open data directory")
		}
		dataDir = cfg.DataDir
		store = fileStore
	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}
	store = metrics.InstrumentStore(store)

	// --- Core services ---
	prompts := service.NewPromptService(store, log)
	session := service.NewSessionService(store, cfg.AuthDelay, log)
	tools := service.NewRecommendationService()

	if err := prompts.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to hydrate prompt collection")
	}
	if err := session.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to hydrate session store")
	}

	e := api.NewRouter(api.Deps{
		Prompts:   prompts,
		Session:   session,
		Tools:     tools,
		JWTSecret: cfg.JWTSecret,
		Mongo:     mongoDB,
		Redis:     rdb,
		DataDir:   dataDir,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
