package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SergeyKozhin/trailer-scheduler/internal/api"
	"github.com/SergeyKozhin/trailer-scheduler/internal/business/events"
	"github.com/SergeyKozhin/trailer-scheduler/internal/business/resources"
	"github.com/SergeyKozhin/trailer-scheduler/internal/config"
	"github.com/SergeyKozhin/trailer-scheduler/internal/database"
	"github.com/SergeyKozhin/trailer-scheduler/internal/database/blobs"
	"github.com/SergeyKozhin/trailer-scheduler/internal/redis"
	"github.com/SergeyKozhin/trailer-scheduler/internal/resync"
	"github.com/SergeyKozhin/trailer-scheduler/internal/storage"
	"github.com/SergeyKozhin/trailer-scheduler/internal/timegrid"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	medium, err := initMedium(ctx, logger)
	if err != nil {
		logger.Fatalw("unable to initialize storage", "storage", config.Storage(), "err", err)
	}

	eventsStore := events.NewStore(ctx, storage.NewEventsBlob(medium, config.StorageKey()), logger)

	grid := timegrid.NewGrid(config.StartHour(), config.EndHour(), config.SlotMinutes(), config.IncludeWeekend())
	registry := resources.NewRegistry(config.ResourcePrefix(), config.ResourceFrom(), config.ResourceTo())

	eventsService := events.NewService(eventsStore, grid, registry, logger)

	syncer := resync.NewSyncer(eventsStore, logger, config.ResyncInterval())
	go syncer.Start(ctx)

	api, err := api.NewApi(logger, grid, eventsService, registry)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		_ = server.Shutdown(context.Background())
	})

	logger.Infow("Started server", "port", config.Port(), "storage", config.Storage())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorw("server error", "err", err)
	}
	closer.Close()
}

func initMedium(ctx context.Context, logger *zap.SugaredLogger) (storage.Medium, error) {
	switch config.Storage() {
	case config.StorageFile:
		file, err := storage.NewFile(config.StorageDir())
		if err != nil {
			return nil, fmt.Errorf("file: %w", err)
		}
		return file, nil
	case config.StorageMemory:
		return storage.NewMemory(), nil
	case config.StorageRedis:
		return redis.NewBlobRepository(redis.NewRedisPool(logger, config.RedisURL())), nil
	case config.StoragePostgres:
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return storage.NewPostgres(db, blobs.NewRepository()), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", config.Storage())
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
