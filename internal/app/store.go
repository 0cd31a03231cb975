package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/config"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
)

// ConnectTaskStore opens the store selected by cfg.StoreDriver. The returned
// function releases it and must be called once the store is no longer used.
func ConnectTaskStore(ctx context.Context, logger zerolog.Logger, cfg *config.Config) (storage.TaskStore, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongoDB:
		return connectMongo(ctx, logger, cfg.Mongo)
	case config.StoreDriverPostgres:
		return connectPostgres(ctx, logger, cfg.Postgres)
	default:
		logger.Error().
			Str("store_driver", cfg.StoreDriver).
			Msg("unknown store driver")
		return nil, nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
}

func MustConnectTaskStore(logger zerolog.Logger, cfg *config.Config) (storage.TaskStore, func()) {
	store, disconnect, err := ConnectTaskStore(context.Background(), logger, cfg)
	if err != nil {
		panic(err)
	}
	return store, disconnect
}
