package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adanyl0v/quicktask-analytics/internal/config"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
	"github.com/adanyl0v/quicktask-analytics/internal/storage/mongodb"
)

func connectMongo(ctx context.Context, logger zerolog.Logger, cfg config.MongoConfig) (storage.TaskStore, func(), error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to mongodb")
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	disconnect := func() {
		// Disconnect must not reuse ctx, it may already be cancelled.
		err := client.Disconnect(context.Background())
		if err != nil {
			logger.Error().
				Err(err).
				Msg("failed to disconnect from mongodb")
			return
		}
		logger.Info().Msg("disconnected from mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = client.Ping(pingCtx, nil)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping mongodb")
		disconnect()
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	logger.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongodb")

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	return mongodb.NewTaskStore(logger, collection), disconnect, nil
}
