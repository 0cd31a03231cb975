package app

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/config"
	"github.com/adanyl0v/quicktask-analytics/internal/storage"
	"github.com/adanyl0v/quicktask-analytics/internal/storage/postgres"
)

func connectPostgres(ctx context.Context, logger zerolog.Logger, cfg config.PostgresConfig) (storage.TaskStore, func(), error) {
	connURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     cfg.Database,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}

	poolCfg, err := pgxpool.ParseConfig(connURL.String())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		return nil, nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	disconnect := func() {
		pool.Close()
		logger.Info().Msg("disconnected from postgres")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(pingCtx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		disconnect()
		return nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")

	return postgres.NewTaskStore(logger, pool), disconnect, nil
}
