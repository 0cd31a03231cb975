package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adanyl0v/quicktask-analytics/internal/app"
	"github.com/adanyl0v/quicktask-analytics/internal/config"
	"github.com/adanyl0v/quicktask-analytics/internal/models"
	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

// connectTaskStore is replaced in tests.
var connectTaskStore = app.ConnectTaskStore

var (
	jsonOutput bool
	verbose    bool
	timeout    time.Duration
	cfg        *config.Config
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "analyticsctl",
	Short: "Print task analytics for a user",
	Long: `analyticsctl reads the tasks of one user from the configured store and
prints the same statistics the analytics service serves over HTTP.

The store is configured with the same environment variables as the service.

Example usage:
  analyticsctl stats 65a1f0c2e4b0a1b2c3d4e5f6
  analyticsctl trends 65a1f0c2e4b0a1b2c3d4e5f6 --group-by week
  analyticsctl stats 65a1f0c2e4b0a1b2c3d4e5f6 --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for the store round trip")
}

func initConfig() error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(level).
		With().
		Timestamp().
		Logger()

	var err error
	cfg, err = app.ReadEnv(logger)
	if err != nil {
		return fmt.Errorf("failed to read env: %w", err)
	}
	return nil
}

// runWithService validates userID, connects the configured store and hands
// an AnalyticsService over it to fn.
func runWithService(cmd *cobra.Command, userID string, fn func(context.Context, services.AnalyticsService) error) error {
	if !models.IsValidUserID(userID) {
		return fmt.Errorf("%w: %q", services.ErrInvalidIdentifier, userID)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	store, disconnect, err := connectTaskStore(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer disconnect()

	return fn(ctx, services.NewAnalyticsService(logger, store))
}
