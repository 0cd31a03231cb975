package app

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/quicktask-analytics/internal/config"
)

// ReadEnv reads the config and logs every default it fell back to.
func ReadEnv(logger zerolog.Logger) (*config.Config, error) {
	cfg, warnings, err := config.NewEnvReader().Read()
	for _, warning := range warnings {
		logger.Warn().Msg(warning)
	}
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to read env")
		return nil, err
	}
	logger.Info().
		Str("env", cfg.Env).
		Str("store_driver", cfg.StoreDriver).
		Msg("read env")

	return cfg, nil
}

func MustReadEnv(logger zerolog.Logger) *config.Config {
	cfg, err := ReadEnv(logger)
	if err != nil {
		panic(err)
	}
	return cfg
}
