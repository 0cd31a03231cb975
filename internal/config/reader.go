package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	// Read returns the config and a warning for every value that fell
	// back to its default.
	Read() (*Config, []string, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, []string, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, nil, err
	}

	warnings := applyFallbacks(cfg)

	err = validate(cfg)
	if err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

func applyFallbacks(cfg *Config) []string {
	var warnings []string

	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = DefaultMongoURI
		warnings = append(warnings, fmt.Sprintf(
			"MONGODB_URI not found in environment variables, using default: %s", DefaultMongoURI))
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = databaseFromURI(cfg.Mongo.URI)
	}

	if cfg.HTTP.Port == "" {
		cfg.HTTP.Port = DefaultHTTPPort
		warnings = append(warnings, fmt.Sprintf(
			"ANALYTICS_PORT not found in environment variables, using default: %s", DefaultHTTPPort))
	} else if port, err := strconv.Atoi(cfg.HTTP.Port); err != nil || port < 1 || port > 65535 {
		warnings = append(warnings, fmt.Sprintf(
			"invalid ANALYTICS_PORT value %q, using default: %s", cfg.HTTP.Port, DefaultHTTPPort))
		cfg.HTTP.Port = DefaultHTTPPort
	}

	return warnings
}

func validate(cfg *Config) error {
	switch cfg.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", cfg.Env)
	}

	switch cfg.StoreDriver {
	case StoreDriverMongoDB, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
	return nil
}

// databaseFromURI returns the database named in the URI path, or
// DefaultMongoDatabase if there is none.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return DefaultMongoDatabase
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		return DefaultMongoDatabase
	}
	return name
}
