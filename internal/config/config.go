package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StoreDriverMongoDB  = "mongodb"
	StoreDriverPostgres = "postgres"
)

const (
	DefaultMongoURI      = "mongodb://localhost:27017/quicktask"
	DefaultMongoDatabase = "quicktask"
	DefaultHTTPPort      = "8000"
)

type Config struct {
	Env         string `env:"ENV" env-default:"prod"`
	StoreDriver string `env:"STORE_DRIVER" env-default:"mongodb"`
	Mongo       MongoConfig
	Postgres    PostgresConfig
	HTTP        HTTPConfig
}

// MongoConfig.URI has no env-default so that a fallback can be reported.
type MongoConfig struct {
	URI                    string        `env:"MONGODB_URI"`
	Database               string        `env:"MONGODB_DATABASE"`
	Collection             string        `env:"MONGODB_COLLECTION" env-default:"tasks"`
	ConnectTimeout         time.Duration `env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
	ServerSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT" env-default:"5s"`
	PingTimeout            time.Duration `env:"MONGODB_PING_TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-default:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE" env-default:"quicktask"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

// HTTPConfig.Port is a string so an invalid value can fall back to the
// default instead of failing the whole read.
type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `env:"ANALYTICS_PORT"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"`
}
