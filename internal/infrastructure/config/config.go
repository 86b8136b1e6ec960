// Package config loads per-binary configuration from environment variables
// using go-envconfig.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Server holds the settings every binary shares.
type Server struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// Mongo selects the durable store. An empty URI means the service runs on
// seeded in-memory fixtures.
type Mongo struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=storefront"`
}

// Redis configures the gateway's token-validation cache. An empty Addr
// disables caching.
type Redis struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Identity configures the credential authority service.
type Identity struct {
	Server

	PrivateKeyPath string        `env:"JWT_PRIVATE_KEY_PATH, default=private.pem"`
	PublicKeyPath  string        `env:"JWT_PUBLIC_KEY_PATH,  default=public.pem"`
	TokenTTL       time.Duration `env:"TOKEN_TTL,            default=24h"`

	Mongo Mongo
}

// Order configures the order service.
type Order struct {
	Server

	Mongo Mongo
}

// Catalog configures the product catalog service.
type Catalog struct {
	Server
}

// Buyer configures the buyer directory service.
type Buyer struct {
	Server
}

// Gateway configures a BFF binary: backend service URLs, the outbound call
// timeout, and the optional validation cache.
type Gateway struct {
	Server

	IdentityURL    string        `env:"USER_IDENTITY_SERVICE_URL,   default=http://localhost:3000/api"`
	OrderURL       string        `env:"ORDER_SERVICE_URL,           default=http://localhost:3001/api"`
	CatalogURL     string        `env:"PRODUCT_CATALOG_SERVICE_URL, default=http://localhost:3002/api"`
	BuyerURL       string        `env:"BUYER_SERVICE_URL,           default=http://localhost:3003/api"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT,             default=5s"`

	Redis Redis
}

// Load populates a config struct from the environment.
func Load[T any](ctx context.Context) (*T, error) {
	var cfg T
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
