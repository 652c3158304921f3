package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs legacy tokens and is always required.
	JWTSecret string `env:"JWT_SECRET"`
	// TaxRate is applied to order subtotals (8.5% by default).
	TaxRate float64 `env:"TAX_RATE, default=0.085"`
	// FrontendURL is used to build invitation redirect links.
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Identity IdentityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Webhook  WebhookConfig
}

// IdentityConfig points at the external identity provider. An empty SecretKey
// disables the provider verification path entirely; only legacy tokens are
// accepted then.
type IdentityConfig struct {
	SecretKey string `env:"IDENTITY_SECRET_KEY"`
	Issuer    string `env:"IDENTITY_ISSUER"`
	APIURL    string `env:"IDENTITY_API_URL, default=https://api.clerk.com/v1"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=restaurant"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type WebhookConfig struct {
	Workers int `env:"WEBHOOK_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
