// Package config loads runtime configuration from the environment and
// gameplay balance tunables from an optional YAML file.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fogoseda/party-api/internal/errors"
)

// Config holds runtime configuration for the engine
type Config struct {
	// RedisAddr is the Redis endpoint; empty selects in-memory storage
	RedisAddr string `env:"REDIS_ADDR"`

	// SessionTTL bounds how long an idle session is kept in Redis
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// BalanceFile optionally overrides gameplay tunables
	BalanceFile string `env:"BALANCE_FILE"`

	// OwnerID scopes user-authored content overlays
	OwnerID string `env:"OWNER_ID" envDefault:"local"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables and the balance file
func Load() (*Config, Balance, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, DefaultBalance(), errors.Wrap(err, "failed to parse environment")
	}

	balance, err := LoadBalance(cfg.BalanceFile)
	if err != nil {
		return nil, DefaultBalance(), err
	}

	return &cfg, balance, nil
}
