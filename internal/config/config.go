// Package config loads server configuration from COURTQ_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the server configuration
type Config struct {
	Host string `env:"COURTQ_HOST"`
	Port int    `env:"COURTQ_PORT" envDefault:"8080"`

	Storage     string `env:"COURTQ_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"COURTQ_REDIS_URL"`
	RedisPrefix string `env:"COURTQ_REDIS_PREFIX" envDefault:"courtq"`
	RedisPool   int    `env:"COURTQ_REDIS_POOL_SIZE" envDefault:"10"`
	SQLitePath  string `env:"COURTQ_SQLITE_PATH" envDefault:"courtq.db"`

	AdminPassword     string        `env:"COURTQ_ADMIN_PASSWORD"`
	AdminPasswordHash string        `env:"COURTQ_ADMIN_PASSWORD_HASH"`
	SessionTTL        time.Duration `env:"COURTQ_SESSION_TTL" envDefault:"12h"`

	LogLevel  slog.Level `env:"COURTQ_LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"COURTQ_LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the configuration from the given variables only
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks settings that depend on each other
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("COURTQ_REDIS_URL is required when COURTQ_STORAGE=redis")
		}
	default:
		return fmt.Errorf("unknown COURTQ_STORAGE %q: want memory, redis or sqlite", c.Storage)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("COURTQ_PORT %d out of range", c.Port)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("unknown COURTQ_LOG_FORMAT %q: want json or text", c.LogFormat)
	}
	return nil
}

// AdminConfigured reports whether any admin credential is set
func (c Config) AdminConfigured() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}
