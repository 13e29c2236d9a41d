package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "courtq", cfg.RedisPrefix)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.AdminConfigured())
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"COURTQ_HOST":           "127.0.0.1",
		"COURTQ_PORT":           "9000",
		"COURTQ_STORAGE":        "redis",
		"COURTQ_REDIS_URL":      "redis://localhost:6379/0",
		"COURTQ_ADMIN_PASSWORD": "hunter2",
		"COURTQ_SESSION_TTL":    "30m",
		"COURTQ_LOG_LEVEL":      "debug",
		"COURTQ_LOG_FORMAT":     "text",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.AdminConfigured())
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"unknown storage", map[string]string{"COURTQ_STORAGE": "postgres"}},
		{"redis without url", map[string]string{"COURTQ_STORAGE": "redis"}},
		{"port not a number", map[string]string{"COURTQ_PORT": "http"}},
		{"port out of range", map[string]string{"COURTQ_PORT": "70000"}},
		{"bad duration", map[string]string{"COURTQ_SESSION_TTL": "forever"}},
		{"bad log format", map[string]string{"COURTQ_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			assert.Error(t, err)
		})
	}
}
