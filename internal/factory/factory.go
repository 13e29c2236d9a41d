package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/courtqueue/internal/api/sse"
	"github.com/mcoot/courtqueue/internal/config"
	"github.com/mcoot/courtqueue/internal/dependencies/clock"
	"github.com/mcoot/courtqueue/internal/dependencies/ids"
	"github.com/mcoot/courtqueue/internal/dependencies/random"
	"github.com/mcoot/courtqueue/internal/services/auth"
	"github.com/mcoot/courtqueue/internal/services/queue"
	"github.com/mcoot/courtqueue/internal/services/session"
	"github.com/mcoot/courtqueue/internal/storage"
	"github.com/mcoot/courtqueue/internal/storage/memory"
	redisstorage "github.com/mcoot/courtqueue/internal/storage/redis"
	"github.com/mcoot/courtqueue/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageMemory
	StorageTypeRedis  = config.StorageRedis
	StorageTypeSQLite = config.StorageSQLite
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	Engine      *queue.Engine
	AuthService *auth.Service
	Controller  *session.Controller
	Hub         *sse.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// Zero fields fall back to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
}

// ConfigFromEnv maps the environment configuration onto a factory Config
func ConfigFromEnv(c config.Config, logger *slog.Logger) Config {
	cfg := Config{
		AuthConfig: auth.Config{
			Password:        c.AdminPassword,
			PasswordHash:    c.AdminPasswordHash,
			SessionDuration: c.SessionTTL,
		},
		Logger:      logger,
		StorageType: c.Storage,
		SQLitePath:  c.SQLitePath,
	}
	if c.Storage == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.KeyPrefix = c.RedisPrefix
		if c.RedisPool > 0 {
			redisCfg.PoolSize = c.RedisPool
		}
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), ids.New(), cfg.AuthConfig, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func openStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be memory, redis or sqlite", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	gen ids.Generator,
	authCfg auth.Config,
	logger *slog.Logger,
) (*App, error) {
	authService, err := auth.New(clk, rnd, authCfg)
	if err != nil {
		return nil, fmt.Errorf("configure admin password: %w", err)
	}
	if !authService.Enabled() {
		logger.Warn("no admin password configured; mutations are disabled")
	}

	hub := sse.NewHub(logger)
	go hub.Run()

	engine := queue.NewEngine(gen, rnd)
	controller := session.NewController(
		store,
		engine,
		authService,
		gen,
		clk,
		sse.NewBroadcaster(hub, logger),
		logger.With(slog.String("component", "session")),
	)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		IDs:         gen,
		Engine:      engine,
		AuthService: authService,
		Controller:  controller,
		Hub:         hub,
	}, nil
}

// Close disconnects event streams and releases the storage
func (a *App) Close() error {
	a.Hub.Close()
	return a.Storage.Close()
}
