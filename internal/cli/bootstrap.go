package cli

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"tally/internal/config"
	"tally/internal/core"
	"tally/internal/log"
	"tally/internal/store"
	"tally/internal/store/memkv"
	"tally/internal/store/sqlitekv"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level and
// installs it as the default logger.
func SetupLogger(cfg *config.Config, w io.Writer) *log.Logger {
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp, Writer: w})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore builds the store over the configured backend and seeds the
// defaults. The returned closer is a no-op for the memory backend.
func OpenStore(cfg *config.Config) (*store.Store, func() error, error) {
	var (
		kv     store.KV
		closer func() error
	)
	switch cfg.DataBackend {
	case "sqlite":
		db, err := sqlitekv.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store at %s: %w", cfg.SQLiteDBPath, err)
		}
		kv, closer = db, db.Close
	case "memory":
		kv, closer = memkv.New(), func() error { return nil }
	default:
		return nil, nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}

	budget, err := core.ParseBudget(cfg.DefaultBudget)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("parse default budget %q: %w", cfg.DefaultBudget, err)
	}
	return store.New(kv, store.WithDefaultBudget(budget)), closer, nil
}
