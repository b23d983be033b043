package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tally/internal/aggregate"
	"tally/internal/core"
)

type Config struct {
	// Storage
	DataBackend  string
	SQLiteDBPath string

	// Ledger
	DefaultBudget string

	// Presentation
	GroupOrder aggregate.GroupOrder

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/tally.db"),

		DefaultBudget: getEnv("DEFAULT_BUDGET", core.DefaultBudget.DecimalString()),

		GroupOrder: aggregate.GroupOrder(getEnv("GROUP_ORDER", string(aggregate.OrderTraversal))),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if _, err := core.ParseBudget(c.DefaultBudget); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default budget '%s': must be a positive decimal", c.DefaultBudget))
	}

	if !c.GroupOrder.Valid() {
		errors = append(errors, fmt.Sprintf("invalid group order '%s': must be one of [%s %s]",
			c.GroupOrder, aggregate.OrderTraversal, aggregate.OrderChronological))
	}

	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ParseLogLevel maps a level name to a slog level. The second return
// reports whether the name was recognized.
func ParseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
