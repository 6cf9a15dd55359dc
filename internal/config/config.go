// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the settings needed to wire the quiz core.
type Config struct {
	DBDriver string
	DBDSN    string
	Hasher   string
	LogLevel slog.Level
	QuizSize int
}

// Load reads the configuration from QUIZ_* environment variables.
func Load() (*Config, error) {
	level, err := ParseLevel(getEnv("QUIZ_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	size, err := strconv.Atoi(getEnv("QUIZ_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("QUIZ_SIZE must be an integer: %w", err)
	}

	cfg := &Config{
		DBDriver: getEnv("QUIZ_DB_DRIVER", DriverSQLite),
		DBDSN:    getEnv("QUIZ_DB_DSN", "quiz.db"),
		Hasher:   getEnv("QUIZ_HASHER", "sha256"),
		LogLevel: level,
		QuizSize: size,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the driver is known and has a DSN, and that the
// quiz size is positive.
func (c *Config) Validate() error {
	if c.QuizSize <= 0 {
		return fmt.Errorf("quiz size must be positive, got %d", c.QuizSize)
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("%s driver requires a DSN", c.DBDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database driver %q", c.DBDriver)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
