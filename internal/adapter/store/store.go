// Package store opens the configured repository backend.
package store

import (
	"fmt"

	"quizapp/internal/adapter/memory"
	"quizapp/internal/adapter/postgres"
	"quizapp/internal/adapter/sqlite"
	"quizapp/internal/config"
	"quizapp/internal/domain"
)

// Store is a backend holding both questions and users.
type Store interface {
	domain.QuestionRepository
	domain.UserRepository
	Close() error
}

// Open returns the backend named by driver. SQL backends have their schema
// initialized before Open returns.
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
		}
		return db, nil
	case config.DriverPostgres:
		db, err := postgres.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}
