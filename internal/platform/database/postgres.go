package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

const (
	maxRetries = 10
	retryDelay = 2 * time.Second
)

// Connect opens the Postgres pool, waiting for the database to come up.
// Container orchestration often starts the service before the database
// accepts connections, hence the retry loop.
func Connect(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		slog.Info("connecting to database", "attempt", i, "max_attempts", maxRetries)

		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			slog.Info("database connected")
			return db, nil
		}

		slog.Warn("database not ready, retrying", "error", err)
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to database: %w", err)
}
