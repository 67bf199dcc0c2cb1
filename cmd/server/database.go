package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-tracker-api/internal/config"
	"github.com/phrazzld/task-tracker-api/internal/platform/postgres"
	"github.com/phrazzld/task-tracker-api/internal/platform/sqlite"
)

const connectTimeout = 5 * time.Second

// setupAppDatabase opens the configured backend and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgres.Open(ctx, cfg.Database.URL, cfg.Database.MaxOpenConns)
	case "sqlite":
		db, err = sqlite.Open(cfg.Database.URL)
		if err == nil {
			db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established", slog.String("driver", cfg.Database.Driver))
	return db, nil
}
