package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-tracker-api/internal/platform/postgres"
	"github.com/phrazzld/task-tracker-api/internal/platform/sqlite"
)

// runMigrations executes a goose command against db using the migrations
// embedded for driver.
func runMigrations(
	ctx context.Context,
	db *sql.DB,
	driver string,
	logger *slog.Logger,
	command string,
	args ...string,
) error {
	logger.Info("Executing migrations", slog.String("command", command), slog.String("driver", driver))

	var err error
	switch driver {
	case "postgres":
		err = postgres.Migrate(ctx, db, command, args...)
	case "sqlite":
		err = sqlite.Migrate(ctx, db, command, args...)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	logger.Info("Migrations completed", slog.String("command", command))
	return nil
}
