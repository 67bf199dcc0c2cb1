package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"github.com/phrazzld/task-tracker-api/internal/platform/migrations"
)

// Dialect is the goose dialect for this backend.
const Dialect = "postgres"

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations returns the schema migration files for PostgreSQL.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// ALLOW-PANIC: the directory is embedded at build time
		panic(err)
	}
	return sub
}

// Migrate runs a goose command (up, down, status, ...) against db.
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	return migrations.Run(ctx, db, Dialect, Migrations(), command, args...)
}
