// Package migrations runs goose schema migrations embedded in the storage
// backends. Each backend owns its SQL files and dialect; this package only
// drives goose against them.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-tracker-api/internal/platform/logger"
	"github.com/pressly/goose/v3"
)

// TableName is the table goose uses to track applied versions.
const TableName = "schema_migrations"

// Commands accepted by Run.
var Commands = []string{"up", "down", "reset", "status", "version", "redo", "up-by-one"}

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// slogGooseLogger adapts slog to goose's logger interface.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. goose's default would exit the process.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

// IsValidCommand reports whether command is one Run understands.
func IsValidCommand(command string) bool {
	for _, c := range Commands {
		if c == command {
			return true
		}
	}
	return false
}

// Run executes a goose command using the migration files in fsys.
func Run(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, command string, args ...string) error {
	if !IsValidCommand(command) {
		return fmt.Errorf("unknown migration command %q", command)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	log := logger.FromContext(ctx).With(
		slog.String("component", "migrations"),
		slog.String("dialect", dialect),
	)

	goose.SetBaseFS(fsys)
	goose.SetTableName(TableName)
	goose.SetLogger(&slogGooseLogger{log: log})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	log.Debug("running migrations", slog.String("command", command))
	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
