// Package main implements the entry point for the task tracker API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/task-tracker-api/internal/platform/tracing"
)

// cliFlags holds the command line options.
type cliFlags struct {
	migrate string
}

func parseFlags(args []string) (cliFlags, []string, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	var f cliFlags
	fs.StringVar(&f.migrate, "migrate", "",
		"run a migration command (up, down, reset, status, version, redo, up-by-one) and exit")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, nil, err
	}
	return f, fs.Args(), nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "task tracker: %v\n", err)
		os.Exit(1)
	}
}

// run loads config, sets up logging and the database, then either runs a
// migration command or serves HTTP until SIGINT/SIGTERM.
func run(args []string) error {
	flags, rest, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	logger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if flags.migrate != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, cfg.Database.Driver, logger, flags.migrate, rest...)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, cfg.Database.Driver, logger, "up"); err != nil {
			_ = db.Close()
			return err
		}
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
