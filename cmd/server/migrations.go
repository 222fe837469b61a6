package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/proyectozoo/zoo-api/internal/platform/postgres"
)

// handleMigrations executes a goose command against db and returns without
// starting the HTTP server.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	logger.Info("Running database migration", "command", command)
	return postgres.Migrate(ctx, db, command, logger)
}
