// Command migrate creates or updates the database schema and exits.
// The app is never started; all work happens in the invoke.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"tarjeta/config"
	logs "tarjeta/internal/infra/log"
	"tarjeta/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

const migrateTimeout = 2 * time.Minute

type migrateParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
		),
		fx.Invoke(runMigrations),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func runMigrations(params migrateParams) error {
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	db, err := postgres.Open(params.Config, params.Logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	params.Logger.Info("Database schema migrated")

	return nil
}
