package pg

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/indexops/adminkit/core/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies the bundled schema migrations. goose does not speak pgx
// natively, so the pool is adapted through the database/sql bridge for the
// duration of the migration; the bridge is not closed because it shares
// connections with the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)

	goose.SetBaseFS(embedMigrations)
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if log != nil {
		log.InfoContext(ctx, "database migrations applied", logger.Component("pg"))
	}
	return nil
}
