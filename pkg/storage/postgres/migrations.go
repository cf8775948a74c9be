package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	// database/sql driver "pgx" used by goose.
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations brings the schema at dsn up to date with the embedded
// goose migrations.
func ApplyMigrations(ctx context.Context, dsn string) error {
	const op = "storage.postgres.ApplyMigrations"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("%s: open db: %w", op, err)
	}
	defer db.Close()

	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%s: migrations dir: %w", op, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("%s: new provider: %w", op, err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("%s: migrate up: %w", op, err)
	}
	return nil
}
