package db

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    name       TEXT        NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// migrationVersion takes the leading digits of "001_initial_schema.sql".
func migrationVersion(file string) string {
	version, _, _ := strings.Cut(file, "_")
	return version
}

// ApplyMigrations runs each file not yet recorded in schema_migrations, one transaction per file.
// It returns the files it applied.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, files []string) ([]string, error) {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var applied []string
	for _, file := range files {
		sql, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		done, err := applyOne(ctx, pool, migrationVersion(file), file, string(sql))
		if err != nil {
			return applied, fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
		if done {
			slog.InfoContext(ctx, "migration applied", "file", file)
			applied = append(applied, file)
		}
	}
	return applied, nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, version, file, sql string) (bool, error) {
	var applied bool
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2) ON CONFLICT (version) DO NOTHING`,
			version, file)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, sql); err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}
