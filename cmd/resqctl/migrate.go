package main

import (
	"context"
	"fmt"

	"resqcart/internal/infra/db"
	"resqcart/internal/pkg/config"
	"resqcart/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const (
	engineSQL   = "sql"
	engineAtlas = "atlas"
)

func newMigrateCmd() *cobra.Command {
	var (
		engine   string
		atlasBin string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the embedded migrations.

The sql engine tracks applied files in schema_migrations. The atlas engine shells out to
the atlas CLI and relies on atlas.sum; pick one engine per database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				applied []string
				err     error
			)
			switch engine {
			case engineSQL:
				applied, err = migrateSQL(cmd.Context())
			case engineAtlas:
				applied, err = migrateAtlas(cmd.Context(), atlasBin)
			default:
				return fmt.Errorf("unknown engine %q (want %s or %s)", engine, engineSQL, engineAtlas)
			}
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, f := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "applied", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&engine, "engine", engineSQL, "migration engine: sql or atlas")
	cmd.Flags().StringVar(&atlasBin, "atlas-bin", "atlas", "path to the atlas CLI")
	return cmd
}

func migrateSQL(ctx context.Context) ([]string, error) {
	var (
		pool    *pgxpool.Pool
		applied []string
	)
	err := runApp(ctx, []fx.Option{fx.Populate(&pool)}, func(ctx context.Context) error {
		var err error
		applied, err = db.ApplyMigrations(ctx, pool, migrations.FS, migrations.Files)
		return err
	})
	return applied, err
}

func migrateAtlas(ctx context.Context, bin string) ([]string, error) {
	// config only: atlas opens its own connection
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return db.ApplyWithAtlas(ctx, cfg.DB, migrations.FS, bin)
}
