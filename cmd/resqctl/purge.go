package main

import (
	"context"
	"fmt"

	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newPurgeKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-keys",
		Short: "Delete expired Idempotency-Key records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pool *pgxpool.Pool
				q    *query.Queries
				clk  clock.Clock
			)
			opts := []fx.Option{fx.Populate(&pool, &q, &clk)}
			return runApp(cmd.Context(), opts, func(ctx context.Context) error {
				n, err := q.DeleteExpiredIdempotencyKeys(ctx, pool, pgconv.TimeToPgtype(clk.Now()))
				if err != nil {
					return fmt.Errorf("failed to purge idempotency keys: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired keys\n", n)
				return nil
			})
		},
	}
}
