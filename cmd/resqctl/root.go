package main

import (
	"context"
	"time"

	"resqcart/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resqctl",
		Short: "Operate a ResQCart deployment",
		Long: `resqctl runs maintenance tasks against the ResQCart database using the same
environment variables as the API server.

  migrate       apply schema migrations
  seed          load demo stores, products and food banks
  cascade       run the rescue cascade once
  admin create  create a dashboard administrator`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCascadeCmd(),
		newAdminCmd(),
		newPurgeKeysCmd(),
	)
	return root
}

// runApp starts the core graph, fills targets from it and stops it once run returns.
func runApp(ctx context.Context, opts []fx.Option, run func(ctx context.Context) error) error {
	app := fx.New(append([]fx.Option{bootstrap.CoreModule, fx.NopLogger}, opts...)...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return run(ctx)
}
