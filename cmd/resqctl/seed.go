package main

import (
	"context"
	"fmt"
	"os"

	"resqcart/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data from YAML fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixtures, err := loadFixtures(file)
			if err != nil {
				return err
			}

			var seeder *seed.Seeder
			opts := []fx.Option{fx.Provide(seed.NewSeeder), fx.Populate(&seeder)}
			return runApp(cmd.Context(), opts, func(ctx context.Context) error {
				sum, err := seeder.Run(ctx, fixtures)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d stores, %d products, %d food banks (%d skipped)\n",
					sum.Stores, sum.Products, sum.FoodBanks, sum.Skipped)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file (defaults to the bundled demo data)")
	return cmd
}

func loadFixtures(file string) (*seed.Fixtures, error) {
	if file == "" {
		return seed.Default()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}
