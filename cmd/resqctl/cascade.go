package main

import (
	"context"
	"fmt"
	"io"

	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCascadeCmd() *cobra.Command {
	var storeID string

	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Run the rescue cascade once",
		Long: `Escalate every near-expiry product through the rescue stages and create food bank
alerts, exactly as POST /api/rescue/cascade does. Suitable for cron.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := cascadeRequest(storeID)
			if err != nil {
				return err
			}

			var cascade commands.CascadeCommands
			return runApp(cmd.Context(), []fx.Option{fx.Populate(&cascade)}, func(ctx context.Context) error {
				res, err := cascade.Run(ctx, req)
				if err != nil {
					return err
				}
				printCascadeResult(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&storeID, "store", "", "limit the run to one store id")
	return cmd
}

func cascadeRequest(storeID string) (reqdto.RunCascadeRequest, error) {
	if storeID == "" {
		return reqdto.RunCascadeRequest{}, nil
	}
	id, err := uuid.Parse(storeID)
	if err != nil {
		return reqdto.RunCascadeRequest{}, fmt.Errorf("invalid --store: %w", err)
	}
	return reqdto.RunCascadeRequest{StoreID: &id}, nil
}

func printCascadeResult(w io.Writer, res *commands.CascadeResult) {
	fmt.Fprintf(w, "processed %d products, rescued %d, created %d requests\n",
		res.TotalProductsProcessed, res.TotalProductsRescued, res.RequestsCreated)
	fmt.Fprintf(w, "  stage 1 (10%% off):         %d\n", res.Counts.Stage1)
	fmt.Fprintf(w, "  stage 2 (30%% off):         %d\n", res.Counts.Stage2)
	fmt.Fprintf(w, "  stage 3 (food bank alert): %d\n", res.Counts.Stage3)
	fmt.Fprintf(w, "  stage 4 (final sale):      %d\n", res.Counts.Stage4)
}
