package notify

import (
	"context"
	"log/slog"

	"resqcart/internal/usecase/commands"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyRescueAlerts(ctx context.Context, alerts []commands.RescueAlert) error {
	for _, a := range alerts {
		n.logger.InfoContext(ctx, "food bank alert",
			slog.String("request_id", a.RequestID.String()),
			slog.String("store_id", a.StoreID.String()),
			slog.Int("items", len(a.Items)),
			slog.String("total_value", a.TotalValue.StringFixed(2)),
			slog.Float64("total_weight", a.TotalWeight),
		)
	}
	return nil
}
