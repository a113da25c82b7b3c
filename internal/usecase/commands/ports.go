package commands

import (
	"context"
	"log/slog"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RescueAlert is the write-side snapshot of a food-bank alert, handed to
// notifiers once the transaction that created it has committed.
type RescueAlert struct {
	RequestID           uuid.UUID
	StoreID             uuid.UUID
	DaysUntilExpiration *int
	TotalValue          decimal.Decimal
	TotalWeight         float64
	Items               []RescueAlertItem
	CreatedAt           time.Time
}

type RescueAlertItem struct {
	ProductID      uuid.UUID
	Name           string
	Category       string
	Quantity       int
	Unit           string
	ExpirationDate time.Time
}

type RescueNotifier interface {
	NotifyRescueAlerts(ctx context.Context, alerts []RescueAlert) error
}

func newRescueAlert(r *rescue.Request, products []*product.Product) RescueAlert {
	items := make([]RescueAlertItem, 0, len(products))
	for _, p := range products {
		items = append(items, RescueAlertItem{
			ProductID:      p.ID(),
			Name:           p.Name(),
			Category:       p.Category(),
			Quantity:       p.QuantityInStock(),
			Unit:           p.Unit(),
			ExpirationDate: p.ExpirationDate(),
		})
	}
	return RescueAlert{
		RequestID:           r.ID(),
		StoreID:             r.StoreID(),
		DaysUntilExpiration: r.DaysUntilExpiration(),
		TotalValue:          r.TotalValue(),
		TotalWeight:         r.TotalWeight(),
		Items:               items,
		CreatedAt:           r.CreatedAt(),
	}
}

// notifyAlerts never fails the caller: the alerts are already committed.
func notifyAlerts(ctx context.Context, notifier RescueNotifier, alerts []RescueAlert) {
	if notifier == nil || len(alerts) == 0 {
		return
	}
	if err := notifier.NotifyRescueAlerts(ctx, alerts); err != nil {
		slog.Warn("notifier failed", "alerts", len(alerts), "error", err.Error())
	}
}
