package bootstrap

import (
	"context"
	"log/slog"

	"resqcart/internal/infra/db"
	"resqcart/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPool,
	),
)

// NewPool connects eagerly so a bad DSN fails fx startup instead of the first request.
func NewPool(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			logger.Info("database pool closed")
			return nil
		},
	})
	return pool, nil
}
