package components

import (
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/readstore"
	"resqcart/internal/infra/uow"
	"resqcart/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// RescueRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RescueRequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewRescueRequestReadStore,
			fx.As(new(queries.RescueRequestReadStore)),
		),
		// FoodBank
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FoodBankReadQueries)),
		),
		fx.Annotate(
			readstore.NewFoodBankReadStore,
			fx.As(new(queries.FoodBankReadStore)),
		),
		// Admin
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AdminReadQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
		// Dashboard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DashboardReadQueries)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
	),
)

// Write repositories are created lazily per transaction by the UnitOfWork.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
