package readstore

import (
	"context"
	"time"

	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
	"resqcart/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type DashboardReadQueries interface {
	GetProductStats(ctx context.Context, db query.DBTX) (query.ProductStatsRow, error)
	GetRescueImpact(ctx context.Context, db query.DBTX) (query.RescueImpactRow, error)
	GetCategoryDistribution(ctx context.Context, db query.DBTX) ([]query.CategoryDistributionRow, error)
	GetRescueActionDistribution(ctx context.Context, db query.DBTX) ([]query.RescueActionDistributionRow, error)
	GetMonthlyTrends(ctx context.Context, db query.DBTX, since pgtype.Timestamptz) ([]query.MonthlyTrendRow, error)
}

// DashboardReadStore runs each aggregate on its own pool connection, so its
// methods are safe to call concurrently.
type DashboardReadStore struct {
	queries DashboardReadQueries
	db      query.DBTX
}

func NewDashboardReadStore(queries DashboardReadQueries, db query.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DashboardReadStore) ProductTotals(ctx context.Context) (*queries.ProductTotals, error) {
	row, err := r.queries.GetProductStats(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate product stats", err)
	}
	return &queries.ProductTotals{
		TotalProducts:  row.TotalProducts,
		AtRiskProducts: row.AtRiskProducts,
		RevenueSaved:   pgconv.DecimalFromNumeric(row.RevenueSaved),
	}, nil
}

func (r *DashboardReadStore) RescueImpact(ctx context.Context) (*queries.RescueImpact, error) {
	row, err := r.queries.GetRescueImpact(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate rescue impact", err)
	}
	return &queries.RescueImpact{
		WastePrevented:      row.WastePrevented,
		EnvironmentalImpact: row.EnvironmentalImpact,
	}, nil
}

func (r *DashboardReadStore) CategoryDistribution(ctx context.Context) ([]*queries.CategoryCount, error) {
	rows, err := r.queries.GetCategoryDistribution(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate category distribution", err)
	}
	out := make([]*queries.CategoryCount, len(rows))
	for i, row := range rows {
		out[i] = &queries.CategoryCount{
			Category:    row.Category,
			TotalCount:  row.TotalCount,
			AtRiskCount: row.AtRiskCount,
		}
	}
	return out, nil
}

func (r *DashboardReadStore) RescueActionDistribution(ctx context.Context) ([]*queries.RescueActionCount, error) {
	rows, err := r.queries.GetRescueActionDistribution(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate rescue actions", err)
	}
	out := make([]*queries.RescueActionCount, len(rows))
	for i, row := range rows {
		out[i] = &queries.RescueActionCount{Status: row.Status, Count: row.Count}
	}
	return out, nil
}

func (r *DashboardReadStore) MonthlyTrends(ctx context.Context, since time.Time) ([]*queries.MonthlyTrend, error) {
	rows, err := r.queries.GetMonthlyTrends(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate monthly trends", err)
	}
	out := make([]*queries.MonthlyTrend, len(rows))
	for i, row := range rows {
		out[i] = &queries.MonthlyTrend{
			Month:        row.Month,
			Count:        row.Count,
			SavedRevenue: pgconv.DecimalFromNumeric(row.SavedRevenue),
		}
	}
	return out, nil
}
