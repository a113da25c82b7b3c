package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type ProductStatsRow struct {
	TotalProducts  int64          `db:"total_products"`
	AtRiskProducts int64          `db:"at_risk_products"`
	RevenueSaved   pgtype.Numeric `db:"revenue_saved"`
}

const getProductStats = `SELECT
	count(*) AS total_products,
	count(*) FILTER (WHERE at_risk) AS at_risk_products,
	COALESCE(sum(current_price * quantity_in_stock) FILTER (WHERE discount_percentage > 0), 0)::numeric(14,2) AS revenue_saved
FROM products`

func (q *Queries) GetProductStats(ctx context.Context, db DBTX) (ProductStatsRow, error) {
	return collectOne[ProductStatsRow](ctx, db, getProductStats)
}

type RescueImpactRow struct {
	WastePrevented      float64 `db:"waste_prevented"`
	EnvironmentalImpact float64 `db:"environmental_impact"`
}

const getRescueImpact = `SELECT
	COALESCE(sum(total_weight), 0)::float8 AS waste_prevented,
	COALESCE(sum(environmental_impact), 0)::float8 AS environmental_impact
FROM rescue_requests
WHERE status = 'completed'`

func (q *Queries) GetRescueImpact(ctx context.Context, db DBTX) (RescueImpactRow, error) {
	return collectOne[RescueImpactRow](ctx, db, getRescueImpact)
}

type CategoryDistributionRow struct {
	Category    string `db:"category"`
	TotalCount  int64  `db:"total_count"`
	AtRiskCount int64  `db:"at_risk_count"`
}

const getCategoryDistribution = `SELECT category,
	count(*) AS total_count,
	count(*) FILTER (WHERE at_risk) AS at_risk_count
FROM products
GROUP BY category
ORDER BY category`

func (q *Queries) GetCategoryDistribution(ctx context.Context, db DBTX) ([]CategoryDistributionRow, error) {
	return collectAll[CategoryDistributionRow](ctx, db, getCategoryDistribution)
}

type RescueActionDistributionRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

const getRescueActionDistribution = `SELECT rescue_status AS status, count(*) AS count
FROM products
WHERE rescue_status <> 'none'
GROUP BY rescue_status
ORDER BY rescue_status`

func (q *Queries) GetRescueActionDistribution(ctx context.Context, db DBTX) ([]RescueActionDistributionRow, error) {
	return collectAll[RescueActionDistributionRow](ctx, db, getRescueActionDistribution)
}

type MonthlyTrendRow struct {
	Month        string         `db:"month"`
	Count        int64          `db:"count"`
	SavedRevenue pgtype.Numeric `db:"saved_revenue"`
}

const getMonthlyTrends = `SELECT to_char(date_trunc('month', created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month,
	count(*) AS count,
	COALESCE(sum(total_value), 0)::numeric(14,2) AS saved_revenue
FROM rescue_requests
WHERE created_at >= $1
GROUP BY 1
ORDER BY 1`

func (q *Queries) GetMonthlyTrends(ctx context.Context, db DBTX, since pgtype.Timestamptz) ([]MonthlyTrendRow, error) {
	return collectAll[MonthlyTrendRow](ctx, db, getMonthlyTrends, since)
}
