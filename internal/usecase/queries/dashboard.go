package queries

import (
	"context"
	"time"

	"resqcart/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TrendMonths is how many calendar months, including the current one, the trend covers.
const TrendMonths = 6

type ProductTotals struct {
	TotalProducts  int64
	AtRiskProducts int64
	RevenueSaved   decimal.Decimal
}

type RescueImpact struct {
	WastePrevented      float64
	EnvironmentalImpact float64
}

type DashboardStats struct {
	TotalProducts       int64           `json:"totalProducts"`
	AtRiskProducts      int64           `json:"atRiskProducts"`
	WastePrevented      float64         `json:"wastePrevented"`
	RevenueSaved        decimal.Decimal `json:"revenueSaved"`
	EnvironmentalImpact float64         `json:"environmentalImpact"`
}

type CategoryCount struct {
	Category    string `json:"category"`
	TotalCount  int64  `json:"totalCount"`
	AtRiskCount int64  `json:"atRiskCount"`
}

type RescueActionCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyTrend struct {
	Month        string          `json:"month"`
	Count        int64           `json:"count"`
	SavedRevenue decimal.Decimal `json:"savedRevenue"`
}

type DashboardView struct {
	Stats                    DashboardStats       `json:"stats"`
	CategoryDistribution     []*CategoryCount     `json:"categoryDistribution"`
	RescueActionDistribution []*RescueActionCount `json:"rescueActionDistribution"`
	MonthlyTrends            []*MonthlyTrend      `json:"monthlyTrends"`
}

type DashboardReadStore interface {
	ProductTotals(ctx context.Context) (*ProductTotals, error)
	RescueImpact(ctx context.Context) (*RescueImpact, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryCount, error)
	RescueActionDistribution(ctx context.Context) ([]*RescueActionCount, error)
	MonthlyTrends(ctx context.Context, since time.Time) ([]*MonthlyTrend, error)
}

type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
	clock     clock.Clock
}

func NewDashboardQueries(readStore DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore, clock: clk}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardView, error) {
	var (
		totals *ProductTotals
		impact *RescueImpact
		view   DashboardView
	)
	trendsSince := TrendWindowStart(q.clock.Now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = q.readStore.ProductTotals(gctx)
		return err
	})
	g.Go(func() (err error) {
		impact, err = q.readStore.RescueImpact(gctx)
		return err
	})
	g.Go(func() (err error) {
		view.CategoryDistribution, err = q.readStore.CategoryDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		view.RescueActionDistribution, err = q.readStore.RescueActionDistribution(gctx)
		return err
	})
	g.Go(func() (err error) {
		view.MonthlyTrends, err = q.readStore.MonthlyTrends(gctx, trendsSince)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view.Stats = DashboardStats{
		TotalProducts:       totals.TotalProducts,
		AtRiskProducts:      totals.AtRiskProducts,
		WastePrevented:      impact.WastePrevented,
		RevenueSaved:        totals.RevenueSaved,
		EnvironmentalImpact: impact.EnvironmentalImpact,
	}
	if view.CategoryDistribution == nil {
		view.CategoryDistribution = []*CategoryCount{}
	}
	if view.RescueActionDistribution == nil {
		view.RescueActionDistribution = []*RescueActionCount{}
	}
	if view.MonthlyTrends == nil {
		view.MonthlyTrends = []*MonthlyTrend{}
	}
	return &view, nil
}

// TrendWindowStart is midnight UTC on the first day of the oldest month in the trend.
func TrendWindowStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month()-(TrendMonths-1), 1, 0, 0, 0, 0, time.UTC)
}
