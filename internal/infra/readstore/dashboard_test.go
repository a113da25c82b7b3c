//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/readstore"
	"resqcart/internal/pkg/pgconv"
	readstoremock "resqcart/internal/testutil/mock/readstore"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardReadStore_ProductTotals(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockDashboardReadQueries(ctrl)
	store := readstore.NewDashboardReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetProductStats(ctx, gomock.Any()).Return(query.ProductStatsRow{
		TotalProducts:  40,
		AtRiskProducts: 7,
		RevenueSaved:   pgconv.DecimalToNumeric(decimal.RequireFromString("128.40")),
	}, nil)

	got, err := store.ProductTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.TotalProducts)
	assert.Equal(t, int64(7), got.AtRiskProducts)
	assert.Equal(t, "128.4", got.RevenueSaved.String())
}

func TestDashboardReadStore_MonthlyTrends(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("passes window start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDashboardReadQueries(ctrl)
		store := readstore.NewDashboardReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetMonthlyTrends(ctx, gomock.Any(), pgtype.Timestamptz{Time: since, Valid: true}).
			Return([]query.MonthlyTrendRow{{Month: "2025-03", Count: 4, SavedRevenue: pgconv.DecimalToNumeric(decimal.NewFromInt(52))}}, nil)

		got, err := store.MonthlyTrends(ctx, since)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2025-03", got[0].Month)
		assert.True(t, got[0].SavedRevenue.Equal(decimal.NewFromInt(52)))
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockDashboardReadQueries(ctrl)
		store := readstore.NewDashboardReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetMonthlyTrends(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.MonthlyTrends(ctx, since)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
