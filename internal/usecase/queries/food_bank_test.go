//go:build unit

package queries_test

import (
	"context"
	"testing"

	"resqcart/internal/domain/foodbank"
	"resqcart/internal/pkg/errs"
	queriesmock "resqcart/internal/testutil/mock/queries"
	"resqcart/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func located(name string, lat, lng float64) *queries.FoodBankView {
	return &queries.FoodBankView{
		ID:                 uuid.New(),
		Name:               name,
		Latitude:           &lat,
		Longitude:          &lng,
		VerificationStatus: "verified",
	}
}

func TestFoodBankQueries_Nearby(t *testing.T) {
	ctx := context.Background()
	originLat, originLng := 40.7128, -74.0060

	// 0.1 degree is 6.9 miles; 0.5 degree is 34.5 miles.
	near := located("Near", originLat+0.1, originLng)
	nearest := located("Nearest", originLat, originLng+0.01)
	far := located("Far", originLat+0.5, originLng)

	tests := []struct {
		name   string
		radius *float64
		want   []string
	}{
		{name: "default radius excludes far", want: []string{"Nearest", "Near"}},
		{name: "wide radius includes far", radius: ptr(50.0), want: []string{"Nearest", "Near", "Far"}},
		{name: "tight radius", radius: ptr(1.0), want: []string{"Nearest"}},
		{name: "non-positive radius falls back to default", radius: ptr(0.0), want: []string{"Nearest", "Near"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockFoodBankReadStore(ctrl)
			q := queries.NewFoodBankQueries(store)

			store.EXPECT().ListVerifiedLocated(ctx).Return([]*queries.FoodBankView{far, near, nearest}, nil)

			got, err := q.Nearby(ctx, originLat, originLng, tt.radius)
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, fb := range got {
				names[i] = fb.Name
			}
			if diff := cmp.Diff(tt.want, names); diff != "" {
				t.Errorf("nearby order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFoodBankQueries_Nearby_Distance(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockFoodBankReadStore(ctrl)
	q := queries.NewFoodBankQueries(store)

	store.EXPECT().ListVerifiedLocated(ctx).Return([]*queries.FoodBankView{located("One", 1, 0)}, nil)

	got, err := q.Nearby(ctx, 0, 0, ptr(100.0))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, foodbank.MilesPerDegree, got[0].Distance, 1e-9)
}

func TestFoodBankQueries_Nearby_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queries.NewFoodBankQueries(queriesmock.NewMockFoodBankReadStore(ctrl))

	_, err := q.Nearby(context.Background(), 123, 0, nil)
	assert.True(t, errs.Is(err, queries.ErrInvalidCoordinates))
}

func TestFoodBankQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("status filter is parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFoodBankReadStore(ctrl)
		q := queries.NewFoodBankQueries(store)

		store.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, status *foodbank.VerificationStatus) ([]*queries.FoodBankView, error) {
				require.NotNil(t, status)
				assert.Equal(t, foodbank.VerificationPending, *status)
				return nil, nil
			})

		_, err := q.List(ctx, "pending")
		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewFoodBankQueries(queriesmock.NewMockFoodBankReadStore(ctrl))

		_, err := q.List(ctx, "approved")
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})
}

func ptr[T any](v T) *T { return &v }
