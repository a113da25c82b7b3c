//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"resqcart/internal/domain/rescue"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/readstore"
	readstoremock "resqcart/internal/testutil/mock/readstore"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createRequestRow(status string) query.RescueRequestView {
	now := time.Now()
	return query.RescueRequestView{
		RescueRequests: query.RescueRequests{
			ID:                  uuid.New(),
			StoreID:             uuid.New(),
			RescueType:          "food-bank-alert",
			RescueCascadeStage:  3,
			DaysUntilExpiration: pgtype.Int4{Int32: 2, Valid: true},
			Status:              status,
			CreatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
			UpdatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
		},
		StoreName: "Downtown Market",
	}
}

func TestRescueRequestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches products and optional food bank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRescueRequestReadQueries(ctrl)
		store := readstore.NewRescueRequestReadStore(mockQueries, &mockDBTX{})

		row := createRequestRow("accepted")
		fbID := uuid.New()
		row.FoodBankID = pgtype.UUID{Bytes: fbID, Valid: true}
		row.FoodBankName = pgtype.Text{String: "Central Food Bank", Valid: true}
		productID := uuid.New()

		mockQueries.EXPECT().GetRescueRequestView(ctx, gomock.Any(), row.ID).Return(row, nil)
		mockQueries.EXPECT().ListRescueRequestProducts(ctx, gomock.Any(), []uuid.UUID{row.ID}).
			Return([]query.RescueRequestProductRow{{
				RescueRequestID: row.ID,
				ProductID:       productID,
				Name:            "Bananas",
				QuantityInStock: 30,
			}}, nil)

		view, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)
		require.Len(t, view.Products, 1)
		assert.Equal(t, productID, view.Products[0].ID)
		require.NotNil(t, view.FoodBankID)
		assert.Equal(t, fbID, *view.FoodBankID)
		require.NotNil(t, view.FoodBankName)
		assert.Equal(t, "Central Food Bank", *view.FoodBankName)
		require.NotNil(t, view.DaysUntilExpiration)
		assert.Equal(t, 2, *view.DaysUntilExpiration)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRescueRequestReadQueries(ctrl)
		store := readstore.NewRescueRequestReadStore(mockQueries, &mockDBTX{})

		id := uuid.New()
		mockQueries.EXPECT().GetRescueRequestView(ctx, gomock.Any(), id).Return(query.RescueRequestView{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, id)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRescueRequestReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result skips product lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRescueRequestReadQueries(ctrl)
		store := readstore.NewRescueRequestReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListRescueRequests(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		views, err := store.List(ctx, queries.RescueRequestFilters{})
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("groups products per request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRescueRequestReadQueries(ctrl)
		store := readstore.NewRescueRequestReadStore(mockQueries, &mockDBTX{})

		status := rescue.StatusPending
		first, second := createRequestRow("pending"), createRequestRow("pending")

		mockQueries.EXPECT().ListRescueRequests(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListRescueRequestsParams) ([]query.RescueRequestView, error) {
				assert.Equal(t, pgtype.Text{String: "pending", Valid: true}, arg.Status)
				assert.False(t, arg.StoreID.Valid)
				return []query.RescueRequestView{first, second}, nil
			})
		mockQueries.EXPECT().ListRescueRequestProducts(ctx, gomock.Any(), []uuid.UUID{first.ID, second.ID}).
			Return([]query.RescueRequestProductRow{
				{RescueRequestID: first.ID, ProductID: uuid.New()},
				{RescueRequestID: first.ID, ProductID: uuid.New()},
				{RescueRequestID: second.ID, ProductID: uuid.New()},
			}, nil)

		views, err := store.List(ctx, queries.RescueRequestFilters{Status: &status})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Len(t, views[0].Products, 2)
		assert.Len(t, views[1].Products, 1)
		assert.Nil(t, views[0].FoodBankName)
	})
}
