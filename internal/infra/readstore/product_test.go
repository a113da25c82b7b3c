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
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createProductRow(name string, createdAt time.Time) query.ProductWithStore {
	return query.ProductWithStore{
		Products: query.Products{
			ID:                uuid.New(),
			StoreID:           uuid.New(),
			Name:              name,
			Category:          "Dairy",
			Sku:               "SKU-" + name,
			Price:             pgconv.DecimalToNumeric(decimal.RequireFromString("3.50")),
			CurrentPrice:      pgconv.DecimalToNumeric(decimal.RequireFromString("3.15")),
			QuantityInStock:   12,
			Unit:              "each",
			ExpirationDate:    pgtype.Timestamptz{Time: createdAt.Add(72 * time.Hour), Valid: true},
			StorageConditions: "refrigerated",
			RescueStatus:      "price-reduction",
			RescueStage:       1,
			CreatedAt:         pgtype.Timestamptz{Time: createdAt, Valid: true},
			UpdatedAt:         pgtype.Timestamptz{Time: createdAt, Valid: true},
		},
		StoreName: "Downtown Market",
	}
}

func TestProductReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockProductReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: product found",
			setupMock: func(mock *readstoremock.MockProductReadQueries) {
				row := createProductRow("Yogurt", time.Now())
				row.ID = productID
				mock.EXPECT().GetProductByID(ctx, gomock.Any(), productID).Return(row, nil)
			},
		},
		{
			name: "error: product not found",
			setupMock: func(mock *readstoremock.MockProductReadQueries) {
				mock.EXPECT().GetProductByID(ctx, gomock.Any(), productID).Return(query.ProductWithStore{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockProductReadQueries) {
				mock.EXPECT().GetProductByID(ctx, gomock.Any(), productID).Return(query.ProductWithStore{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
			store := readstore.NewProductReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			result, err := store.FindByID(ctx, productID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, result.ID)
			assert.Equal(t, "Downtown Market", result.StoreName)
			assert.True(t, result.CurrentPrice.Equal(decimal.RequireFromString("3.15")))
			assert.Equal(t, 1, result.RescueStage)
			assert.Nil(t, result.RescueActionDate)
		})
	}
}

func TestProductReadStore_List(t *testing.T) {
	ctx := context.Background()
	category := "Dairy"
	atRisk := true
	storeID := uuid.New()
	afterAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	afterID := uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
	store := readstore.NewProductReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListProducts(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.ListProductsParams) ([]query.ProductWithStore, error) {
			assert.Equal(t, pgtype.Text{String: "Dairy", Valid: true}, arg.Category)
			assert.Equal(t, pgtype.UUID{Bytes: storeID, Valid: true}, arg.StoreID)
			assert.False(t, arg.RescueStatus.Valid)
			assert.Equal(t, pgtype.Bool{Bool: true, Valid: true}, arg.AtRisk)
			assert.True(t, arg.AfterCreatedAt.Time.Equal(afterAt))
			assert.Equal(t, pgtype.UUID{Bytes: afterID, Valid: true}, arg.AfterID)
			assert.Equal(t, int32(21), arg.Limit)
			return []query.ProductWithStore{
				createProductRow("Milk", afterAt.Add(-time.Hour)),
				createProductRow("Cheese", afterAt.Add(-2*time.Hour)),
			}, nil
		})

	views, err := store.List(ctx,
		queries.ProductFilters{Category: &category, StoreID: &storeID, AtRisk: &atRisk},
		queries.ProductPage{AfterCreatedAt: &afterAt, AfterID: &afterID, Limit: 21},
	)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Milk", views[0].Name)
	assert.Equal(t, "Cheese", views[1].Name)
}

func TestProductReadStore_ListAtRisk_DBFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockProductReadQueries(ctrl)
	store := readstore.NewProductReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListAtRiskProducts(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

	views, err := store.ListAtRisk(ctx)
	assert.Nil(t, views)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
