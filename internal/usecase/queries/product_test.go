//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"resqcart/internal/infra"
	"resqcart/internal/pkg/errs"
	queriesmock "resqcart/internal/testutil/mock/queries"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func productViews(n int, newest time.Time) []*queries.ProductView {
	out := make([]*queries.ProductView, n)
	for i := range out {
		out[i] = &queries.ProductView{ID: uuid.New(), CreatedAt: newest.Add(-time.Duration(i) * time.Minute)}
	}
	return out
}

func TestProductQueries_List(t *testing.T) {
	ctx := context.Background()
	newest := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first page returns next cursor when more rows exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		q := queries.NewProductQueries(store)

		rows := productViews(3, newest)
		store.EXPECT().List(ctx, queries.ProductFilters{}, queries.ProductPage{Limit: 3}).Return(rows, nil)

		got, next, err := q.List(ctx, queries.ProductFilters{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		key, err := queries.ParsePageKey(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, key.ID)
		assert.True(t, rows[1].CreatedAt.Equal(key.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		q := queries.NewProductQueries(store)

		lastAt := newest
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.PageKey{CreatedAt: lastAt, ID: lastID}.Encode()}

		store.EXPECT().List(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ queries.ProductFilters, page queries.ProductPage) ([]*queries.ProductView, error) {
				require.NotNil(t, page.AfterID)
				assert.Equal(t, lastID, *page.AfterID)
				assert.True(t, page.AfterCreatedAt.Equal(lastAt))
				return productViews(1, newest.Add(-time.Hour)), nil
			})

		got, next, err := q.List(ctx, queries.ProductFilters{}, cursor, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewProductQueries(queriesmock.NewMockProductReadStore(ctrl))

		_, _, err := q.List(ctx, queries.ProductFilters{}, &queries.Cursor{After: "garbage"}, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})

	t.Run("invalid rescue status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewProductQueries(queriesmock.NewMockProductReadStore(ctrl))

		bad := "composted"
		_, _, err := q.List(ctx, queries.ProductFilters{RescueStatus: &bad}, nil, 10)
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})
}

func TestProductQueries_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)
	q := queries.NewProductQueries(store)

	id := uuid.New()
	store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

	_, err := q.GetByID(ctx, id)
	assert.ErrorIs(t, err, queries.ErrProductNotFound)
}
