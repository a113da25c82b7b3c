//go:build unit

package queries_test

import (
	"context"
	"testing"

	"resqcart/internal/domain/rescue"
	"resqcart/internal/pkg/errs"
	queriesmock "resqcart/internal/testutil/mock/queries"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRescueRequestQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("no status lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRescueRequestReadStore(ctrl)
		q := queries.NewRescueRequestQueries(store)

		store.EXPECT().List(ctx, queries.RescueRequestFilters{}).Return([]*queries.RescueRequestView{{ID: uuid.New()}}, nil)

		got, err := q.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("valid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRescueRequestReadStore(ctrl)
		q := queries.NewRescueRequestQueries(store)

		status := rescue.StatusInProgress
		store.EXPECT().List(ctx, queries.RescueRequestFilters{Status: &status}).Return(nil, nil)

		_, err := q.List(ctx, "in-progress")
		require.NoError(t, err)
	})

	t.Run("invalid status never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewRescueRequestQueries(queriesmock.NewMockRescueRequestReadStore(ctrl))

		_, err := q.List(ctx, "archived")
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
		assert.True(t, errs.Is(err, rescue.ErrInvalidStatus))
	})
}

func TestRescueRequestQueries_ListByStore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRescueRequestReadStore(ctrl)
	q := queries.NewRescueRequestQueries(store)

	storeID := uuid.New()
	store.EXPECT().List(ctx, queries.RescueRequestFilters{StoreID: &storeID}).Return(nil, nil)

	_, err := q.ListByStore(ctx, storeID)
	require.NoError(t, err)
}
