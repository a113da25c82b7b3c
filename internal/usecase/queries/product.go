package queries

import (
	"context"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductFilters struct {
	Category     *string
	StoreID      *uuid.UUID
	RescueStatus *string
	AtRisk       *bool
}

// ProductPage is the keyset position of the last row already returned.
type ProductPage struct {
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filters ProductFilters, page ProductPage) ([]*ProductView, error)
	ListAtRisk(ctx context.Context) ([]*ProductView, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error)
	ListAtRisk(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *productQueriesImpl) List(ctx context.Context, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error) {
	if filters.RescueStatus != nil {
		if _, err := product.NewRescueStatus(*filters.RescueStatus); err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidFilter)
		}
	}

	limit = ClampLimit(limit)
	page := ProductPage{Limit: int32(limit + 1)}
	if cursor != nil && cursor.After != "" {
		key, err := ParsePageKey(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		page.AfterCreatedAt = &key.CreatedAt
		page.AfterID = &key.ID
	}

	rows, err := q.readStore.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: PageKey{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *productQueriesImpl) ListAtRisk(ctx context.Context) ([]*ProductView, error) {
	return q.readStore.ListAtRisk(ctx)
}
