package queries

import (
	"context"

	"resqcart/internal/domain/rescue"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/errs"

	"github.com/google/uuid"
)

type RescueRequestFilters struct {
	Status     *rescue.Status
	StoreID    *uuid.UUID
	FoodBankID *uuid.UUID
}

type RescueRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RescueRequestView, error)
	List(ctx context.Context, filters RescueRequestFilters) ([]*RescueRequestView, error)
}

type RescueRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RescueRequestView, error)
	// List accepts an empty status to mean "all".
	List(ctx context.Context, status string) ([]*RescueRequestView, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*RescueRequestView, error)
	ListByFoodBank(ctx context.Context, foodBankID uuid.UUID) ([]*RescueRequestView, error)
}

type rescueRequestQueriesImpl struct {
	readStore RescueRequestReadStore
}

func NewRescueRequestQueries(readStore RescueRequestReadStore) RescueRequestQueries {
	return &rescueRequestQueriesImpl{readStore: readStore}
}

func (q *rescueRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RescueRequestView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRescueRequestNotFound
		}
		return nil, err
	}
	return r, nil
}

func (q *rescueRequestQueriesImpl) List(ctx context.Context, status string) ([]*RescueRequestView, error) {
	var filters RescueRequestFilters
	if status != "" {
		s, err := rescue.ParseStatus(status)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidFilter)
		}
		filters.Status = &s
	}
	return q.readStore.List(ctx, filters)
}

func (q *rescueRequestQueriesImpl) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*RescueRequestView, error) {
	return q.readStore.List(ctx, RescueRequestFilters{StoreID: &storeID})
}

func (q *rescueRequestQueriesImpl) ListByFoodBank(ctx context.Context, foodBankID uuid.UUID) ([]*RescueRequestView, error) {
	return q.readStore.List(ctx, RescueRequestFilters{FoodBankID: &foodBankID})
}
