package queries

import (
	"context"
	"sort"

	"resqcart/internal/domain/foodbank"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultNearbyRadiusMiles = 25.0

type FoodBankReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FoodBankView, error)
	List(ctx context.Context, status *foodbank.VerificationStatus) ([]*FoodBankView, error)
	// ListVerifiedLocated returns verified food banks that have coordinates.
	ListVerifiedLocated(ctx context.Context) ([]*FoodBankView, error)
}

type FoodBankQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FoodBankView, error)
	List(ctx context.Context, status string) ([]*FoodBankView, error)
	Nearby(ctx context.Context, lat, lng float64, radiusMiles *float64) ([]*NearbyFoodBankView, error)
}

type foodBankQueriesImpl struct {
	readStore FoodBankReadStore
}

func NewFoodBankQueries(readStore FoodBankReadStore) FoodBankQueries {
	return &foodBankQueriesImpl{readStore: readStore}
}

func (q *foodBankQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FoodBankView, error) {
	fb, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFoodBankNotFound
		}
		return nil, err
	}
	return fb, nil
}

func (q *foodBankQueriesImpl) List(ctx context.Context, status string) ([]*FoodBankView, error) {
	if status == "" {
		return q.readStore.List(ctx, nil)
	}
	s, err := foodbank.ParseVerificationStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFilter)
	}
	return q.readStore.List(ctx, &s)
}

// Nearby ranks verified food banks by planar distance from (lat, lng).
func (q *foodBankQueriesImpl) Nearby(ctx context.Context, lat, lng float64, radiusMiles *float64) ([]*NearbyFoodBankView, error) {
	origin, err := foodbank.NewCoordinates(lat, lng)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoordinates)
	}
	radius := DefaultNearbyRadiusMiles
	if radiusMiles != nil && *radiusMiles > 0 {
		radius = *radiusMiles
	}

	candidates, err := q.readStore.ListVerifiedLocated(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*NearbyFoodBankView, 0, len(candidates))
	for _, fb := range candidates {
		if fb.Latitude == nil || fb.Longitude == nil {
			continue
		}
		d := origin.DistanceMiles(foodbank.Coordinates{Lat: *fb.Latitude, Lng: *fb.Longitude})
		if d > radius {
			continue
		}
		out = append(out, &NearbyFoodBankView{FoodBankView: *fb, Distance: d})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}
