package readstore

import (
	"context"

	"resqcart/internal/domain/foodbank"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FoodBankReadQueries interface {
	GetFoodBankByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.FoodBanks, error)
	ListFoodBanks(ctx context.Context, db query.DBTX, status pgtype.Text) ([]query.FoodBanks, error)
	ListVerifiedLocatedFoodBanks(ctx context.Context, db query.DBTX) ([]query.FoodBanks, error)
}

type FoodBankReadStore struct {
	queries FoodBankReadQueries
	db      query.DBTX
}

func NewFoodBankReadStore(queries FoodBankReadQueries, db query.DBTX) *FoodBankReadStore {
	return &FoodBankReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FoodBankReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FoodBankView, error) {
	row, err := r.queries.GetFoodBankByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("food bank not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get food bank by id", err)
	}
	return toFoodBankView(row), nil
}

func (r *FoodBankReadStore) List(ctx context.Context, status *foodbank.VerificationStatus) ([]*queries.FoodBankView, error) {
	var filter pgtype.Text
	if status != nil {
		filter = pgtype.Text{String: status.String(), Valid: true}
	}
	rows, err := r.queries.ListFoodBanks(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list food banks", err)
	}
	return toFoodBankViews(rows), nil
}

func (r *FoodBankReadStore) ListVerifiedLocated(ctx context.Context) ([]*queries.FoodBankView, error) {
	rows, err := r.queries.ListVerifiedLocatedFoodBanks(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list verified food banks", err)
	}
	return toFoodBankViews(rows), nil
}

func toFoodBankViews(rows []query.FoodBanks) []*queries.FoodBankView {
	out := make([]*queries.FoodBankView, len(rows))
	for i, row := range rows {
		out[i] = toFoodBankView(row)
	}
	return out
}

func toFoodBankView(row query.FoodBanks) *queries.FoodBankView {
	categories := row.AcceptedCategories
	if categories == nil {
		categories = []string{}
	}
	return &queries.FoodBankView{
		ID:                 row.ID,
		Name:               row.Name,
		ContactPerson:      row.ContactPerson,
		Email:              row.Email,
		Phone:              row.Phone,
		Street:             row.Street,
		City:               row.City,
		State:              row.State,
		ZipCode:            row.ZipCode,
		Latitude:           pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:          pgconv.Float64PtrFromPgtype(row.Longitude),
		VerificationStatus: row.VerificationStatus,
		AcceptedCategories: categories,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
