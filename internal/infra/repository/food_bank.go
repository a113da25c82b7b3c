package repository

import (
	"context"

	"resqcart/internal/domain/foodbank"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/repository/converter"
	"resqcart/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FoodBankWriteQueries interface {
	CreateFoodBank(ctx context.Context, db query.DBTX, arg query.CreateFoodBankParams) error
	GetFoodBankByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.FoodBanks, error)
	GetFoodBankForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.FoodBanks, error)
	UpdateFoodBankVerification(ctx context.Context, db query.DBTX, arg query.UpdateFoodBankVerificationParams) (int64, error)
}

type FoodBankRepository struct {
	queries FoodBankWriteQueries
}

func NewFoodBankRepository(queries FoodBankWriteQueries) *FoodBankRepository {
	return &FoodBankRepository{queries: queries}
}

func (r *FoodBankRepository) Create(ctx context.Context, db query.DBTX, fb *foodbank.FoodBank) error {
	if err := r.queries.CreateFoodBank(ctx, db, converter.FoodBankToCreateParams(fb)); err != nil {
		return infra.WrapRepoErr("failed to create food bank", err)
	}
	return nil
}

func (r *FoodBankRepository) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*foodbank.FoodBank, error) {
	row, err := r.queries.GetFoodBankByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find food bank", err)
	}
	return converter.FoodBankFromRow(row), nil
}

func (r *FoodBankRepository) FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*foodbank.FoodBank, error) {
	row, err := r.queries.GetFoodBankForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock food bank", err)
	}
	return converter.FoodBankFromRow(row), nil
}

func (r *FoodBankRepository) UpdateVerification(ctx context.Context, db query.DBTX, fb *foodbank.FoodBank) error {
	n, err := r.queries.UpdateFoodBankVerification(ctx, db, query.UpdateFoodBankVerificationParams{
		ID:                 fb.ID(),
		VerificationStatus: fb.VerificationStatus().String(),
		UpdatedAt:          pgconv.TimeToPgtype(fb.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update food bank verification", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("food bank not found", nil, infra.KindNotFound)
	}
	return nil
}
