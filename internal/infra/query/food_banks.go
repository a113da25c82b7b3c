package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const foodBankColumns = `id, name, contact_person, email, phone, street, city, state, zip_code,
	latitude, longitude, verification_status, accepted_categories, created_at, updated_at`

type CreateFoodBankParams struct {
	ID                 uuid.UUID
	Name               string
	ContactPerson      string
	Email              string
	Phone              string
	Street             string
	City               string
	State              string
	ZipCode            string
	Latitude           pgtype.Float8
	Longitude          pgtype.Float8
	VerificationStatus string
	AcceptedCategories []string
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

const createFoodBank = `INSERT INTO food_banks (` + foodBankColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (q *Queries) CreateFoodBank(ctx context.Context, db DBTX, arg CreateFoodBankParams) error {
	_, err := db.Exec(ctx, createFoodBank,
		arg.ID, arg.Name, arg.ContactPerson, arg.Email, arg.Phone, arg.Street, arg.City, arg.State,
		arg.ZipCode, arg.Latitude, arg.Longitude, arg.VerificationStatus, arg.AcceptedCategories,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getFoodBankByID = `SELECT ` + foodBankColumns + ` FROM food_banks WHERE id = $1`

func (q *Queries) GetFoodBankByID(ctx context.Context, db DBTX, id uuid.UUID) (FoodBanks, error) {
	return collectOne[FoodBanks](ctx, db, getFoodBankByID, id)
}

const getFoodBankForUpdate = getFoodBankByID + ` FOR UPDATE`

func (q *Queries) GetFoodBankForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (FoodBanks, error) {
	return collectOne[FoodBanks](ctx, db, getFoodBankForUpdate, id)
}

type UpdateFoodBankVerificationParams struct {
	ID                 uuid.UUID
	VerificationStatus string
	UpdatedAt          pgtype.Timestamptz
}

const updateFoodBankVerification = `UPDATE food_banks SET verification_status = $2, updated_at = $3 WHERE id = $1`

func (q *Queries) UpdateFoodBankVerification(ctx context.Context, db DBTX, arg UpdateFoodBankVerificationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateFoodBankVerification, arg.ID, arg.VerificationStatus, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listFoodBanks = `SELECT ` + foodBankColumns + ` FROM food_banks
WHERE ($1::text IS NULL OR verification_status = $1)
ORDER BY name, id`

func (q *Queries) ListFoodBanks(ctx context.Context, db DBTX, status pgtype.Text) ([]FoodBanks, error) {
	return collectAll[FoodBanks](ctx, db, listFoodBanks, status)
}

const listVerifiedLocatedFoodBanks = `SELECT ` + foodBankColumns + ` FROM food_banks
WHERE verification_status = 'verified' AND latitude IS NOT NULL AND longitude IS NOT NULL`

func (q *Queries) ListVerifiedLocatedFoodBanks(ctx context.Context, db DBTX) ([]FoodBanks, error) {
	return collectAll[FoodBanks](ctx, db, listVerifiedLocatedFoodBanks)
}
