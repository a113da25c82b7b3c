package converter

import (
	"resqcart/internal/domain/foodbank"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func FoodBankToCreateParams(fb *foodbank.FoodBank) query.CreateFoodBankParams {
	addr := fb.Address()
	params := query.CreateFoodBankParams{
		ID:                 fb.ID(),
		Name:               fb.Name(),
		ContactPerson:      fb.ContactPerson(),
		Email:              fb.Email(),
		Phone:              fb.Phone(),
		Street:             addr.Street,
		City:               addr.City,
		State:              addr.State,
		ZipCode:            addr.ZipCode,
		VerificationStatus: fb.VerificationStatus().String(),
		AcceptedCategories: fb.AcceptedCategories(),
		CreatedAt:          pgconv.TimeToPgtype(fb.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(fb.UpdatedAt()),
	}
	if addr.Coordinates != nil {
		params.Latitude = pgtype.Float8{Float64: addr.Coordinates.Lat, Valid: true}
		params.Longitude = pgtype.Float8{Float64: addr.Coordinates.Lng, Valid: true}
	}
	if params.AcceptedCategories == nil {
		params.AcceptedCategories = []string{}
	}
	return params
}

func FoodBankFromRow(row query.FoodBanks) *foodbank.FoodBank {
	addr := foodbank.Address{
		Street:  row.Street,
		City:    row.City,
		State:   row.State,
		ZipCode: row.ZipCode,
	}
	if row.Latitude.Valid && row.Longitude.Valid {
		addr.Coordinates = &foodbank.Coordinates{Lat: row.Latitude.Float64, Lng: row.Longitude.Float64}
	}
	return foodbank.Reconstruct(
		row.ID, row.Name, row.ContactPerson, row.Email, row.Phone,
		addr,
		foodbank.VerificationStatus(row.VerificationStatus),
		row.AcceptedCategories,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
