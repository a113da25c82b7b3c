//go:build unit || e2e

package builder

import (
	"time"

	"resqcart/internal/domain/foodbank"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type FoodBankBuilder struct {
	ID                 uuid.UUID
	Name               string
	ContactPerson      string
	Email              string
	Phone              string
	Street             string
	City               string
	State              string
	ZipCode            string
	Latitude           *float64
	Longitude          *float64
	Verification       foodbank.VerificationStatus
	AcceptedCategories []string
	CreatedAt          time.Time
}

func NewFoodBankBuilder() *FoodBankBuilder {
	lat, lng := 40.7128, -74.0060
	return &FoodBankBuilder{
		ID:                 uuid.New(),
		Name:               "Food Bank Central",
		ContactPerson:      "Dana Rivers",
		Email:              "central@foodbank.org",
		Phone:              "555-0100",
		Street:             "1 Main St",
		City:               "New York",
		State:              "NY",
		ZipCode:            "10001",
		Latitude:           &lat,
		Longitude:          &lng,
		Verification:       foodbank.VerificationVerified,
		AcceptedCategories: []string{"Produce", "Bakery"},
		CreatedAt:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *FoodBankBuilder) With(mutate func(*FoodBankBuilder)) *FoodBankBuilder {
	mutate(b)
	return b
}

func (b *FoodBankBuilder) At(lat, lng float64) *FoodBankBuilder {
	b.Latitude = &lat
	b.Longitude = &lng
	return b
}

func (b *FoodBankBuilder) RegisterInput() foodbank.RegisterInput {
	return foodbank.RegisterInput{
		Name:               b.Name,
		ContactPerson:      b.ContactPerson,
		Email:              b.Email,
		Phone:              b.Phone,
		Street:             b.Street,
		City:               b.City,
		State:              b.State,
		ZipCode:            b.ZipCode,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		AcceptedCategories: b.AcceptedCategories,
	}
}

func (b *FoodBankBuilder) BuildDomain() (*foodbank.FoodBank, error) {
	return foodbank.Register(b.RegisterInput(), b.CreatedAt)
}

func (b *FoodBankBuilder) BuildPersisted() *foodbank.FoodBank {
	addr := foodbank.Address{
		Street:  b.Street,
		City:    b.City,
		State:   b.State,
		ZipCode: b.ZipCode,
	}
	if b.Latitude != nil && b.Longitude != nil {
		addr.Coordinates = &foodbank.Coordinates{Lat: *b.Latitude, Lng: *b.Longitude}
	}
	return foodbank.Reconstruct(
		b.ID, b.Name, b.ContactPerson, b.Email, b.Phone,
		addr, b.Verification, b.AcceptedCategories,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *FoodBankBuilder) BuildRegisterRequestDTO() reqdto.RegisterFoodBankRequest {
	return reqdto.RegisterFoodBankRequest{
		Name:               b.Name,
		ContactPerson:      b.ContactPerson,
		Email:              b.Email,
		Phone:              b.Phone,
		Street:             b.Street,
		City:               b.City,
		State:              b.State,
		ZipCode:            b.ZipCode,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		AcceptedCategories: b.AcceptedCategories,
	}
}

func (b *FoodBankBuilder) BuildView() *queries.FoodBankView {
	return &queries.FoodBankView{
		ID:                 b.ID,
		Name:               b.Name,
		ContactPerson:      b.ContactPerson,
		Email:              b.Email,
		Phone:              b.Phone,
		Street:             b.Street,
		City:               b.City,
		State:              b.State,
		ZipCode:            b.ZipCode,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		VerificationStatus: string(b.Verification),
		AcceptedCategories: b.AcceptedCategories,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	}
}
