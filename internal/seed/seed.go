// Package seed loads demo stores, products and food banks from YAML fixtures.
//
// Products are created through the same use cases the API uses, so seeded rows pass the
// domain validation. Expiry dates are relative to the seeding clock which keeps a fresh
// database immediately interesting for the rescue cascade.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"time"

	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Stores    []StoreFixture    `yaml:"stores"`
	Products  []ProductFixture  `yaml:"products"`
	FoodBanks []FoodBankFixture `yaml:"foodBanks"`
}

type StoreFixture struct {
	ID      uuid.UUID `yaml:"id"`
	Name    string    `yaml:"name"`
	Address string    `yaml:"address"`
}

type ProductFixture struct {
	Store         uuid.UUID `yaml:"store"`
	Name          string    `yaml:"name"`
	Category      string    `yaml:"category"`
	SubCategory   string    `yaml:"subCategory"`
	SKU           string    `yaml:"sku"`
	Barcode       string    `yaml:"barcode"`
	Price         string    `yaml:"price"`
	Quantity      int       `yaml:"quantity"`
	Unit          string    `yaml:"unit"`
	ExpiresInDays int       `yaml:"expiresInDays"`
	Storage       string    `yaml:"storage"`
}

type FoodBankFixture struct {
	Name               string   `yaml:"name"`
	ContactPerson      string   `yaml:"contactPerson"`
	Email              string   `yaml:"email"`
	Phone              string   `yaml:"phone"`
	Street             string   `yaml:"street"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	ZipCode            string   `yaml:"zipCode"`
	Latitude           *float64 `yaml:"latitude"`
	Longitude          *float64 `yaml:"longitude"`
	AcceptedCategories []string `yaml:"acceptedCategories"`
	Verified           bool     `yaml:"verified"`
}

// Load decodes fixtures, rejecting unknown keys so typos in hand-edited files surface early.
func Load(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, errs.Wrap(err, "decode seed fixtures")
	}
	return &f, nil
}

// Default returns the fixtures bundled with the binary.
func Default() (*Fixtures, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

type Summary struct {
	Stores    int
	Products  int
	FoodBanks int
	Skipped   int
}

type storeUpserter interface {
	UpsertStore(ctx context.Context, db query.DBTX, arg query.UpsertStoreParams) error
}

type Seeder struct {
	uow       shared.UnitOfWork
	stores    storeUpserter
	products  commands.ProductCommands
	foodBanks commands.FoodBankCommands
	clock     clock.Clock
}

func NewSeeder(
	uow shared.UnitOfWork,
	q *query.Queries,
	products commands.ProductCommands,
	foodBanks commands.FoodBankCommands,
	clk clock.Clock,
) *Seeder {
	return &Seeder{uow: uow, stores: q, products: products, foodBanks: foodBanks, clock: clk}
}

// Run writes the fixtures. Stores are upserted; products and food banks that already exist are skipped,
// so seeding twice is harmless.
func (s *Seeder) Run(ctx context.Context, f *Fixtures) (Summary, error) {
	var sum Summary

	err := s.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		for _, st := range f.Stores {
			if err := s.stores.UpsertStore(ctx, db, query.UpsertStoreParams{ID: st.ID, Name: st.Name, Address: st.Address}); err != nil {
				return errs.Wrapf(err, "upsert store %s", st.Name)
			}
			sum.Stores++
		}
		return nil
	})
	if err != nil {
		return sum, err
	}

	today := clock.Today(s.clock)
	for _, p := range f.Products {
		req, err := p.toRequest(today)
		if err != nil {
			return sum, err
		}
		if _, err := s.products.Create(ctx, req); err != nil {
			if errs.Is(err, commands.ErrDuplicateSKU) {
				slog.InfoContext(ctx, "seed product exists, skipping", "sku", p.SKU)
				sum.Skipped++
				continue
			}
			return sum, errs.Wrapf(err, "seed product %s", p.SKU)
		}
		sum.Products++
	}

	for _, fb := range f.FoodBanks {
		id, err := s.foodBanks.Register(ctx, fb.toRequest())
		if err != nil {
			if errs.Is(err, commands.ErrDuplicateFoodBank) {
				slog.InfoContext(ctx, "seed food bank exists, skipping", "email", fb.Email)
				sum.Skipped++
				continue
			}
			return sum, errs.Wrapf(err, "seed food bank %s", fb.Name)
		}
		if fb.Verified {
			if err := s.foodBanks.UpdateVerification(ctx, id, reqdto.UpdateVerificationRequest{Status: "verified"}); err != nil {
				return sum, errs.Wrapf(err, "verify food bank %s", fb.Name)
			}
		}
		sum.FoodBanks++
	}

	return sum, nil
}

func (p ProductFixture) toRequest(today time.Time) (reqdto.CreateProductRequest, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return reqdto.CreateProductRequest{}, errs.Wrapf(err, "product %s price", p.SKU)
	}

	req := reqdto.CreateProductRequest{
		StoreID:         p.Store,
		Name:            p.Name,
		Category:        p.Category,
		SubCategory:     p.SubCategory,
		SKU:             p.SKU,
		Barcode:         p.Barcode,
		Price:           price,
		QuantityInStock: p.Quantity,
		ExpirationDate:  today.AddDate(0, 0, p.ExpiresInDays),
	}
	if p.Unit != "" {
		req.Unit = &p.Unit
	}
	if p.Storage != "" {
		req.StorageConditions = &p.Storage
	}
	return req, nil
}

func (fb FoodBankFixture) toRequest() reqdto.RegisterFoodBankRequest {
	return reqdto.RegisterFoodBankRequest{
		Name:               fb.Name,
		ContactPerson:      fb.ContactPerson,
		Email:              fb.Email,
		Phone:              fb.Phone,
		Street:             fb.Street,
		City:               fb.City,
		State:              fb.State,
		ZipCode:            fb.ZipCode,
		Latitude:           fb.Latitude,
		Longitude:          fb.Longitude,
		AcceptedCategories: fb.AcceptedCategories,
	}
}
