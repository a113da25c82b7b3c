//go:build unit || e2e

package builder

import (
	"time"

	"resqcart/internal/domain/product"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID                 uuid.UUID
	StoreID            uuid.UUID
	Name               string
	Category           string
	SubCategory        string
	SKU                string
	Barcode            string
	Price              decimal.Decimal
	CurrentPrice       decimal.Decimal
	DiscountPercentage int
	QuantityInStock    int
	Unit               string
	ExpirationDate     time.Time
	StorageConditions  string
	AtRisk             bool
	RescueStatus       product.RescueStatus
	RescueStage        int
	RescueActionDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ProductBuilder{
		ID:                uuid.New(),
		StoreID:           uuid.New(),
		Name:              "Gala Apples",
		Category:          product.CategoryProduce,
		SubCategory:       "Fruit",
		SKU:               "SKU-" + uuid.NewString()[:8],
		Barcode:           "0123456789012",
		Price:             decimal.RequireFromString("4.00"),
		CurrentPrice:      decimal.RequireFromString("4.00"),
		QuantityInStock:   10,
		Unit:              "lb",
		ExpirationDate:    now.Add(10 * 24 * time.Hour),
		StorageConditions: string(product.StorageRefrigerated),
		RescueStatus:      product.RescueStatusNone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithCategory(category string) *ProductBuilder {
	b.Category = category
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	b.CurrentPrice = b.Price
	return b
}

func (b *ProductBuilder) WithQuantity(qty int) *ProductBuilder {
	b.QuantityInStock = qty
	return b
}

func (b *ProductBuilder) WithDiscount(pct int) *ProductBuilder {
	b.DiscountPercentage = pct
	return b
}

func (b *ProductBuilder) WithExpiration(t time.Time) *ProductBuilder {
	b.ExpirationDate = t
	return b
}

func (b *ProductBuilder) WithStore(id uuid.UUID) *ProductBuilder {
	b.StoreID = id
	return b
}

func (b *ProductBuilder) WithRescue(status product.RescueStatus, stage int) *ProductBuilder {
	b.RescueStatus = status
	b.RescueStage = stage
	b.AtRisk = status != product.RescueStatusNone
	return b
}

func (b *ProductBuilder) NewInput() product.NewProductInput {
	return product.NewProductInput{
		StoreID:            b.StoreID,
		Name:               b.Name,
		Category:           b.Category,
		SubCategory:        b.SubCategory,
		SKU:                b.SKU,
		Barcode:            b.Barcode,
		Price:              b.Price,
		DiscountPercentage: b.DiscountPercentage,
		QuantityInStock:    b.QuantityInStock,
		Unit:               b.Unit,
		ExpirationDate:     b.ExpirationDate,
		StorageConditions:  b.StorageConditions,
	}
}

// BuildDomain runs the creation path including validation.
func (b *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(b.NewInput(), b.CreatedAt)
}

// BuildPersisted skips validation, as if loaded from the database.
func (b *ProductBuilder) BuildPersisted() *product.Product {
	return product.ReconstructProduct(
		b.ID, b.StoreID,
		b.Name, b.Category, b.SubCategory, b.SKU, b.Barcode,
		b.Price, b.CurrentPrice,
		b.DiscountPercentage, b.QuantityInStock,
		b.Unit,
		b.ExpirationDate,
		product.StorageConditions(b.StorageConditions),
		b.AtRisk,
		b.RescueStatus,
		b.RescueStage,
		b.RescueActionDate,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	unit := b.Unit
	storage := b.StorageConditions
	return reqdto.CreateProductRequest{
		StoreID:            b.StoreID,
		Name:               b.Name,
		Category:           b.Category,
		SubCategory:        b.SubCategory,
		SKU:                b.SKU,
		Barcode:            b.Barcode,
		Price:              b.Price,
		DiscountPercentage: b.DiscountPercentage,
		QuantityInStock:    b.QuantityInStock,
		Unit:               &unit,
		ExpirationDate:     b.ExpirationDate,
		StorageConditions:  &storage,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:                 b.ID,
		StoreID:            b.StoreID,
		StoreName:          "Downtown Market",
		Name:               b.Name,
		Category:           b.Category,
		SubCategory:        b.SubCategory,
		SKU:                b.SKU,
		Barcode:            b.Barcode,
		Price:              b.Price,
		CurrentPrice:       b.CurrentPrice,
		DiscountPercentage: b.DiscountPercentage,
		QuantityInStock:    b.QuantityInStock,
		Unit:               b.Unit,
		ExpirationDate:     b.ExpirationDate,
		StorageConditions:  b.StorageConditions,
		AtRisk:             b.AtRisk,
		RescueStatus:       string(b.RescueStatus),
		RescueStage:        b.RescueStage,
		RescueActionDate:   b.RescueActionDate,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
