package request

import (
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	StoreID            uuid.UUID       `json:"storeId" binding:"required"`
	Name               string          `json:"name" binding:"required,max=200"`
	Category           string          `json:"category" binding:"required,max=100"`
	SubCategory        string          `json:"subCategory" binding:"max=100"`
	SKU                string          `json:"sku" binding:"required,max=64"`
	Barcode            string          `json:"barcode" binding:"max=64"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	DiscountPercentage int             `json:"discountPercentage" binding:"min=0,max=100"`
	QuantityInStock    int             `json:"quantityInStock" binding:"min=0"`
	Unit               *string         `json:"unit" binding:"omitempty,max=32"`
	ExpirationDate     time.Time       `json:"expirationDate" binding:"required"`
	StorageConditions  *string         `json:"storageConditions" binding:"omitempty,oneof=ambient refrigerated frozen"`
}

func (r *CreateProductRequest) ToDomain(now time.Time) (*product.Product, error) {
	return product.NewProduct(product.NewProductInput{
		StoreID:            r.StoreID,
		Name:               r.Name,
		Category:           r.Category,
		SubCategory:        r.SubCategory,
		SKU:                r.SKU,
		Barcode:            r.Barcode,
		Price:              r.Price,
		DiscountPercentage: r.DiscountPercentage,
		QuantityInStock:    r.QuantityInStock,
		Unit:               valueOr(r.Unit, "each"),
		ExpirationDate:     r.ExpirationDate,
		StorageConditions:  valueOr(r.StorageConditions, string(product.StorageAmbient)),
	}, now)
}

type UpdateProductRequest struct {
	Name               *string          `json:"name" binding:"omitempty,max=200"`
	Category           *string          `json:"category" binding:"omitempty,max=100"`
	SubCategory        *string          `json:"subCategory" binding:"omitempty,max=100"`
	Barcode            *string          `json:"barcode" binding:"omitempty,max=64"`
	Price              *decimal.Decimal `json:"price"`
	CurrentPrice       *decimal.Decimal `json:"currentPrice"`
	DiscountPercentage *int             `json:"discountPercentage" binding:"omitempty,min=0,max=100"`
	QuantityInStock    *int             `json:"quantityInStock" binding:"omitempty,min=0"`
	Unit               *string          `json:"unit" binding:"omitempty,max=32"`
	ExpirationDate     *time.Time       `json:"expirationDate"`
	StorageConditions  *string          `json:"storageConditions" binding:"omitempty,oneof=ambient refrigerated frozen"`
	AtRisk             *bool            `json:"atRisk"`
	RescueStatus       *string          `json:"rescueStatus"`
}

func (r *UpdateProductRequest) ToDomain() product.UpdateInput {
	return product.UpdateInput{
		Name:               r.Name,
		Category:           r.Category,
		SubCategory:        r.SubCategory,
		Barcode:            r.Barcode,
		Price:              r.Price,
		CurrentPrice:       r.CurrentPrice,
		DiscountPercentage: r.DiscountPercentage,
		QuantityInStock:    r.QuantityInStock,
		Unit:               r.Unit,
		ExpirationDate:     r.ExpirationDate,
		StorageConditions:  r.StorageConditions,
		AtRisk:             r.AtRisk,
		RescueStatus:       r.RescueStatus,
	}
}

type ListProductsRequest struct {
	Category     *string `form:"category"`
	StoreID      *string `form:"storeId" binding:"omitempty,uuid"`
	RescueStatus *string `form:"rescueStatus"`
	AtRisk       *bool   `form:"atRisk"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=200"`
	After        string  `form:"after"`
}

func (r *ListProductsRequest) Filters() queries.ProductFilters {
	f := queries.ProductFilters{
		Category:     r.Category,
		RescueStatus: r.RescueStatus,
		AtRisk:       r.AtRisk,
	}
	if r.StoreID != nil {
		if id, err := uuid.Parse(*r.StoreID); err == nil {
			f.StoreID = &id
		}
	}
	return f
}

func (r *ListProductsRequest) Cursor() *queries.Cursor {
	if r.After == "" {
		return nil
	}
	return &queries.Cursor{After: r.After}
}
