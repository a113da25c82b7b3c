package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is the read model served by the product endpoints.
type ProductView struct {
	ID                 uuid.UUID       `json:"id"`
	StoreID            uuid.UUID       `json:"storeId"`
	StoreName          string          `json:"storeName"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	SubCategory        string          `json:"subCategory,omitempty"`
	SKU                string          `json:"sku"`
	Barcode            string          `json:"barcode,omitempty"`
	Price              decimal.Decimal `json:"price"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	DiscountPercentage int             `json:"discountPercentage"`
	QuantityInStock    int             `json:"quantityInStock"`
	Unit               string          `json:"unit"`
	ExpirationDate     time.Time       `json:"expirationDate"`
	StorageConditions  string          `json:"storageConditions"`
	AtRisk             bool            `json:"atRisk"`
	RescueStatus       string          `json:"rescueStatus"`
	RescueStage        int             `json:"rescueStage"`
	RescueActionDate   *time.Time      `json:"rescueActionDate,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type RescueProductItem struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	QuantityInStock int             `json:"quantityInStock"`
	Unit            string          `json:"unit"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	ExpirationDate  time.Time       `json:"expirationDate"`
}

// RescueRequestView joins the request with its store, food bank and products.
type RescueRequestView struct {
	ID                  uuid.UUID            `json:"id"`
	StoreID             uuid.UUID            `json:"storeId"`
	StoreName           string               `json:"storeName"`
	FoodBankID          *uuid.UUID           `json:"foodBankId,omitempty"`
	FoodBankName        *string              `json:"foodBankName,omitempty"`
	Products            []*RescueProductItem `json:"products"`
	RescueType          string               `json:"rescueType"`
	RescueCascadeStage  int                  `json:"rescueCascadeStage"`
	DaysUntilExpiration *int                 `json:"daysUntilExpiration,omitempty"`
	Status              string               `json:"status"`
	ScheduledPickupTime *time.Time           `json:"scheduledPickupTime,omitempty"`
	ActualPickupTime    *time.Time           `json:"actualPickupTime,omitempty"`
	TotalValue          decimal.Decimal      `json:"totalValue"`
	TotalWeight         float64              `json:"totalWeight"`
	EnvironmentalImpact float64              `json:"environmentalImpact"`
	Notes               string               `json:"notes,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

type FoodBankView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	ContactPerson      string    `json:"contactPerson"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Street             string    `json:"street,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	ZipCode            string    `json:"zipCode,omitempty"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	VerificationStatus string    `json:"verificationStatus"`
	AcceptedCategories []string  `json:"acceptedCategories"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type NearbyFoodBankView struct {
	FoodBankView
	Distance float64 `json:"distance"`
}

type AdminView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
