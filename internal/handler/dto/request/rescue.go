package request

import (
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"

	"github.com/google/uuid"
)

type CreateRescueRequestRequest struct {
	StoreID             uuid.UUID   `json:"storeId" binding:"required"`
	ProductIDs          []uuid.UUID `json:"productIds" binding:"required,min=1,dive,required"`
	RescueType          string      `json:"rescueType" binding:"required"`
	Notes               *string     `json:"notes" binding:"omitempty,max=1000"`
	ScheduledPickupTime *time.Time  `json:"scheduledPickupTime"`

	IdempotencyKey *uuid.UUID `json:"-"`
}

func (r *CreateRescueRequestRequest) ToDomain(products []*product.Product, now time.Time) (*rescue.Request, error) {
	return rescue.NewManualRequest(rescue.ManualInput{
		StoreID:             r.StoreID,
		Products:            products,
		RescueType:          r.RescueType,
		Notes:               valueOr(r.Notes, ""),
		ScheduledPickupTime: r.ScheduledPickupTime,
	}, now)
}

// UpdateRescueStatusRequest leaves Status unvalidated by binding so an unknown
// value surfaces as the domain's invalid-status error.
type UpdateRescueStatusRequest struct {
	Status              string     `json:"status" binding:"required"`
	FoodBankID          *uuid.UUID `json:"foodBankId"`
	ScheduledPickupTime *time.Time `json:"scheduledPickupTime"`
}

func (r *UpdateRescueStatusRequest) ToDomain() (rescue.StatusChange, error) {
	status, err := rescue.ParseStatus(r.Status)
	if err != nil {
		return rescue.StatusChange{}, err
	}
	return rescue.StatusChange{
		Status:              status,
		FoodBankID:          r.FoodBankID,
		ScheduledPickupTime: r.ScheduledPickupTime,
	}, nil
}

type RunCascadeRequest struct {
	StoreID *uuid.UUID `json:"storeId"`
}

type NearbyFoodBanksRequest struct {
	Lat    *float64 `form:"lat" binding:"required"`
	Lng    *float64 `form:"lng" binding:"required"`
	Radius *float64 `form:"radius" binding:"omitempty,gt=0"`
}

// valueOr returns *v, or fallback when the field was omitted.
func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
