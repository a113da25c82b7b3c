package rescue

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"resqcart/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errors.New("invalid rescue request status")
	ErrInvalidTransition    = errors.New("rescue request status transition not allowed")
	ErrFoodBankRequired     = errors.New("food bank is required to accept a rescue request")
	ErrNoProducts           = errors.New("rescue request needs at least one product")
	ErrInvalidRescueType    = errors.New("invalid rescue type")
	ErrMissingStoreID       = errors.New("store id is required")
	ErrProductStoreMismatch = errors.New("product belongs to a different store")
)

const MaxNotesLength = 1000

type Request struct {
	id                  uuid.UUID
	storeID             uuid.UUID
	foodBankID          *uuid.UUID
	productIDs          []uuid.UUID
	rescueType          product.RescueStatus
	cascadeStage        int
	daysUntilExpiration *int
	status              Status
	scheduledPickupTime *time.Time
	actualPickupTime    *time.Time
	totalValue          decimal.Decimal
	totalWeight         float64
	environmentalImpact float64
	notes               string
	createdAt           time.Time
	updatedAt           time.Time
}

// NewCascadeRequest builds the food-bank alert raised for a stage 3 product.
func NewCascadeRequest(p *product.Product, stage, daysUntilExpiration int, now time.Time) *Request {
	impact := EstimateImpact(p)
	days := daysUntilExpiration
	return &Request{
		id:                  uuid.New(),
		storeID:             p.StoreID(),
		productIDs:          []uuid.UUID{p.ID()},
		rescueType:          product.RescueStatusFoodBankAlert,
		cascadeStage:        stage,
		daysUntilExpiration: &days,
		status:              StatusPending,
		totalValue:          impact.Value,
		totalWeight:         impact.WeightKg,
		environmentalImpact: impact.EnvironmentalImpact,
		createdAt:           now,
		updatedAt:           now,
	}
}

type ManualInput struct {
	StoreID             uuid.UUID
	Products            []*product.Product
	RescueType          string
	Notes               string
	ScheduledPickupTime *time.Time
}

func NewManualRequest(in ManualInput, now time.Time) (*Request, error) {
	if in.StoreID == uuid.Nil {
		return nil, ErrMissingStoreID
	}
	if len(in.Products) == 0 {
		return nil, ErrNoProducts
	}
	rescueType, err := product.NewRescueStatus(in.RescueType)
	if err != nil || rescueType == product.RescueStatusNone {
		return nil, ErrInvalidRescueType
	}
	notes := strings.TrimSpace(in.Notes)
	notes = truncateRunes(notes, MaxNotesLength)

	impact := Impact{Value: decimal.Zero}
	ids := make([]uuid.UUID, 0, len(in.Products))
	for _, p := range in.Products {
		if p.StoreID() != in.StoreID {
			return nil, ErrProductStoreMismatch
		}
		impact = impact.Plus(EstimateImpact(p))
		ids = append(ids, p.ID())
	}

	return &Request{
		id:                  uuid.New(),
		storeID:             in.StoreID,
		productIDs:          ids,
		rescueType:          rescueType,
		status:              StatusPending,
		scheduledPickupTime: in.ScheduledPickupTime,
		totalValue:          impact.Value,
		totalWeight:         impact.WeightKg,
		environmentalImpact: impact.EnvironmentalImpact,
		notes:               notes,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructRequest(
	id, storeID uuid.UUID,
	foodBankID *uuid.UUID,
	productIDs []uuid.UUID,
	rescueType product.RescueStatus,
	cascadeStage int,
	daysUntilExpiration *int,
	status Status,
	scheduledPickupTime, actualPickupTime *time.Time,
	totalValue decimal.Decimal,
	totalWeight, environmentalImpact float64,
	notes string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                  id,
		storeID:             storeID,
		foodBankID:          foodBankID,
		productIDs:          productIDs,
		rescueType:          rescueType,
		cascadeStage:        cascadeStage,
		daysUntilExpiration: daysUntilExpiration,
		status:              status,
		scheduledPickupTime: scheduledPickupTime,
		actualPickupTime:    actualPickupTime,
		totalValue:          totalValue,
		totalWeight:         totalWeight,
		environmentalImpact: environmentalImpact,
		notes:               notes,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

type StatusChange struct {
	Status              Status
	FoodBankID          *uuid.UUID
	ScheduledPickupTime *time.Time
}

// ChangeStatus advances the lifecycle. Accepting records the claiming food
// bank; completing stamps the actual pickup time.
func (r *Request) ChangeStatus(change StatusChange, now time.Time) error {
	if !change.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(change.Status) {
		return ErrInvalidTransition
	}

	switch change.Status {
	case StatusAccepted:
		if change.FoodBankID != nil {
			id := *change.FoodBankID
			r.foodBankID = &id
		}
		if r.foodBankID == nil {
			return ErrFoodBankRequired
		}
		if change.ScheduledPickupTime != nil {
			t := *change.ScheduledPickupTime
			r.scheduledPickupTime = &t
		}
	case StatusCompleted:
		r.actualPickupTime = &now
	}

	r.status = change.Status
	r.updatedAt = now
	return nil
}

func (r *Request) ID() uuid.UUID                    { return r.id }
func (r *Request) StoreID() uuid.UUID               { return r.storeID }
func (r *Request) FoodBankID() *uuid.UUID           { return r.foodBankID }
func (r *Request) ProductIDs() []uuid.UUID          { return r.productIDs }
func (r *Request) RescueType() product.RescueStatus { return r.rescueType }
func (r *Request) CascadeStage() int                { return r.cascadeStage }
func (r *Request) DaysUntilExpiration() *int        { return r.daysUntilExpiration }
func (r *Request) Status() Status                   { return r.status }
func (r *Request) ScheduledPickupTime() *time.Time  { return r.scheduledPickupTime }
func (r *Request) ActualPickupTime() *time.Time     { return r.actualPickupTime }
func (r *Request) TotalValue() decimal.Decimal      { return r.totalValue }
func (r *Request) TotalWeight() float64             { return r.totalWeight }
func (r *Request) EnvironmentalImpact() float64     { return r.environmentalImpact }
func (r *Request) Notes() string                    { return r.notes }
func (r *Request) CreatedAt() time.Time             { return r.createdAt }
func (r *Request) UpdatedAt() time.Time             { return r.updatedAt }

// truncateRunes keeps at most n characters so a cut never splits a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
