package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Product struct {
	id                 uuid.UUID
	storeID            uuid.UUID
	name               string
	category           string
	subCategory        string
	sku                string
	barcode            string
	price              decimal.Decimal
	currentPrice       decimal.Decimal
	discountPercentage int
	quantityInStock    int
	unit               string
	expirationDate     time.Time
	storageConditions  StorageConditions
	atRisk             bool
	rescueStatus       RescueStatus
	rescueStage        int
	rescueActionDate   *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

type NewProductInput struct {
	StoreID            uuid.UUID
	Name               string
	Category           string
	SubCategory        string
	SKU                string
	Barcode            string
	Price              decimal.Decimal
	DiscountPercentage int
	QuantityInStock    int
	Unit               string
	ExpirationDate     time.Time
	StorageConditions  string
}

func NewProduct(in NewProductInput, now time.Time) (*Product, error) {
	storage, err := NewStorageConditions(in.StorageConditions)
	if err != nil {
		return nil, err
	}

	p := &Product{
		id:                 uuid.New(),
		storeID:            in.StoreID,
		name:               strings.TrimSpace(in.Name),
		category:           strings.TrimSpace(in.Category),
		subCategory:        strings.TrimSpace(in.SubCategory),
		sku:                strings.TrimSpace(in.SKU),
		barcode:            strings.TrimSpace(in.Barcode),
		price:              in.Price,
		discountPercentage: in.DiscountPercentage,
		quantityInStock:    in.QuantityInStock,
		unit:               strings.TrimSpace(in.Unit),
		expirationDate:     in.ExpirationDate,
		storageConditions:  storage,
		rescueStatus:       RescueStatusNone,
		createdAt:          now,
		updatedAt:          now,
	}
	if p.unit == "" {
		p.unit = "item"
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	p.currentPrice = DiscountedPrice(p.price, p.discountPercentage)
	return p, nil
}

// ReconstructProduct rebuilds a persisted product without re-running creation defaults.
func ReconstructProduct(
	id, storeID uuid.UUID,
	name, category, subCategory, sku, barcode string,
	price, currentPrice decimal.Decimal,
	discountPercentage, quantityInStock int,
	unit string,
	expirationDate time.Time,
	storageConditions StorageConditions,
	atRisk bool,
	rescueStatus RescueStatus,
	rescueStage int,
	rescueActionDate *time.Time,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                 id,
		storeID:            storeID,
		name:               name,
		category:           category,
		subCategory:        subCategory,
		sku:                sku,
		barcode:            barcode,
		price:              price,
		currentPrice:       currentPrice,
		discountPercentage: discountPercentage,
		quantityInStock:    quantityInStock,
		unit:               unit,
		expirationDate:     expirationDate,
		storageConditions:  storageConditions,
		atRisk:             atRisk,
		rescueStatus:       rescueStatus,
		rescueStage:        rescueStage,
		rescueActionDate:   rescueActionDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (p *Product) validate() error {
	switch {
	case p.storeID == uuid.Nil:
		return ErrMissingStoreID
	case p.name == "":
		return ErrEmptyName
	case p.category == "":
		return ErrEmptyCategory
	case p.sku == "":
		return ErrEmptySKU
	case !p.price.IsPositive():
		return ErrInvalidPrice
	case p.quantityInStock < 0:
		return ErrInvalidQuantity
	case p.discountPercentage < 0 || p.discountPercentage > 100:
		return ErrInvalidDiscount
	case p.expirationDate.IsZero():
		return ErrMissingExpiration
	}
	return nil
}

// DiscountedPrice rounds to cents.
func DiscountedPrice(price decimal.Decimal, discountPercentage int) decimal.Decimal {
	factor := hundred.Sub(decimal.NewFromInt(int64(discountPercentage))).Div(hundred)
	return price.Mul(factor).Round(2)
}

// ApplyRescue moves the product to a higher cascade stage. A zero discount
// leaves the price fields as they are.
func (p *Product) ApplyRescue(stage int, status RescueStatus, discountPercentage int, now time.Time) error {
	if stage <= p.rescueStage {
		return ErrStageRegression
	}
	if !status.IsValid() || status == RescueStatusNone {
		return ErrInvalidRescueStatus
	}
	if discountPercentage < 0 || discountPercentage > 100 {
		return ErrInvalidDiscount
	}

	p.rescueStage = stage
	p.rescueStatus = status
	p.atRisk = true
	p.rescueActionDate = &now
	if discountPercentage > 0 {
		p.discountPercentage = discountPercentage
		p.currentPrice = DiscountedPrice(p.price, discountPercentage)
	}
	p.updatedAt = now
	return nil
}

// MarkForRescue records a manually requested rescue action.
func (p *Product) MarkForRescue(status RescueStatus, now time.Time) error {
	if !status.IsValid() || status == RescueStatusNone {
		return ErrInvalidRescueStatus
	}
	p.rescueStatus = status
	p.atRisk = true
	p.rescueActionDate = &now
	p.updatedAt = now
	return nil
}

type UpdateInput struct {
	Name               *string
	Category           *string
	SubCategory        *string
	Barcode            *string
	Price              *decimal.Decimal
	CurrentPrice       *decimal.Decimal
	DiscountPercentage *int
	QuantityInStock    *int
	Unit               *string
	ExpirationDate     *time.Time
	StorageConditions  *string
	AtRisk             *bool
	RescueStatus       *string
}

func (p *Product) Update(in UpdateInput, now time.Time) error {
	next := *p
	if in.Name != nil {
		next.name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		next.category = strings.TrimSpace(*in.Category)
	}
	if in.SubCategory != nil {
		next.subCategory = strings.TrimSpace(*in.SubCategory)
	}
	if in.Barcode != nil {
		next.barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Unit != nil {
		next.unit = strings.TrimSpace(*in.Unit)
	}
	if in.QuantityInStock != nil {
		next.quantityInStock = *in.QuantityInStock
	}
	if in.ExpirationDate != nil {
		next.expirationDate = *in.ExpirationDate
	}
	if in.AtRisk != nil {
		next.atRisk = *in.AtRisk
	}
	if in.StorageConditions != nil {
		sc, err := NewStorageConditions(*in.StorageConditions)
		if err != nil {
			return err
		}
		next.storageConditions = sc
	}
	if in.RescueStatus != nil {
		rs, err := NewRescueStatus(*in.RescueStatus)
		if err != nil {
			return err
		}
		next.rescueStatus = rs
	}

	priceChanged := false
	if in.Price != nil {
		next.price = *in.Price
		priceChanged = true
	}
	if in.DiscountPercentage != nil {
		next.discountPercentage = *in.DiscountPercentage
		priceChanged = true
	}
	if err := next.validate(); err != nil {
		return err
	}
	if priceChanged {
		next.currentPrice = DiscountedPrice(next.price, next.discountPercentage)
	}
	if in.CurrentPrice != nil {
		if in.CurrentPrice.IsNegative() {
			return ErrNegativeCurrentPrice
		}
		if in.CurrentPrice.GreaterThan(next.price) {
			return ErrCurrentPriceTooHigh
		}
		next.currentPrice = *in.CurrentPrice
	}

	next.updatedAt = now
	*p = next
	return nil
}

func (p *Product) ID() uuid.UUID                        { return p.id }
func (p *Product) StoreID() uuid.UUID                   { return p.storeID }
func (p *Product) Name() string                         { return p.name }
func (p *Product) Category() string                     { return p.category }
func (p *Product) SubCategory() string                  { return p.subCategory }
func (p *Product) SKU() string                          { return p.sku }
func (p *Product) Barcode() string                      { return p.barcode }
func (p *Product) Price() decimal.Decimal               { return p.price }
func (p *Product) CurrentPrice() decimal.Decimal        { return p.currentPrice }
func (p *Product) DiscountPercentage() int              { return p.discountPercentage }
func (p *Product) QuantityInStock() int                 { return p.quantityInStock }
func (p *Product) Unit() string                         { return p.unit }
func (p *Product) ExpirationDate() time.Time            { return p.expirationDate }
func (p *Product) StorageConditions() StorageConditions { return p.storageConditions }
func (p *Product) AtRisk() bool                         { return p.atRisk }
func (p *Product) RescueStatus() RescueStatus           { return p.rescueStatus }
func (p *Product) RescueStage() int                     { return p.rescueStage }
func (p *Product) RescueActionDate() *time.Time         { return p.rescueActionDate }
func (p *Product) CreatedAt() time.Time                 { return p.createdAt }
func (p *Product) UpdatedAt() time.Time                 { return p.updatedAt }
