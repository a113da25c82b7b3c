package product

import "errors"

var (
	ErrEmptyName            = errors.New("product name cannot be empty")
	ErrEmptyCategory        = errors.New("product category cannot be empty")
	ErrEmptySKU             = errors.New("product sku cannot be empty")
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrInvalidQuantity      = errors.New("quantity in stock cannot be negative")
	ErrInvalidDiscount      = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidRescueStatus  = errors.New("invalid rescue status")
	ErrInvalidStorage       = errors.New("invalid storage conditions")
	ErrMissingExpiration    = errors.New("expiration date is required")
	ErrStageRegression      = errors.New("rescue stage cannot decrease")
	ErrMissingStoreID       = errors.New("store id is required")
	ErrCurrentPriceTooHigh  = errors.New("current price cannot exceed list price")
	ErrNegativeCurrentPrice = errors.New("current price cannot be negative")
)

type RescueStatus string

const (
	RescueStatusNone             RescueStatus = "none"
	RescueStatusPriceReduction   RescueStatus = "price-reduction"
	RescueStatusFoodBankAlert    RescueStatus = "food-bank-alert"
	RescueStatusEmployeeDiscount RescueStatus = "employee-discount"
	RescueStatusFinalSale        RescueStatus = "final-sale"
)

func (s RescueStatus) String() string { return string(s) }

func (s RescueStatus) IsValid() bool {
	switch s {
	case RescueStatusNone, RescueStatusPriceReduction, RescueStatusFoodBankAlert,
		RescueStatusEmployeeDiscount, RescueStatusFinalSale:
		return true
	default:
		return false
	}
}

func NewRescueStatus(s string) (RescueStatus, error) {
	status := RescueStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidRescueStatus
	}
	return status, nil
}

type StorageConditions string

const (
	StorageAmbient      StorageConditions = "ambient"
	StorageRefrigerated StorageConditions = "refrigerated"
	StorageFrozen       StorageConditions = "frozen"
)

func NewStorageConditions(s string) (StorageConditions, error) {
	switch sc := StorageConditions(s); sc {
	case StorageAmbient, StorageRefrigerated, StorageFrozen:
		return sc, nil
	case "":
		return StorageAmbient, nil
	default:
		return "", ErrInvalidStorage
	}
}

func (s StorageConditions) String() string { return string(s) }

// CategoryProduce is the only category with a lighter per-unit weight estimate.
const CategoryProduce = "Produce"
