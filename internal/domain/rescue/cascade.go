package rescue

import (
	"math"
	"time"

	"resqcart/internal/domain/product"
)

const day = 24 * time.Hour

// Action is what the cascade does to a product at a given stage.
type Action struct {
	Stage              int
	Type               product.RescueStatus
	DiscountPercentage int
}

// CreatesRequest reports whether the action alerts food banks instead of repricing.
func (a Action) CreatesRequest() bool {
	return a.Type == product.RescueStatusFoodBankAlert
}

// DaysUntilExpiration rounds partial days up: expiring within the next 24h is 1,
// expired within the last 24h is 0.
func DaysUntilExpiration(expiration, now time.Time) int {
	return int(math.Ceil(float64(expiration.Sub(now)) / float64(day)))
}

// Classify maps days-until-expiration onto the fixed cascade bands.
// ok is false for expired products and for products more than a week out.
func Classify(days int) (action Action, ok bool) {
	switch {
	case days >= 5 && days <= 7:
		return Action{Stage: 1, Type: product.RescueStatusPriceReduction, DiscountPercentage: 10}, true
	case days >= 3 && days <= 4:
		return Action{Stage: 2, Type: product.RescueStatusPriceReduction, DiscountPercentage: 30}, true
	case days >= 1 && days <= 2:
		return Action{Stage: 3, Type: product.RescueStatusFoodBankAlert}, true
	case days == 0:
		return Action{Stage: 4, Type: product.RescueStatusFinalSale, DiscountPercentage: 70}, true
	default:
		return Action{}, false
	}
}

// Counts tallies products per stage for one cascade run.
type Counts struct {
	Stage1 int
	Stage2 int
	Stage3 int
	Stage4 int
}

func (c *Counts) Add(stage int) {
	switch stage {
	case 1:
		c.Stage1++
	case 2:
		c.Stage2++
	case 3:
		c.Stage3++
	case 4:
		c.Stage4++
	}
}

func (c Counts) Total() int {
	return c.Stage1 + c.Stage2 + c.Stage3 + c.Stage4
}
