package rescue

import (
	"resqcart/internal/domain/product"

	"github.com/shopspring/decimal"
)

const (
	produceUnitWeightKg = 0.5
	defaultUnitWeightKg = 1.0
	co2KgPerUnit        = 2.5
)

// Impact is the estimated value, weight and CO2 saving of rescuing a batch of stock.
type Impact struct {
	Value               decimal.Decimal
	WeightKg            float64
	EnvironmentalImpact float64
}

func EstimateImpact(p *product.Product) Impact {
	qty := p.QuantityInStock()
	unitWeight := defaultUnitWeightKg
	if p.Category() == product.CategoryProduce {
		unitWeight = produceUnitWeightKg
	}
	return Impact{
		Value:               p.Price().Mul(decimal.NewFromInt(int64(qty))),
		WeightKg:            float64(qty) * unitWeight,
		EnvironmentalImpact: float64(qty) * co2KgPerUnit,
	}
}

func (i Impact) Plus(o Impact) Impact {
	return Impact{
		Value:               i.Value.Add(o.Value),
		WeightKg:            i.WeightKg + o.WeightKg,
		EnvironmentalImpact: i.EnvironmentalImpact + o.EnvironmentalImpact,
	}
}
