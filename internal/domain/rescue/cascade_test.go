//go:build unit

package rescue_test

import (
	"testing"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilExpiration(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		exp  time.Time
		want int
	}{
		{"exactly now", now, 0},
		{"later today", now.Add(3 * time.Hour), 1},
		{"one day", now.Add(24 * time.Hour), 1},
		{"just over one day", now.Add(25 * time.Hour), 2},
		{"seven days", now.Add(7 * 24 * time.Hour), 7},
		{"expired an hour ago", now.Add(-time.Hour), 0},
		{"expired a day ago", now.Add(-24 * time.Hour), -1},
		{"expired 30h ago", now.Add(-30 * time.Hour), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rescue.DaysUntilExpiration(tt.exp, now))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		days     int
		ok       bool
		stage    int
		action   product.RescueStatus
		discount int
	}{
		{days: 8, ok: false},
		{days: 30, ok: false},
		{days: 7, ok: true, stage: 1, action: product.RescueStatusPriceReduction, discount: 10},
		{days: 6, ok: true, stage: 1, action: product.RescueStatusPriceReduction, discount: 10},
		{days: 5, ok: true, stage: 1, action: product.RescueStatusPriceReduction, discount: 10},
		{days: 4, ok: true, stage: 2, action: product.RescueStatusPriceReduction, discount: 30},
		{days: 3, ok: true, stage: 2, action: product.RescueStatusPriceReduction, discount: 30},
		{days: 2, ok: true, stage: 3, action: product.RescueStatusFoodBankAlert, discount: 0},
		{days: 1, ok: true, stage: 3, action: product.RescueStatusFoodBankAlert, discount: 0},
		{days: 0, ok: true, stage: 4, action: product.RescueStatusFinalSale, discount: 70},
		{days: -1, ok: false},
	}
	for _, tt := range tests {
		action, ok := rescue.Classify(tt.days)
		if !assert.Equal(t, tt.ok, ok, "days=%d", tt.days) || !ok {
			continue
		}
		assert.Equal(t, tt.stage, action.Stage, "days=%d", tt.days)
		assert.Equal(t, tt.action, action.Type, "days=%d", tt.days)
		assert.Equal(t, tt.discount, action.DiscountPercentage, "days=%d", tt.days)
		assert.Equal(t, tt.stage == 3, action.CreatesRequest(), "days=%d", tt.days)
	}
}

func TestCounts(t *testing.T) {
	var c rescue.Counts
	for _, s := range []int{1, 1, 2, 3, 4, 4, 4, 9} {
		c.Add(s)
	}
	assert.Equal(t, rescue.Counts{Stage1: 2, Stage2: 1, Stage3: 1, Stage4: 3}, c)
	assert.Equal(t, 7, c.Total())
}
