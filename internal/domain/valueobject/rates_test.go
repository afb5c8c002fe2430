package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hapkiduki/invoice-go/internal/domain/valueobject"
)

func TestCouponTableRate(t *testing.T) {
	table := valueobject.DefaultCouponTable()

	rate, ok := table.Rate("WELCOME10")
	assert.True(t, ok)
	assert.InDelta(t, 0.10, rate, 1e-9)

	_, ok = table.Rate("welcome10")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = table.Rate("NOPE")
	assert.False(t, ok)
}

func TestCouponTableCopiesInput(t *testing.T) {
	rates := map[string]float64{"PROMO": 0.15}
	table := valueobject.NewCouponTable(rates)

	rates["PROMO"] = 0.99
	rates["LATE"] = 0.50

	rate, ok := table.Rate("PROMO")
	assert.True(t, ok)
	assert.InDelta(t, 0.15, rate, 1e-9)

	_, ok = table.Rate("LATE")
	assert.False(t, ok)
}

func TestShippingTableFeeFor(t *testing.T) {
	table := valueobject.DefaultShippingTable()

	cases := []struct {
		name     string
		country  string
		subtotal float64
		want     float64
	}{
		{"US below threshold", "US", 50, 15},
		{"US at threshold ships free", "US", 100, 0},
		{"US above threshold", "US", 150, 0},
		{"TH below threshold", "TH", 499, 60},
		{"TH at threshold ships free", "TH", 500, 0},
		{"JP below threshold", "JP", 3999, 600},
		{"JP at threshold ships free", "JP", 4000, 0},
		{"unconfigured country below default", "XX", 199, 25},
		{"unconfigured country at default threshold", "XX", 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, table.FeeFor(tc.country, tc.subtotal), 1e-9)
		})
	}
}

func TestShippingTableFallbackDistinctFromZeroRule(t *testing.T) {
	// A country configured with zero values is not the same as an absent one.
	table := valueobject.NewShippingTable(map[string]valueobject.ShippingRule{
		"ZZ": {Threshold: 0, Fee: 0},
	}, valueobject.ShippingRule{Threshold: 200, Fee: 25})

	assert.Zero(t, table.FeeFor("ZZ", 100), "configured zero rule means free shipping")
	assert.InDelta(t, 25, table.FeeFor("QQ", 100), 1e-9, "absent country uses the fallback")
}

func TestTaxTableRateFor(t *testing.T) {
	table := valueobject.DefaultTaxTable()

	assert.InDelta(t, 0.07, table.RateFor("TH"), 1e-9)
	assert.InDelta(t, 0.10, table.RateFor("JP"), 1e-9)
	assert.InDelta(t, 0.08, table.RateFor("US"), 1e-9)
	assert.InDelta(t, 0.05, table.RateFor("XX"), 1e-9, "unconfigured country uses the fallback rate")
}

func TestTaxTableFallbackDistinctFromZeroRate(t *testing.T) {
	table := valueobject.NewTaxTable(map[string]float64{"ZZ": 0}, 0.05)

	assert.Zero(t, table.RateFor("ZZ"), "configured zero rate stays zero")
	assert.InDelta(t, 0.05, table.RateFor("QQ"), 1e-9)
}
