package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/invoice-go/internal/domain/entity"
	"github.com/hapkiduki/invoice-go/internal/domain/pricing"
	"github.com/hapkiduki/invoice-go/internal/domain/valueobject"
)

// invoiceWithSubtotal builds a minimal valid invoice whose subtotal equals
// the given amount.
func invoiceWithSubtotal(country, membership string, subtotal float64) *entity.Invoice {
	return &entity.Invoice{
		InvoiceID:  "INV-1",
		CustomerID: "CUST-1",
		Country:    country,
		Membership: membership,
		Items: []entity.LineItem{
			{SKU: "A", Category: entity.CategoryOther, UnitPrice: subtotal, Qty: 1},
		},
	}
}

func TestComputeTotalFragileBook(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := &entity.Invoice{
		InvoiceID:  "INV-1",
		CustomerID: "CUST-1",
		Country:    "US",
		Membership: "none",
		Items: []entity.LineItem{
			{SKU: "A", Category: entity.CategoryBook, UnitPrice: 100, Qty: 2, Fragile: true},
		},
	}

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)

	assert.InDelta(t, 200, quote.Subtotal, 1e-9)
	assert.InDelta(t, 10, quote.FragileFee, 1e-9)
	assert.Zero(t, quote.Shipping, "subtotal at or above the US threshold ships free")
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 16, quote.Tax, 1e-9)
	assert.InDelta(t, 226, quote.Total, 1e-9)
	assert.Empty(t, quote.Warnings)
}

func TestComputeTotalRejectsInvalidInvoice(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	_, err := calc.ComputeTotal(&entity.Invoice{})
	require.Error(t, err)

	var verr *pricing.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Missing invoice_id",
		"Missing customer_id",
		"Invoice must contain items",
	}, verr.Problems)
	assert.Equal(t, "Missing invoice_id; Missing customer_id; Invoice must contain items", verr.Error())
}

func TestComputeTotalShippingByCountry(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	cases := []struct {
		name     string
		country  string
		subtotal float64
		want     float64
	}{
		{"US below threshold", "US", 50, 15},
		{"US at threshold", "US", 150, 0},
		{"unconfigured below default", "XX", 199, 25},
		{"unconfigured at default", "XX", 200, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := calc.ComputeTotal(invoiceWithSubtotal(tc.country, "none", tc.subtotal))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, quote.Shipping, 1e-9)
		})
	}
}

func TestMembershipDiscountReplacesVolumeDiscount(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	// Gold at 5000: 3% of subtotal, not 3% plus the flat 20.
	quote, err := calc.ComputeTotal(invoiceWithSubtotal("US", "gold", 5000))
	require.NoError(t, err)
	assert.InDelta(t, 150, quote.Discount, 1e-9)

	quote, err = calc.ComputeTotal(invoiceWithSubtotal("US", "platinum", 5000))
	require.NoError(t, err)
	assert.InDelta(t, 250, quote.Discount, 1e-9)
}

func TestVolumeDiscountForNonMembers(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	quote, err := calc.ComputeTotal(invoiceWithSubtotal("US", "none", 3001))
	require.NoError(t, err)
	assert.InDelta(t, 20, quote.Discount, 1e-9)

	// The threshold is strict: exactly 3000 earns nothing.
	quote, err = calc.ComputeTotal(invoiceWithSubtotal("US", "none", 3000))
	require.NoError(t, err)
	assert.Zero(t, quote.Discount)
}

func TestCouponTrimmedBeforeLookup(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("US", "none", 1000)
	inv.Coupon = " WELCOME10 "

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)
	assert.InDelta(t, 100, quote.CouponDiscount, 1e-9)
	assert.Empty(t, quote.Warnings, "a recognized coupon never warns")
}

func TestUnknownCouponWarnsOnce(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("US", "none", 1000)
	inv.Coupon = "NOPE"

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err, "an unknown coupon is advisory, never an error")
	assert.Zero(t, quote.CouponDiscount)
	assert.Equal(t, []string{pricing.WarnUnknownCoupon}, quote.Warnings)
}

func TestCouponLookupIsCaseSensitive(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("US", "none", 1000)
	inv.Coupon = "welcome10"

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)
	assert.Zero(t, quote.CouponDiscount)
	assert.Equal(t, []string{pricing.WarnUnknownCoupon}, quote.Warnings)
}

func TestBlankCouponIsSilent(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("US", "none", 1000)
	inv.Coupon = "   "

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)
	assert.Zero(t, quote.CouponDiscount)
	assert.Empty(t, quote.Warnings)
}

func TestUpgradeHintForLargeNonMemberInvoices(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	quote, err := calc.ComputeTotal(invoiceWithSubtotal("US", "none", 12000))
	require.NoError(t, err)
	assert.Contains(t, quote.Warnings, pricing.WarnUpgradeHint)

	quote, err = calc.ComputeTotal(invoiceWithSubtotal("US", "platinum", 12000))
	require.NoError(t, err)
	assert.NotContains(t, quote.Warnings, pricing.WarnUpgradeHint)
}

func TestWarningsKeepPipelineOrder(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("US", "none", 12000)
	inv.Coupon = "NOPE"

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)
	assert.Equal(t, []string{pricing.WarnUnknownCoupon, pricing.WarnUpgradeHint}, quote.Warnings)
}

func TestComputeTotalIsIdempotent(t *testing.T) {
	calc := pricing.NewDefaultCalculator()
	inv := invoiceWithSubtotal("TH", "gold", 450)
	inv.Coupon = "STUDENT5"

	first, err := calc.ComputeTotal(inv)
	require.NoError(t, err)
	second, err := calc.ComputeTotal(inv)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNegativeTaxBasePassesThroughUnclamped(t *testing.T) {
	// A discount above the subtotal drives the tax base negative; the tax
	// contribution stays negative and only the final total is clamped.
	calc := pricing.NewCalculator(
		valueobject.NewCouponTable(map[string]float64{"COMP": 2.0}),
		valueobject.DefaultShippingTable(),
		valueobject.DefaultTaxTable(),
	)
	inv := invoiceWithSubtotal("US", "none", 100)
	inv.Coupon = "COMP"

	quote, err := calc.ComputeTotal(inv)
	require.NoError(t, err)

	assert.InDelta(t, 200, quote.Discount, 1e-9)
	assert.InDelta(t, -8, quote.Tax, 1e-9, "tax base is not clamped before the rate is applied")
	assert.Zero(t, quote.Total, "final total clamps to zero, never negative")
}

func TestTotalNeverNegative(t *testing.T) {
	calc := pricing.NewCalculator(
		valueobject.NewCouponTable(map[string]float64{"COMP": 5.0}),
		valueobject.DefaultShippingTable(),
		valueobject.DefaultTaxTable(),
	)

	for _, subtotal := range []float64{1, 50, 100, 199, 5000} {
		inv := invoiceWithSubtotal("XX", "none", subtotal)
		inv.Coupon = "COMP"

		quote, err := calc.ComputeTotal(inv)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.Total, 0.0, "subtotal %v", subtotal)
	}
}
