// Package pricing implements the invoice pricing pipeline: validation,
// subtotal and fragile-handling fee, shipping, membership and coupon
// discounts, country tax, and final assembly.
//
// The pipeline is strictly sequential and every step is a pure function of
// its inputs; no step depends on the output of a later step. A Calculator
// only reads its rate tables, so a single instance may be shared by
// concurrent callers without coordination.
package pricing

import (
	"strings"

	"github.com/hapkiduki/invoice-go/internal/domain/entity"
	"github.com/hapkiduki/invoice-go/internal/domain/valueobject"
)

// Pricing policy constants that live outside the lookup tables.
const (
	// FragileFeePerUnit is the flat handling surcharge per fragile unit.
	FragileFeePerUnit = 5.0

	goldDiscountRate     = 0.03
	platinumDiscountRate = 0.05

	// Non-members get a flat discount once the subtotal exceeds this.
	volumeDiscountMin    = 3000.0
	volumeDiscountAmount = 20.0

	// Above this subtotal, non-members get an upgrade suggestion.
	upgradeHintSubtotal = 10000.0
)

// Advisory warning messages. Warnings never affect the total and never
// fail the call.
const (
	WarnUnknownCoupon = "Unknown coupon"
	WarnUpgradeHint   = "Consider membership upgrade"
)

// Quote is the outcome of pricing one valid invoice. Total and Warnings
// form the contract; the remaining fields expose the per-step breakdown.
type Quote struct {
	// Subtotal is the sum of line values before anything else.
	Subtotal float64 `json:"subtotal"`

	// FragileFee is the accumulated per-unit handling surcharge.
	FragileFee float64 `json:"fragile_fee"`

	// Shipping is the flat shipping fee derived from country and subtotal.
	Shipping float64 `json:"shipping"`

	// CouponDiscount is the coupon's share of the total discount.
	CouponDiscount float64 `json:"coupon_discount"`

	// Discount is the total discount: base (membership or volume) plus coupon.
	Discount float64 `json:"discount"`

	// Tax is the country rate applied to (subtotal - discount).
	Tax float64 `json:"tax"`

	// Total is the final payable amount, never negative.
	Total float64 `json:"total"`

	// Warnings is the ordered list of advisory messages, possibly empty.
	Warnings []string `json:"warnings"`
}

// Calculator prices invoices against a fixed set of rate tables.
// The tables are immutable after construction (see package valueobject),
// so the calculator is safe for concurrent use.
type Calculator struct {
	coupons  valueobject.CouponTable
	shipping valueobject.ShippingTable
	taxes    valueobject.TaxTable
}

// NewCalculator creates a Calculator with the given rate tables.
//
// Parameters:
//   - coupons: coupon code to discount rate table
//   - shipping: per-country shipping rules with fallback
//   - taxes: per-country tax rates with fallback
//
// Returns:
//   - *Calculator: the configured calculator
func NewCalculator(coupons valueobject.CouponTable, shipping valueobject.ShippingTable, taxes valueobject.TaxTable) *Calculator {
	return &Calculator{
		coupons:  coupons,
		shipping: shipping,
		taxes:    taxes,
	}
}

// NewDefaultCalculator creates a Calculator with the built-in rate tables.
//
// Returns:
//   - *Calculator: calculator using the default coupon, shipping and tax tables
func NewDefaultCalculator() *Calculator {
	return NewCalculator(
		valueobject.DefaultCouponTable(),
		valueobject.DefaultShippingTable(),
		valueobject.DefaultTaxTable(),
	)
}

// ComputeTotal validates an invoice and reduces it to a final payable total
// plus advisory warnings.
//
// The pipeline order is fixed: validate, subtotal and fragile fee, shipping,
// base discount, coupon discount, tax, assembly. Unknown coupons and
// unconfigured countries are policy fallbacks, never errors; the only error
// kind is *ValidationError for a malformed invoice, in which case no partial
// total is produced.
//
// Parameters:
//   - inv: the invoice to price, may be nil
//
// Returns:
//   - Quote: the total, warnings and per-step breakdown
//   - error: *ValidationError when the invoice is structurally invalid
func (c *Calculator) ComputeTotal(inv *entity.Invoice) (Quote, error) {
	if problems := Validate(inv); len(problems) > 0 {
		return Quote{}, &ValidationError{Problems: problems}
	}

	q := Quote{Warnings: []string{}}
	q.Subtotal, q.FragileFee = subtotalAndFragileFee(inv.Items)
	q.Shipping = c.shipping.FeeFor(inv.Country, q.Subtotal)
	q.Discount = baseDiscount(inv.Membership, q.Subtotal)

	couponDiscount, couponWarnings := c.applyCoupon(inv.Coupon, q.Subtotal)
	q.CouponDiscount = couponDiscount
	q.Discount += couponDiscount
	q.Warnings = append(q.Warnings, couponWarnings...)

	// The tax base is deliberately not clamped: a discount larger than the
	// subtotal yields a negative tax contribution, and only the final total
	// is clamped to zero.
	q.Tax = (q.Subtotal - q.Discount) * c.taxes.RateFor(inv.Country)

	q.Total = q.Subtotal + q.Shipping + q.FragileFee + q.Tax - q.Discount
	if q.Total < 0 {
		q.Total = 0
	}

	if q.Subtotal > upgradeHintSubtotal && !inv.HasMembershipRate() {
		q.Warnings = append(q.Warnings, WarnUpgradeHint)
	}

	return q, nil
}

// subtotalAndFragileFee sums line values and accumulates the per-unit
// fragile-handling surcharge. The fee is flat per unit, not a percentage.
func subtotalAndFragileFee(items []entity.LineItem) (subtotal, fragileFee float64) {
	for _, it := range items {
		subtotal += it.LineTotal()
		if it.Fragile {
			fragileFee += FragileFeePerUnit * float64(it.Qty)
		}
	}
	return subtotal, fragileFee
}

// baseDiscount derives the membership or volume discount. First match wins:
// gold and platinum rates fully replace the flat volume discount, they are
// never additive with it.
func baseDiscount(membership string, subtotal float64) float64 {
	switch membership {
	case entity.MembershipGold:
		return subtotal * goldDiscountRate
	case entity.MembershipPlatinum:
		return subtotal * platinumDiscountRate
	}
	if subtotal > volumeDiscountMin {
		return volumeDiscountAmount
	}
	return 0
}

// applyCoupon derives the coupon discount. An absent or blank code silently
// yields zero; a non-blank code that is not in the table yields zero plus a
// single warning. Lookup is case-sensitive on the trimmed code.
func (c *Calculator) applyCoupon(coupon string, subtotal float64) (float64, []string) {
	code := strings.TrimSpace(coupon)
	if code == "" {
		return 0, nil
	}
	rate, ok := c.coupons.Rate(code)
	if !ok {
		return 0, []string{WarnUnknownCoupon}
	}
	return subtotal * rate, nil
}
