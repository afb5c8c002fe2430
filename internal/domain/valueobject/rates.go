// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// The rate tables in this package follow these principles:
//   - Immutability: input maps are copied at construction; a table is never
//     mutated afterwards, so tables are safe for concurrent readers.
//   - Explicit fallbacks: an absent key is distinct from a key configured
//     with zero values; each table carries its own default branch.
package valueobject

// CouponTable maps promotional codes to fractional discount rates.
// Lookups are case-sensitive exact matches; callers are expected to trim
// surrounding whitespace before looking a code up.
type CouponTable struct {
	rates map[string]float64
}

// NewCouponTable creates a CouponTable from the given code-to-rate mapping.
// The mapping is copied, so later changes to the argument do not affect the table.
//
// Parameters:
//   - rates: mapping of coupon code to discount rate (e.g., 0.10 for 10%)
//
// Returns:
//   - CouponTable: the immutable coupon table
func NewCouponTable(rates map[string]float64) CouponTable {
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return CouponTable{rates: copied}
}

// DefaultCouponTable returns the built-in promotional codes.
//
// Returns:
//   - CouponTable: WELCOME10 (10%), VIP20 (20%), STUDENT5 (5%)
func DefaultCouponTable() CouponTable {
	return NewCouponTable(map[string]float64{
		"WELCOME10": 0.10,
		"VIP20":     0.20,
		"STUDENT5":  0.05,
	})
}

// Rate returns the discount rate for a coupon code.
//
// Parameters:
//   - code: the coupon code, already trimmed
//
// Returns:
//   - float64: the discount rate, zero when the code is unknown
//   - bool: true if the code is configured
func (t CouponTable) Rate(code string) (float64, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

// ShippingRule pairs a free-shipping subtotal threshold with the flat fee
// charged below it.
type ShippingRule struct {
	// Threshold is the subtotal at which shipping becomes free
	Threshold float64 `json:"threshold"`

	// Fee is the flat shipping fee charged below the threshold
	Fee float64 `json:"fee"`
}

// ShippingTable maps country codes to shipping rules and carries an explicit
// fallback rule for unconfigured countries.
type ShippingTable struct {
	rules    map[string]ShippingRule
	fallback ShippingRule
}

// NewShippingTable creates a ShippingTable from per-country rules and a
// fallback rule. The rules mapping is copied at construction.
//
// Parameters:
//   - rules: mapping of country code to shipping rule
//   - fallback: rule applied to countries absent from the mapping
//
// Returns:
//   - ShippingTable: the immutable shipping table
func NewShippingTable(rules map[string]ShippingRule, fallback ShippingRule) ShippingTable {
	copied := make(map[string]ShippingRule, len(rules))
	for country, rule := range rules {
		copied[country] = rule
	}
	return ShippingTable{rules: copied, fallback: fallback}
}

// DefaultShippingTable returns the built-in shipping rules.
//
// Returns:
//   - ShippingTable: TH (500/60), JP (4000/600), US (100/15),
//     fallback (200/25) for everywhere else
func DefaultShippingTable() ShippingTable {
	return NewShippingTable(map[string]ShippingRule{
		"TH": {Threshold: 500, Fee: 60},
		"JP": {Threshold: 4000, Fee: 600},
		"US": {Threshold: 100, Fee: 15},
	}, ShippingRule{Threshold: 200, Fee: 25})
}

// FeeFor returns the shipping fee for a country at the given subtotal.
// The comparison is strictly less-than: a subtotal exactly at the threshold
// already ships free. Countries absent from the table use the fallback rule,
// which is distinct from a configured rule with zero values.
//
// Parameters:
//   - country: ISO-style country code
//   - subtotal: the invoice subtotal before fees, discounts and tax
//
// Returns:
//   - float64: the flat shipping fee, zero at or above the threshold
func (t ShippingTable) FeeFor(country string, subtotal float64) float64 {
	rule, ok := t.rules[country]
	if !ok {
		rule = t.fallback
	}
	if subtotal < rule.Threshold {
		return rule.Fee
	}
	return 0
}

// TaxTable maps country codes to tax rates and carries an explicit fallback
// rate for unconfigured countries.
type TaxTable struct {
	rates    map[string]float64
	fallback float64
}

// NewTaxTable creates a TaxTable from per-country rates and a fallback rate.
// The rates mapping is copied at construction.
//
// Parameters:
//   - rates: mapping of country code to tax rate
//   - fallback: rate applied to countries absent from the mapping
//
// Returns:
//   - TaxTable: the immutable tax table
func NewTaxTable(rates map[string]float64, fallback float64) TaxTable {
	copied := make(map[string]float64, len(rates))
	for country, rate := range rates {
		copied[country] = rate
	}
	return TaxTable{rates: copied, fallback: fallback}
}

// DefaultTaxTable returns the built-in tax rates.
//
// Returns:
//   - TaxTable: TH (7%), JP (10%), US (8%), fallback 5% everywhere else
func DefaultTaxTable() TaxTable {
	return NewTaxTable(map[string]float64{
		"TH": 0.07,
		"JP": 0.10,
		"US": 0.08,
	}, 0.05)
}

// RateFor returns the tax rate for a country, falling back to the default
// rate for unconfigured countries.
//
// Parameters:
//   - country: ISO-style country code
//
// Returns:
//   - float64: the tax rate as a fraction (e.g., 0.07 for 7%)
func (t TaxTable) RateFor(country string) float64 {
	if rate, ok := t.rates[country]; ok {
		return rate
	}
	return t.fallback
}
