// Package entity contains the core bussiness entities of the domain layer.
package entity

// Category classifies a line item for pricing purposes.
// Only the fixed set below is accepted; anything else is a validation problem.
type Category string

// Supported line item categories.
const (
	CategoryBook        Category = "book"
	CategoryFood        Category = "food"
	CategoryElectronics Category = "electronics"
	CategoryOther       Category = "other"
)

// IsValid reports whether the category belongs to the fixed set.
//
// Returns:
//   - bool: true if the category is one of book, food, electronics, other
func (c Category) IsValid() bool {
	switch c {
	case CategoryBook, CategoryFood, CategoryElectronics, CategoryOther:
		return true
	}
	return false
}

// Membership tiers with a dedicated percentage discount.
// Any other tier string (including "none" or empty) gets no special rate.
const (
	MembershipGold     = "gold"
	MembershipPlatinum = "platinum"
)

// LineItem represents one purchased product line on an invoice.
// It is an immutable value object for the duration of one calculation:
// no identity beyond equality of fields, no persisted lifecycle.
type LineItem struct {
	// SKU is the stock keeping unit identifier (must be non-empty)
	SKU string `json:"sku"`

	// Category classifies the item (must be in the fixed set)
	Category Category `json:"category"`

	// UnitPrice is the selling price per unit (must be non-negative)
	UnitPrice float64 `json:"unit_price"`

	// Qty is the number of units purchased (must be positive)
	Qty int `json:"qty"`

	// Fragile marks items that incur a per-unit handling fee
	Fragile bool `json:"fragile"`
}

// LineTotal returns the line value, unit price times quantity.
//
// Returns:
//   - float64: the line value before fees, discounts and tax
func (li LineItem) LineTotal() float64 {
	return li.UnitPrice * float64(li.Qty)
}

// Invoice represents one order to be priced.
// Like LineItem it is a value object: constructed by the caller immediately
// before pricing and discarded after, never mutated in between.
type Invoice struct {
	// InvoiceID is the invoice identifier (must be non-empty)
	InvoiceID string `json:"invoice_id"`

	// CustomerID is the customer identifier (must be non-empty)
	CustomerID string `json:"customer_id"`

	// Country is an ISO-style country code used for shipping and tax
	// lookups; unrecognized codes fall back to default rules
	Country string `json:"country"`

	// Membership is the customer tier; only gold and platinum are
	// special-cased
	Membership string `json:"membership"`

	// Coupon is an optional promotional code; empty or whitespace-only
	// means no coupon
	Coupon string `json:"coupon,omitempty"`

	// Items is the ordered list of purchased lines (must be non-empty)
	Items []LineItem `json:"items"`
}

// HasMembershipRate reports whether the invoice's tier carries its own
// percentage discount instead of the flat volume discount.
//
// Returns:
//   - bool: true for gold and platinum members
func (inv *Invoice) HasMembershipRate() bool {
	return inv.Membership == MembershipGold || inv.Membership == MembershipPlatinum
}
