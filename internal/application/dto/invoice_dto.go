// Package dto contains data transfer objects.
package dto

import (
	"github.com/hapkiduki/invoice-go/internal/domain/entity"
	"github.com/hapkiduki/invoice-go/internal/domain/pricing"
)

// QuoteItemRequest is the wire representation of one invoice line.
type QuoteItemRequest struct {
	// SKU is the stock keeping unit identifier.
	SKU string `json:"sku"`

	// Category classifies the item (book, food, electronics, other).
	Category string `json:"category"`

	// UnitPrice is the selling price per unit.
	UnitPrice float64 `json:"unit_price"`

	// Qty is the number of units purchased.
	Qty int `json:"qty"`

	// Fragile marks items that incur a per-unit handling fee.
	Fragile bool `json:"fragile"`
}

// QuoteRequest is the wire representation of an invoice to price.
// Structural checks are the domain validator's job: the request is converted
// as-is and every problem is reported through the validation error payload.
type QuoteRequest struct {
	// InvoiceID is the invoice identifier.
	InvoiceID string `json:"invoice_id"`

	// CustomerID is the customer identifier.
	CustomerID string `json:"customer_id"`

	// Country is the ISO-style country code.
	Country string `json:"country"`

	// Membership is the customer tier.
	Membership string `json:"membership"`

	// Coupon is the optional promotional code.
	Coupon string `json:"coupon"`

	// Items is the ordered list of purchased lines.
	Items []QuoteItemRequest `json:"items"`
}

// ToInvoice converts the request into the domain invoice value.
//
// Returns:
//   - *entity.Invoice: the invoice ready for pricing
func (r QuoteRequest) ToInvoice() *entity.Invoice {
	items := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.LineItem{
			SKU:       it.SKU,
			Category:  entity.Category(it.Category),
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
			Fragile:   it.Fragile,
		})
	}
	return &entity.Invoice{
		InvoiceID:  r.InvoiceID,
		CustomerID: r.CustomerID,
		Country:    r.Country,
		Membership: r.Membership,
		Coupon:     r.Coupon,
		Items:      items,
	}
}

// QuoteResponse mirrors a pricing quote on the wire.
type QuoteResponse struct {
	// InvoiceID echoes the priced invoice's identifier.
	InvoiceID string `json:"invoice_id"`

	// Subtotal is the sum of line values.
	Subtotal float64 `json:"subtotal"`

	// FragileFee is the accumulated fragile-handling surcharge.
	FragileFee float64 `json:"fragile_fee"`

	// Shipping is the flat shipping fee.
	Shipping float64 `json:"shipping"`

	// CouponDiscount is the coupon's share of the discount.
	CouponDiscount float64 `json:"coupon_discount"`

	// Discount is the total discount applied.
	Discount float64 `json:"discount"`

	// Tax is the tax amount.
	Tax float64 `json:"tax"`

	// Total is the final payable amount.
	Total float64 `json:"total"`

	// Warnings is the ordered list of advisory messages.
	Warnings []string `json:"warnings"`
}

// NewQuoteResponse builds the wire response for a computed quote.
//
// Parameters:
//   - invoiceID: the priced invoice's identifier
//   - q: the computed quote
//
// Returns:
//   - QuoteResponse: the wire representation
func NewQuoteResponse(invoiceID string, q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		InvoiceID:      invoiceID,
		Subtotal:       q.Subtotal,
		FragileFee:     q.FragileFee,
		Shipping:       q.Shipping,
		CouponDiscount: q.CouponDiscount,
		Discount:       q.Discount,
		Tax:            q.Tax,
		Total:          q.Total,
		Warnings:       q.Warnings,
	}
}
