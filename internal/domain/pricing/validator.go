package pricing

import (
	"fmt"

	"github.com/hapkiduki/invoice-go/internal/domain/entity"
)

// Validate checks the structural correctness of an invoice and returns the
// ordered list of problems found; an empty list means the invoice is valid.
//
// Problems are accumulated, not short-circuited: a missing invoice ID, a
// missing customer ID and an empty item list are all reported together, and
// every item is checked independently for all of its own problems. The only
// exception is a nil invoice, which is reported alone since nothing else can
// be checked.
//
// Parameters:
//   - inv: the invoice to check, may be nil
//
// Returns:
//   - []string: ordered human-readable problems, empty when valid
func Validate(inv *entity.Invoice) []string {
	if inv == nil {
		return []string{"Invoice is missing"}
	}

	var problems []string
	if inv.InvoiceID == "" {
		problems = append(problems, "Missing invoice_id")
	}
	if inv.CustomerID == "" {
		problems = append(problems, "Missing customer_id")
	}
	if len(inv.Items) == 0 {
		problems = append(problems, "Invoice must contain items")
	}
	for _, it := range inv.Items {
		if it.SKU == "" {
			problems = append(problems, "Item sku is missing")
		}
		if it.Qty <= 0 {
			problems = append(problems, fmt.Sprintf("Invalid qty for %s", it.SKU))
		}
		if it.UnitPrice < 0 {
			problems = append(problems, fmt.Sprintf("Invalid price for %s", it.SKU))
		}
		if !it.Category.IsValid() {
			problems = append(problems, fmt.Sprintf("Unknown category for %s", it.SKU))
		}
	}
	return problems
}
