package pricing

import "strings"

// ValidationError is the single error kind the calculator produces. It is
// returned when an invoice is structurally malformed; no total is computed
// in that case and retrying with the same input is not meaningful.
//
// The ordered problem list is kept so callers can inspect individual
// problems; Error joins them into the single-string form.
type ValidationError struct {
	// Problems is the ordered list of human-readable problems found.
	Problems []string
}

// Error returns all problems joined by "; ".
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}
