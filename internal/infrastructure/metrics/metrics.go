// Package metrics registers the Prometheus collectors for the pricing
// service. Collectors are created once at startup and shared; the package
// never buffers or samples on its own.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// PricingMetrics groups the Prometheus collectors for the quote pipeline.
type PricingMetrics struct {
	// QuotesTotal counts successfully priced invoices by country.
	QuotesTotal *prometheus.CounterVec

	// ValidationFailures counts invoices rejected by structural validation.
	ValidationFailures prometheus.Counter

	// QuoteWarnings counts advisory warnings emitted alongside quotes.
	QuoteWarnings prometheus.Counter

	// QuoteAmount tracks the distribution of computed invoice totals.
	QuoteAmount prometheus.Histogram
}

// New registers and returns the pricing collectors.
//
// Parameters:
//   - namespace: Prometheus namespace prefix for all collectors
//   - reg: registry to register with, nil for the default registerer
//
// Returns:
//   - *PricingMetrics: the registered collectors
func New(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Total number of invoices priced successfully, by country.",
		}, []string{"country"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_validation_failures_total",
			Help:      "Total number of invoices rejected by validation.",
		}),
		QuoteWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_warnings_total",
			Help:      "Total number of advisory warnings attached to quotes.",
		}),
		QuoteAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_amount",
			Help:      "Distribution of computed invoice totals.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
	}
	reg.MustRegister(m.QuotesTotal, m.ValidationFailures, m.QuoteWarnings, m.QuoteAmount)
	return m
}
