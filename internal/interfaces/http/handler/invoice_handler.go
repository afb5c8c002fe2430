// Package handler contains the HTTP handlers for the pricing API.
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/invoice-go/internal/application/dto"
	"github.com/hapkiduki/invoice-go/internal/application/port"
	"github.com/hapkiduki/invoice-go/internal/domain/pricing"
	"github.com/hapkiduki/invoice-go/internal/infrastructure/metrics"
)

// InvoiceHandler serves invoice quote requests.
type InvoiceHandler struct {
	calc    *pricing.Calculator
	logger  port.Logger
	metrics *metrics.PricingMetrics
}

// NewInvoiceHandler creates an InvoiceHandler.
//
// Parameters:
//   - calc: the invoice calculator
//   - logger: structured logger
//   - m: pricing metrics collectors, may be nil
//
// Returns:
//   - *InvoiceHandler: the configured handler
func NewInvoiceHandler(calc *pricing.Calculator, logger port.Logger, m *metrics.PricingMetrics) *InvoiceHandler {
	return &InvoiceHandler{
		calc:    calc,
		logger:  logger,
		metrics: m,
	}
}

// Routes returns the handler's route tree, ready to be mounted.
//
// Returns:
//   - chi.Router: router with the quote endpoint registered
func (h *InvoiceHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/quote", h.Quote)
	return r
}

// Quote prices one invoice and returns the total, the per-step breakdown and
// any advisory warnings. A structurally invalid invoice yields 422 with the
// joined problem message plus the individual problems; advisory warnings
// (unknown coupon, upgrade suggestion) never fail the call.
func (h *InvoiceHandler) Quote(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithContext(r.Context())

	var req dto.QuoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[dto.QuoteResponse]("INVALID_JSON", "Request body is not valid JSON"))
		return
	}

	quote, err := h.calc.ComputeTotal(req.ToInvoice())
	if err != nil {
		var verr *pricing.ValidationError
		if errors.As(err, &verr) {
			if h.metrics != nil {
				h.metrics.ValidationFailures.Inc()
			}
			log.Warn("Invoice rejected",
				"invoice_id", req.InvoiceID,
				"problems", len(verr.Problems),
			)
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, dto.NewValidationErrorResponse[dto.QuoteResponse](verr.Error(), toValidationErrors(verr)))
			return
		}

		log.Error("Pricing failed", "invoice_id", req.InvoiceID, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[dto.QuoteResponse]("INTERNAL_ERROR", "Failed to price invoice"))
		return
	}

	if h.metrics != nil {
		h.metrics.QuotesTotal.WithLabelValues(req.Country).Inc()
		h.metrics.QuoteWarnings.Add(float64(len(quote.Warnings)))
		h.metrics.QuoteAmount.Observe(quote.Total)
	}
	log.Info("Invoice priced",
		"invoice_id", req.InvoiceID,
		"country", req.Country,
		"total", quote.Total,
		"warnings", len(quote.Warnings),
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(dto.NewQuoteResponse(req.InvoiceID, quote)))
}

// toValidationErrors maps the domain problem list onto the wire format.
func toValidationErrors(verr *pricing.ValidationError) []dto.ValidationError {
	out := make([]dto.ValidationError, 0, len(verr.Problems))
	for _, p := range verr.Problems {
		out = append(out, dto.ValidationError{Message: p})
	}
	return out
}
