// Package main is the entry point for the invoice pricing service.
// The service exposes a single calculation: it validates an invoice and
// reduces it to a final payable total plus advisory warnings.
//
// 12-Factor App compilance:
//   - I. Codebase: Single codebase tracked in version control
//   - II. Dependencies: Managed via go.mod
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run cmd/invoice-api/main.go
//
// Environment Variables:
//
//	IPS_APP_ENVIRONMENT - Deployment environment (development, staging, production)
//	IPS_SERVER_PORT     - HTTP server port (default: 8080)
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hapkiduki/invoice-go/internal/application/dto"
	"github.com/hapkiduki/invoice-go/internal/application/port"
	"github.com/hapkiduki/invoice-go/internal/domain/pricing"
	"github.com/hapkiduki/invoice-go/internal/infrastructure/config"
	"github.com/hapkiduki/invoice-go/internal/infrastructure/metrics"
	"github.com/hapkiduki/invoice-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/invoice-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/invoice-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       "info",
		Format:      "json",
		Development: cfg.App.Environment == "development",
	})
	defer log.Sync()

	log.Info("Starting Invoice Pricing Service",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := &loggerAdapter{log}

	// Wire the pricing pipeline: default rate tables, Prometheus collectors,
	// the quote handler.
	calc := pricing.NewDefaultCalculator()
	pricingMetrics := metrics.New("invoice", nil)
	invoiceHandler := handler.NewInvoiceHandler(calc, logAdapter, pricingMetrics)

	r := chi.NewRouter()

	// Middleware order matters: request IDs first so everything downstream
	// can log them.
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logAdapter))
	r.Use(middleware.Recoverer(logAdapter))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-API-Version"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.DefaultRateLimiterConfig()))
	r.Use(middleware.ContentTypeJSON)

	// Routes
	r.Get("/health", healthHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/api/v1/invoices", invoiceHandler.Routes())

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

// healthHandler returns the health check handler.
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusOK)
		render.JSON(w, r, dto.HealthResponse{
			Status:  "healthy",
			Version: version,
			Uptime:  time.Since(startTime).String(),
		})
	}
}

// notFoundHandler handles 404 responses.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, dto.NewErrorResponse[struct{}]("NOT_FOUND", "The requested resource was not found"))
}

// methodNotAllowedHandler handles 405 responses.
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, dto.NewErrorResponse[struct{}]("METHOD_NOT_ALLOWED", "The requested method is not allowed for this resource"))
}

// ============================================================================
// Adapters to implement port interfaces
// ============================================================================

// loggerAdapter adapts the logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// Debug implements port.Logger.
func (l *loggerAdapter) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, keysAndValues...)
}

// Info implements port.Logger.
func (l *loggerAdapter) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

// Warn implements port.Logger.
func (l *loggerAdapter) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, keysAndValues...)
}

// Error implements port.Logger.
func (l *loggerAdapter) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, keysAndValues...)
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger. The request ID is carried under the
// middleware's context key, so it is translated into a logger field here.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	if id := middleware.GetRequestID(ctx); id != "" {
		return &loggerAdapter{l.Logger.With("request_id", id)}
	}
	return &loggerAdapter{l.Logger}
}
