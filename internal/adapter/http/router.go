package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vanshgehlot9/freightledger/internal/adapter/http/handler"
	"github.com/vanshgehlot9/freightledger/internal/adapter/http/middleware"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	StatementHandler *handler.StatementHandler
	InvoiceHandler   *handler.InvoiceHandler
	DeliveryHandler  *handler.DeliveryHandler
	PaymentHandler   *handler.PaymentHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Statements
		r.Get("/statements", cfg.StatementHandler.Get)

		// Invoices
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.Create)
			r.Get("/", cfg.InvoiceHandler.List)
			r.Get("/{id}", cfg.InvoiceHandler.Get)
		})

		// Delivery challans
		r.Route("/deliveries", func(r chi.Router) {
			r.Post("/", cfg.DeliveryHandler.Create)
			r.Get("/", cfg.DeliveryHandler.List)
			r.Get("/{id}", cfg.DeliveryHandler.Get)
		})

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/", cfg.PaymentHandler.Create)
			r.Get("/", cfg.PaymentHandler.List)
			r.Get("/{id}", cfg.PaymentHandler.Get)
		})
	})

	return r
}
