package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Statement metrics
	StatementsComputed *prometheus.CounterVec
	StatementDuration  prometheus.Histogram
	RecordsNormalized  prometheus.Counter
	RecordsDropped     prometheus.Counter

	// Booking metrics
	DocumentsCreated *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries  *prometheus.CounterVec
	DBDuration *prometheus.HistogramVec
	DBErrors   *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Statement metrics
		StatementsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_statements_computed_total",
				Help: "Total number of statements computed by view",
			},
			[]string{"view"},
		),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "freightledger_statement_duration_seconds",
			Help:    "Duration of statement computation",
			Buckets: prometheus.DefBuckets,
		}),
		RecordsNormalized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "freightledger_records_normalized_total",
			Help: "Total number of raw records normalized into transactions",
		}),
		RecordsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "freightledger_records_dropped_total",
			Help: "Total number of raw records dropped for unusable dates",
		}),

		// Booking metrics
		DocumentsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_documents_created_total",
				Help: "Total number of documents booked by kind",
			},
			[]string{"kind"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "freightledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "freightledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freightledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
