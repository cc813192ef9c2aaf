package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Store metrics
	StoreOperations  *prometheus.CounterVec
	StoreErrors      *prometheus.CounterVec
	StoreLatency     *prometheus.HistogramVec
	StoreConnections prometheus.Gauge

	// Session metrics
	SessionsIssued  prometheus.Counter
	SessionsRevoked prometheus.Counter

	// News feed metrics
	NewsFetches       prometheus.Counter
	NewsFetchFailures prometheus.Counter
	NewsCacheHits     prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		StoreOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operations_total",
			Help:      "Total number of store operations by collection and operation",
		}, []string{"collection", "operation"}),
		StoreErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_errors_total",
			Help:      "Total number of failed store operations by collection and operation",
		}, []string{"collection", "operation"}),
		StoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operation_duration_seconds",
			Help:      "Time spent executing store operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"collection", "operation"}),
		StoreConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_open_connections",
			Help:      "Current number of open store connections",
		}),
		SessionsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_issued_total",
			Help:      "Total number of login sessions issued",
		}),
		SessionsRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_revoked_total",
			Help:      "Total number of sessions revoked by logout",
		}),
		NewsFetches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "news_fetches_total",
			Help:      "Total number of upstream news feed fetches",
		}),
		NewsFetchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "news_fetch_failures_total",
			Help:      "Total number of failed news feed fetches",
		}),
		NewsCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "news_cache_hits_total",
			Help:      "Total number of news feed cache hits",
		}),
	}
}
