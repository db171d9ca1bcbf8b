// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service
type Metrics struct {
	// Outbound OSV query metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram

	// Lookup metrics
	LookupsTotal prometheus.Counter
	LookupsEmpty prometheus.Counter
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// Get returns the singleton metrics instance
func Get() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "osv_queries_total",
				Help: "Total number of outbound OSV queries by ecosystem and status",
			}, []string{"ecosystem", "status"}),
			QueryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "osv_query_duration_seconds",
				Help:    "Duration of outbound OSV queries in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			}),

			LookupsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "fixed_version_lookups_total",
				Help: "Total number of fixed-version lookups served",
			}),
			LookupsEmpty: promauto.NewCounter(prometheus.CounterOpts{
				Name: "fixed_version_lookups_empty_total",
				Help: "Total number of lookups that found no fixed versions",
			}),
		}
	})
	return metricsInstance
}
