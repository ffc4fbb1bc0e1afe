// Package observability provides Prometheus metrics for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CascadeDeletes counts cascade deletions by principal entity and outcome.
	// A "failure" means the transaction rolled back and needs reconciliation.
	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cascade_deletes_total",
		Help: "Total number of cascade deletions by entity and outcome",
	}, []string{"entity", "outcome"})

	// RelationshipEdges counts relationship edge writes by type and action.
	RelationshipEdges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_relationship_edges_total",
		Help: "Total number of relationship edge writes by relation type and action",
	}, []string{"relation_type", "action"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
