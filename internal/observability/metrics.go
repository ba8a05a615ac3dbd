package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "murmur_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ActivityAppends counts ledger rows written, labelled by verb.
	ActivityAppends = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murmur_activity_appends_total",
		Help: "Total number of activity ledger rows appended, by verb",
	}, []string{"verb"})

	// FeedRequests counts activity feed reads.
	FeedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "murmur_feed_requests_total",
		Help: "Total number of activity feed reads",
	})
)

// ObserveQuery records latency for a database operation against a table.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records latency when called.
// Usage: defer observability.TrackQuery("select", "activities")()
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
