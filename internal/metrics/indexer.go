package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stekfinance",
		Subsystem: "indexer",
		Name:      "requests_total",
		Help:      "Count of block explorer requests.",
	}, []string{"action", "status"})
	indexerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "stekfinance",
		Subsystem: "indexer",
		Name:      "request_duration_seconds",
		Help:      "Duration of block explorer requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "status"})
)

// Indexer tracks metrics for block explorer calls.
type Indexer struct{}

// Observe records a single explorer call outcome and duration.
func (Indexer) Observe(action string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	indexerRequestsTotal.WithLabelValues(action, status).Inc()
	indexerRequestDuration.WithLabelValues(action, status).Observe(time.Since(started).Seconds())
}
