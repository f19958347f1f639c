package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stakingSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "stekfinance",
	Subsystem: "staking",
	Name:      "submissions_total",
	Help:      "Count of staking submissions by kind and terminal state.",
}, []string{"kind", "state"})

type Staking struct{}

func (Staking) ObserveSubmission(kind, state string) {
	stakingSubmissionsTotal.WithLabelValues(kind, state).Inc()
}
