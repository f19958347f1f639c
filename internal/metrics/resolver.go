package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LookupMemory  = "memory"
	LookupStore   = "store"
	LookupNetwork = "network"
	LookupAbsent  = "absent"
)

var resolverLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "stekfinance",
	Subsystem: "resolver",
	Name:      "lookups_total",
	Help:      "Internal transfer resolutions by the layer that answered them.",
}, []string{"source"})

type Resolver struct{}

func (Resolver) ObserveLookup(source string) {
	resolverLookupsTotal.WithLabelValues(source).Inc()
}
