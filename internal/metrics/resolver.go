package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverTierLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_resolver",
		Name:      "tier_lookups_total",
		Help:      "Count of resolver tier invocations.",
	}, []string{"tier", "status"})
	resolverTierResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_resolver",
		Name:      "tier_resolved_ids_total",
		Help:      "Count of identifiers answered by each tier.",
	}, []string{"tier"})
	resolverTierRequestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_resolver",
		Name:      "tier_requested_ids_total",
		Help:      "Count of identifiers handed to each tier.",
	}, []string{"tier"})
	resolverTierDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "near_resolver",
		Name:      "tier_duration_seconds",
		Help:      "Duration of resolver tier lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tier", "status"})
)

// Resolver tracks transaction hash resolution per tier.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveTier records one tier lookup.
func (m Resolver) ObserveTier(tier string, requested, resolved int, err error, started time.Time) {
	status := statusLabel(err)
	resolverTierLookupsTotal.WithLabelValues(tier, status).Inc()
	resolverTierRequestedTotal.WithLabelValues(tier).Add(float64(requested))
	resolverTierResolvedTotal.WithLabelValues(tier).Add(float64(resolved))
	resolverTierDuration.WithLabelValues(tier, status).Observe(time.Since(started).Seconds())
}
