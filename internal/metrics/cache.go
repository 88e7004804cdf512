package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_cache",
		Name:      "hits_total",
		Help:      "Count of cache hits per layer.",
	}, []string{"layer"})
	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_cache",
		Name:      "misses_total",
		Help:      "Count of cache misses per layer.",
	}, []string{"layer"})
)

// Cache tracks transaction hash cache effectiveness.
type Cache struct{}

func NewCache() *Cache {
	return &Cache{}
}

func (m Cache) ObserveLookup(layer string, hits, misses int) {
	cacheHitsTotal.WithLabelValues(layer).Add(float64(hits))
	cacheMissesTotal.WithLabelValues(layer).Add(float64(misses))
}
