package metrics

import (
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lakeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "lake_client",
		Name:      "operations_total",
		Help:      "Count of object storage operations against the lake bucket.",
	}, []string{"operation", "network", "status"})
	lakeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "lake_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of object storage operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// LakeClient tracks metrics for lake bucket calls.
type LakeClient struct {
	network model.Network
}

// NewLakeClient constructs a metrics collector for lake bucket calls.
func NewLakeClient(network model.Network) *LakeClient {
	if network == "" {
		network = "unknown"
	}
	return &LakeClient{network: network}
}

// Observe records a single call outcome and duration.
func (m LakeClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	lakeRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	lakeRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
