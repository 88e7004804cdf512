package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"backend", "operation", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "near_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"backend", "operation", "status"})
)

// Repository tracks metrics for store operations of one backend.
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector for the named backend.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = "unknown"
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	repositoryOperationsTotal.WithLabelValues(m.backend, operation, status).Inc()
	repositoryOperationDuration.WithLabelValues(m.backend, operation, status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
