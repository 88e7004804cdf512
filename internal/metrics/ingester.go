package metrics

import (
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "process_block_total",
		Help:      "Count of processed blocks.",
	}, []string{"network", "status"})

	ingesterProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of normalizing and decoding a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "flush_total",
		Help:      "Count of block batch flushes.",
	}, []string{"network", "status"})

	ingesterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a batch of blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "flush_size",
		Help:      "Number of blocks written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	ingesterCursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "cursor_height",
		Help:      "Highest block height durably written.",
	}, []string{"network"})

	ingesterBlockLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nearinsight",
		Subsystem: "near_ingester",
		Name:      "block_lag_seconds",
		Help:      "Age of the last processed block.",
	}, []string{"network"})
)

type Ingester struct {
	network model.Network
}

func NewIngester(network model.Network) *Ingester {
	if network == "" {
		network = "unknown"
	}
	return &Ingester{network: network}
}

func (m Ingester) ObserveProcessBlock(err error, blockTime time.Time, started time.Time) {
	status := statusLabel(err)
	ingesterProcessBlockTotal.WithLabelValues(string(m.network), status).Inc()
	ingesterProcessBlockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		ingesterBlockLag.WithLabelValues(string(m.network)).Set(time.Since(blockTime).Seconds())
	}
}

func (m Ingester) ObserveFlush(err error, blocks int, started time.Time) {
	status := statusLabel(err)
	ingesterFlushTotal.WithLabelValues(string(m.network), status).Inc()
	ingesterFlushDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	ingesterFlushSize.WithLabelValues(string(m.network)).Observe(float64(blocks))
}

func (m Ingester) SetCursor(height uint64) {
	ingesterCursorHeight.WithLabelValues(string(m.network)).Set(float64(height))
}
