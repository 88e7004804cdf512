package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_decoder",
		Name:      "calls_total",
		Help:      "Count of contract decoder invocations.",
	}, []string{"contract", "method", "status"})
	decoderEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nearinsight",
		Subsystem: "near_decoder",
		Name:      "events_total",
		Help:      "Count of events produced by contract decoders.",
	}, []string{"contract"})
)

// Decoder tracks contract event decoding.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

func (m Decoder) ObserveDecode(contract, method string, events int, err error) {
	decoderCallsTotal.WithLabelValues(contract, method, statusLabel(err)).Inc()
	decoderEventsTotal.WithLabelValues(contract).Add(float64(events))
}
