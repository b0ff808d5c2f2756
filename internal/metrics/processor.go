package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processorRangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "processor",
		Name:      "ranges_total",
		Help:      "Count of processed version ranges by the stage they ended in.",
	}, []string{"processor", "network", "stage", "status"})

	processorRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "processor",
		Name:      "range_duration_seconds",
		Help:      "Duration of processing a version range.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"processor", "network", "status"})

	processorTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "processor",
		Name:      "transactions_total",
		Help:      "Count of transactions in successfully processed ranges.",
	}, []string{"processor", "network"})
)

// Processor tracks metrics for the range processor.
type Processor struct {
	processor string
	network   string
}

// NewProcessor constructs a Processor metrics collector.
func NewProcessor(processor, network string) *Processor {
	return &Processor{processor: orUnknown(processor), network: orUnknown(network)}
}

// ObserveRange records the outcome of one range.
func (m Processor) ObserveRange(stage string, err error, transactions int, started time.Time) {
	status := statusOf(err)
	processorRangesTotal.WithLabelValues(m.processor, m.network, stage, status).Inc()
	processorRangeDuration.WithLabelValues(m.processor, m.network, status).Observe(time.Since(started).Seconds())
	if err == nil {
		processorTransactionsTotal.WithLabelValues(m.processor, m.network).Add(float64(transactions))
	}
}
