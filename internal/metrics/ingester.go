package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "batch_total",
		Help:      "Count of processed batches of ranges.",
	}, []string{"processor", "network", "status"})

	ingesterBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "batch_duration_seconds",
		Help:      "Duration of processing a batch of ranges.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"processor", "network", "status"})

	ingesterBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "batch_size",
		Help:      "Number of ranges processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"processor", "network"})

	ingesterLastSuccessVersion = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "last_success_version",
		Help:      "Last transaction version committed to processor_status.",
	}, []string{"processor", "network"})

	ingesterMirrorFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "mirror_flush_total",
		Help:      "Count of coin activity mirror flushes.",
	}, []string{"processor", "network", "status"})

	ingesterMirrorFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "mirror_flush_duration_seconds",
		Help:      "Duration of coin activity mirror flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"processor", "network", "status"})

	ingesterMirrorActivitiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "ingester",
		Name:      "mirror_activities_total",
		Help:      "Count of coin activities by mirror outcome.",
	}, []string{"processor", "network", "status"})
)

const statusDropped = "dropped"

// Ingester tracks metrics for the ingestion loop and its analytics mirror.
type Ingester struct {
	processor string
	network   string
}

// NewIngester constructs an Ingester with sane defaults.
func NewIngester(processor, network string) *Ingester {
	return &Ingester{processor: orUnknown(processor), network: orUnknown(network)}
}

// ObserveBatch records processing of a batch of ranges.
func (m Ingester) ObserveBatch(err error, ranges int, started time.Time) {
	status := statusOf(err)
	ingesterBatchTotal.WithLabelValues(m.processor, m.network, status).Inc()
	ingesterBatchDuration.WithLabelValues(m.processor, m.network, status).Observe(time.Since(started).Seconds())
	ingesterBatchSize.WithLabelValues(m.processor, m.network).Observe(float64(ranges))
}

// SetLastSuccessVersion exports the committed progress.
func (m Ingester) SetLastSuccessVersion(version int64) {
	ingesterLastSuccessVersion.WithLabelValues(m.processor, m.network).Set(float64(version))
}

// ObserveMirrorFlush records one flush of mirrored coin activities.
func (m Ingester) ObserveMirrorFlush(err error, activities int, started time.Time) {
	status := statusOf(err)
	ingesterMirrorFlushTotal.WithLabelValues(m.processor, m.network, status).Inc()
	ingesterMirrorFlushDuration.WithLabelValues(m.processor, m.network, status).Observe(time.Since(started).Seconds())
	ingesterMirrorActivitiesTotal.WithLabelValues(m.processor, m.network, status).Add(float64(activities))
}

// ObserveMirrorDropped counts activities that never reached the mirror queue.
func (m Ingester) ObserveMirrorDropped(activities int) {
	ingesterMirrorActivitiesTotal.WithLabelValues(m.processor, m.network, statusDropped).Add(float64(activities))
}
