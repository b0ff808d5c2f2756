package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of Aptos node REST operations.",
	}, []string{"operation", "network", "status"})
	nodeClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Aptos node REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for REST calls to an Aptos fullnode.
type NodeClient struct {
	network string
}

// NewNodeClient constructs a metrics collector for node calls.
func NewNodeClient(network string) *NodeClient {
	return &NodeClient{network: orUnknown(network)}
}

// Observe records a single node call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	nodeClientRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeClientRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
