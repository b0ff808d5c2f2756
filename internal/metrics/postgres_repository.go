package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of Postgres repository operations.",
	}, []string{"operation", "network", "status"})
	postgresRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Postgres repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// PostgresRepository tracks metrics for Postgres repository operations.
type PostgresRepository struct {
	network string
}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository(network string) *PostgresRepository {
	return &PostgresRepository{network: orUnknown(network)}
}

// Observe records duration and status of a repository operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	postgresRepositoryRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	postgresRepositoryRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
