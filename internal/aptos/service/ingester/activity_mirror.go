package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-aptos/internal/aptos/model"
	"github.com/goodnatureofminers/blockinsight7000-aptos/pkg/batcher"
	"go.uber.org/zap"
)

// ActivityMirror copies committed coin activity rows into the analytics store.
// It is best-effort: Postgres stays the source of truth and mirror failures never fail a range.
type ActivityMirror struct {
	sink    ActivitySink
	metrics MirrorMetrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.CoinActivity]
}

// NewActivityMirror builds an ActivityMirror flushing into sink.
func NewActivityMirror(sink ActivitySink, metrics MirrorMetrics, logger *zap.Logger) *ActivityMirror {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &ActivityMirror{
		sink:    sink,
		metrics: metrics,
		logger:  logger.Named("activityMirror"),
	}
	m.batcher = batcher.New[model.CoinActivity](
		m.logger.Named("activityBatcher"),
		m.flush,
		batcher.Options{
			FlushSize:     mirrorFlushSize,
			FlushInterval: mirrorFlushInterval,
			RPS:           mirrorFlushRPS,
			OnFlush:       m.observeFlush,
		},
	)
	return m
}

func (m *ActivityMirror) Start(ctx context.Context) {
	m.batcher.Start(ctx)
}

func (m *ActivityMirror) Stop() {
	m.batcher.Stop()
}

// Wrap returns a RangeWriter that queues the coin activities of every range next commits.
func (m *ActivityMirror) Wrap(next RangeWriter) RangeWriter {
	return &mirroredWriter{next: next, mirror: m}
}

// Enqueue queues activities for the next flush. Rows that cannot be queued are dropped and counted.
func (m *ActivityMirror) Enqueue(ctx context.Context, activities []model.CoinActivity) {
	for i, a := range activities {
		if err := m.batcher.Add(ctx, a); err != nil {
			dropped := len(activities) - i
			m.logger.Warn("coin activities not mirrored", zap.Int("dropped", dropped), zap.Error(err))
			if m.metrics != nil {
				m.metrics.ObserveMirrorDropped(dropped)
			}
			return
		}
	}
}

func (m *ActivityMirror) flush(ctx context.Context, activities []model.CoinActivity) error {
	return m.sink.InsertCoinActivities(ctx, activities)
}

func (m *ActivityMirror) observeFlush(err error, activities int, started time.Time) {
	if m.metrics == nil {
		return
	}
	m.metrics.ObserveMirrorFlush(err, activities, started)
}

type mirroredWriter struct {
	next   RangeWriter
	mirror *ActivityMirror
}

func (w *mirroredWriter) WriteRange(ctx context.Context, vr model.VersionRange, rows model.RangeRows) error {
	if err := w.next.WriteRange(ctx, vr, rows); err != nil {
		return err
	}
	w.mirror.Enqueue(ctx, rows.CoinActivities)
	return nil
}
