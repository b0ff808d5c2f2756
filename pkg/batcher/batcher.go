// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// Options configures a Batcher.
type Options struct {
	// FlushSize is the buffered item count that triggers a flush.
	FlushSize int
	// FlushInterval flushes a non-empty buffer that did not reach FlushSize.
	FlushInterval time.Duration
	// RPS caps flushes per second. Zero disables the limit.
	RPS int
	// OnFlush is called after every flush attempt with its outcome.
	OnFlush func(err error, items int, started time.Time)
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	onFlush       func(err error, items int, started time.Time)
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. flushCallback must not retain the slice it is given.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, opts Options) *Batcher[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.FlushSize <= 0 {
		opts.FlushSize = 1
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if opts.RPS > 0 {
		rl = ratelimit.New(opts.RPS)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		onFlush:       opts.OnFlush,
		itemsCh:       make(chan T, opts.FlushSize*2),
		flushSize:     opts.FlushSize,
		flushInterval: opts.FlushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes everything queued so far and stops the background loop. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		started := time.Now()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		if b.onFlush != nil {
			b.onFlush(err, len(buf), started)
		}
		buf = buf[:0]
	}

	// drain empties the queue on shutdown. The final flushes outlive the run context.
	drain := func() {
		finalCtx := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(finalCtx)
				}
			default:
				flush(finalCtx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
