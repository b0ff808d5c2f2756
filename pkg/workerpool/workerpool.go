// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	_, err := Map(ctx, workerCount, items, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, process(ctx, item)
	})
	return err
}

// Map is Process that also collects one result per item. Results keep the order of items.
// The first error cancels the remaining work and is returned with a nil result slice.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) && len(items) > 0 {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type task struct {
		index int
		item  T
	}

	results := make([]R, len(items))
	tasks := make(chan task, workerCount)

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					res, err := fn(ctx, t.item)
					if err != nil {
						fail(err)
						return
					}
					results[t.index] = res
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task{index: i, item: item}:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
