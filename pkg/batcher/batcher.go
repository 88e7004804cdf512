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

// ErrStopped is returned by Add once the batcher no longer accepts items.
var ErrStopped = errors.New("batcher stopped")

// Batcher buffers items and flushes them either by size or interval.
// The first failed flush stops the batcher; the error is kept and reported by
// Add, Err and Stop. Items buffered when the context is canceled are dropped.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	err      error
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.run(ctx)
}

// Stop flushes what is buffered, waits for the loop to exit and returns the
// flush error if any. Start must have been called.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	<-b.done
	return b.err
}

// Done is closed when the flushing loop exits.
func (b *Batcher[T]) Done() <-chan struct{} {
	return b.done
}

// Err returns the flush error once Done is closed.
func (b *Batcher[T]) Err() error {
	select {
	case <-b.done:
		return b.err
	default:
		return nil
	}
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		if b.err != nil {
			return b.err
		}
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		if b.err != nil {
			return b.err
		}
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() bool {
		if ctx.Err() != nil {
			return false
		}
		if len(buf) == 0 {
			return true
		}

		b.rl.Take()
		if err := b.flushCallback(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			b.err = err
			return false
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		buf = buf[:0]
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-b.stop:
			for len(b.itemsCh) > 0 {
				buf = append(buf, <-b.itemsCh)
			}
			flush()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize && !flush() {
				return
			}

		case <-ticker.C:
			if !flush() {
				return
			}
		}
	}
}
