// Package live provides push-based, restartable snapshot sequences and the
// single owned state cells they are derived from.
package live

import (
	"context"

	"refuge/internal/errors"
)

// ErrEnded is returned by First when a feed ends without emitting.
var ErrEnded = errors.New("feed ended without a snapshot")

// Producer pushes snapshots through emit until it returns. emit reports false
// once the subscription has been closed; the producer must then return.
type Producer[T any] func(ctx context.Context, emit func(T) bool) error

// Feed is one subscription to a potentially infinite sequence of full snapshots.
// Snapshots are delivered in order. Closing the feed stops further deliveries
// immediately; subscribing again starts a fresh snapshot cycle.
type Feed[T any] struct {
	updates chan T
	done    chan struct{}
	cancel  context.CancelFunc
	err     error
}

// Start runs produce in its own goroutine and returns the feed it emits into.
func Start[T any](ctx context.Context, produce Producer[T]) *Feed[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Feed[T]{
		updates: make(chan T),
		done:    make(chan struct{}),
		cancel:  cancel,
	}

	go func() {
		// done closes first so Err is settled once Updates is seen closed.
		defer close(f.updates)
		defer close(f.done)

		emit := func(v T) bool {
			select {
			case f.updates <- v:
				return true
			case <-ctx.Done():
				return false
			}
		}

		err := produce(ctx, emit)
		if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
			err = nil
		}
		f.err = err
	}()

	return f
}

// Updates returns the channel snapshots are delivered on. It is closed when the
// producer stops, after which Err reports why.
func (f *Feed[T]) Updates() <-chan T {
	return f.updates
}

// Err returns the error that ended the feed, or nil while it is still running
// or when it was closed by the subscriber.
func (f *Feed[T]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Done is closed once the producer has returned.
func (f *Feed[T]) Done() <-chan struct{} {
	return f.done
}

// Close unsubscribes and waits for the producer to return. It is safe to call
// more than once. Writes already in flight elsewhere are not affected.
func (f *Feed[T]) Close() {
	f.cancel()
	<-f.done
}

// Map derives a feed by applying fn to every snapshot of src. Closing the
// derived feed closes src.
func Map[S, T any](ctx context.Context, src *Feed[S], fn func(S) T) *Feed[T] {
	return Start(ctx, func(ctx context.Context, emit func(T) bool) error {
		defer src.Close()

		for {
			select {
			case v, ok := <-src.Updates():
				if !ok {
					return src.Err()
				}
				if !emit(fn(v)) {
					return nil
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
}

// First returns the first snapshot of f and closes it. It fails with the feed's
// error when f ends before emitting, or with the context's error.
func First[T any](ctx context.Context, f *Feed[T]) (T, error) {
	defer f.Close()

	var zero T
	select {
	case v, ok := <-f.Updates():
		if !ok {
			if err := f.Err(); err != nil {
				return zero, err
			}

			return zero, ErrEnded
		}

		return v, nil
	case <-ctx.Done():
		return zero, errors.WithStack(ctx.Err())
	}
}
