package live

import (
	"context"
	"sync"
)

// Cell is a single owned piece of state with an explicit subscribe/unsubscribe
// contract. A subscriber first receives the current value, then later values;
// values set faster than a subscriber reads may be skipped, the last one never is.
type Cell[T any] struct {
	mu      sync.Mutex
	value   T
	changed chan struct{}
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value:   initial,
		changed: make(chan struct{}),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// Set replaces the value and wakes every subscriber.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	close(c.changed)
	c.changed = make(chan struct{})
}

// CompareAndSet sets v only while guard returns true for the current value.
// It reports whether the value was replaced.
func (c *Cell[T]) CompareAndSet(guard func(T) bool, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !guard(c.value) {
		return false
	}
	c.value = v
	close(c.changed)
	c.changed = make(chan struct{})

	return true
}

func (c *Cell[T]) load() (T, <-chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value, c.changed
}

// Subscribe returns a feed of the cell's values. Close the feed to unsubscribe.
func (c *Cell[T]) Subscribe(ctx context.Context) *Feed[T] {
	return Start(ctx, func(ctx context.Context, emit func(T) bool) error {
		for {
			v, changed := c.load()
			if !emit(v) {
				return nil
			}

			select {
			case <-changed:
			case <-ctx.Done():
				return nil
			}
		}
	})
}
