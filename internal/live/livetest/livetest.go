// Package livetest provides helpers for asserting on live feeds in tests.
package livetest

import (
	"testing"
	"time"

	"refuge/internal/live"
)

// DefaultTimeout bounds how long a helper waits for a snapshot.
const DefaultTimeout = 2 * time.Second

// Next returns the next snapshot of f or fails the test after DefaultTimeout.
func Next[T any](t testing.TB, f *live.Feed[T]) T {
	t.Helper()

	select {
	case v, ok := <-f.Updates():
		if !ok {
			t.Fatalf("feed ended before next snapshot: %v", f.Err())
		}

		return v
	case <-time.After(DefaultTimeout):
		t.Fatalf("no snapshot within %s", DefaultTimeout)
	}

	var zero T

	return zero
}

// Eventually reads snapshots until one satisfies cond and returns it.
func Eventually[T any](t testing.TB, f *live.Feed[T], cond func(T) bool) T {
	t.Helper()

	deadline := time.After(DefaultTimeout)
	for {
		select {
		case v, ok := <-f.Updates():
			if !ok {
				t.Fatalf("feed ended before condition held: %v", f.Err())
			}
			if cond(v) {
				return v
			}
		case <-deadline:
			t.Fatalf("condition not met within %s", DefaultTimeout)
		}
	}
}

// Quiet asserts that f delivers nothing for the given duration.
func Quiet[T any](t testing.TB, f *live.Feed[T], d time.Duration) {
	t.Helper()

	select {
	case v, ok := <-f.Updates():
		if ok {
			t.Fatalf("unexpected snapshot: %+v", v)
		}
	case <-time.After(d):
	}
}
