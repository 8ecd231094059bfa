package repository

import "context"

// KeyValueStore is the device-local persistent key-value storage.
type KeyValueStore interface {
	// Get returns the value stored under key, and false when there is none.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value atomically.
	Set(ctx context.Context, key, value string) error
}
