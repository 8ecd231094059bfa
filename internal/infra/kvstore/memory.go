package kvstore

import (
	"context"
	"sync"

	"refuge/internal/errors"
)

// Memory is a volatile key-value store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.WithStack(err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]

	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value

	return nil
}
