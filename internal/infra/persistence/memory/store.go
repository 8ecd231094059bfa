// Package memory contains an in-process implementation of the document store.
// It honors the same live-view contract as the remote store and backs local
// development and scenario tests.
package memory

import (
	"context"
	"reflect"
	"sync"
	"time"

	"refuge/internal/domain/repository"
	"refuge/internal/errors"
	"refuge/internal/live"

	"github.com/google/uuid"
)

// Clock returns the current time. Tests replace it to control timestamps.
type Clock func() time.Time

// Store groups the collections of one in-process database.
type Store struct {
	mu   sync.Mutex
	now  Clock
	last time.Time

	animals  *collection[animalDoc]
	requests *collection[requestDoc]
	profiles *collection[profileDoc]
}

// NewStore creates an empty store using the wall clock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates an empty store whose creation timestamps come from now.
func NewStoreWithClock(now Clock) *Store {
	return &Store{
		now:      now,
		animals:  newCollection[animalDoc](),
		requests: newCollection[requestDoc](),
		profiles: newCollection[profileDoc](),
	}
}

// timestamp returns a server-side creation time that never goes backwards.
func (s *Store) timestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t

	return t
}

func newID() string {
	return uuid.NewString()
}

// document is implemented by the stored representation of each collection.
type document interface {
	field(name string) (any, bool)
}

// collection is an ordered set of documents with change notification.
type collection[D document] struct {
	mu    sync.RWMutex
	docs  map[string]D
	order []string
	rev   *live.Cell[uint64]
}

func newCollection[D document]() *collection[D] {
	return &collection[D]{
		docs: make(map[string]D),
		rev:  live.NewCell[uint64](0),
	}
}

func (c *collection[D]) bump() {
	c.rev.Set(c.rev.Get() + 1)
}

func (c *collection[D]) insert(id string, doc D) {
	c.mu.Lock()
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
	c.mu.Unlock()

	c.bump()
}

func (c *collection[D]) get(id string) (D, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]

	return doc, ok
}

// modify applies fn to an existing document. It reports false when id is absent.
func (c *collection[D]) modify(id string, fn func(*D)) bool {
	c.mu.Lock()
	doc, ok := c.docs[id]
	if ok {
		fn(&doc)
		c.docs[id] = doc
	}
	c.mu.Unlock()

	if ok {
		c.bump()
	}

	return ok
}

func (c *collection[D]) remove(id string) bool {
	c.mu.Lock()
	_, ok := c.docs[id]
	if ok {
		delete(c.docs, id)
		for i, existing := range c.order {
			if existing == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()

	if ok {
		c.bump()
	}

	return ok
}

// query returns the identifiers and documents matching filter, in insertion order.
func (c *collection[D]) query(filter repository.Filter) ([]string, []D, error) {
	var zero D
	if _, ok := zero.field(filter.Field); !ok {
		return nil, nil, errors.Errorf("unsupported filter field %q", filter.Field)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.order))
	docs := make([]D, 0, len(c.order))
	for _, id := range c.order {
		doc := c.docs[id]
		if value, _ := doc.field(filter.Field); value == filter.Value {
			ids = append(ids, id)
			docs = append(docs, doc)
		}
	}

	return ids, docs, nil
}

// watchQuery emits the matching documents now and again whenever the matching
// set or any matching document changes.
func watchQuery[D document, T any](ctx context.Context, c *collection[D], filter repository.Filter,
	toEntity func(id string, doc D) T) *live.Feed[[]T] {
	return live.Start(ctx, func(ctx context.Context, emit func([]T) bool) error {
		revs := c.rev.Subscribe(ctx)
		defer revs.Close()

		var (
			lastIDs  []string
			lastDocs []D
			emitted  bool
		)
		for {
			select {
			case _, ok := <-revs.Updates():
				if !ok {
					return nil
				}
			case <-ctx.Done():
				return nil
			}

			ids, docs, err := c.query(filter)
			if err != nil {
				return err
			}
			if emitted && reflect.DeepEqual(ids, lastIDs) && reflect.DeepEqual(docs, lastDocs) {
				continue
			}

			snapshot := make([]T, len(docs))
			for i := range docs {
				snapshot[i] = toEntity(ids[i], docs[i])
			}
			if !emit(snapshot) {
				return nil
			}
			lastIDs, lastDocs, emitted = ids, docs, true
		}
	})
}

// watchDocument emits the document now and again whenever it changes. absent
// is called instead while it does not exist; returning false skips the emission.
func watchDocument[D document, T any](ctx context.Context, c *collection[D], id string,
	toEntity func(id string, doc D) T, absent func() (T, bool)) *live.Feed[T] {
	return live.Start(ctx, func(ctx context.Context, emit func(T) bool) error {
		revs := c.rev.Subscribe(ctx)
		defer revs.Close()

		var (
			last    D
			existed bool
			emitted bool
		)
		for {
			select {
			case _, ok := <-revs.Updates():
				if !ok {
					return nil
				}
			case <-ctx.Done():
				return nil
			}

			doc, ok := c.get(id)
			if emitted && ok == existed && reflect.DeepEqual(doc, last) {
				continue
			}
			last, existed = doc, ok

			if !ok {
				v, send := absent()
				if !send {
					continue
				}
				if !emit(v) {
					return nil
				}
				emitted = true

				continue
			}

			if !emit(toEntity(id, doc)) {
				return nil
			}
			emitted = true
		}
	})
}
