package ingredients

import (
	"iter"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store is an insertion-ordered set of ingredients keyed by uid.
// It is safe for concurrent use.
type Store[T any] struct {
	uidOf func(T) string

	mu      sync.RWMutex
	entries *orderedmap.OrderedMap[string, T]
}

// NewStore creates an empty store that keys values with uidOf.
func NewStore[T any](uidOf func(T) string) *Store[T] {
	return &Store[T]{
		uidOf:   uidOf,
		entries: orderedmap.New[string, T](),
	}
}

// Add stores every item. An item whose uid is already stored replaces the stored value
// without moving it; a new uid is appended.
func (s *Store[T]) Add(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.entries.Set(s.uidOf(item), item)
	}
}

// Remove deletes whatever is stored under the uid of each item.
// Items whose uid is not stored are ignored.
func (s *Store[T]) Remove(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.entries.Delete(s.uidOf(item))
	}
}

// ByUID returns the value stored under uid.
func (s *Store[T]) ByUID(uid string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Get(uid)
}

// Contains reports whether a value with item's uid is stored.
func (s *Store[T]) Contains(item T) bool {
	_, ok := s.ByUID(s.uidOf(item))
	return ok
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Len()
}

// View returns a live read-only view of the store.
func (s *Store[T]) View() View[T] {
	return View[T]{store: s}
}

func (s *Store[T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// View reads through to a Store. It never copies the store up front: every call sees the
// store as it is at that moment, so holders observe later additions and removals.
// The zero View is empty.
type View[T any] struct {
	store *Store[T]
}

// All yields the stored values in insertion order, as of the start of the iteration.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.store == nil {
			return
		}
		for _, item := range v.store.snapshot() {
			if !yield(item) {
				return
			}
		}
	}
}

// Values returns a copy of the stored values in insertion order.
func (v View[T]) Values() []T {
	if v.store == nil {
		return nil
	}
	return v.store.snapshot()
}

// Len returns the current number of stored values.
func (v View[T]) Len() int {
	if v.store == nil {
		return 0
	}
	return v.store.Len()
}

// Contains reports whether a value with item's uid is currently stored.
func (v View[T]) Contains(item T) bool {
	if v.store == nil {
		return false
	}
	return v.store.Contains(item)
}
