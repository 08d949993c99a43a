package repository

import (
	"sync"

	"meditrack/internal/adapter/persistence/memory"
)

// lockedStore serializes access to a memory.Store so one instance can be
// shared across HTTP handlers.
type lockedStore[T any] struct {
	mu    sync.RWMutex
	store *memory.Store[*T]
}

func newLockedStore[T any](clone func(*T) *T) *lockedStore[T] {
	return &lockedStore[T]{
		store: memory.NewStore[*T](
			memory.WithCloner(clone),
			memory.WithAbsent(func(v *T) bool { return v == nil }),
		),
	}
}

func (s *lockedStore[T]) upsert(id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Upsert(id, &v)
}

// insert fails with inserted=false when id is already present.
func (s *lockedStore[T]) insert(id string, v T) (inserted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Contains(id) {
		return false, nil
	}
	if err := s.store.Upsert(id, &v); err != nil {
		return false, err
	}
	return true, nil
}

// get returns the zero value when id is absent.
func (s *lockedStore[T]) get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.store.Get(id)
	if !ok {
		var zero T
		return zero
	}
	return *v
}

func (s *lockedStore[T]) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.store.Remove(id)
	return ok
}

func (s *lockedStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deref(s.store.ListAll())
}

func (s *lockedStore[T]) find(pred func(*T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deref(s.store.FindAll(pred))
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}
