// Package memory provides the insertion-ordered keyed container the
// repositories are built on.
package memory

import (
	"strings"

	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
)

// Store maps an identifier to a value and iterates in first-insertion order.
//
// Store is not safe for concurrent use; callers sharing one instance must
// serialize access themselves.
type Store[T any] struct {
	items map[string]T
	order []string
	clone func(T) T
	// absent reports a nil value for pointer-like T.
	absent func(T) bool
}

type Option[T any] func(*Store[T])

// WithCloner makes the store keep its own copy of every value and hand out
// copies on every read. Callers then persist changes through Upsert.
func WithCloner[T any](clone func(T) T) Option[T] {
	return func(s *Store[T]) { s.clone = clone }
}

// WithAbsent sets the check Upsert uses to reject missing values.
func WithAbsent[T any](absent func(T) bool) Option[T] {
	return func(s *Store[T]) { s.absent = absent }
}

func NewStore[T any](opts ...Option[T]) *Store[T] {
	s := &Store[T]{items: make(map[string]T)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) copyOf(v T) T {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}

// key is how every method normalizes an id.
func key(id string) string { return strings.TrimSpace(id) }

// Upsert inserts or replaces the value at id. A replaced key keeps its
// original position.
func (s *Store[T]) Upsert(id string, v T) error {
	k, err := validator.RequireNonBlank(id, "id")
	if err != nil {
		return err
	}
	if s.absent != nil && s.absent(v) {
		return errs.Invalid("entity", "must not be nil")
	}
	if _, exists := s.items[k]; !exists {
		s.order = append(s.order, k)
	}
	s.items[k] = s.copyOf(v)
	return nil
}

func (s *Store[T]) Get(id string) (T, bool) {
	v, ok := s.items[key(id)]
	if !ok {
		var zero T
		return zero, false
	}
	return s.copyOf(v), true
}

func (s *Store[T]) Remove(id string) (T, bool) {
	id = key(id)
	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return v, true
}

func (s *Store[T]) Contains(id string) bool {
	_, ok := s.items[key(id)]
	return ok
}

// ListAll returns a snapshot in insertion order.
func (s *Store[T]) ListAll() []T {
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.copyOf(s.items[k]))
	}
	return out
}

// FindAll returns the values matching pred, in insertion order.
func (s *Store[T]) FindAll(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, k := range s.order {
		v := s.items[k]
		if pred(v) {
			out = append(out, s.copyOf(v))
		}
	}
	return out
}

func (s *Store[T]) Size() int { return len(s.items) }
