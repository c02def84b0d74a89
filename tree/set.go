package tree

import (
	"cmp"
	"iter"
)

// Set is an ordered set of values stored in a plain BST.
type Set[T cmp.Ordered] struct {
	t *BST[T, struct{}]
}

// NewSet creates an empty set.
func NewSet[T cmp.Ordered]() *Set[T] {
	return &Set[T]{t: NewBST[T, struct{}]()}
}

// Insert adds v. Inserting an existing value is a no-op.
func (s *Set[T]) Insert(v T) error { return s.t.Put(v, struct{}{}) }

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool { return s.t.Contains(v) }

// Get returns the stored value equal to v. ok=false if missing.
func (s *Set[T]) Get(v T) (T, bool) {
	if k, ok := s.t.Ceiling(v); ok && cmp.Compare(k, v) == 0 {
		return k, true
	}
	var zero T
	return zero, false
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) (bool, error) { return s.t.Delete(v) }

// Min returns the smallest value.
func (s *Set[T]) Min() (T, error) { return s.t.Min() }

// Max returns the largest value.
func (s *Set[T]) Max() (T, error) { return s.t.Max() }

// All yields the values in ascending order.
func (s *Set[T]) All() iter.Seq[T] { return s.t.Keys() }

// Len returns the number of values.
func (s *Set[T]) Len() int { return s.t.Len() }
