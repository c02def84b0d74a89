package st

import (
	"iter"

	"github.com/hupe1980/symtab"
)

var _ symtab.Table[string, int] = (*SequentialSearch[string, int])(nil)

type listNode[K, V any] struct {
	key   K
	value V
	next  *listNode[K, V]
}

// SequentialSearch is an unordered symbol table over a singly linked list.
// New keys are prepended, so Keys yields the most recently added key first.
type SequentialSearch[K, V any] struct {
	head *listNode[K, V]
	n    int
	eq   func(a, b K) bool
}

// NewSequentialSearch creates a table for a comparable key type.
func NewSequentialSearch[K comparable, V any]() *SequentialSearch[K, V] {
	return &SequentialSearch[K, V]{
		eq: func(a, b K) bool { return a == b },
	}
}

// NewSequentialSearchFunc creates a table that matches keys with eq.
func NewSequentialSearchFunc[K, V any](eq func(a, b K) bool) (*SequentialSearch[K, V], error) {
	if eq == nil {
		return nil, symtab.Invalidf("nil equality function")
	}
	return &SequentialSearch[K, V]{eq: eq}, nil
}

// Len returns the number of stored entries.
func (t *SequentialSearch[K, V]) Len() int { return t.n }

// IsEmpty reports whether the table has no entries.
func (t *SequentialSearch[K, V]) IsEmpty() bool { return t.n == 0 }

func (t *SequentialSearch[K, V]) find(key K) *listNode[K, V] {
	for x := t.head; x != nil; x = x.next {
		if t.eq(key, x.key) {
			return x
		}
	}
	return nil
}

// Add inserts key or overwrites the value of an existing key.
func (t *SequentialSearch[K, V]) Add(key K, value V) error {
	if err := symtab.CheckKey("add", key); err != nil {
		return err
	}
	if x := t.find(key); x != nil {
		x.value = value
		return nil
	}
	t.head = &listNode[K, V]{key: key, value: value, next: t.head}
	t.n++
	return nil
}

// Get returns the value stored under key. ok=false if missing.
func (t *SequentialSearch[K, V]) Get(key K) (V, bool) {
	if !symtab.IsNil(key) {
		if x := t.find(key); x != nil {
			return x.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored.
func (t *SequentialSearch[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes key. It reports false if the key was not stored.
func (t *SequentialSearch[K, V]) Remove(key K) (bool, error) {
	if err := symtab.CheckKey("remove", key); err != nil {
		return false, err
	}
	for link := &t.head; *link != nil; link = &(*link).next {
		if t.eq(key, (*link).key) {
			*link = (*link).next
			t.n--
			return true, nil
		}
	}
	return false, nil
}

// Keys yields the keys from the most to the least recently added.
func (t *SequentialSearch[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for x := t.head; x != nil; x = x.next {
			if !yield(x.key) {
				return
			}
		}
	}
}

// All yields the entries in the same order as Keys.
func (t *SequentialSearch[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := t.head; x != nil; x = x.next {
			if !yield(x.key, x.value) {
				return
			}
		}
	}
}
