package symtab

import "iter"

// Table is the lookup surface shared by every symbol table in this module.
// A missing key is reported through the boolean result, never as an error.
type Table[K, V any] interface {
	// Get returns the value stored under key. ok=false if missing.
	Get(key K) (value V, ok bool)
	// Contains reports whether key is stored.
	Contains(key K) bool
	// Len returns the number of stored keys.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Keys yields the stored keys. Ordered tables yield them ascending.
	Keys() iter.Seq[K]
}

// Ordered is the order-statistics surface over a set of keys kept in a
// total order.
//
// Callers must not mutate the underlying container while ranging over a
// sequence returned by Keys or Range.
type Ordered[K any] interface {
	// Min returns the smallest key or ErrEmptyCollection.
	Min() (K, error)
	// Max returns the largest key or ErrEmptyCollection.
	Max() (K, error)
	// Rank returns the number of keys strictly less than key.
	// key does not have to be present.
	Rank(key K) (int, error)
	// Select returns the key of rank i, 0 <= i < Len().
	Select(i int) (K, error)
	// Ceiling returns the smallest key >= key. ok=false if none.
	Ceiling(key K) (K, bool)
	// Floor returns the largest key <= key. ok=false if none.
	Floor(key K) (K, bool)
	// Range yields the keys in [lo, hi] ascending. Empty if lo > hi.
	Range(lo, hi K) iter.Seq[K]
	// Keys yields all keys ascending.
	Keys() iter.Seq[K]
	// Len returns the number of keys.
	Len() int
}

// Comparator orders two keys: negative if a < b, zero if equal, positive
// if a > b. It must be a consistent total order; cmp.Compare qualifies.
type Comparator[K any] func(a, b K) int
