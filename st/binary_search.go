package st

import (
	"cmp"
	"iter"

	"github.com/hupe1980/symtab"
	"github.com/hupe1980/symtab/search"
)

// Compile time check to ensure BinarySearch satisfies the table interfaces.
var (
	_ symtab.Table[string, int] = (*BinarySearch[string, int])(nil)
	_ symtab.Ordered[string]    = (*BinarySearch[string, int])(nil)
)

// BinarySearch is an ordered symbol table over sorted parallel arrays.
//
// keys[0:n] is strictly increasing under cmp and values[i] belongs to
// keys[i]. len(keys) == len(values) is the capacity.
type BinarySearch[K, V any] struct {
	keys    []K
	values  []V
	n       int
	cmp     func(a, b K) int
	minCap  int
	logger  *symtab.Logger
	metrics symtab.MetricsCollector
}

// NewBinarySearch creates a table for an ordered key type.
func NewBinarySearch[K cmp.Ordered, V any](capacity int, optFns ...func(o *Options)) (*BinarySearch[K, V], error) {
	return NewBinarySearchFunc[K, V](capacity, cmp.Compare[K], optFns...)
}

// NewBinarySearchFunc creates a table ordered by cmp.
func NewBinarySearchFunc[K, V any](capacity int, cmp symtab.Comparator[K], optFns ...func(o *Options)) (*BinarySearch[K, V], error) {
	if cmp == nil {
		return nil, symtab.Invalidf("nil comparator")
	}
	if capacity < 0 {
		return nil, symtab.Invalidf("negative capacity %d", capacity)
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	capacity = opts.normalize(capacity)

	return &BinarySearch[K, V]{
		keys:    make([]K, capacity),
		values:  make([]V, capacity),
		cmp:     cmp,
		minCap:  opts.MinCapacity,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}, nil
}

// Len returns the number of stored entries.
func (t *BinarySearch[K, V]) Len() int { return t.n }

// IsEmpty reports whether the table has no entries.
func (t *BinarySearch[K, V]) IsEmpty() bool { return t.n == 0 }

// Capacity returns the size of the backing storage.
func (t *BinarySearch[K, V]) Capacity() int { return len(t.keys) }

// MinCapacity returns the shrink floor.
func (t *BinarySearch[K, V]) MinCapacity() int { return t.minCap }

func (t *BinarySearch[K, V]) index(key K) (int, bool) {
	return search.IndexFunc(t.keys[:t.n], key, t.cmp)
}

// Add inserts key or overwrites the value of an existing key.
func (t *BinarySearch[K, V]) Add(key K, value V) error {
	if err := symtab.CheckKey("add", key); err != nil {
		return err
	}

	i, found := t.index(key)
	if found {
		t.values[i] = value
		return nil
	}

	if t.n == len(t.keys) {
		t.resize(max(len(t.keys)*2, 1), symtab.ResizeGrow)
	}

	copy(t.keys[i+1:t.n+1], t.keys[i:t.n])
	copy(t.values[i+1:t.n+1], t.values[i:t.n])
	t.keys[i] = key
	t.values[i] = value
	t.n++
	return nil
}

// Remove deletes key. It reports false if the key was not stored.
func (t *BinarySearch[K, V]) Remove(key K) (bool, error) {
	if err := symtab.CheckKey("remove", key); err != nil {
		return false, err
	}

	i, found := t.index(key)
	if !found {
		return false, nil
	}

	copy(t.keys[i:t.n-1], t.keys[i+1:t.n])
	copy(t.values[i:t.n-1], t.values[i+1:t.n])
	t.n--

	// Zero out for GC
	var zk K
	var zv V
	t.keys[t.n] = zk
	t.values[t.n] = zv

	// Halve only while the result stays at or above the floor.
	if c := len(t.keys); t.n <= c/4 && c/2 >= t.minCap {
		t.resize(c/2, symtab.ResizeShrink)
	}
	return true, nil
}

// resize reallocates storage to capacity, copying only the live prefix.
// The new slices are fully built before they replace the old ones.
func (t *BinarySearch[K, V]) resize(capacity int, kind symtab.ResizeKind) {
	keys := make([]K, capacity)
	values := make([]V, capacity)
	copy(keys, t.keys[:t.n])
	copy(values, t.values[:t.n])

	from := len(t.keys)
	t.keys, t.values = keys, values

	t.logger.LogResize(kind, from, capacity, t.n)
	t.metrics.RecordResize(kind, from, capacity)
}

// Get returns the value stored under key. ok=false if missing.
func (t *BinarySearch[K, V]) Get(key K) (V, bool) {
	if symtab.IsNil(key) {
		var zero V
		return zero, false
	}
	if i, found := t.index(key); found {
		return t.values[i], true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored.
func (t *BinarySearch[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key.
func (t *BinarySearch[K, V]) Min() (K, error) {
	if t.n == 0 {
		var zero K
		return zero, symtab.Emptyf("min")
	}
	return t.keys[0], nil
}

// Max returns the largest key.
func (t *BinarySearch[K, V]) Max() (K, error) {
	if t.n == 0 {
		var zero K
		return zero, symtab.Emptyf("max")
	}
	return t.keys[t.n-1], nil
}

// Rank returns the number of keys strictly less than key.
func (t *BinarySearch[K, V]) Rank(key K) (int, error) {
	if err := symtab.CheckKey("rank", key); err != nil {
		return 0, err
	}
	i, _ := t.index(key)
	return i, nil
}

// Select returns the key with rank i.
func (t *BinarySearch[K, V]) Select(i int) (K, error) {
	if i < 0 || i >= t.n {
		var zero K
		return zero, symtab.Invalidf("select: rank %d out of range [0, %d)", i, t.n)
	}
	return t.keys[i], nil
}

// Ceiling returns the smallest key >= key.
func (t *BinarySearch[K, V]) Ceiling(key K) (K, bool) {
	var zero K
	if symtab.IsNil(key) {
		return zero, false
	}
	i, _ := t.index(key)
	if i == t.n {
		return zero, false
	}
	return t.keys[i], true
}

// Floor returns the largest key <= key.
func (t *BinarySearch[K, V]) Floor(key K) (K, bool) {
	var zero K
	if symtab.IsNil(key) {
		return zero, false
	}
	i, found := t.index(key)
	if found {
		return t.keys[i], true
	}
	if i == 0 {
		return zero, false
	}
	return t.keys[i-1], true
}

// Range yields the keys in [lo, hi] in ascending order.
func (t *BinarySearch[K, V]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		if symtab.IsNil(lo) || symtab.IsNil(hi) || t.cmp(lo, hi) > 0 {
			return
		}
		i, _ := t.index(lo)
		for ; i < t.n && t.cmp(t.keys[i], hi) <= 0; i++ {
			if !yield(t.keys[i]) {
				return
			}
		}
	}
}

// RangeCount returns the number of keys in [lo, hi].
func (t *BinarySearch[K, V]) RangeCount(lo, hi K) int {
	if symtab.IsNil(lo) || symtab.IsNil(hi) || t.cmp(lo, hi) > 0 {
		return 0
	}
	i, _ := t.index(lo)
	j, found := t.index(hi)
	if found {
		j++
	}
	return j - i
}

// Keys yields all keys in ascending order.
func (t *BinarySearch[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < t.n; i++ {
			if !yield(t.keys[i]) {
				return
			}
		}
	}
}

// All yields all entries in ascending key order.
func (t *BinarySearch[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < t.n; i++ {
			if !yield(t.keys[i], t.values[i]) {
				return
			}
		}
	}
}
