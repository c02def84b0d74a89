// Package pq provides a binary max-heap priority queue.
//
// The heap is stored in a 0-indexed slice: the parent of i is (i-1)/2 and
// its children are 2i+1 and 2i+2. Insert sifts the new element up against
// its parent, Remove moves the last element to the root and sifts it down
// against the larger child.
package pq

import (
	"cmp"
	"iter"

	"github.com/hupe1980/symtab"
)

// MaxHeap is a binary heap whose root is the largest element under cmp.
type MaxHeap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// NewMax creates an empty heap for an ordered type with room for capacity
// elements before the first reallocation.
func NewMax[T cmp.Ordered](capacity int) *MaxHeap[T] {
	return &MaxHeap[T]{
		items: make([]T, 0, max(capacity, 0)),
		cmp:   cmp.Compare[T],
	}
}

// NewMaxFunc creates an empty heap ordered by cmp.
func NewMaxFunc[T any](capacity int, cmp func(a, b T) int) (*MaxHeap[T], error) {
	if cmp == nil {
		return nil, symtab.Invalidf("nil comparator")
	}
	if capacity < 0 {
		return nil, symtab.Invalidf("negative capacity %d", capacity)
	}
	return &MaxHeap[T]{
		items: make([]T, 0, capacity),
		cmp:   cmp,
	}, nil
}

// FromSlice builds a heap from values in O(n). The input is copied.
func FromSlice[T cmp.Ordered](values []T) *MaxHeap[T] {
	h := &MaxHeap[T]{
		items: append([]T(nil), values...),
		cmp:   cmp.Compare[T],
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Len returns the number of elements.
func (h *MaxHeap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap has no elements.
func (h *MaxHeap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Insert adds v to the heap.
func (h *MaxHeap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Peek returns the largest element without removing it.
func (h *MaxHeap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, symtab.Emptyf("peek")
	}
	return h.items[0], nil
}

// Remove extracts the largest element.
func (h *MaxHeap[T]) Remove() (T, error) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, symtab.Emptyf("remove")
	}
	root := h.items[0]
	last := h.items[n-1]

	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, nil
}

// Values yields the elements in heap order, which is the layout of the
// backing slice and not sorted.
func (h *MaxHeap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range h.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain removes and yields elements in non-increasing order until the heap
// is empty or the caller stops iterating.
func (h *MaxHeap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(h.items) > 0 {
			v, _ := h.Remove()
			if !yield(v) {
				return
			}
		}
	}
}

// Reset removes all elements but keeps the allocated storage.
func (h *MaxHeap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
}

func (h *MaxHeap[T]) less(i, j int) bool {
	return h.cmp(h.items[i], h.items[j]) > 0
}

func (h *MaxHeap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *MaxHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(r, l) {
			best = r
		}
		if !h.less(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
