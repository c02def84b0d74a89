package linked

import (
	"iter"

	"github.com/hupe1980/symtab"
)

// Queue is a first-in first-out collection.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of items.
func (q *Queue[T]) Len() int { return q.n }

// IsEmpty reports whether the queue has no items.
func (q *Queue[T]) IsEmpty() bool { return q.n == 0 }

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	x := &node[T]{value: v}
	if q.tail == nil {
		q.head = x
	} else {
		q.tail.next = x
	}
	q.tail = x
	q.n++
}

// Dequeue removes and returns the head item.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head == nil {
		var zero T
		return zero, symtab.Emptyf("dequeue")
	}
	x := q.head
	q.head = x.next
	if q.head == nil {
		q.tail = nil
	}
	q.n--
	return x.value, nil
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, symtab.Emptyf("peek")
	}
	return q.head.value, nil
}

// All yields the items from head to tail.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := q.head; x != nil; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}
