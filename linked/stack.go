package linked

import (
	"iter"

	"github.com/hupe1980/symtab"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a last-in first-out collection.
type Stack[T any] struct {
	top *node[T]
	n   int
}

// NewStack creates an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return s.n }

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool { return s.n == 0 }

// Push adds v on top.
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{value: v, next: s.top}
	s.n++
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, symtab.Emptyf("pop")
	}
	x := s.top
	s.top = x.next
	s.n--
	return x.value, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, symtab.Emptyf("peek")
	}
	return s.top.value, nil
}

// All yields the items from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := s.top; x != nil; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}
