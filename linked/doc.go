// Package linked provides a LIFO Stack and a FIFO Queue backed by singly
// linked lists. Both are unbounded and not safe for concurrent use.
package linked
