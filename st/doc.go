// Package st implements array- and list-backed symbol tables.
//
// BinarySearch keeps keys in sorted parallel arrays. Lookups, Rank,
// Ceiling, Floor and Range are O(log n); Add and Remove are O(n) because
// entries are shifted to keep the storage contiguous. Capacity doubles
// when an insert finds the storage full and halves when a removal leaves
// it at most a quarter full, never dropping below Options.MinCapacity.
//
// SequentialSearch is an unordered singly linked list with O(n)
// operations, useful for tiny tables and for keys without a total order.
//
// Neither table is safe for concurrent mutation.
package st
