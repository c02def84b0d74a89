// Package arena provides an index-addressed object arena for tree nodes.
//
// Nodes are stored in fixed-size chunks and referenced by a uint32 Index
// instead of a pointer. A parent holding a child's Index is that child's
// only owner; the arena itself owns the storage.
//
// # Features
//
//   - Power-of-two chunk size, index split with shift/mask
//   - Chunks are never moved, so *T returned by Get stays valid until Free
//   - Freed slots are recycled through a free list
//   - Index 0 is reserved as Nil
//
// # Safety
//
// Alloc returns an error instead of panicking when the index space is
// exhausted. Get returns nil for Nil and out-of-range indexes.
// An Arena is not safe for concurrent use.
package arena
