// Package symtab provides generic ordered and unordered containers for Go.
//
// The root package holds what the containers share: error values, the
// Table and Ordered interfaces, structured logging and metrics hooks.
// The containers live in sub-packages.
//
// # Containers
//
//   - st.BinarySearch: sorted parallel arrays, O(log n) lookup/rank/range,
//     O(n) insert/delete, capacity doubling and quarter-full halving
//   - st.SequentialSearch: unordered singly linked list table
//   - tree.BST: unbalanced binary search tree with subtree sizes
//   - tree.Set: BST-backed ordered set
//   - pq.MaxHeap: binary max-heap
//   - linked.Stack, linked.Queue: singly linked LIFO/FIFO
//   - intset.Uint32Set: roaring-bitmap ordered set of uint32
//
// # Quick Start
//
//	table, _ := st.NewBinarySearch[string, int](16)
//	_ = table.Add("b", 2)
//	_ = table.Add("a", 1)
//	for k := range table.Keys() {
//	    fmt.Println(k) // a, b
//	}
//	c, ok := table.Ceiling("aa") // "b", true
//
// # Persistence
//
// Any table can be written to a blobstore.Store with the snapshot package
// (JSON codecs, LZ4 or ZSTD block compression, CRC32C checked) and loaded
// back with snapshot.Restore:
//
//	store := blobstore.NewMemoryStore()
//	_ = snapshot.Save(ctx, store, "users", table.All())
//	n, _ := snapshot.Restore[string, int](ctx, store, "users", table.Add)
//
// # Concurrency
//
// Containers are single-owner values. They perform no locking and are not
// safe for concurrent mutation; guard shared instances externally.
// Sequences returned by Keys, Range, Values and All must not be consumed
// while the container is being mutated.
//
// # Errors
//
// Invalid input (nil keys, nil comparators, negative capacities) yields
// errors matching ErrInvalidArgument. Operations that need an element on an
// empty container yield errors matching ErrEmptyCollection. A missing key
// is not an error: lookups return (zero, false).
package symtab
