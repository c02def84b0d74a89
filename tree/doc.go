// Package tree provides a size-augmented binary search tree symbol table
// and a set built on top of it.
//
// Nodes are stored in an arena and linked by index, so the tree holds no
// Go pointers between nodes and every traversal is iterative. The tree is
// not self-balancing. Keys inserted in sorted order degrade it to a list:
//
//	t := tree.NewBST[int, string]()
//	for i := range 1000 {
//		_ = t.Put(i, "v")
//	}
//	t.Height() // 1000
//
// GetCount(lo, hi) counts keys in the half-open interval [lo, hi), while
// Range(lo, hi) yields the closed interval [lo, hi].
package tree
