package tree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/hupe1980/symtab"
	"github.com/hupe1980/symtab/internal/arena"
)

// Compile time check to ensure BST satisfies the table interfaces.
var (
	_ symtab.Table[string, int] = (*BST[string, int])(nil)
	_ symtab.Ordered[string]    = (*BST[string, int])(nil)
)

type node[K, V any] struct {
	key   K
	value V
	left  arena.Index
	right arena.Index
	size  int // 1 + size(left) + size(right)
}

// BST is an unbalanced binary search tree symbol table.
//
// Every node records the size of its subtree, which makes Rank, Select and
// GetCount O(depth). The tree is never rebalanced: inserting keys in sorted
// order produces a chain of depth n.
type BST[K, V any] struct {
	nodes *arena.Arena[node[K, V]]
	root  arena.Index
	cmp   func(a, b K) int

	// scratch paths reused across mutations
	path []arena.Index
	aux  []arena.Index
}

// NewBST creates a tree for an ordered key type.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	t, _ := NewBSTFunc[K, V](cmp.Compare[K])
	return t
}

// NewBSTFunc creates a tree ordered by cmp.
func NewBSTFunc[K, V any](cmp symtab.Comparator[K]) (*BST[K, V], error) {
	if cmp == nil {
		return nil, symtab.Invalidf("nil comparator")
	}
	return &BST[K, V]{
		nodes: arena.New[node[K, V]](arena.DefaultChunkSize),
		cmp:   cmp,
	}, nil
}

func (t *BST[K, V]) node(idx arena.Index) *node[K, V] {
	return t.nodes.Get(idx)
}

func (t *BST[K, V]) size(idx arena.Index) int {
	if idx == arena.Nil {
		return 0
	}
	return t.node(idx).size
}

func (t *BST[K, V]) updateSize(idx arena.Index) {
	n := t.node(idx)
	n.size = 1 + t.size(n.left) + t.size(n.right)
}

// updatePath recomputes sizes from the deepest recorded ancestor upwards.
func (t *BST[K, V]) updatePath(path []arena.Index) {
	for i := len(path) - 1; i >= 0; i-- {
		t.updateSize(path[i])
	}
}

// Len returns the number of stored keys.
func (t *BST[K, V]) Len() int { return t.size(t.root) }

// IsEmpty reports whether the tree has no keys.
func (t *BST[K, V]) IsEmpty() bool { return t.root == arena.Nil }

// Put inserts key or replaces the value of an existing key.
func (t *BST[K, V]) Put(key K, value V) error {
	if err := symtab.CheckKey("put", key); err != nil {
		return err
	}

	t.path = t.path[:0]
	link := &t.root
	for *link != arena.Nil {
		x := t.node(*link)
		c := t.cmp(key, x.key)
		if c == 0 {
			x.value = value
			return nil
		}
		t.path = append(t.path, *link)
		if c < 0 {
			link = &x.left
		} else {
			link = &x.right
		}
	}

	// Chunks never move, so link stays valid across Alloc.
	idx, n, err := t.nodes.Alloc()
	if err != nil {
		return fmt.Errorf("put: %w", err)
	}
	n.key, n.value, n.size = key, value, 1
	*link = idx
	t.updatePath(t.path)
	return nil
}

// Get returns the value stored under key. ok=false if missing.
func (t *BST[K, V]) Get(key K) (V, bool) {
	if !symtab.IsNil(key) {
		x := t.root
		for x != arena.Nil {
			n := t.node(x)
			c := t.cmp(key, n.key)
			switch {
			case c < 0:
				x = n.left
			case c > 0:
				x = n.right
			default:
				return n.value, true
			}
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is stored. It never fails.
func (t *BST[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Delete removes key using Hibbard deletion: a node with two children is
// replaced by the minimum of its right subtree. It reports false if the key
// was not stored.
func (t *BST[K, V]) Delete(key K) (bool, error) {
	if err := symtab.CheckKey("delete", key); err != nil {
		return false, err
	}

	t.path = t.path[:0]
	link := &t.root
	for *link != arena.Nil {
		x := t.node(*link)
		c := t.cmp(key, x.key)
		if c == 0 {
			break
		}
		t.path = append(t.path, *link)
		if c < 0 {
			link = &x.left
		} else {
			link = &x.right
		}
	}
	if *link == arena.Nil {
		return false, nil
	}

	target := *link
	x := t.node(target)
	switch {
	case x.left == arena.Nil:
		*link = x.right
	case x.right == arena.Nil:
		*link = x.left
	default:
		// Detach the successor from the right subtree.
		t.aux = t.aux[:0]
		succLink := &x.right
		for t.node(*succLink).left != arena.Nil {
			t.aux = append(t.aux, *succLink)
			succLink = &t.node(*succLink).left
		}
		succ := *succLink
		s := t.node(succ)
		*succLink = s.right
		t.updatePath(t.aux)

		s.left, s.right = x.left, x.right
		t.updateSize(succ)
		*link = succ
	}

	t.nodes.Free(target)
	t.updatePath(t.path)
	return true, nil
}

// Min returns the smallest key.
func (t *BST[K, V]) Min() (K, error) {
	if t.root == arena.Nil {
		var zero K
		return zero, symtab.Emptyf("min")
	}
	x := t.node(t.root)
	for x.left != arena.Nil {
		x = t.node(x.left)
	}
	return x.key, nil
}

// Max returns the largest key.
func (t *BST[K, V]) Max() (K, error) {
	if t.root == arena.Nil {
		var zero K
		return zero, symtab.Emptyf("max")
	}
	x := t.node(t.root)
	for x.right != arena.Nil {
		x = t.node(x.right)
	}
	return x.key, nil
}

func (t *BST[K, V]) rank(key K) int {
	r := 0
	x := t.root
	for x != arena.Nil {
		n := t.node(x)
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			x = n.left
		case c > 0:
			r += 1 + t.size(n.left)
			x = n.right
		default:
			return r + t.size(n.left)
		}
	}
	return r
}

// Rank returns the number of keys strictly less than key.
func (t *BST[K, V]) Rank(key K) (int, error) {
	if err := symtab.CheckKey("rank", key); err != nil {
		return 0, err
	}
	return t.rank(key), nil
}

// GetCount returns the number of keys in [lo, hi). The upper bound is
// exclusive whether or not hi is stored.
func (t *BST[K, V]) GetCount(lo, hi K) (int, error) {
	if err := symtab.CheckKey("getcount", lo); err != nil {
		return 0, err
	}
	if err := symtab.CheckKey("getcount", hi); err != nil {
		return 0, err
	}
	if t.cmp(lo, hi) >= 0 {
		return 0, nil
	}
	return t.rank(hi) - t.rank(lo), nil
}

// Select returns the key with rank i.
func (t *BST[K, V]) Select(i int) (K, error) {
	if i < 0 || i >= t.Len() {
		var zero K
		return zero, symtab.Invalidf("select: rank %d out of range [0, %d)", i, t.Len())
	}
	x := t.root
	for {
		n := t.node(x)
		ls := t.size(n.left)
		switch {
		case i < ls:
			x = n.left
		case i > ls:
			i -= ls + 1
			x = n.right
		default:
			return n.key, nil
		}
	}
}

// Floor returns the largest key <= key.
func (t *BST[K, V]) Floor(key K) (K, bool) {
	var best K
	found := false
	if symtab.IsNil(key) {
		return best, false
	}
	x := t.root
	for x != arena.Nil {
		n := t.node(x)
		c := t.cmp(key, n.key)
		if c == 0 {
			return n.key, true
		}
		if c < 0 {
			x = n.left
		} else {
			best, found = n.key, true
			x = n.right
		}
	}
	return best, found
}

// Ceiling returns the smallest key >= key.
func (t *BST[K, V]) Ceiling(key K) (K, bool) {
	var best K
	found := false
	if symtab.IsNil(key) {
		return best, false
	}
	x := t.root
	for x != arena.Nil {
		n := t.node(x)
		c := t.cmp(key, n.key)
		if c == 0 {
			return n.key, true
		}
		if c > 0 {
			x = n.right
		} else {
			best, found = n.key, true
			x = n.left
		}
	}
	return best, found
}

// ascend walks nodes in key order starting at the first key >= lo
// (or the minimum when lo is nil) and stops after hi (when hi is non-nil).
func (t *BST[K, V]) ascend(lo, hi *K, yield func(n *node[K, V]) bool) {
	var stack []arena.Index
	x := t.root
	for {
		for x != arena.Nil {
			n := t.node(x)
			if lo != nil && t.cmp(n.key, *lo) < 0 {
				x = n.right
				continue
			}
			stack = append(stack, x)
			x = n.left
		}
		if len(stack) == 0 {
			return
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.node(x)
		if hi != nil && t.cmp(n.key, *hi) > 0 {
			return
		}
		if !yield(n) {
			return
		}
		x = n.right
	}
}

// Keys yields all keys in ascending order.
func (t *BST[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ascend(nil, nil, func(n *node[K, V]) bool { return yield(n.key) })
	}
}

// All yields all entries in ascending key order.
func (t *BST[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ascend(nil, nil, func(n *node[K, V]) bool { return yield(n.key, n.value) })
	}
}

// Range yields the keys in [lo, hi] in ascending order.
func (t *BST[K, V]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		if symtab.IsNil(lo) || symtab.IsNil(hi) || t.cmp(lo, hi) > 0 {
			return
		}
		t.ascend(&lo, &hi, func(n *node[K, V]) bool { return yield(n.key) })
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
// Without rebalancing it is n for keys inserted in sorted order.
func (t *BST[K, V]) Height() int {
	if t.root == arena.Nil {
		return 0
	}
	height := 0
	level := []arena.Index{t.root}
	var next []arena.Index
	for len(level) > 0 {
		height++
		next = next[:0]
		for _, idx := range level {
			n := t.node(idx)
			if n.left != arena.Nil {
				next = append(next, n.left)
			}
			if n.right != arena.Nil {
				next = append(next, n.right)
			}
		}
		level, next = next, level
	}
	return height
}
