package Trees

// A node in the BinTree. v is owned by exactly one node, and a node by
// exactly one parent link or the root.
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// release the subtree rooting at n in post order: children are released
// before their parent. Each element slot is zeroed so the tree keeps no
// reference to it.
func release[T any](n *node[T]) {
	if n != nil {
		release(n.l)
		release(n.r)
		n.v = *new(T)
		n.l, n.r = nil, nil
	}
}

// same reports whether the subtrees rooting at a and b have the same shape
// and equal elements at each position. Pre-order, stops at the first mismatch.
func same[T any](a, b *node[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return eq(a.v, b.v) && same(a.l, b.l, eq) && same(a.r, b.r, eq)
}

// depthOf searches every node of the subtree rooting at n, the left subtree
// before the right one, without using the order of the elements.
// Returns 1 if key is at n, 0 if it isn't found.
func depthOf[T any](n *node[T], key T, eq func(T, T) bool) int {
	if n == nil {
		return 0
	}
	if eq(key, n.v) {
		return 1
	}
	d := depthOf(n.l, key, eq)
	if d == 0 {
		d = depthOf(n.r, key, eq)
	}
	if d > 0 {
		d++
	}
	return d
}

// inOrder calls f on the subtree rooting at n. Returns false once f did.
func inOrder[T any](n *node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.l, f) && f(n.v) && inOrder(n.r, f)
}
