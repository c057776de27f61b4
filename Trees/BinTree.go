package Trees

import (
	"errors"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// BinTree is a binary search tree with no repeated values. It doesn't
// balance itself: the shape depends on the insertion order until Rebuild
// or Balance is called, which makes the height O(log n).
// Elements are compared with the lessThan and equals functions given at
// construction. The zero value is not usable; create trees with New,
// NewOrdered, NewFunc or NewComparator.
// BinTree is not safe for concurrent use.
type BinTree[T any] struct {
	root   *node[T]
	size   int
	lt, eq func(T, T) bool
	config
}

var _ containers.Container = (*BinTree[int])(nil)

// New returns an empty tree of elements implementing Ordered.
func New[T Ordered[T]](opts ...Option) *BinTree[T] {
	return NewFunc(func(a, b T) bool { return a.LessThan(b) }, func(a, b T) bool { return a.Equals(b) }, opts...)
}

// NewOrdered returns an empty tree ordered by the built-in < and == operators.
func NewOrdered[T constraints.Ordered](opts ...Option) *BinTree[T] {
	return NewFunc(func(a, b T) bool { return a < b }, func(a, b T) bool { return a == b }, opts...)
}

// NewFunc returns an empty tree using lessThan and equals for comparisons.
// They must satisfy the same rules as Ordered.
func NewFunc[T any](lessThan, equals func(T, T) bool, opts ...Option) *BinTree[T] {
	return &BinTree[T]{lt: lessThan, eq: equals, config: newConfig(opts)}
}

// NewComparator returns an empty tree ordered by a gods comparator, such as utils.IntComparator.
func NewComparator[T any](c utils.Comparator, opts ...Option) *BinTree[T] {
	return NewFunc(func(a, b T) bool { return c(a, b) < 0 }, func(a, b T) bool { return c(a, b) == 0 }, opts...)
}

// alloc a leaf holding v, counting it against the node budget.
func (u *BinTree[T]) alloc(v T) (*node[T], error) {
	if u.limit > 0 && u.size >= u.limit {
		return nil, &AllocationError{u.limit}
	}
	u.size++
	return &node[T]{v: v}, nil
}

// dup returns a copy of v that shares nothing with it if T is a Cloner.
func dup[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1)
func (u *BinTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Empty is IsEmpty, for containers.Container.
func (u *BinTree[T]) Empty() bool {
	return u.IsEmpty()
}

// Size [Tree.Size]
// Time: O(1)
func (u *BinTree[T]) Size() int {
	return u.size
}

// insert v into the subtree rooting at *curPtr recursively. curPtr is
// passed by reference so that the new leaf can be linked to its parent.
func (u *BinTree[T]) insert(curPtr **node[T], v T) error {
	if cur := *curPtr; cur == nil {
		n, err := u.alloc(v)
		if err != nil {
			return err
		}
		*curPtr = n
		return nil
	} else if u.eq(v, cur.v) {
		return ErrDuplicate
	} else if u.lt(v, cur.v) {
		return u.insert(&cur.l, v)
	} else {
		return u.insert(&cur.r, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// On any error the tree is unchanged.
// Time: O(D)
func (u *BinTree[T]) Insert(v T) error {
	err := u.insert(&u.root, v)
	if errors.Is(err, ErrAllocation) {
		u.logger.Warn("insert failed", "element", v, "err", err)
	}
	return err
}

func (u *BinTree[T]) retrieve(cur *node[T], key T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	} else if u.eq(key, cur.v) {
		return cur, true
	} else if u.lt(key, cur.v) {
		return u.retrieve(cur.l, key)
	} else {
		return u.retrieve(cur.r, key)
	}
}

// Retrieve [Tree.Retrieve]. Recursive.
// Time: O(D)
func (u *BinTree[T]) Retrieve(key T) (T, bool) {
	if n, ok := u.retrieve(u.root, key); ok {
		return n.v, true
	}
	return *new(T), false
}

// Lookup is Retrieve reporting a miss as ErrNotFound.
func (u *BinTree[T]) Lookup(key T) (T, error) {
	if v, ok := u.Retrieve(key); ok {
		return v, nil
	}
	return *new(T), ErrNotFound
}

// Has reports whether an element equal to key is in the tree.
func (u *BinTree[T]) Has(key T) bool {
	_, ok := u.retrieve(u.root, key)
	return ok
}

// Depth [Tree.Depth]. Recursive.
// Depth doesn't rely on the order of the elements: it looks at every node,
// the left subtree before the right one, and reports the first match.
// Time: O(n)
func (u *BinTree[T]) Depth(key T) int {
	return depthOf(u.root, key, u.eq)
}

// Equal reports whether u and o have the same shape and hold equal elements
// at the same positions. Trees with the same elements inserted in different
// orders are usually not equal. A nil o is treated as an empty tree. Recursive.
// Time: O(n)
func (u *BinTree[T]) Equal(o *BinTree[T]) bool {
	if o == nil {
		return u.root == nil
	}
	return same(u.root, o.root, u.eq)
}

// NotEqual is !u.Equal(o).
func (u *BinTree[T]) NotEqual(o *BinTree[T]) bool {
	return !u.Equal(o)
}

// copyFrom duplicates the subtree rooting at src in pre order. On an allocation
// failure it returns the part copied so far together with the error, so the
// caller can release it.
func (u *BinTree[T]) copyFrom(src *node[T]) (*node[T], error) {
	if src == nil {
		return nil, nil
	}
	n, err := u.alloc(dup(src.v))
	if err != nil {
		return nil, err
	}
	if n.l, err = u.copyFrom(src.l); err != nil {
		return n, err
	}
	n.r, err = u.copyFrom(src.r)
	return n, err
}

// Clone returns a deep copy of the tree with the same comparisons and options.
// The copy and u share no nodes, and elements implementing Cloner are cloned.
// Recursive.
// Time: O(n)
func (u *BinTree[T]) Clone() *BinTree[T] {
	c := &BinTree[T]{lt: u.lt, eq: u.eq, config: u.config}
	// u.size never exceeds the budget c inherits, so this can't fail.
	c.root, _ = c.copyFrom(u.root)
	return c
}

// Assign replaces the contents of u with a deep copy of src. Assigning a tree
// to itself does nothing. If the copy runs out of nodes, u is left empty and
// the AllocationError is returned; src is never modified.
// Time: O(n+m)
func (u *BinTree[T]) Assign(src *BinTree[T]) error {
	if u == src {
		return nil
	}
	u.Clear()
	if src == nil {
		return nil
	}
	root, err := u.copyFrom(src.root)
	u.root = root
	if err != nil {
		u.Clear()
		u.logger.Warn("assign failed", "size", src.size, "err", err)
		return err
	}
	u.logger.Debug("assigned tree", "size", u.size)
	return nil
}

// Clear [Tree.Clear]. Recursive.
// Nodes are released in post order and the tree drops every reference to
// its elements.
// Time: O(n)
func (u *BinTree[T]) Clear() {
	if u.root == nil {
		return
	}
	u.logger.Debug("clearing tree", "size", u.size)
	release(u.root)
	u.root, u.size = nil, 0
}

// InOrder [Tree.InOrder]. Recursive.
// The tree must not be modified by f.
func (u *BinTree[T]) InOrder(f func(T) bool) {
	inOrder(u.root, f)
}

// Elements returns the elements in ascending order without modifying the tree.
func (u *BinTree[T]) Elements() []T {
	s := make([]T, 0, u.size)
	u.InOrder(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Values returns the elements in ascending order, for containers.Container.
func (u *BinTree[T]) Values() []interface{} {
	s := make([]interface{}, 0, u.size)
	u.InOrder(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Corrupt [Tree.Corrupt]
// Trees only modified through Insert are never corrupt; Rebuild with an
// unsorted slice produces a corrupt tree.
// Time: O(n)
func (u *BinTree[T]) Corrupt() bool {
	corrupt, started := false, false
	var prev T
	u.InOrder(func(v T) bool {
		if started && !u.lt(prev, v) {
			corrupt = true
			return false
		}
		prev, started = v, true
		return true
	})
	return corrupt
}
