package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/g-m-twostay/bintree/Queues"
)

// Iterator walks a tree in ascending order using an explicit stack instead of
// recursion. The tree must not be modified while it is used.
//
//	for it := tree.Iterator(); it.Next(); {
//		use(it.Value())
//	}
type Iterator[T any] struct {
	st  *arraystack.Stack // holds *node[T]; the top is the next node to visit.
	cur *node[T]
}

// Iterator returns an Iterator positioned before the smallest element.
// Time: O(D); Next: amortized O(1). Space: O(D)
func (u *BinTree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{st: arraystack.New()}
	it.pushLeft(u.root)
	return it
}

func (it *Iterator[T]) pushLeft(cur *node[T]) {
	for ; cur != nil; cur = cur.l {
		it.st.Push(cur)
	}
}

// Next moves to the next element. It returns false once the iterator is exhausted.
func (it *Iterator[T]) Next() bool {
	top, ok := it.st.Pop()
	if !ok {
		it.cur = nil
		return false
	}
	it.cur = top.(*node[T])
	it.pushLeft(it.cur.r)
	return true
}

// Value is the current element. It is the zero value before the first call
// to Next and after Next returned false.
func (it *Iterator[T]) Value() T {
	if it.cur == nil {
		return *new(T)
	}
	return it.cur.v
}

type leveled[T any] struct {
	n     *node[T]
	level int
}

// Levels calls f on every element in level order: the root at level 1, then
// its children at level 2 from left to right, and so on, until f returns false.
// Time: O(n); Space: O(width)
func (u *BinTree[T]) Levels(f func(level int, v T) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[leveled[T]](8)
	q.Push(leveled[T]{u.root, 1})
	for !q.Empty() {
		cur, _ := q.Pop()
		if !f(cur.level, cur.n.v) {
			return
		}
		if cur.n.l != nil {
			q.Push(leveled[T]{cur.n.l, cur.level + 1})
		}
		if cur.n.r != nil {
			q.Push(leveled[T]{cur.n.r, cur.level + 1})
		}
	}
}

// Height is the number of levels of the tree, 0 when it is empty.
// Time: O(n)
func (u *BinTree[T]) Height() (h int) {
	u.Levels(func(level int, _ T) bool {
		h = level
		return true
	})
	return
}
