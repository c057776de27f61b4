package Trees

// Linearize [Tree.Linearize]. Recursive.
// The elements are moved, not copied: every node gives up its element as it
// is visited and the tree is empty afterwards. The slice has exactly Size()
// elements.
// Time: O(n)
func (u *BinTree[T]) Linearize() []T {
	s := make([]T, 0, u.size)
	var move func(*node[T])
	move = func(cur *node[T]) {
		if cur != nil {
			move(cur.l)
			s = append(s, cur.v)
			cur.v = *new(T)
			move(cur.r)
		}
	}
	move(u.root)
	u.Clear()
	return s
}

// Rebuild [Tree.Rebuild]. Recursive.
// The current contents are removed first. Then the middle element of sorted,
// at (low+high)/2, becomes the root and each half is built the same way, so
// the height of the result is bits.Len(len(sorted)).
// sorted must be in ascending order without duplicates; this isn't checked,
// see Corrupt. The elements are moved into the tree: every slot of sorted is
// zeroed as it is consumed.
// If sorted has more elements than the node budget, Rebuild returns an
// AllocationError and neither the tree nor sorted is modified.
// Time: O(n)
func (u *BinTree[T]) Rebuild(sorted []T) error {
	if u.limit > 0 && len(sorted) > u.limit {
		err := &AllocationError{u.limit}
		u.logger.Warn("rebuild failed", "size", len(sorted), "err", err)
		return err
	}
	u.Clear()
	u.root = u.bisect(sorted, 0, len(sorted)-1)
	u.logger.Debug("rebuilt tree", "size", u.size)
	return nil
}

// bisect builds the subtree holding sorted[low:high+1].
func (u *BinTree[T]) bisect(sorted []T, low, high int) *node[T] {
	if low > high {
		return nil
	}
	mid := (low + high) / 2
	// Rebuild checked the budget.
	cur, _ := u.alloc(sorted[mid])
	sorted[mid] = *new(T)
	cur.l = u.bisect(sorted, low, mid-1)
	cur.r = u.bisect(sorted, mid+1, high)
	return cur
}

// Balance rebuilds the tree from its own elements, which keeps them but
// makes the height minimal.
func (u *BinTree[T]) Balance() error {
	return u.Rebuild(u.Linearize())
}
