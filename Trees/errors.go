package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned by Insert when an equal element is already in the tree.
	// The tree is unchanged.
	ErrDuplicate = errors.New("Trees: duplicate element")
	// ErrNotFound is returned by Lookup when no element equals the key.
	ErrNotFound = errors.New("Trees: element not found")
	// ErrAllocation is matched by every AllocationError.
	ErrAllocation = errors.New("Trees: node allocation failed")
)

// AllocationError reports that a tree couldn't allocate a node because its
// node budget, set with WithMaxNodes, is used up.
type AllocationError struct {
	Limit int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("Trees: node allocation failed: tree is limited to %d nodes", e.Limit)
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}
