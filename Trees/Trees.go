package Trees

import (
	"io"
)

// Ordered is the contract of elements held by a tree built with New.
// LessThan must be a strict total order and Equals must agree with it:
// for any a, b exactly one of a.LessThan(b), a.Equals(b), b.LessThan(a) holds.
// Elements are rendered with fmt, so implementing fmt.Stringer controls
// how they appear in WriteTo, Sideways and Diagram.
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// Cloner is implemented by elements that own memory which a plain value copy
// would share, e.g. pointers or slices. Clone and Assign call it for every
// element they duplicate; elements that don't implement it are copied by value.
type Cloner[T any] interface {
	Clone() T
}

// Tree is the operation set of BinTree.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. Methods implemented recursively
// are noted, otherwise they are implemented iteratively.
type Tree[T any] interface {
	//IsEmpty reports whether the tree has no elements.
	IsEmpty() bool
	//Insert v to the tree. Returns nil on success, ErrDuplicate when an
	//equal element is present, or an error matching ErrAllocation when no
	//node can be allocated.
	Insert(v T) error
	//Retrieve the element equal to key.
	Retrieve(key T) (T, bool)
	//Depth of the element equal to key, 1 at the root and 0 when absent.
	Depth(key T) int
	//Size of the tree.
	Size() int
	//Clear the tree.
	Clear()
	//InOrder calls f on every element in ascending order until f returns false.
	InOrder(f func(T) bool)
	//WriteTo writes the elements in ascending order, space separated, followed by a newline.
	WriteTo(w io.Writer) (int64, error)
	//Sideways writes the tree rotated by a quarter turn, one element per line.
	Sideways(w io.Writer) error
	//Linearize moves all elements into an ascending slice and empties the tree.
	Linearize() []T
	//Rebuild the tree from an ascending slice so that it is balanced.
	Rebuild(sorted []T) error
	//Corrupt returns whether the order of the elements violates the BST property.
	Corrupt() bool
}

var _ Tree[int] = (*BinTree[int])(nil)
