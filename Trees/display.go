package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns the elements in ascending order separated by single spaces.
// An empty tree gives "".
func (u *BinTree[T]) String() string {
	var sb strings.Builder
	first := true
	u.InOrder(func(v T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
		first = false
		return true
	})
	return sb.String()
}

// WriteTo [Tree.WriteTo]
// An empty tree writes a single newline.
func (u *BinTree[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, u.String()+"\n")
	return int64(n), err
}

// Sideways [Tree.Sideways]. Recursive.
// The right subtree is written first, then the node, then the left subtree,
// so the root ends up in the middle of the output and the largest element on
// the first line. A node at depth d is indented by d times the configured
// indent (DefaultIndent spaces unless WithIndent was given).
func (u *BinTree[T]) Sideways(w io.Writer) error {
	return u.sideways(w, u.root, 1)
}

func (u *BinTree[T]) sideways(w io.Writer, cur *node[T], level int) error {
	if cur == nil {
		return nil
	}
	if err := u.sideways(w, cur.r, level+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%v\n", strings.Repeat(" ", level*u.indent), cur.v); err != nil {
		return err
	}
	return u.sideways(w, cur.l, level+1)
}

// Diagram renders the tree top-down as a branch diagram, marking each child
// with [L] or [R]. An empty tree gives "".
func (u *BinTree[T]) Diagram() string {
	if u.root == nil {
		return ""
	}
	t := treeprint.NewWithRoot(u.root.v)
	branches(t, u.root)
	return t.String()
}

func branches[T any](t treeprint.Tree, cur *node[T]) {
	for i, c := range [2]*node[T]{cur.l, cur.r} {
		if c == nil {
			continue
		}
		side := [2]string{"L", "R"}[i]
		if c.l == nil && c.r == nil {
			t.AddMetaNode(side, c.v)
		} else {
			branches(t.AddMetaBranch(side, c.v), c)
		}
	}
}
