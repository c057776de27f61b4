package Trees

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultIndent is the number of spaces Sideways indents per level.
const DefaultIndent = 4

type config struct {
	limit  int // maximum number of nodes, 0 means unlimited.
	indent int
	logger *log.Logger
}

func newConfig(opts []Option) config {
	c := config{indent: DefaultIndent}
	for _, o := range opts {
		o(&c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Option configures a BinTree.
type Option func(*config)

// WithMaxNodes bounds the number of nodes the tree may allocate. Operations
// that would exceed it fail with an AllocationError. n<=0 means unlimited.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		c.limit = max(n, 0)
	}
}

// WithIndent sets the number of spaces per level used by Sideways.
func WithIndent(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.indent = n
		}
	}
}

// WithLogger makes the tree log lifecycle events to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
