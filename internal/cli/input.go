package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees"
)

// openInput opens the file named by the only argument, or stdin when there is
// none or it is "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// loadTree inserts every word of the input, in order, into a new tree.
// Repeated words are logged and skipped.
func (c *CLI) loadTree(cmd *cobra.Command, args []string) (*Trees.BinTree[string], error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	tree := Trees.NewOrdered[string](append(c.cfg.treeOptions(), Trees.WithLogger(logger))...)

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	words := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words++
		w := sc.Text()
		switch err := tree.Insert(w); {
		case errors.Is(err, Trees.ErrDuplicate):
			logger.Debug("skipping duplicate", "word", w)
		case err != nil:
			return nil, fmt.Errorf("insert %q: %w", w, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	logger.Debug("loaded tree", "words", words, "size", tree.Size(), "height", tree.Height())
	return tree, nil
}
