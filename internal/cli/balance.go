package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees"
)

// balanceCommand creates the "balance" command.
func (c *CLI) balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [file]",
		Short: "Show the tree sideways before and after rebuilding it balanced",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.loadTree(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := section(out, "before", tree); err != nil {
				return err
			}

			sorted := tree.Linearize()
			loggerFromContext(cmd.Context()).Debug("linearized", "size", len(sorted))
			if err := tree.Rebuild(sorted); err != nil {
				return fmt.Errorf("rebuild: %w", err)
			}
			return section(out, "after", tree)
		},
	}
}

func section(w io.Writer, title string, tree *Trees.BinTree[string]) error {
	if _, err := fmt.Fprintf(w, "%s (height %d):\n", title, tree.Height()); err != nil {
		return err
	}
	return tree.Sideways(w)
}
