package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printCommand creates the "print" command.
func (c *CLI) printCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print the words in order, sideways or as a diagram",
		Long: `Print loads the words of file (or stdin) into a tree and writes one view of it:

  inorder   the distinct words in ascending order on one line
  sideways  one word per line, the largest first, indented by depth
  diagram   the tree drawn top-down with [L] and [R] edges`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.loadTree(cmd, args)
			if err != nil {
				return err
			}
			if c.cfg.Balance {
				if err := tree.Balance(); err != nil {
					return fmt.Errorf("balance: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			switch c.cfg.View {
			case ViewSideways:
				return tree.Sideways(out)
			case ViewDiagram:
				_, err = fmt.Fprint(out, tree.Diagram())
			default:
				_, err = tree.WriteTo(out)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&c.flags.View, "view", ViewInOrder, "view to print: inorder, sideways or diagram")
	cmd.Flags().BoolVar(&c.flags.Balance, "balance", false, "rebuild the tree with minimal height before printing")

	return cmd
}
