package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// depthCommand creates the "depth" command.
func (c *CLI) depthCommand() *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "depth [file] --key WORD...",
		Short: "Print the depth of each key, 0 when it is absent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := c.loadTree(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range keys {
				if _, err := fmt.Fprintf(out, "%s %d\n", k, tree.Depth(k)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&keys, "key", "k", nil, "word to look up (repeatable)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
