// Package cli implements the bintree command-line interface.
//
// Every command reads whitespace-separated words from a file argument or
// stdin into a Trees.BinTree[string] and prints some view of it. Repeated
// words are skipped.
//
// # Commands
//
//   - print: the words in order, or the tree drawn sideways or as a diagram
//   - depth: the level at which each of the given keys sits
//   - balance: the tree before and after rebuilding it with minimal height
//
// # Configuration
//
// Defaults may come from a TOML file given with --config; flags given on the
// command line override it. See Config.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees"
)

const appName = "bintree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	flags      Config // values of the override flags, applied only when set
	cfg        Config // effective configuration, resolved before each command
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "bintree loads words into a binary search tree and shows it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = c.override(cmd, cfg)
			if err := c.cfg.validate(); err != nil {
				return err
			}
			c.Logger.Debug("configuration", "indent", c.cfg.Indent, "max_nodes", c.cfg.MaxNodes, "view", c.cfg.View, "balance", c.cfg.Balance)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "TOML file with default settings")
	pf.IntVar(&c.flags.Indent, "indent", Trees.DefaultIndent, "spaces per level in the sideways view")
	pf.IntVar(&c.flags.MaxNodes, "max-nodes", 0, "maximum number of tree nodes, 0 for no limit")

	root.AddCommand(c.printCommand())
	root.AddCommand(c.depthCommand())
	root.AddCommand(c.balanceCommand())

	return root
}

// override replaces the values of cfg whose flag was given on the command line.
func (c *CLI) override(cmd *cobra.Command, cfg Config) Config {
	fs := cmd.Flags()
	if fs.Changed("indent") {
		cfg.Indent = c.flags.Indent
	}
	if fs.Changed("max-nodes") {
		cfg.MaxNodes = c.flags.MaxNodes
	}
	if fs.Changed("view") {
		cfg.View = c.flags.View
	}
	if fs.Changed("balance") {
		cfg.Balance = c.flags.Balance
	}
	return cfg
}
