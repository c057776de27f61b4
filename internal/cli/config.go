package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/g-m-twostay/bintree/Trees"
)

// Views accepted by the print command.
const (
	ViewInOrder  = "inorder"
	ViewSideways = "sideways"
	ViewDiagram  = "diagram"
)

// Config holds the settings shared by the commands. A config file looks like
//
//	indent = 2
//	max_nodes = 10000
//	balance = true
//	view = "sideways"
type Config struct {
	Indent   int    `toml:"indent"`
	MaxNodes int    `toml:"max_nodes"`
	Balance  bool   `toml:"balance"`
	View     string `toml:"view"`
}

func defaultConfig() Config {
	return Config{Indent: Trees.DefaultIndent, View: ViewInOrder}
}

// loadConfig reads path on top of the defaults. An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(names, ", "))
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.View {
	case ViewInOrder, ViewSideways, ViewDiagram:
	default:
		return fmt.Errorf("unknown view %q (want %s, %s or %s)", c.View, ViewInOrder, ViewSideways, ViewDiagram)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must not be negative, got %d", c.MaxNodes)
	}
	return nil
}

func (c Config) treeOptions() []Trees.Option {
	return []Trees.Option{Trees.WithIndent(c.Indent), Trees.WithMaxNodes(c.MaxNodes)}
}
