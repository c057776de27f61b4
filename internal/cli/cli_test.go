package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/bintree/Trees"
)

// execute runs the root command with stdin as input and returns what it wrote
// to stdout and to the log.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"in order", "pear apple fig apple", nil, "apple fig pear\n"},
		{"empty", "", nil, "\n"},
		{"sideways", "b a c", []string{"--view", "sideways", "--indent", "1"}, "  c\n b\n  a\n"},
		{"sideways default indent", "b a", []string{"--view", "sideways"}, "    b\n        a\n"},
		{"balanced", "a b c", []string{"--view", "sideways", "--indent", "1", "--balance"}, "  c\n b\n  a\n"},
		{"diagram", "b a c", []string{"--view", "diagram"}, "b\n├── [L]  a\n└── [R]  c\n"},
		{"diagram empty", " \n ", []string{"--view", "diagram"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.input, append([]string{"print"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPrint_File(t *testing.T) {
	path := writeFile(t, "words.txt", "delta alpha\ncharlie\tbravo\n")
	out, _, err := execute(t, "ignored", "print", path)
	require.NoError(t, err)
	assert.Equal(t, "alpha bravo charlie delta\n", out)

	_, _, err = execute(t, "", "print", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrint_Duplicates(t *testing.T) {
	out, logs, err := execute(t, "b a b", "print", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "a b\n", out)
	assert.Contains(t, logs, "skipping duplicate")

	_, logs, err = execute(t, "b a b", "print")
	require.NoError(t, err)
	assert.NotContains(t, logs, "skipping duplicate")
}

func TestPrint_BadView(t *testing.T) {
	_, _, err := execute(t, "a", "print", "--view", "upside-down")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestMaxNodes(t *testing.T) {
	_, _, err := execute(t, "a b c", "print", "--max-nodes", "2")
	require.ErrorIs(t, err, Trees.ErrAllocation)

	// duplicates don't take nodes
	out, _, err := execute(t, "a b a b", "print", "--max-nodes", "2")
	require.NoError(t, err)
	assert.Equal(t, "a b\n", out)
}

func TestDepth(t *testing.T) {
	out, _, err := execute(t, "m c x a", "depth", "--key", "a", "--key", "m", "-k", "z,x")
	require.NoError(t, err)
	assert.Equal(t, "a 3\nm 1\nz 0\nx 2\n", out)

	_, _, err = execute(t, "m", "depth")
	assert.Error(t, err)
}

func TestBalance(t *testing.T) {
	out, _, err := execute(t, "a b c", "balance", "--indent", "1")
	require.NoError(t, err)
	want := "before (height 3):\n" +
		"   c\n  b\n a\n" +
		"after (height 2):\n" +
		"  c\n b\n  a\n"
	assert.Equal(t, want, out)

	out, _, err = execute(t, "", "balance")
	require.NoError(t, err)
	assert.Equal(t, "before (height 0):\nafter (height 0):\n", out)
}

func TestConfig(t *testing.T) {
	path := writeFile(t, "bintree.toml", "indent = 1\nview = \"sideways\"\nbalance = true\n")

	out, _, err := execute(t, "a b c", "print", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "  c\n b\n  a\n", out)

	// flags win over the file
	out, _, err = execute(t, "a b c", "print", "--config", path, "--view", "inorder")
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", out)

	out, _, err = execute(t, "a b c", "print", "--config", path, "--balance=false", "--indent", "2")
	require.NoError(t, err)
	assert.Equal(t, "      c\n    b\n  a\n", out)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig(writeFile(t, "a.toml", "max_nodes = 10\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Indent: Trees.DefaultIndent, MaxNodes: 10, View: ViewInOrder}, cfg)

	_, err = loadConfig(writeFile(t, "b.toml", "colour = \"red\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = loadConfig(writeFile(t, "c.toml", "indent = \n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, defaultConfig().validate())
	for _, cfg := range []Config{
		{View: "tree"},
		{View: ViewDiagram, Indent: -1},
		{View: ViewSideways, MaxNodes: -3},
	} {
		assert.Error(t, cfg.validate(), "%+v", cfg)
	}
}
