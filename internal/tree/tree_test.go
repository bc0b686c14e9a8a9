package tree

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "project")
	for _, dir := range []string{"pkg/core", "pkg/empty", "tests", ".git", "__pycache__"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, file := range []string{"app.py", "pkg/__init__.py", "pkg/core/engine.py", "tests/test_app.py", ".env"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, file), nil, 0o644))
	}
	return root
}

func contents(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Content
	}
	return out
}

func TestWalk(t *testing.T) {
	t.Parallel()
	root := makeTree(t)

	lines, err := Walk(root, Options{MaxDepth: DefaultDepth})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"├──app.py",
		"├─┬pkg",
		"│ ├──__init__.py",
		"│ ├─┬core",
		"│ │ └──engine.py",
		"│ └──empty",
		"└─┬tests",
		"  └──test_app.py",
	}, contents(lines))
	assert.True(t, lines[1].Dir)
	assert.False(t, lines[0].Dir)
}

func TestWalkShowHidden(t *testing.T) {
	t.Parallel()
	root := makeTree(t)

	lines, err := Walk(root, Options{ShowHidden: true})
	require.NoError(t, err)

	joined := contents(lines)
	assert.Contains(t, joined, "├──.env")
	assert.Contains(t, joined, "├──.git")
	assert.Contains(t, joined, "├──__pycache__")
}

func TestWalkDepth(t *testing.T) {
	t.Parallel()
	root := makeTree(t)

	lines, err := Walk(root, Options{MaxDepth: 1})
	require.NoError(t, err)
	assert.Contains(t, contents(lines), "│ ├──core")
	assert.NotContains(t, contents(lines), "│ │ └──engine.py")
}

func TestWalkRejectsFile(t *testing.T) {
	t.Parallel()
	root := makeTree(t)

	_, err := Walk(filepath.Join(root, "app.py"), Options{})
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "/work/project", []Line{{Content: "└──app.py"}}))
	assert.Equal(t, "┌project\n└──app.py\n", ansi.Strip(buf.String()))
}

func TestOptionsFromFlags(t *testing.T) {
	t.Parallel()

	flags := pflag.NewFlagSet("tree", pflag.ContinueOnError)
	flags.IntP("depth", "d", DefaultDepth, "")
	flags.Bool("hidden", false, "")
	require.NoError(t, flags.Parse([]string{"-d", "3", "--hidden"}))

	opts, err := OptionsFromFlags(flags)
	require.NoError(t, err)
	assert.Equal(t, Options{MaxDepth: 3, ShowHidden: true}, opts)

	require.NoError(t, flags.Parse([]string{"--depth=-1"}))
	_, err = OptionsFromFlags(flags)
	assert.Error(t, err)
}
