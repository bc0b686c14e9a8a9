// Package tree lists a directory as box-drawing tree lines.
package tree

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/nescli/nescli/internal/boxtable"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var ErrNotDirectory = errors.New("target must be a directory")

const DefaultDepth = 8

// Options controls the walk. MaxDepth 0 walks the whole tree.
type Options struct {
	MaxDepth   int
	ShowHidden bool
}

// OptionsFromFlags reads --depth and --hidden.
func OptionsFromFlags(flags *pflag.FlagSet) (Options, error) {
	depth, err := flags.GetInt("depth")
	if err != nil {
		return Options{}, err
	}
	hidden, err := flags.GetBool("hidden")
	if err != nil {
		return Options{}, err
	}
	if depth < 0 {
		return Options{}, errors.Errorf("depth must not be negative, got %d", depth)
	}
	return Options{MaxDepth: depth, ShowHidden: hidden}, nil
}

// Line is one printed row of the tree.
type Line struct {
	Content string
	Dir     bool
}

// Walk returns the tree lines below root, root itself excluded.
func Walk(root string, opts Options) ([]Line, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrNotDirectory, "got a file: %q", root)
	}
	return walk(root, 0, opts)
}

func walk(dir string, depth int, opts Options) ([]Line, error) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	glyphs := boxtable.SingleLine
	var visible []os.DirEntry
	for _, entry := range entries {
		if opts.ShowHidden || !hidden(entry.Name()) {
			visible = append(visible, entry)
		}
	}

	var lines []Line
	for i, entry := range visible {
		last := i == len(visible)-1
		connector := glyphs.MidLeft + glyphs.Horizontal
		indent := glyphs.Vertical + " "
		if last {
			connector = glyphs.BottomLeft + glyphs.Horizontal
			indent = "  "
		}

		if !entry.IsDir() {
			lines = append(lines, Line{Content: connector + glyphs.Horizontal + entry.Name()})
			continue
		}

		children, err := walk(filepath.Join(dir, entry.Name()), depth+1, opts)
		if err != nil {
			return nil, err
		}
		marker := glyphs.Horizontal
		if len(children) > 0 {
			marker = glyphs.TopMid
		}
		lines = append(lines, Line{Content: connector + marker + entry.Name(), Dir: true})
		for _, child := range children {
			lines = append(lines, Line{Content: indent + child.Content, Dir: child.Dir})
		}
	}
	return lines, nil
}

// hidden matches dot files and Python dunder names such as __pycache__.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".") ||
		(len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__"))
}

// Print writes the root line followed by lines, directories in blue.
func Print(w io.Writer, root string, lines []Line) error {
	dirColor := color.New(color.FgBlue)
	if _, err := io.WriteString(w, dirColor.Sprint(boxtable.SingleLine.TopLeft+filepath.Base(root))+"\n"); err != nil {
		return err
	}
	for _, line := range lines {
		content := line.Content
		if line.Dir {
			content = dirColor.Sprint(content)
		}
		if _, err := io.WriteString(w, content+"\n"); err != nil {
			return err
		}
	}
	return nil
}
