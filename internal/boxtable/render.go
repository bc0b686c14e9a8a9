// Package boxtable renders rows of cells as a bordered table with
// box-drawing characters, wrapping cells that do not fit their column.
package boxtable

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nescli/nescli/internal/textlayout"
	"github.com/pkg/errors"
)

// DefaultMaxWidth is the printed width limit when Options.MaxWidth is unset.
const DefaultMaxWidth = 100

// ErrColumnMismatch is returned when rows do not have the same cell count.
var ErrColumnMismatch = errors.New("column mismatch")

type Options struct {
	// Header renders the first row styled and followed by a separator.
	Header bool
	// MaxWidth bounds the printed width of every line, borders included.
	MaxWidth int
	Charset  Charset
	Layout   textlayout.Layout
	// Plain disables ANSI styling.
	Plain       bool
	HeaderColor *color.Color
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.Charset == (Charset{}) {
		o.Charset = SingleLine
	}
	if o.HeaderColor == nil {
		o.HeaderColor = color.New(color.FgCyan, color.Bold)
	}
	return o
}

// Render lays out rows and returns the table text.
func Render(rows [][]string, opts Options) (string, error) {
	opts = opts.withDefaults()
	if len(rows) == 0 {
		return "", nil
	}

	columns := len(rows[0])
	for i, row := range rows {
		if len(row) != columns {
			return "", errors.Wrapf(ErrColumnMismatch, "row %d has %d cells, expected %d", i, len(row), columns)
		}
	}
	if columns == 0 {
		return "", nil
	}

	widths, err := Negotiate(columnWidths(rows, opts.Layout), opts.MaxWidth-(columns+1))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	cs := opts.Charset
	writeBorder(&b, cs.TopLeft, cs.TopMid, cs.TopRight, cs.Horizontal, widths)
	for i, row := range rows {
		header := opts.Header && i == 0
		cells, err := wrapRow(row, widths, opts.Layout)
		if err != nil {
			return "", err
		}
		var style func(string) string
		if header && !opts.Plain {
			style = func(s string) string { return opts.HeaderColor.Sprint(s) }
		}
		writeRow(&b, cs.Vertical, cells, widths, opts.Layout, style)
		if header {
			writeBorder(&b, cs.MidLeft, cs.Cross, cs.MidRight, cs.Horizontal, widths)
		}
	}
	writeBorder(&b, cs.BottomLeft, cs.BottomMid, cs.BottomRight, cs.Horizontal, widths)

	return b.String(), nil
}

// Fprint renders rows and writes the table to w.
func Fprint(w io.Writer, rows [][]string, opts Options) error {
	out, err := Render(rows, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func columnWidths(rows [][]string, layout textlayout.Layout) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for j, cell := range row {
			for _, line := range strings.Split(cell, "\n") {
				widths[j] = max(widths[j], layout.StringWidth(line)+Padding)
			}
		}
	}
	return widths
}

// wrapRow returns the physical lines of each cell, all padded to the same
// count.
func wrapRow(row []string, widths []int, layout textlayout.Layout) ([][]string, error) {
	cells := make([][]string, len(row))
	height := 1
	for j, cell := range row {
		var lines []string
		for _, part := range strings.Split(cell, "\n") {
			wrapped, err := layout.Wrap(part, widths[j]-Padding)
			if err != nil {
				return nil, err
			}
			lines = append(lines, wrapped...)
		}
		cells[j] = lines
		height = max(height, len(lines))
	}
	for j := range cells {
		for len(cells[j]) < height {
			cells[j] = append(cells[j], "")
		}
	}
	return cells, nil
}

func writeBorder(b *strings.Builder, left, mid, right, fill string, widths []int) {
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat(fill, w))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, edge string, cells [][]string, widths []int, layout textlayout.Layout, style func(string) string) {
	for k := range cells[0] {
		b.WriteString(edge)
		for j, w := range widths {
			content := cells[j][k]
			pad := max(w-Padding-layout.StringWidth(content), 0)
			if style != nil && content != "" {
				content = style(content)
			}
			b.WriteString(" ")
			b.WriteString(content)
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(" ")
			b.WriteString(edge)
		}
		b.WriteString("\n")
	}
}
