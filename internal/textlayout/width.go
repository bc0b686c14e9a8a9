// Package textlayout measures and wraps text for fixed-width terminals.
package textlayout

import "github.com/mattn/go-runewidth"

const (
	cjkFirst rune = 0x4E00
	cjkLast  rune = 0x9FFF
)

// RuneWidthFunc returns the number of terminal columns a rune occupies.
type RuneWidthFunc func(r rune) int

// CJKRuneWidth counts CJK Unified Ideographs (U+4E00 to U+9FFF) as two
// columns and every other rune as one.
func CJKRuneWidth(r rune) int {
	if r >= cjkFirst && r <= cjkLast {
		return 2
	}
	return 1
}

// EastAsianRuneWidth uses the full East Asian Width tables (Hangul,
// full-width forms, emoji, ...). Zero-width runes still count as one column.
func EastAsianRuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// Layout measures and wraps strings with a given rune width table.
// The zero value uses CJKRuneWidth.
type Layout struct {
	RuneWidth RuneWidthFunc
}

// Default is the layout used by the package level helpers.
var Default = Layout{RuneWidth: CJKRuneWidth}

// Wide is a layout backed by the East Asian Width tables.
var Wide = Layout{RuneWidth: EastAsianRuneWidth}

func (l Layout) runeWidth(r rune) int {
	if l.RuneWidth == nil {
		return CJKRuneWidth(r)
	}
	return l.RuneWidth(r)
}

// StringWidth returns the display width of s.
func (l Layout) StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += l.runeWidth(r)
	}
	return width
}

func (l Layout) runesWidth(rs []rune) int {
	width := 0
	for _, r := range rs {
		width += l.runeWidth(r)
	}
	return width
}

// DisplayWidth returns the display width of s using CJKRuneWidth.
func DisplayWidth(s string) int {
	return Default.StringWidth(s)
}
