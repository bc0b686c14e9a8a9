// Package echo prints styled messages to the terminal.
package echo

import (
	"slices"
	"strings"

	"github.com/fatih/color"
)

// Statement is a styled text segment with optional child segments that
// print after it on the same line. Every method returns a new Statement.
type Statement struct {
	text      string
	fg        color.Attribute
	bg        color.Attribute
	bold      bool
	underline bool
	children  []Statement
}

// S starts a statement.
func S(text string) Statement {
	return Statement{text: text}
}

func (s Statement) Fg(attr color.Attribute) Statement {
	s.fg = attr
	return s
}

func (s Statement) Bg(attr color.Attribute) Statement {
	s.bg = attr
	return s
}

func (s Statement) Bold() Statement {
	s.bold = true
	return s
}

func (s Statement) Underline() Statement {
	s.underline = true
	return s
}

func (s Statement) Black() Statement   { return s.Fg(color.FgBlack) }
func (s Statement) Red() Statement     { return s.Fg(color.FgRed) }
func (s Statement) Green() Statement   { return s.Fg(color.FgGreen) }
func (s Statement) Yellow() Statement  { return s.Fg(color.FgYellow) }
func (s Statement) Blue() Statement    { return s.Fg(color.FgBlue) }
func (s Statement) Magenta() Statement { return s.Fg(color.FgMagenta) }
func (s Statement) Cyan() Statement    { return s.Fg(color.FgCyan) }
func (s Statement) White() Statement   { return s.Fg(color.FgWhite) }

func (s Statement) BlackBg() Statement   { return s.Bg(color.BgBlack) }
func (s Statement) RedBg() Statement     { return s.Bg(color.BgRed) }
func (s Statement) GreenBg() Statement   { return s.Bg(color.BgGreen) }
func (s Statement) YellowBg() Statement  { return s.Bg(color.BgYellow) }
func (s Statement) BlueBg() Statement    { return s.Bg(color.BgBlue) }
func (s Statement) MagentaBg() Statement { return s.Bg(color.BgMagenta) }
func (s Statement) CyanBg() Statement    { return s.Bg(color.BgCyan) }
func (s Statement) WhiteBg() Statement   { return s.Bg(color.BgWhite) }

// Add appends child statements.
func (s Statement) Add(children ...Statement) Statement {
	s.children = append(slices.Clip(s.children), children...)
	return s
}

// AddText appends unstyled text.
func (s Statement) AddText(text string) Statement {
	return s.Add(S(text))
}

// String renders the statement and its children with ANSI styling.
func (s Statement) String() string {
	var b strings.Builder
	s.render(&b, true)
	return b.String()
}

// Plain renders the text only.
func (s Statement) Plain() string {
	var b strings.Builder
	s.render(&b, false)
	return b.String()
}

func (s Statement) render(b *strings.Builder, styled bool) {
	if styled && s.styled() {
		b.WriteString(s.color().Sprint(s.text))
	} else {
		b.WriteString(s.text)
	}
	for _, child := range s.children {
		child.render(b, styled)
	}
}

func (s Statement) styled() bool {
	return s.fg != 0 || s.bg != 0 || s.bold || s.underline
}

func (s Statement) color() *color.Color {
	var attrs []color.Attribute
	if s.fg != 0 {
		attrs = append(attrs, s.fg)
	}
	if s.bg != 0 {
		attrs = append(attrs, s.bg)
	}
	if s.bold {
		attrs = append(attrs, color.Bold)
	}
	if s.underline {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...)
}
