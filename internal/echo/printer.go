package echo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nescli/nescli/internal/boxtable"
	"github.com/nescli/nescli/internal/utils"
	"github.com/pkg/errors"
)

var ErrUnknownColor = errors.New("unknown color")

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"reset":   color.Reset,
}

// ParseColor maps a color name such as "red" to its foreground attribute.
func ParseColor(name string) (color.Attribute, error) {
	attr, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownColor, "%q", name)
	}
	return attr, nil
}

// Printer writes prefixed, colored messages.
type Printer struct {
	Out        io.Writer
	Prefix     string
	ShowPrefix bool
	Color      color.Attribute
	SepLength  int
	SepChar    string
	Title      string
	Prompter   utils.Prompter
	TableOpts  boxtable.Options
}

// New returns a printer with the default ">>" prefix in yellow.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{
		Out:        out,
		Prefix:     ">>",
		ShowPrefix: true,
		Color:      color.FgYellow,
		SepLength:  60,
		SepChar:    "=",
		Title:      "Message:",
		Prompter:   utils.HuhPrompter{},
	}
}

type echoOptions struct {
	color      color.Attribute
	prefix     string
	showPrefix *bool
	noNewline  bool
	bold       bool
	underline  bool
}

type Option func(*echoOptions)

func WithColor(attr color.Attribute) Option {
	return func(o *echoOptions) { o.color = attr }
}

// WithPrefix shows the given prefix instead of the printer's.
func WithPrefix(prefix string) Option {
	return func(o *echoOptions) {
		o.prefix = prefix
		show := true
		o.showPrefix = &show
	}
}

func NoPrefix() Option {
	return func(o *echoOptions) {
		show := false
		o.showPrefix = &show
	}
}

// ShowPrefix forces the prefix even when the printer hides it.
func ShowPrefix() Option {
	return func(o *echoOptions) {
		show := true
		o.showPrefix = &show
	}
}

func NoNewline() Option {
	return func(o *echoOptions) { o.noNewline = true }
}

func Bold() Option {
	return func(o *echoOptions) { o.bold = true }
}

func Underline() Option {
	return func(o *echoOptions) { o.underline = true }
}

// Echo prints msg with the printer's prefix and color.
func (p *Printer) Echo(msg string, opts ...Option) {
	o := echoOptions{color: p.Color}
	for _, opt := range opts {
		opt(&o)
	}

	stmt := S(p.prefixFor(o) + msg).Fg(o.color)
	if o.bold {
		stmt = stmt.Bold()
	}
	if o.underline {
		stmt = stmt.Underline()
	}

	_, _ = io.WriteString(p.Out, stmt.String())
	if !o.noNewline {
		_, _ = io.WriteString(p.Out, "\n")
	}
}

func (p *Printer) Echof(format string, args ...any) {
	p.Echo(fmt.Sprintf(format, args...))
}

// Error prints msg in red without a prefix.
func (p *Printer) Error(msg string) {
	p.Echo(msg, WithColor(color.FgRed), NoPrefix())
}

func (p *Printer) prefixFor(o echoOptions) string {
	show := p.ShowPrefix
	if o.showPrefix != nil {
		show = *o.showPrefix
	}
	if !show {
		return ""
	}
	prefix := o.prefix
	if prefix == "" {
		prefix = p.Prefix
	}
	return prefix + " "
}

// Sep prints the default separator line.
func (p *Printer) Sep() {
	p.SepWith(p.SepLength, p.SepChar)
}

func (p *Printer) SepWith(length int, char string) {
	p.Echo(strings.Repeat(char, length), NoPrefix())
}

// PrintTitle prints title followed by a separator. An empty title uses the
// printer's default.
func (p *Printer) PrintTitle(title string) {
	if title == "" {
		title = p.Title
	}
	p.Echo(title, NoPrefix())
	p.Sep()
}

func (p *Printer) Done() {
	p.Echo("Done!", NoPrefix())
}

// Statements prints strings and statements on one prefixed line.
func (p *Printer) Statements(items ...any) {
	line := S(p.prefixFor(echoOptions{}))
	for _, item := range items {
		switch v := item.(type) {
		case Statement:
			line = line.Add(v)
		case string:
			line = line.AddText(v)
		default:
			line = line.AddText(fmt.Sprint(v))
		}
	}
	_, _ = fmt.Fprintln(p.Out, line.String())
}

// Table prints rows as a box table.
func (p *Printer) Table(rows [][]string, header bool) error {
	opts := p.TableOpts
	opts.Header = header
	return boxtable.Fprint(p.Out, rows, opts)
}

// Confirm asks a yes/no question; yes is the default answer.
func (p *Printer) Confirm(question string) (bool, error) {
	if p.Prompter == nil {
		return false, errors.New("no prompter configured")
	}
	return p.Prompter.Confirm(question, true)
}
