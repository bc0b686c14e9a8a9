// Package msgbox collects typed messages produced while a command runs and
// prints them as a list or as per-type summaries.
package msgbox

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nescli/nescli/internal/echo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Type string

const (
	Info   Type = "INFO"
	Error  Type = "ERROR"
	Create Type = "CREATE"
	Exists Type = "EXISTS"
	Update Type = "UPDATE"
)

// Box is not safe for concurrent use.
type Box struct {
	order    []Type
	messages map[Type][]string
	summary  map[Type]string
}

func New() *Box {
	return &Box{
		messages: map[Type][]string{},
		summary:  map[Type]string{},
	}
}

// Push appends messages under typ.
func (b *Box) Push(typ Type, msgs ...string) {
	if _, ok := b.messages[typ]; !ok {
		b.order = append(b.order, typ)
	}
	b.messages[typ] = append(b.messages[typ], msgs...)
}

// Pop removes and returns the last message of typ.
func (b *Box) Pop(typ Type) (string, bool) {
	msgs := b.messages[typ]
	if len(msgs) == 0 {
		return "", false
	}
	last := msgs[len(msgs)-1]
	b.messages[typ] = msgs[:len(msgs)-1]
	return last, true
}

func (b *Box) Count(typ Type) int {
	return len(b.messages[typ])
}

func (b *Box) Total() int {
	total := 0
	for _, msgs := range b.messages {
		total += len(msgs)
	}
	return total
}

// List returns a copy of the messages of typ.
func (b *Box) List(typ Type) []string {
	return slices.Clone(b.messages[typ])
}

// Types returns the message types in the order they were first pushed.
func (b *Box) Types() []Type {
	return slices.Clone(b.order)
}

func (b *Box) SetSummary(typ Type, summary string) {
	b.summary[typ] = summary
}

// Summary returns the summary label of typ, "<Type> message" by default.
func (b *Box) Summary(typ Type) string {
	if s, ok := b.summary[typ]; ok {
		return s
	}
	return cases.Title(language.English).String(strings.ToLower(string(typ))) + " message"
}

// Clear drops the messages of the given types, or all messages when no type
// is given.
func (b *Box) Clear(types ...Type) {
	if len(types) == 0 {
		b.order = nil
		b.messages = map[Type][]string{}
		return
	}
	for _, typ := range types {
		delete(b.messages, typ)
		b.order = slices.DeleteFunc(b.order, func(t Type) bool { return t == typ })
	}
}

// Echo prints every message when verbose, otherwise one summary line per
// type.
func (b *Box) Echo(p *echo.Printer, verbose bool) {
	for _, typ := range b.order {
		if verbose {
			for _, msg := range b.messages[typ] {
				p.Echo(msg)
			}
			continue
		}
		p.Echo(fmt.Sprintf("%s: %d.", b.Summary(typ), b.Count(typ)))
	}
}
