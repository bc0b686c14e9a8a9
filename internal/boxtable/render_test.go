package boxtable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/nescli/nescli/internal/textlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() [][]string {
	return [][]string{
		{"name", "age", "score"},
		{"jack", "18", "120"},
		{"john", "18", "120"},
		{"marry", "18", "120"},
		{"tom", "18", "120"},
		{"刘三儿", "18", "120"},
	}
}

func TestRenderHeaderTable(t *testing.T) {
	t.Parallel()

	out, err := Render([][]string{{"name", "age", "score"}, {"jack", "18", "120"}}, Options{Header: true, Plain: true})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"┌──────┬─────┬───────┐",
		"│ name │ age │ score │",
		"├──────┼─────┼───────┤",
		"│ jack │ 18  │ 120   │",
		"└──────┴─────┴───────┘",
		"",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestRenderWideCharacters(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRows(), Options{Header: true, Plain: true})
	require.NoError(t, err)

	for _, line := range []string{
		"┌────────┬─────┬───────┐",
		"│ name   │ age │ score │",
		"├────────┼─────┼───────┤",
		"│ marry  │ 18  │ 120   │",
		"│ 刘三儿 │ 18  │ 120   │",
		"└────────┴─────┴───────┘",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRenderWithoutHeader(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRows(), Options{Plain: true})
	require.NoError(t, err)
	assert.NotContains(t, out, "├")
	assert.Equal(t, 8, strings.Count(out, "\n"))
}

func TestRenderColumnMismatch(t *testing.T) {
	t.Parallel()

	rows := append(sampleRows(), []string{"1", "2", "3", "4"})
	out, err := Render(rows, Options{Header: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnMismatch)
	assert.Empty(t, out)

	var buf bytes.Buffer
	err = Fprint(&buf, rows, Options{Header: true})
	assert.ErrorIs(t, err, ErrColumnMismatch)
	assert.Zero(t, buf.Len(), "nothing should be written on error")

	// an empty first row still fixes the column count
	out, err = Render([][]string{{}, {"a", "b"}}, Options{Plain: true})
	assert.ErrorIs(t, err, ErrColumnMismatch)
	assert.Empty(t, out)
}

func TestRenderWrapsLongCells(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"id", "description"},
		{"1", "a long description that needs wrapping"},
	}
	out, err := Render(rows, Options{Header: true, MaxWidth: 20, Plain: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "│ id │ descripti │", lines[1])
	assert.Equal(t, "│    │ on        │", lines[2])
	assert.Equal(t, "│ 1  │ a long    │", lines[4])
	assert.Equal(t, "│    │ descripti │", lines[5])
	assert.Equal(t, "│    │ wrapping  │", lines[8])

	for _, line := range lines {
		assert.LessOrEqual(t, textlayout.DisplayWidth(line), 20, line)
	}
}

func TestRenderExplicitNewlines(t *testing.T) {
	t.Parallel()

	out, err := Render([][]string{{"key", "line one\nline two"}}, Options{Plain: true})
	require.NoError(t, err)
	assert.Contains(t, out, "│ key │ line one │")
	assert.Contains(t, out, "│     │ line two │")
}

func TestRenderLayoutError(t *testing.T) {
	t.Parallel()

	_, err := Render(sampleRows(), Options{MaxWidth: 10})
	assert.ErrorIs(t, err, ErrLayout)
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	out, err := Render(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Render([][]string{{}, {}}, Options{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderDoubleLineCharset(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRows(), Options{Header: true, Charset: DoubleLine, Plain: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "╔"))
	assert.Contains(t, out, "╠")
	assert.Contains(t, out, "╝\n")
}

func TestRenderStyledHeader(t *testing.T) {
	t.Parallel()

	headerColor := color.New(color.Bold)
	headerColor.EnableColor()

	styled, err := Render(sampleRows(), Options{Header: true, HeaderColor: headerColor})
	require.NoError(t, err)
	plain, err := Render(sampleRows(), Options{Header: true, Plain: true})
	require.NoError(t, err)

	assert.Contains(t, styled, "\x1b[1m")
	assert.Equal(t, plain, ansi.Strip(styled))
}

func TestCharsetByName(t *testing.T) {
	t.Parallel()

	cs, ok := CharsetByName("rounded")
	require.True(t, ok)
	assert.Equal(t, "╭", cs.TopLeft)

	_, ok = CharsetByName("dotted")
	assert.False(t, ok)
}
