package textlayout

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ascii", input: "word", expected: 4},
		{name: "chinese", input: "中文", expected: 4},
		{name: "mixed", input: "中文word", expected: 8},
		{name: "punctuation is narrow", input: "，。", expected: 2},
		{name: "hangul is narrow by default", input: "한국", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestDisplayWidthNarrowEqualsRuneCount(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hello world", "tab\tand\nnewline", "café", "ümlaut ß", "1234567890"} {
		assert.Equal(t, utf8.RuneCountInString(s), DisplayWidth(s), s)
	}
}

func TestCJKRuneWidthBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, CJKRuneWidth(0x4E00))
	assert.Equal(t, 2, CJKRuneWidth(0x9FFF))
	assert.Equal(t, 1, CJKRuneWidth(0x4DFF))
	assert.Equal(t, 1, CJKRuneWidth(0xA000))

	for r := rune(0x4E00); r <= 0x9FFF; r += 0x101 {
		assert.Equal(t, 2, DisplayWidth(string(r)), "rune %U", r)
	}
}

func TestWideLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, Wide.StringWidth("한국"))
	assert.Equal(t, 4, Wide.StringWidth("中文"))
	assert.Equal(t, 4, Wide.StringWidth("ＡＢ"))
	// Combining marks still take a column.
	assert.Equal(t, 2, Wide.StringWidth("e\u0301"))
}

func TestZeroLayoutUsesCJKWidths(t *testing.T) {
	t.Parallel()

	var l Layout
	assert.Equal(t, 8, l.StringWidth("中文word"))
	assert.Equal(t, 1, l.StringWidth("한"))
}
