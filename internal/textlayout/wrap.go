package textlayout

import (
	"iter"
	"slices"
	"unicode"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for a non-positive wrap width.
var ErrInvalidArgument = errors.New("invalid argument")

// Lines splits text into fragments no wider than width. The sequence is
// computed lazily and can be ranged over once.
//
// A word is never split across two fragments when the fragment holds an
// earlier space to break on; that space is dropped. A single rune wider
// than width is emitted on its own. With wide runes an odd width may leave
// a column unused at the end of a fragment.
func (l Layout) Lines(text string, width int) (iter.Seq[string], error) {
	if width <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "wrap width must be positive, got %d", width)
	}

	return func(yield func(string) bool) {
		if l.StringWidth(text) < width {
			yield(text)
			return
		}

		rest := []rune(text)
		for len(rest) > 0 {
			n := min(width, len(rest))
			for n > 0 && l.runesWidth(rest[:n]) > width {
				n--
			}
			if n == 0 {
				n = 1
			}

			line := rest[:n]
			next := rest[n:]
			if breaksWord(line, next) {
				i := lastSpace(line)
				line = rest[:i]
				next = rest[i+1:]
			}
			rest = next

			if len(line) == 0 {
				continue
			}
			if !yield(string(line)) {
				return
			}
		}
	}, nil
}

// Wrap is Lines collected into a slice.
func (l Layout) Wrap(text string, width int) ([]string, error) {
	seq, err := l.Lines(text, width)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Wrap splits text with the default layout.
func Wrap(text string, width int) ([]string, error) {
	return Default.Wrap(text, width)
}

// breaksWord reports whether the boundary between line and next falls
// inside a word that could have been moved to the next line whole.
func breaksWord(line, next []rune) bool {
	if len(line) == 0 || len(next) == 0 {
		return false
	}
	return unicode.IsLetter(line[len(line)-1]) &&
		unicode.IsLetter(next[0]) &&
		lastSpace(line) >= 0
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}
