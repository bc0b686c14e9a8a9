package boxtable

import (
	"slices"

	"github.com/pkg/errors"
)

const (
	// Padding is the margin kept between cell content and the borders.
	Padding = 2
	// ShrinkStep is how much the widest columns lose on each pass.
	ShrinkStep = 4
	// MinColumnWidth leaves room for one wide rune inside the padding.
	MinColumnWidth = Padding + 2
)

// ErrLayout is returned when the columns cannot fit the maximum width.
var ErrLayout = errors.New("layout error")

// Negotiate shrinks column widths until their sum fits maxWidth. The widest
// columns are shaved first, ShrinkStep at a time, and every column tied for
// the maximum shrinks together. A narrow column tied with a wider one can end
// up below its own content width; its content then wraps.
//
// Widths below MinColumnWidth are raised to it. The input is not modified.
func Negotiate(widths []int, maxWidth int) ([]int, error) {
	out := make([]int, len(widths))
	for i, w := range widths {
		out[i] = max(w, MinColumnWidth)
	}
	if len(out) == 0 {
		return out, nil
	}

	if len(out)*MinColumnWidth > maxWidth {
		return nil, errors.Wrapf(ErrLayout, "%d columns need at least %d columns of width, only %d available",
			len(out), len(out)*MinColumnWidth, maxWidth)
	}

	for sum(out) > maxWidth {
		widest := 0
		for _, w := range out {
			if w > MinColumnWidth && w > widest {
				widest = w
			}
		}
		if widest == 0 {
			return nil, errors.Wrapf(ErrLayout, "cannot shrink columns to %d", maxWidth)
		}
		out = shrink(out, widest)
	}

	return out, nil
}

func shrink(widths []int, widest int) []int {
	next := slices.Clone(widths)
	for i, w := range next {
		if w == widest {
			next[i] = max(w-ShrinkStep, MinColumnWidth)
		}
	}
	return next
}

func sum(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}
