package boxtable

// Charset is the set of box-drawing glyphs used for borders.
type Charset struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopMid      string
	TopRight    string
	MidLeft     string
	Cross       string
	MidRight    string
	BottomLeft  string
	BottomMid   string
	BottomRight string
}

var (
	SingleLine = Charset{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "┌",
		TopMid:      "┬",
		TopRight:    "┐",
		MidLeft:     "├",
		Cross:       "┼",
		MidRight:    "┤",
		BottomLeft:  "└",
		BottomMid:   "┴",
		BottomRight: "┘",
	}

	DoubleLine = Charset{
		Horizontal:  "═",
		Vertical:    "║",
		TopLeft:     "╔",
		TopMid:      "╦",
		TopRight:    "╗",
		MidLeft:     "╠",
		Cross:       "╬",
		MidRight:    "╣",
		BottomLeft:  "╚",
		BottomMid:   "╩",
		BottomRight: "╝",
	}

	Rounded = Charset{
		Horizontal:  "─",
		Vertical:    "│",
		TopLeft:     "╭",
		TopMid:      "┬",
		TopRight:    "╮",
		MidLeft:     "├",
		Cross:       "┼",
		MidRight:    "┤",
		BottomLeft:  "╰",
		BottomMid:   "┴",
		BottomRight: "╯",
	}
)

// CharsetByName returns the charset for "single", "double" or "rounded".
func CharsetByName(name string) (Charset, bool) {
	switch name {
	case "", "single":
		return SingleLine, true
	case "double":
		return DoubleLine, true
	case "rounded":
		return Rounded, true
	default:
		return Charset{}, false
	}
}
