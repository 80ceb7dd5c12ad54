package display

import "time"

type GlyphKind int

const (
	Other GlyphKind = iota
	Digit
	Colon
	Minus
)

func (k GlyphKind) String() string {
	switch k {
	case Digit:
		return "digit"
	case Colon:
		return "colon"
	case Minus:
		return "minus"
	default:
		return "other"
	}
}

// Glyph is one character of the formatted time, tagged for styling.
type Glyph struct {
	Char rune
	Kind GlyphKind
}

// Glyphs labels every character of s, preserving order.
func Glyphs(s string) []Glyph {
	glyphs := make([]Glyph, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, Glyph{Char: r, Kind: kindOf(r)})
	}
	return glyphs
}

func kindOf(r rune) GlyphKind {
	switch {
	case r >= '0' && r <= '9':
		return Digit
	case r == ':':
		return Colon
	case r == '-':
		return Minus
	default:
		return Other
	}
}

// State selects the visual treatment of the whole widget.
type State int

const (
	Normal State = iota
	Warning
	Overtime
)

func (s State) String() string {
	switch s {
	case Warning:
		return "warning"
	case Overtime:
		return "overtime"
	default:
		return "normal"
	}
}

// Classify picks the state for a displayed value. The warning window
// includes both zero and the threshold itself.
func Classify(displayed, warning time.Duration) State {
	switch {
	case displayed < 0:
		return Overtime
	case displayed <= warning:
		return Warning
	default:
		return Normal
	}
}
