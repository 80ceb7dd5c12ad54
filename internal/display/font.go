package display

import "strings"

const (
	// fontRows is the bitmap height of every glyph.
	fontRows = 5
	// cellColumns is how many terminal columns one bitmap column takes
	// at scale 1; terminal cells are roughly twice as tall as wide.
	cellColumns = 2
	// glyphGap is the number of blank bitmap columns between glyphs.
	glyphGap = 1

	fill  = "█"
	blank = " "
)

var font = map[rune][fontRows]string{
	'0': {"#####", "#   #", "#   #", "#   #", "#####"},
	'1': {"  #  ", " ##  ", "  #  ", "  #  ", " ### "},
	'2': {"#####", "    #", "#####", "#    ", "#####"},
	'3': {"#####", "    #", " ####", "    #", "#####"},
	'4': {"#   #", "#   #", "#####", "    #", "    #"},
	'5': {"#####", "#    ", "#####", "    #", "#####"},
	'6': {"#####", "#    ", "#####", "#   #", "#####"},
	'7': {"#####", "    #", "   # ", "  #  ", "  #  "},
	'8': {"#####", "#   #", "#####", "#   #", "#####"},
	'9': {"#####", "#   #", "#####", "    #", "#####"},
	':': {" ", "#", " ", "#", " "},
	'-': {"   ", "   ", "###", "   ", "   "},
}

var unknownGlyph = [fontRows]string{"   ", "   ", "   ", "   ", "   "}

func bitmap(r rune) [fontRows]string {
	if b, ok := font[r]; ok {
		return b
	}
	return unknownGlyph
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Measure returns the unscaled size of the glyphs in the block font.
func Measure(glyphs []Glyph) Size {
	if len(glyphs) == 0 {
		return Size{}
	}
	cols := 0
	for _, g := range glyphs {
		cols += len(bitmap(g.Char)[0])
	}
	cols += glyphGap * (len(glyphs) - 1)
	return Size{Width: cols * cellColumns, Height: fontRows}
}

// Painter styles the cells of one glyph on one row. A nil Painter
// leaves the cells unstyled.
type Painter func(g Glyph, cells string) string

// Render paints the glyphs in the block font at an integer scale and
// returns one string per terminal row. A scale below 1 renders nothing.
func Render(glyphs []Glyph, scale int, paint Painter) []string {
	if scale < 1 || len(glyphs) == 0 {
		return nil
	}

	lines := make([]string, 0, fontRows*scale)
	gap := strings.Repeat(blank, glyphGap*cellColumns*scale)
	for row := range fontRows {
		var sb strings.Builder
		for i, g := range glyphs {
			if i > 0 {
				sb.WriteString(gap)
			}
			var cells strings.Builder
			for _, cell := range bitmap(g.Char)[row] {
				px := blank
				if cell == '#' {
					px = fill
				}
				cells.WriteString(strings.Repeat(px, cellColumns*scale))
			}
			if paint != nil {
				sb.WriteString(paint(g, cells.String()))
			} else {
				sb.WriteString(cells.String())
			}
		}
		line := sb.String()
		for range scale {
			lines = append(lines, line)
		}
	}
	return lines
}
