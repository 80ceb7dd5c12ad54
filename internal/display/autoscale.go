package display

import (
	"math"
	"unicode/utf8"
)

// FillRatio is the share of the container's width and height the time
// block may occupy.
const FillRatio = 0.8

// Fit returns the factor that scales natural to fill FillRatio of
// container on its tighter axis. It reports false when any
// measurement is empty or the result is not finite; the caller should
// keep its previous scale.
func Fit(natural, container Size) (float64, bool) {
	availableWidth := float64(container.Width) * FillRatio
	availableHeight := float64(container.Height) * FillRatio
	if availableWidth <= 0 || availableHeight <= 0 {
		return 0, false
	}
	if natural.Width <= 0 || natural.Height <= 0 {
		return 0, false
	}

	scale := math.Min(availableWidth/float64(natural.Width), availableHeight/float64(natural.Height))
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return 0, false
	}
	return scale, true
}

// Autoscaler tracks the container size and the current text, and
// rescales only when one of them changes what fits.
type Autoscaler struct {
	container Size
	text      string
	glyphs    []Glyph
	natural   Size
	scale     float64
	fitted    bool
}

// Observe records a new container size. It reports whether the scale
// changed.
func (a *Autoscaler) Observe(width, height int) bool {
	size := Size{Width: width, Height: height}
	if size == a.container {
		return false
	}
	a.container = size
	return a.rescale()
}

// SetText records the text to display. The scale is recomputed only
// when the text's natural size differs from the previous one, as when
// a sign appears or the minutes grow a digit.
func (a *Autoscaler) SetText(s string) bool {
	if s == a.text {
		return false
	}
	a.text = s
	a.glyphs = Glyphs(s)
	natural := Measure(a.glyphs)
	if natural == a.natural {
		return false
	}
	a.natural = natural
	return a.rescale()
}

func (a *Autoscaler) rescale() bool {
	scale, ok := Fit(a.natural, a.container)
	if !ok || (a.fitted && scale == a.scale) {
		return false
	}
	a.scale = scale
	a.fitted = true
	return true
}

// Scale is the last successfully fitted factor, zero before the first
// fit.
func (a *Autoscaler) Scale() float64 { return a.scale }

// CellScale is the integer scale the block font is painted at. Zero
// means the block font does not fit and the text is shown compact.
func (a *Autoscaler) CellScale() int {
	return int(math.Floor(a.scale))
}

func (a *Autoscaler) Container() Size { return a.container }

// Block renders the current text. Below cell scale 1 it returns the
// plain text on a single line, or nothing when even that line would
// overflow the measured container's fill box.
func (a *Autoscaler) Block(paint Painter) []string {
	if cell := a.CellScale(); cell >= 1 {
		return Render(a.glyphs, cell, paint)
	}
	if !a.compactFits() {
		return nil
	}
	if paint == nil {
		return []string{a.text}
	}
	var line string
	for _, g := range a.glyphs {
		line += paint(g, string(g.Char))
	}
	return []string{line}
}

// BlockSize is the size Block would occupy, unstyled.
func (a *Autoscaler) BlockSize() Size {
	if cell := a.CellScale(); cell >= 1 {
		return Size{Width: a.natural.Width * cell, Height: a.natural.Height * cell}
	}
	if !a.compactFits() {
		return Size{}
	}
	return a.compactSize()
}

func (a *Autoscaler) compactSize() Size {
	return Size{Width: utf8.RuneCountInString(a.text), Height: 1}
}

// compactFits holds while no container has been measured, since there
// is no box to respect yet.
func (a *Autoscaler) compactFits() bool {
	if a.text == "" {
		return false
	}
	if a.container.Width <= 0 || a.container.Height <= 0 {
		return true
	}
	scale, ok := Fit(a.compactSize(), a.container)
	return ok && scale >= 1
}
