// Package text measures strings for layout.
//
// Measurement is the only text concern of the layout engine: glyph
// rasterization happens elsewhere. Two measurers are provided, one backed by
// an x/image font face for pixel surfaces and one counting terminal cells.
package text

import (
	"strings"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer reports the bounding box of a string as it would be drawn.
type Measurer interface {
	Measure(s string) graphics.Size
}

// FontMeasurer measures strings with a font face. Multi-line strings are
// measured line by line: width is the widest line, height the sum of line
// heights.
type FontMeasurer struct {
	face       font.Face
	lineHeight int
}

// NewFontMeasurer wraps face. A nil face selects basicfont.Face7x13.
func NewFontMeasurer(face font.Face) *FontMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FontMeasurer{
		face:       face,
		lineHeight: face.Metrics().Height.Ceil(),
	}
}

// Measure implements Measurer.
func (m *FontMeasurer) Measure(s string) graphics.Size {
	if s == "" {
		return graphics.Size{}
	}
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(m.face, line).Ceil())
	}
	return graphics.Size{Width: width, Height: m.lineHeight * len(lines)}
}

// LineHeight returns the height of one line of text.
func (m *FontMeasurer) LineHeight() int {
	return m.lineHeight
}

// CellMeasurer measures strings in terminal cells scaled by a cell size.
// Wide (east asian) runes occupy two cells.
type CellMeasurer struct {
	CellWidth  int
	CellHeight int
}

// Measure implements Measurer.
func (m CellMeasurer) Measure(s string) graphics.Size {
	if s == "" {
		return graphics.Size{}
	}
	cw, ch := max(m.CellWidth, 1), max(m.CellHeight, 1)
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return graphics.Size{Width: width * cw, Height: len(lines) * ch}
}

// Widest returns the largest size among the measured candidates, taking the
// maximum of each axis independently. It is used to reserve space for
// content that changes at runtime.
func Widest(m Measurer, candidates ...string) graphics.Size {
	var out graphics.Size
	for _, c := range candidates {
		out = out.Max(m.Measure(c))
	}
	return out
}
