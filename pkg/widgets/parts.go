package widgets

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
)

type partType uint8

const (
	partWidget partType = iota
	partIntermediate
	partEndContainer
	partData
	partPadding
	partFill
	partResize
	partMinSize
)

func (t partType) String() string {
	switch t {
	case partWidget:
		return "Widget"
	case partIntermediate:
		return "Intermediate"
	case partEndContainer:
		return "EndContainer"
	case partData:
		return "SetData"
	case partPadding:
		return "SetPadding"
	case partFill:
		return "SetFill"
	case partResize:
		return "SetResize"
	case partMinSize:
		return "SetMinimalSize"
	default:
		return "unknown part"
	}
}

func (t partType) isModifier() bool {
	return t >= partData
}

// Part is one entry of a widget table. Parts are created with the functions
// below and are only meaningful inside a table passed to Build.
type Part struct {
	typ     partType
	kind    Kind
	number  Number
	colour  ColourRange
	rows    int
	cols    int
	text    language.StringID
	tooltip language.StringID
	padding graphics.Padding
	x, y    int
}

// Widget declares a widget. A panel opens a scope that must be closed with
// EndContainer; every other kind is a leaf.
func Widget(kind Kind, number Number, colour ColourRange) Part {
	return Part{typ: partWidget, kind: kind, number: number, colour: colour}
}

// Intermediate opens a grid container with the given number of rows and
// columns. A zero count marks the free dimension that grows with the number
// of children; at least one count must be non-zero.
func Intermediate(rows, cols int) Part {
	return Part{typ: partIntermediate, kind: KindGrid, number: InvalidNumber, rows: rows, cols: cols}
}

// EndContainer closes the innermost open container.
func EndContainer() Part {
	return Part{typ: partEndContainer}
}

// SetData sets the displayed string and the tooltip string.
func SetData(text, tooltip language.StringID) Part {
	return Part{typ: partData, text: text, tooltip: tooltip}
}

// SetPadding sets the space around the widget's content.
func SetPadding(top, left, right, bottom int) Part {
	return Part{typ: partPadding, padding: graphics.Padding{Top: top, Left: left, Right: right, Bottom: bottom}}
}

// SetFill sets the stretch weights along each axis. Zero means the widget
// never grows beyond its minimal size along that axis.
func SetFill(x, y int) Part {
	return Part{typ: partFill, x: x, y: y}
}

// SetResize sets the step sizes along each axis; growth is rounded down to
// a multiple of the step. Zero or one means any size.
func SetResize(x, y int) Part {
	return Part{typ: partResize, x: x, y: y}
}

// SetMinimalSize sets an explicit minimal content size.
func SetMinimalSize(x, y int) Part {
	return Part{typ: partMinSize, x: x, y: y}
}
