package widgets

import (
	"fmt"

	"github.com/go-drift/guikit/pkg/graphics"
)

// Kind is the type of a widget.
type Kind uint8

const (
	// KindEmpty is an invisible spacer.
	KindEmpty Kind = iota
	// KindPanel is a bordered background holding a column of children.
	KindPanel
	// KindTitleBar is a window caption; dragging it moves the window.
	KindTitleBar
	// KindCloseBox closes its window when clicked.
	KindCloseBox
	// KindTextPushButton is a push button with a text label.
	KindTextPushButton
	// KindLeftText is left-aligned text.
	KindLeftText
	// KindCentredText is centred text.
	KindCentredText
	// KindRightText is right-aligned text.
	KindRightText
	// KindGrid is a container created by Intermediate.
	KindGrid
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPanel:
		return "panel"
	case KindTitleBar:
		return "titlebar"
	case KindCloseBox:
		return "closebox"
	case KindTextPushButton:
		return "text_pushbutton"
	case KindLeftText:
		return "left_text"
	case KindCentredText:
		return "centred_text"
	case KindRightText:
		return "right_text"
	case KindGrid:
		return "grid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsContainer reports whether widgets of this kind hold children.
func (k Kind) IsContainer() bool {
	return k == KindGrid || k == KindPanel
}

// HasText reports whether the kind displays its data string.
func (k Kind) HasText() bool {
	switch k {
	case KindTitleBar, KindTextPushButton, KindLeftText, KindCentredText, KindRightText:
		return true
	}
	return false
}

// IsPressable reports whether clicks on the widget are delivered to click
// handlers.
func (k Kind) IsPressable() bool {
	return k == KindTextPushButton || k == KindCloseBox
}

// Number identifies a widget within its window.
type Number int16

// InvalidNumber marks a widget that has no number and cannot be addressed.
const InvalidNumber Number = -1

// ColourRange selects the palette range a widget is drawn with.
type ColourRange uint8

const (
	ColourNone ColourRange = iota
	ColourBrown
	ColourRed
	ColourYellow
	ColourGrey
	ColourGreen
	ColourBlue
)

// String returns a human-readable representation of the colour range.
func (c ColourRange) String() string {
	switch c {
	case ColourNone:
		return "none"
	case ColourBrown:
		return "brown"
	case ColourRed:
		return "red"
	case ColourYellow:
		return "yellow"
	case ColourGrey:
		return "grey"
	case ColourGreen:
		return "green"
	case ColourBlue:
		return "blue"
	default:
		return fmt.Sprintf("ColourRange(%d)", int(c))
	}
}

var baseColours = [...]graphics.Color{
	ColourNone:   graphics.ColorTransparent,
	ColourBrown:  graphics.RGB(0x8b, 0x5a, 0x2b),
	ColourRed:    graphics.RGB(0xb4, 0x2d, 0x2d),
	ColourYellow: graphics.RGB(0xc8, 0xa8, 0x2c),
	ColourGrey:   graphics.RGB(0x8c, 0x8c, 0x8c),
	ColourGreen:  graphics.RGB(0x3c, 0x8c, 0x3c),
	ColourBlue:   graphics.RGB(0x3c, 0x64, 0xb4),
}

// Base returns the middle shade of the range. Unknown ranges and ColourNone
// are transparent.
func (c ColourRange) Base() graphics.Color {
	if int(c) >= len(baseColours) {
		return graphics.ColorTransparent
	}
	return baseColours[c]
}
