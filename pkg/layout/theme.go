package layout

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/widgets"
)

// Theme holds the decoration sizes the minimal pass adds around widget
// content. They stand in for the sprite borders a renderer draws.
type Theme struct {
	ButtonBorder   graphics.Padding
	TitleBarBorder graphics.Padding
	PanelBorder    graphics.Padding
	CloseBox       graphics.Size
}

// DefaultTheme returns the decoration sizes of the built-in sprites.
func DefaultTheme() Theme {
	return Theme{
		ButtonBorder:   graphics.Padding{Top: 2, Left: 3, Right: 3, Bottom: 2},
		TitleBarBorder: graphics.Padding{Top: 2, Left: 2, Right: 2, Bottom: 2},
		PanelBorder:    graphics.Padding{Top: 2, Left: 2, Right: 2, Bottom: 2},
		CloseBox:       graphics.Size{Width: 13, Height: 13},
	}
}

// border returns the decoration drawn around the content of kind.
func (t Theme) border(k widgets.Kind) graphics.Padding {
	switch k {
	case widgets.KindTextPushButton:
		return t.ButtonBorder
	case widgets.KindTitleBar:
		return t.TitleBarBorder
	case widgets.KindPanel:
		return t.PanelBorder
	}
	return graphics.Padding{}
}
