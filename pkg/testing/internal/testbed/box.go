package testbed

import (
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// Box returns a definition of a window holding one empty widget of the
// given minimal size, centred on the display.
func Box(class window.Class, width, height int) *window.Definition {
	return &window.Definition{
		Class:  class,
		Policy: window.PolicyMany,
		Parts: []widgets.Part{
			widgets.Intermediate(1, 1),
			widgets.Widget(widgets.KindEmpty, widgets.InvalidNumber, widgets.ColourNone),
			widgets.SetMinimalSize(width, height),
			widgets.EndContainer(),
		},
		Position: window.Centred,
	}
}
