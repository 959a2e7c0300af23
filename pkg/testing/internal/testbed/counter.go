// Package testbed provides window definitions for testing the test harness.
package testbed

import (
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// String ids used by the testbed windows.
const (
	StrCount = language.FirstUserString + iota
	StrCaption
)

// Widget numbers of the counter window.
const (
	CounterButton widgets.Number = iota
)

// Strings returns an English table with the testbed strings.
func Strings() *language.Table {
	lang := language.English()
	lang.Strings[StrCount] = "{1}"
	lang.Strings[StrCaption] = "Counter"
	return language.NewTable(lang)
}

// Counter is a window with a titlebar and a button that shows a count and
// increments it on click.
type Counter struct {
	Count int
	OnTap func(count int)
}

// Definition returns the window definition of c.
func (c *Counter) Definition() *window.Definition {
	return &window.Definition{
		Class:  "counter",
		Policy: window.PolicySingle,
		Parts: []widgets.Part{
			widgets.Intermediate(0, 1),
			widgets.Widget(widgets.KindTitleBar, widgets.InvalidNumber, widgets.ColourGrey),
			widgets.SetData(StrCaption, language.StrNull),
			widgets.Widget(widgets.KindTextPushButton, CounterButton, widgets.ColourGrey),
			widgets.SetData(StrCount, language.StrNull),
			widgets.SetFill(1, 0),
			widgets.EndContainer(),
		},
		Handlers: map[widgets.Number]window.Handlers{
			CounterButton: {
				StringParams: func(_ *window.Window, p *language.Params) {
					p.SetNumber(1, int64(c.Count))
				},
				Click: func(w *window.Window) {
					c.Count++
					if c.OnTap != nil {
						c.OnTap(c.Count)
					}
					w.RequestRelayout()
				},
			},
		},
		Position: window.PinAt(10, 20),
	}
}
