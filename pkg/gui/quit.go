package gui

import (
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// Widget numbers of the quit dialog.
const (
	QuitMessage widgets.Number = iota
	QuitYes
	QuitNo
)

var quitParts = []widgets.Part{
	widgets.Intermediate(0, 1),
	widgets.Intermediate(1, 0),
	widgets.Widget(widgets.KindTitleBar, widgets.InvalidNumber, widgets.ColourRed),
	widgets.SetData(StrQuitCaption, StrTitleBarTip),
	widgets.SetFill(1, 0),
	widgets.Widget(widgets.KindCloseBox, widgets.InvalidNumber, widgets.ColourRed),
	widgets.EndContainer(),
	widgets.Widget(widgets.KindPanel, widgets.InvalidNumber, widgets.ColourRed),
	widgets.Widget(widgets.KindCentredText, QuitMessage, widgets.ColourRed),
	widgets.SetData(StrQuitMessage, language.StrNull),
	widgets.SetPadding(5, 5, 5, 5),
	widgets.Intermediate(1, 5),
	widgets.SetPadding(0, 0, 3, 0),
	widgets.Widget(widgets.KindEmpty, widgets.InvalidNumber, widgets.ColourNone),
	widgets.SetFill(1, 0),
	widgets.Widget(widgets.KindTextPushButton, QuitNo, widgets.ColourYellow),
	widgets.SetData(StrQuitNo, language.StrNull),
	widgets.Widget(widgets.KindEmpty, widgets.InvalidNumber, widgets.ColourNone),
	widgets.SetFill(1, 0),
	widgets.Widget(widgets.KindTextPushButton, QuitYes, widgets.ColourYellow),
	widgets.SetData(StrQuitYes, language.StrNull),
	widgets.Widget(widgets.KindEmpty, widgets.InvalidNumber, widgets.ColourNone),
	widgets.SetFill(1, 0),
	widgets.EndContainer(),
	widgets.EndContainer(),
	widgets.EndContainer(),
}

func (g *GUI) quitDefinition() *window.Definition {
	return &window.Definition{
		Class:    ClassQuit,
		Policy:   window.PolicySingle,
		Priority: priorityDialog,
		Parts:    quitParts,
		Handlers: map[widgets.Number]window.Handlers{
			QuitMessage: {Click: g.closeQuit},
			QuitNo:      {Click: g.closeQuit},
			QuitYes: {Click: func(w *window.Window) {
				run(g.Actions.Quit)
				g.closeQuit(w)
			}},
		},
		Position: window.Centred,
	}
}

// closeQuit dismisses the dialog. Any click on one of its numbered widgets
// answers it.
func (g *GUI) closeQuit(w *window.Window) {
	g.Manager.Close(w)
}

// ShowQuitProgram asks whether the program should stop. An open dialog is
// replaced.
func (g *GUI) ShowQuitProgram() *window.Window {
	return g.Manager.Open(g.quitDefinition())
}
