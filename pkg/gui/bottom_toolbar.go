package gui

import (
	"github.com/go-drift/guikit/pkg/game"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// Widget numbers of the bottom toolbar.
const (
	BottomStatus widgets.Number = iota
	BottomSpacing
	BottomDate
)

const (
	// BottomBarHeight is the minimal height of the bottom toolbar panels.
	BottomBarHeight = 35
	// BottomBarPositionX separates the bottom toolbar from the display edges.
	BottomBarPositionX = 75
)

var bottomToolbarParts = []widgets.Part{
	widgets.Intermediate(0, 1),
	widgets.Widget(widgets.KindPanel, widgets.InvalidNumber, widgets.ColourBrown),
	widgets.Intermediate(1, 0),
	widgets.SetPadding(0, 3, 0, 3),
	widgets.Widget(widgets.KindLeftText, BottomStatus, widgets.ColourBrown),
	widgets.SetMinimalSize(1, BottomBarHeight),
	widgets.SetPadding(3, 0, 30, 0),
	widgets.SetData(language.StrArg1, language.StrNull),
	widgets.Widget(widgets.KindEmpty, BottomSpacing, widgets.ColourBrown),
	widgets.SetMinimalSize(1, BottomBarHeight),
	widgets.Widget(widgets.KindRightText, BottomDate, widgets.ColourBrown),
	widgets.SetMinimalSize(1, BottomBarHeight),
	widgets.SetPadding(3, 0, 30, 0),
	widgets.SetData(language.StrArg1, language.StrNull),
	widgets.EndContainer(),
	widgets.EndContainer(),
	widgets.EndContainer(),
}

func (g *GUI) moneySize(env *window.Env) graphics.Size {
	return game.MoneySize(env.Measurer, env.Strings, game.LargeMoneyAmount)
}

// dateSize reserves room for the widest date of the current year and
// remembers the year so a new year can trigger a relayout.
func (g *GUI) dateSize(env *window.Env) graphics.Size {
	g.dateYear = g.currentYear()
	return game.MaxDateSize(env.Measurer, env.Strings, g.dateYear)
}

func (g *GUI) currentYear() int {
	if g.Clock != nil {
		return g.Clock.Today().Year
	}
	return game.StartDate.Year
}

func (g *GUI) bottomToolbarDefinition() *window.Definition {
	return &window.Definition{
		Class:    ClassBottomToolbar,
		Policy:   window.PolicySingle,
		Priority: priorityToolbar,
		Parts:    bottomToolbarParts,
		Handlers: map[widgets.Number]window.Handlers{
			BottomStatus: {
				StringParams: func(_ *window.Window, p *language.Params) {
					if g.Finances != nil {
						g.Finances.CashToStrParams(p)
					}
				},
				UpdateSize: func(w *window.Window, n *layout.Node) {
					n.RaiseMin(g.moneySize(w.Env()))
				},
			},
			BottomSpacing: {
				UpdateSize: func(w *window.Window, n *layout.Node) {
					env := w.Env()
					width := env.DisplaySize().Width - 2*BottomBarPositionX -
						g.moneySize(env).Width - g.dateSize(env).Width
					n.RaiseMin(graphics.Size{Width: width, Height: BottomBarHeight})
				},
			},
			BottomDate: {
				StringParams: func(_ *window.Window, p *language.Params) {
					if g.Clock != nil {
						g.Clock.SetDate(p, 1)
					}
				},
				UpdateSize: func(w *window.Window, n *layout.Node) {
					n.RaiseMin(g.dateSize(w.Env()))
				},
			},
		},
		OnChange: func(w *window.Window, code window.ChangeCode, _ uint32) {
			switch code {
			case window.ChangeDisplaySize:
				w.RequestRelayout()
			case window.ChangeDate:
				if g.currentYear() != g.dateYear {
					w.RequestRelayout()
				}
				w.MarkDirty()
			case window.ChangeDisplayOld, window.ChangeFinances:
				w.MarkDirty()
			}
		},
		Position: window.PinBottom(BottomBarPositionX, BottomBarHeight),
	}
}

// ShowBottomToolbar opens the status bar at the bottom of the display,
// replacing an open one.
func (g *GUI) ShowBottomToolbar() *window.Window {
	return g.Manager.Open(g.bottomToolbarDefinition())
}
