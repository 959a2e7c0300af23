package gui

import (
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// Widget numbers of the toolbar.
const (
	ToolbarQuit widgets.Number = iota
	ToolbarSettings
	ToolbarPaths
	ToolbarSave
	ToolbarLoad
	ToolbarRideSelect
	ToolbarTerraform
	ToolbarFinances
)

var toolbarParts = []widgets.Part{
	widgets.Intermediate(1, 0),
	widgets.Widget(widgets.KindTextPushButton, ToolbarQuit, widgets.ColourBrown),
	widgets.SetData(StrToolbarQuit, StrTooltipQuit),
	widgets.Widget(widgets.KindTextPushButton, ToolbarSettings, widgets.ColourBrown),
	widgets.SetData(StrToolbarSettings, StrTooltipSettings),
	widgets.Widget(widgets.KindTextPushButton, ToolbarPaths, widgets.ColourBrown),
	widgets.SetData(StrToolbarPaths, StrTooltipPaths),
	widgets.Widget(widgets.KindTextPushButton, ToolbarSave, widgets.ColourBrown),
	widgets.SetData(StrToolbarSave, StrTooltipSave),
	widgets.Widget(widgets.KindTextPushButton, ToolbarLoad, widgets.ColourBrown),
	widgets.SetData(StrToolbarLoad, StrTooltipLoad),
	widgets.Widget(widgets.KindTextPushButton, ToolbarRideSelect, widgets.ColourBrown),
	widgets.SetData(StrToolbarRideSelect, StrTooltipRideSelect),
	widgets.Widget(widgets.KindTextPushButton, ToolbarTerraform, widgets.ColourBrown),
	widgets.SetData(StrToolbarTerraform, StrTooltipTerraform),
	widgets.Widget(widgets.KindTextPushButton, ToolbarFinances, widgets.ColourBrown),
	widgets.SetData(StrToolbarFinances, StrTooltipFinances),
	widgets.EndContainer(),
}

func (g *GUI) toolbarDefinition() *window.Definition {
	click := func(action func()) window.Handlers {
		return window.Handlers{Click: func(*window.Window) { run(action) }}
	}
	return &window.Definition{
		Class:    ClassToolbar,
		Policy:   window.PolicySingle,
		Priority: priorityToolbar,
		Parts:    toolbarParts,
		Handlers: map[widgets.Number]window.Handlers{
			ToolbarQuit:       {Click: func(*window.Window) { g.ShowQuitProgram() }},
			ToolbarSettings:   click(g.Actions.ShowSettings),
			ToolbarPaths:      click(g.Actions.ShowPathBuild),
			ToolbarSave:       click(g.Actions.Save),
			ToolbarLoad:       click(g.Actions.Load),
			ToolbarRideSelect: click(g.Actions.ShowRideSelect),
			ToolbarTerraform:  click(g.Actions.ShowTerraform),
			ToolbarFinances:   click(g.Actions.ShowFinances),
		},
		Position: window.PinAt(10, 0),
	}
}

// ShowToolbar opens the main toolbar, replacing an open one.
func (g *GUI) ShowToolbar() *window.Window {
	return g.Manager.Open(g.toolbarDefinition())
}
