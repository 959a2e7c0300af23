// Package gui implements the main toolbar windows: the top toolbar, the
// bottom status bar and the quit confirmation dialog.
package gui

import (
	"github.com/go-drift/guikit/pkg/game"
	"github.com/go-drift/guikit/pkg/window"
)

// Window classes.
const (
	ClassToolbar       window.Class = "toolbar"
	ClassBottomToolbar window.Class = "bottom-toolbar"
	ClassQuit          window.Class = "quit"
)

// Z bands. Toolbars stay above ordinary windows, dialogs above toolbars.
const (
	priorityToolbar = 10
	priorityDialog  = 20
)

// Actions are the program functions the toolbar buttons trigger. A nil
// action does nothing.
type Actions struct {
	Quit           func()
	ShowSettings   func()
	ShowPathBuild  func()
	ShowRideSelect func()
	ShowTerraform  func()
	ShowFinances   func()
	Save           func()
	Load           func()
}

// GUI ties the toolbar windows to the window manager and the game state
// they display.
type GUI struct {
	Manager  *window.Manager
	Finances *game.Finances
	Clock    *game.Clock
	Actions  Actions

	// dateYear is the year the bottom toolbar's date readout was sized for.
	dateYear int
}

// New creates a GUI. Changes of finances and clock are broadcast to the
// open windows; their OnChange callbacks are replaced.
func New(m *window.Manager, f *game.Finances, c *game.Clock, actions Actions) *GUI {
	g := &GUI{Manager: m, Finances: f, Clock: c, Actions: actions}
	if f != nil {
		f.OnChange = func() { m.NotifyChange(window.ChangeFinances, 0) }
	}
	if c != nil {
		c.OnChange = func() { m.NotifyChange(window.ChangeDate, 0) }
	}
	return g
}

func run(action func()) {
	if action != nil {
		action()
	}
}
