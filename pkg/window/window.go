// Package window instantiates widget tables as windows and manages the set
// of live windows.
//
// A Definition describes a class of window: its widget table, the handlers
// attached to numbered widgets, how it reacts to broadcast changes and where
// it is placed. The Manager opens windows from definitions, keeps them in
// z-order, routes input to the topmost hit widget and collects the screen
// regions that need redrawing.
//
// Closing a window is safe from inside any of its own handlers: the window
// disappears from lookups and hit tests at once, but its tree is released
// only after the outermost dispatch returns.
package window

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/widgets"
)

// Class tags windows of the same kind.
type Class string

// Policy controls how many windows of a class may be open.
type Policy uint8

const (
	// PolicySingle closes any open window of the class before a new one
	// opens.
	PolicySingle Policy = iota
	// PolicyMany allows any number of windows of the class.
	PolicyMany
)

// Handlers are the callbacks attached to one numbered widget. A nil field
// means the widget does not provide that capability.
type Handlers struct {
	// StringParams fills the dynamic arguments of the widget's text. It runs
	// before the widget is measured or its text is formatted.
	StringParams func(w *Window, params *language.Params)
	// UpdateSize may raise the widget's minimal size with Node.RaiseMin.
	UpdateSize func(w *Window, n *layout.Node)
	// Click runs when the widget is clicked.
	Click func(w *Window)
}

// Definition describes a class of window.
type Definition struct {
	Class  Class
	Policy Policy
	// Priority is the z band. Windows of a higher band always stay above
	// windows of a lower one; within a band the last raised is on top.
	Priority int
	Parts    []widgets.Part
	Handlers map[widgets.Number]Handlers

	// OnChange receives broadcast changes.
	OnChange func(w *Window, code ChangeCode, param uint32)
	// Position places the window after each layout. Nil means the origin.
	Position PositionFunc
	// OnClose runs when the window is released.
	OnClose func(w *Window)
}

// Window is a live instance of a Definition.
type Window struct {
	def  *Definition
	mgr  *Manager
	root *layout.Node

	rect  graphics.Rect
	slack graphics.Size

	closed bool
	// moved is set once the user dragged the window; its position policy is
	// no longer consulted.
	moved bool
}

// Class returns the window class.
func (w *Window) Class() Class { return w.def.Class }

// Definition returns the definition the window was opened from.
func (w *Window) Definition() *Definition { return w.def }

// Manager returns the owning manager.
func (w *Window) Manager() *Manager { return w.mgr }

// Env returns the environment of the owning manager.
func (w *Window) Env() *Env { return &w.mgr.env }

// Rect returns the window rectangle in display coordinates.
func (w *Window) Rect() graphics.Rect { return w.rect }

// Root returns the root of the widget instance tree.
func (w *Window) Root() *layout.Node { return w.root }

// Slack returns the surplus the last layout could not hand to any widget.
func (w *Window) Slack() graphics.Size { return w.slack }

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool { return w.closed }

// Node returns the widget instance with the given number, or nil.
func (w *Window) Node(number widgets.Number) *layout.Node {
	if w.root == nil {
		return nil
	}
	return w.root.Find(number)
}

// WidgetRect returns the rectangle of a numbered widget in display
// coordinates, or an empty rectangle if there is no such widget.
func (w *Window) WidgetRect(number widgets.Number) graphics.Rect {
	n := w.Node(number)
	if n == nil {
		return graphics.Rect{}
	}
	return n.Rect().Translate(w.rect.X, w.rect.Y)
}

// MarkDirty schedules the window for redraw.
func (w *Window) MarkDirty() {
	if w.closed {
		return
	}
	w.mgr.pipeline.SchedulePaint(w)
}

// RequestRelayout schedules the window for layout and repositioning. The
// manager performs it when it next flushes.
func (w *Window) RequestRelayout() {
	if w.closed {
		return
	}
	w.mgr.pipeline.ScheduleLayout(w)
}

// SetWidgetStringParameters refreshes the dynamic arguments of a numbered
// widget from its StringParams handler.
func (w *Window) SetWidgetStringParameters(number widgets.Number) {
	n := w.Node(number)
	if n == nil {
		return
	}
	n.Params.Reset()
	w.StringParams(number, &n.Params)
}

// Text returns the formatted text of a numbered widget with fresh
// arguments.
func (w *Window) Text(number widgets.Number) string {
	n := w.Node(number)
	if n == nil || w.mgr.env.Strings == nil {
		return ""
	}
	w.SetWidgetStringParameters(number)
	return w.mgr.env.Strings.Format(n.Desc.Text, &n.Params)
}

// StringParams implements layout.SizeHooks.
func (w *Window) StringParams(number widgets.Number, params *language.Params) {
	if h, ok := w.def.Handlers[number]; ok && h.StringParams != nil {
		w.mgr.call("window.Window.StringParams", w, func() { h.StringParams(w, params) })
	}
}

// UpdateSize implements layout.SizeHooks.
func (w *Window) UpdateSize(number widgets.Number, n *layout.Node) {
	if h, ok := w.def.Handlers[number]; ok && h.UpdateSize != nil {
		w.mgr.call("window.Window.UpdateSize", w, func() { h.UpdateSize(w, n) })
	}
}

// PerformLayout implements layout.Client. It lays the tree out at its
// minimal size and places the window again.
func (w *Window) PerformLayout() {
	if w.closed {
		return
	}
	old := w.rect
	w.layout()
	w.place()
	if old != w.rect {
		w.mgr.markRect(old)
	}
}

// Relayout lays the window out immediately.
func (w *Window) Relayout() {
	w.mgr.pipeline.Forget(w)
	w.PerformLayout()
	w.mgr.markRect(w.rect)
}

// layout runs as one dispatch so windows closed by size hooks are released
// only after the tree is laid out.
func (w *Window) layout() {
	w.mgr.enter()
	defer w.mgr.leave()
	eng := w.mgr.engine
	size := eng.Minimal(w.root, w)
	w.slack = eng.Distribute(w.root, graphics.Rect{Width: size.Width, Height: size.Height})
	w.rect.Width, w.rect.Height = w.root.Size.Width, w.root.Size.Height
}

func (w *Window) place() {
	if w.moved || w.def.Position == nil {
		return
	}
	p := w.def.Position(&w.mgr.env, w.rect.Size())
	w.rect.X, w.rect.Y = p.X, p.Y
}

// widgetAt returns the widget under p, given in display coordinates.
func (w *Window) widgetAt(p graphics.Point) *layout.Node {
	if w.root == nil {
		return nil
	}
	return w.root.HitTest(p.Sub(w.rect.Origin()))
}
