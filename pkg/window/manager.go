package window

import (
	"fmt"

	"github.com/go-drift/guikit/pkg/errors"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/widgets"
)

// Manager owns the live windows.
//
// The manager is not safe for concurrent use; like the rest of the window
// system it runs on the UI thread.
type Manager struct {
	env      Env
	engine   *layout.Engine
	pipeline layout.PipelineOwner

	// windows is ordered bottom to top. Closed windows stay here, hidden,
	// until they are released.
	windows []*Window
	pending []*Window
	depth   int

	dirty []graphics.Rect
	drag  *dragState
}

type dragState struct {
	w      *Window
	offset graphics.Point
}

// NewManager creates a manager for env. A zero Theme selects
// layout.DefaultTheme.
func NewManager(env Env) *Manager {
	if env.Theme == (layout.Theme{}) {
		env.Theme = layout.DefaultTheme()
	}
	eng := layout.NewEngine(env.Measurer, env.Strings)
	eng.Theme = env.Theme
	return &Manager{env: env, engine: eng}
}

// Env returns the manager's environment.
func (m *Manager) Env() *Env { return &m.env }

// Open creates a window from def, lays it out and places it on top of its
// priority band. For PolicySingle classes any open window of the class is
// closed first. Open panics with a *errors.GuiError if the definition's
// widget table is malformed.
func (m *Manager) Open(def *Definition) *Window {
	root, err := widgets.Build(def.Parts)
	if err == nil {
		err = checkHandlers(root, def.Handlers)
	}
	if err != nil {
		panic(&errors.GuiError{
			Op:     "window.Manager.Open",
			Kind:   errors.KindTable,
			Err:    err,
			Window: string(def.Class),
		})
	}
	if def.Policy == PolicySingle {
		for _, old := range m.live() {
			if old.def.Class == def.Class {
				m.Close(old)
			}
		}
	}

	w := &Window{def: def, mgr: m, root: layout.Instantiate(root)}
	w.layout()
	if w.closed {
		return w
	}
	if d := m.env.DisplaySize(); d != (graphics.Size{}) && (w.rect.Width > d.Width || w.rect.Height > d.Height) {
		errors.Report(&errors.GuiError{
			Op:     "window.Manager.Open",
			Kind:   errors.KindLayout,
			Err:    fmt.Errorf("minimal size %dx%d exceeds the display %dx%d", w.rect.Width, w.rect.Height, d.Width, d.Height),
			Window: string(def.Class),
		})
	}
	w.place()
	m.insert(w)
	m.markRect(w.rect)
	return w
}

func checkHandlers(root *widgets.Descriptor, handlers map[widgets.Number]Handlers) error {
	for number := range handlers {
		if root.Find(number) == nil {
			return &errors.TableError{Index: -1, Reason: fmt.Sprintf("handlers for unknown widget number %d", number)}
		}
	}
	return nil
}

// insert places w at the top of its priority band.
func (m *Manager) insert(w *Window) {
	i := len(m.windows)
	for i > 0 && m.windows[i-1].def.Priority > w.def.Priority {
		i--
	}
	m.windows = append(m.windows, nil)
	copy(m.windows[i+1:], m.windows[i:])
	m.windows[i] = w
}

func (m *Manager) remove(w *Window) {
	for i, x := range m.windows {
		if x == w {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return
		}
	}
}

// live returns the open windows, bottom to top.
func (m *Manager) live() []*Window {
	out := make([]*Window, 0, len(m.windows))
	for _, w := range m.windows {
		if !w.closed {
			out = append(out, w)
		}
	}
	return out
}

// Windows returns the open windows ordered bottom to top.
func (m *Manager) Windows() []*Window {
	return m.live()
}

// Find returns the topmost open window of class, or nil.
func (m *Manager) Find(class Class) *Window {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if w := m.windows[i]; !w.closed && w.def.Class == class {
			return w
		}
	}
	return nil
}

// Count returns the number of open windows of class.
func (m *Manager) Count(class Class) int {
	n := 0
	for _, w := range m.windows {
		if !w.closed && w.def.Class == class {
			n++
		}
	}
	return n
}

// Close closes w. The window stops receiving input and disappears from
// lookups immediately; it is released once no dispatch is running. Closing
// a closed window does nothing. A window of another manager is reported
// and left open.
func (m *Manager) Close(w *Window) {
	if w == nil || w.closed {
		return
	}
	if w.mgr != m {
		errors.Report(&errors.GuiError{
			Op:     "window.Manager.Close",
			Kind:   errors.KindDispatch,
			Err:    fmt.Errorf("window belongs to another manager"),
			Window: string(w.def.Class),
		})
		return
	}
	w.closed = true
	m.markRect(w.rect)
	m.pipeline.Forget(w)
	if m.drag != nil && m.drag.w == w {
		m.drag = nil
	}
	if m.depth > 0 {
		m.pending = append(m.pending, w)
		return
	}
	m.release(w)
}

func (m *Manager) release(w *Window) {
	m.remove(w)
	if w.def.OnClose != nil {
		m.call("window.Manager.Close", w, func() { w.def.OnClose(w) })
	}
	w.root.Release()
	w.root = nil
}

// Pending returns the number of closed windows awaiting release.
func (m *Manager) Pending() int { return len(m.pending) }

// Raise moves w to the top of its priority band.
func (m *Manager) Raise(w *Window) {
	if w == nil || w.closed {
		return
	}
	m.remove(w)
	m.insert(w)
	m.markRect(w.rect)
}

// enter and leave bracket a dispatch. Windows closed inside are released
// when the outermost dispatch leaves.
func (m *Manager) enter() { m.depth++ }

func (m *Manager) leave() {
	m.depth--
	if m.depth > 0 {
		return
	}
	for len(m.pending) > 0 {
		pending := m.pending
		m.pending = nil
		m.depth++
		for _, w := range pending {
			m.release(w)
		}
		m.depth--
	}
}

// call runs a handler of w inside a dispatch. A panic is reported with the
// window's class instead of propagating, and the window is redrawn since
// the handler may have left it half updated.
func (m *Manager) call(op string, w *Window, fn func()) {
	m.enter()
	defer m.leave()
	defer errors.RecoverWindow(op, string(w.def.Class), func(*errors.PanicError) { w.MarkDirty() })
	fn()
}

// windowAt returns the topmost open window containing p.
func (m *Manager) windowAt(p graphics.Point) *Window {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if w := m.windows[i]; !w.closed && w.rect.Contains(p) {
			return w
		}
	}
	return nil
}

// target returns the node that handles input at p within w: the deepest
// numbered widget or closebox under p.
func target(w *Window, p graphics.Point) *layout.Node {
	for n := w.widgetAt(p); n != nil; n = n.Parent() {
		if n.Number() != widgets.InvalidNumber || n.Kind() == widgets.KindCloseBox {
			return n
		}
	}
	return nil
}

// HandleClick routes a click at p to the topmost window containing it. A
// closebox closes its window; otherwise the Click handler of the deepest
// numbered widget runs. At most one handler runs per click. It reports
// whether a window was hit.
func (m *Manager) HandleClick(p graphics.Point) bool {
	w := m.windowAt(p)
	if w == nil {
		return false
	}
	m.Raise(w)
	n := target(w, p)
	switch {
	case n == nil:
	case n.Kind() == widgets.KindCloseBox:
		m.Close(w)
	default:
		if h := w.def.Handlers[n.Number()]; h.Click != nil {
			m.call("window.Manager.HandleClick", w, func() { h.Click(w) })
		}
	}
	m.Flush()
	return true
}

// PointerDown raises the window under p and starts dragging it if p is on
// its titlebar. It reports whether a window was hit.
func (m *Manager) PointerDown(p graphics.Point) bool {
	w := m.windowAt(p)
	if w == nil {
		return false
	}
	m.Raise(w)
	if n := w.widgetAt(p); n != nil && n.Kind() == widgets.KindTitleBar {
		m.drag = &dragState{w: w, offset: p.Sub(w.rect.Origin())}
	}
	return true
}

// PointerMove moves the dragged window, if any, so it follows p.
func (m *Manager) PointerMove(p graphics.Point) {
	if m.drag == nil {
		return
	}
	w := m.drag.w
	origin := p.Sub(m.drag.offset)
	if origin == w.rect.Origin() {
		return
	}
	m.markRect(w.rect)
	w.rect.X, w.rect.Y = origin.X, origin.Y
	w.moved = true
	m.markRect(w.rect)
}

// PointerUp ends a drag.
func (m *Manager) PointerUp(graphics.Point) {
	m.drag = nil
}

// Dragging reports whether a window is being dragged.
func (m *Manager) Dragging() bool { return m.drag != nil }

// TooltipAt returns the tooltip of the widget under p, or language.StrNull.
func (m *Manager) TooltipAt(p graphics.Point) language.StringID {
	w := m.windowAt(p)
	if w == nil {
		return language.StrNull
	}
	for n := w.widgetAt(p); n != nil; n = n.Parent() {
		if n.Desc.Tooltip != language.StrNull {
			return n.Desc.Tooltip
		}
	}
	return language.StrNull
}

// NotifyChange broadcasts a change to every open window, then lays out and
// repositions the windows that asked for it.
func (m *Manager) NotifyChange(code ChangeCode, param uint32) {
	m.enter()
	for _, w := range m.live() {
		if w.closed || w.def.OnChange == nil {
			continue
		}
		m.call("window.Manager.NotifyChange", w, func() { w.def.OnChange(w, code, param) })
	}
	m.leave()
	m.Flush()
}

// DisplaySize returns the size of the display.
func (m *Manager) DisplaySize() graphics.Size {
	return m.env.DisplaySize()
}

// SetDisplaySize resizes the display, marks the whole screen dirty and
// broadcasts ChangeDisplaySize with the previous size as parameter.
func (m *Manager) SetDisplaySize(size graphics.Size) {
	old := m.DisplaySize()
	if r, ok := m.env.Display.(Resizer); ok {
		r.SetSize(size)
	}
	m.MarkScreenDirty()
	m.NotifyChange(ChangeDisplaySize, PackSize(old))
}

// Flush lays out the windows that requested it and turns pending redraws
// into dirty regions.
func (m *Manager) Flush() {
	m.pipeline.FlushLayout()
	for _, c := range m.pipeline.FlushPaint() {
		if w, ok := c.(*Window); ok && !w.closed {
			m.markRect(w.rect)
		}
	}
}

// MarkScreenDirty marks the whole display for redraw.
func (m *Manager) MarkScreenDirty() {
	s := m.DisplaySize()
	m.markRect(graphics.Rect{Width: s.Width, Height: s.Height})
}

func (m *Manager) markRect(r graphics.Rect) {
	if r.IsEmpty() {
		return
	}
	m.dirty = append(m.dirty, r)
}

// DirtyRegions returns the regions that need redrawing since the last call
// and clears them. Overlapping regions are merged.
func (m *Manager) DirtyRegions() []graphics.Rect {
	m.Flush()
	out := mergeRects(m.dirty)
	m.dirty = nil
	return out
}

func mergeRects(rects []graphics.Rect) []graphics.Rect {
	out := append([]graphics.Rect(nil), rects...)
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if out[i].Intersects(out[j]) {
					out[i] = out[i].Union(out[j])
					out = append(out[:j], out[j+1:]...)
					merged = true
					j--
				}
			}
		}
	}
	return out
}
