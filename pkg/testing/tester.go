package testing

import (
	"testing"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/text"
	"github.com/go-drift/guikit/pkg/window"
)

const (
	// DefaultTestWidth is the default width of the test display.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test display.
	DefaultTestHeight = 600
)

// WindowTester drives a window manager on a fake display. Text is measured
// with the 7x13 basic font unless another measurer is configured.
type WindowTester struct {
	screen   *window.Screen
	manager  *window.Manager
	pointers map[int]*pointerState
}

// Option configures a WindowTester.
type Option func(*window.Env)

// WithStrings sets the string table.
func WithStrings(t *language.Table) Option {
	return func(env *window.Env) { env.Strings = t }
}

// WithMeasurer sets the text measurer.
func WithMeasurer(m text.Measurer) Option {
	return func(env *window.Env) { env.Measurer = m }
}

// WithTheme sets the decoration theme.
func WithTheme(th layout.Theme) Option {
	return func(env *window.Env) { env.Theme = th }
}

// WithSize sets the initial display size.
func WithSize(width, height int) Option {
	return func(env *window.Env) {
		env.Display.(*window.Screen).SetSize(graphics.Size{Width: width, Height: height})
	}
}

// NewWindowTester creates a tester with an 800x600 display, the basic font
// and an empty English string table.
func NewWindowTester(opts ...Option) *WindowTester {
	screen := window.NewScreen(DefaultTestWidth, DefaultTestHeight)
	env := window.Env{
		Display:  screen,
		Measurer: text.NewFontMeasurer(nil),
		Strings:  language.NewTable(language.English()),
		Theme:    layout.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&env)
	}
	return &WindowTester{
		screen:   screen,
		manager:  window.NewManager(env),
		pointers: make(map[int]*pointerState),
	}
}

// NewWindowTesterWithT creates a tester whose pending dirty regions are
// drained when the test ends.
func NewWindowTesterWithT(t testing.TB, opts ...Option) *WindowTester {
	tester := NewWindowTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes every open window.
func (t *WindowTester) Cleanup() {
	for _, w := range t.manager.Windows() {
		t.manager.Close(w)
	}
	t.manager.DirtyRegions()
}

// Manager returns the window manager under test.
func (t *WindowTester) Manager() *window.Manager {
	return t.manager
}

// Env returns the manager's environment.
func (t *WindowTester) Env() *window.Env {
	return t.manager.Env()
}

// Size returns the display size.
func (t *WindowTester) Size() graphics.Size {
	return t.screen.Size()
}

// Resize changes the display size and lets windows react to it.
func (t *WindowTester) Resize(width, height int) {
	t.manager.SetDisplaySize(graphics.Size{Width: width, Height: height})
}

// Open opens a window from def.
func (t *WindowTester) Open(def *window.Definition) *window.Window {
	return t.manager.Open(def)
}

// Pump flushes pending layouts and returns the regions needing redraw.
func (t *WindowTester) Pump() []graphics.Rect {
	return t.manager.DirtyRegions()
}

// Window returns the topmost open window of class, or nil.
func (t *WindowTester) Window(class window.Class) *window.Window {
	return t.manager.Find(class)
}

// Find evaluates a finder against the open windows.
func (t *WindowTester) Find(finder Finder) FinderResult {
	return FinderResult{
		matches: finder.Evaluate(t.manager.Windows()),
		finder:  finder,
	}
}
