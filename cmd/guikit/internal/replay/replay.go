// Package replay plays scripted input against the toolbar windows.
//
// A script is a yaml document:
//
//	open: [toolbar, bottom-toolbar]
//	steps:
//	  - click: {window: toolbar, widget: 0}
//	  - click: {x: 12, y: 4}
//	  - drag: {from: {x: 300, y: 240}, to: {x: 100, y: 100}}
//	  - resize: {width: 1024, height: 768}
//	  - pay: 250
//	  - advance: 3
//	  - change: display-old
//	  - open: quit
//	  - close: quit
//
// Each step sets exactly one action.
package replay

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/guikit/pkg/game"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/gui"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
	"gopkg.in/yaml.v3"
)

// Script is a parsed replay script.
type Script struct {
	Open  []string `yaml:"open"`
	Steps []Step   `yaml:"steps"`
}

// Point is a display position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Click clicks either a widget of an open window or a display position.
type Click struct {
	Window string          `yaml:"window,omitempty"`
	Widget *widgets.Number `yaml:"widget,omitempty"`
	X      int             `yaml:"x,omitempty"`
	Y      int             `yaml:"y,omitempty"`
}

// Drag presses at From, moves to To and releases.
type Drag struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Resize changes the display size.
type Resize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step is one scripted action.
type Step struct {
	Click   *Click  `yaml:"click,omitempty"`
	Drag    *Drag   `yaml:"drag,omitempty"`
	Resize  *Resize `yaml:"resize,omitempty"`
	Pay     *int64  `yaml:"pay,omitempty"`
	Advance *int    `yaml:"advance,omitempty"`
	Change  string  `yaml:"change,omitempty"`
	Open    string  `yaml:"open,omitempty"`
	Close   string  `yaml:"close,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Click != nil, s.Drag != nil, s.Resize != nil, s.Pay != nil,
		s.Advance != nil, s.Change != "", s.Open != "", s.Close != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// String describes the step for the replay log.
func (s Step) String() string {
	switch {
	case s.Click != nil && s.Click.Widget != nil:
		return fmt.Sprintf("click %s#%d", s.Click.Window, *s.Click.Widget)
	case s.Click != nil:
		return fmt.Sprintf("click (%d,%d)", s.Click.X, s.Click.Y)
	case s.Drag != nil:
		return fmt.Sprintf("drag (%d,%d) -> (%d,%d)", s.Drag.From.X, s.Drag.From.Y, s.Drag.To.X, s.Drag.To.Y)
	case s.Resize != nil:
		return fmt.Sprintf("resize %dx%d", s.Resize.Width, s.Resize.Height)
	case s.Pay != nil:
		return fmt.Sprintf("pay %d", *s.Pay)
	case s.Advance != nil:
		return fmt.Sprintf("advance %d", *s.Advance)
	case s.Change != "":
		return "change " + s.Change
	case s.Open != "":
		return "open " + s.Open
	case s.Close != "":
		return "close " + s.Close
	}
	return "noop"
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse replay script: %w", err)
	}
	for _, class := range s.Open {
		if !knownClass(class) {
			return nil, fmt.Errorf("open: unknown window %q", class)
		}
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// LoadFile reads and parses a script from disk.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay script: %w", err)
	}
	return Parse(data)
}

func (s Step) validate() error {
	if n := s.actions(); n != 1 {
		return fmt.Errorf("want exactly one action, got %d", n)
	}
	switch {
	case s.Click != nil && s.Click.Widget != nil && !knownClass(s.Click.Window):
		return fmt.Errorf("click: unknown window %q", s.Click.Window)
	case s.Resize != nil && (s.Resize.Width <= 0 || s.Resize.Height <= 0 ||
		s.Resize.Width > 0xFFFF || s.Resize.Height > 0xFFFF):
		return fmt.Errorf("resize: invalid size %dx%d", s.Resize.Width, s.Resize.Height)
	case s.Advance != nil && *s.Advance < 0:
		return fmt.Errorf("advance: negative day count %d", *s.Advance)
	case s.Change != "":
		if _, ok := parseChange(s.Change); !ok {
			return fmt.Errorf("change: unknown code %q", s.Change)
		}
	case s.Open != "" && !knownClass(s.Open):
		return fmt.Errorf("open: unknown window %q", s.Open)
	case s.Close != "" && !knownClass(s.Close):
		return fmt.Errorf("close: unknown window %q", s.Close)
	}
	return nil
}

var classes = []window.Class{gui.ClassToolbar, gui.ClassBottomToolbar, gui.ClassQuit}

func knownClass(name string) bool {
	for _, c := range classes {
		if string(c) == name {
			return true
		}
	}
	return false
}

func parseChange(name string) (window.ChangeCode, bool) {
	for _, c := range []window.ChangeCode{
		window.ChangeDisplayOld, window.ChangeDisplaySize, window.ChangeFinances, window.ChangeDate,
	} {
		if c.String() == strings.ToLower(name) {
			return c, true
		}
	}
	return 0, false
}

// Player runs scripts against a GUI and logs the window list after every
// step.
type Player struct {
	GUI *gui.GUI
	Out io.Writer
}

// Run opens the initial windows and plays every step. A click on a widget
// of a window that is not open is an error.
func (p *Player) Run(s *Script) error {
	for _, class := range s.Open {
		p.open(class)
	}
	p.report("start")
	for i, step := range s.Steps {
		if err := p.step(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		p.report(fmt.Sprintf("step %d: %s", i+1, step))
	}
	return nil
}

func (p *Player) open(class string) *window.Window {
	switch window.Class(class) {
	case gui.ClassToolbar:
		return p.GUI.ShowToolbar()
	case gui.ClassBottomToolbar:
		return p.GUI.ShowBottomToolbar()
	case gui.ClassQuit:
		return p.GUI.ShowQuitProgram()
	}
	return nil
}

func (p *Player) step(s Step) error {
	m := p.GUI.Manager
	switch {
	case s.Click != nil:
		pos := graphics.Point{X: s.Click.X, Y: s.Click.Y}
		if s.Click.Widget != nil {
			w := m.Find(window.Class(s.Click.Window))
			if w == nil {
				return fmt.Errorf("window %s is not open", s.Click.Window)
			}
			if w.Node(*s.Click.Widget) == nil {
				return fmt.Errorf("window %s has no widget %d", s.Click.Window, *s.Click.Widget)
			}
			pos = w.WidgetRect(*s.Click.Widget).Center()
		}
		m.PointerDown(pos)
		m.PointerUp(pos)
		m.HandleClick(pos)
	case s.Drag != nil:
		m.PointerDown(graphics.Point{X: s.Drag.From.X, Y: s.Drag.From.Y})
		m.PointerMove(graphics.Point{X: s.Drag.To.X, Y: s.Drag.To.Y})
		m.PointerUp(graphics.Point{X: s.Drag.To.X, Y: s.Drag.To.Y})
	case s.Resize != nil:
		m.SetDisplaySize(graphics.Size{Width: s.Resize.Width, Height: s.Resize.Height})
	case s.Pay != nil:
		if p.GUI.Finances == nil {
			return fmt.Errorf("no finances")
		}
		p.GUI.Finances.Pay(game.Money(*s.Pay))
	case s.Advance != nil:
		if p.GUI.Clock == nil {
			return fmt.Errorf("no clock")
		}
		for range *s.Advance {
			p.GUI.Clock.Advance()
		}
	case s.Change != "":
		code, _ := parseChange(s.Change)
		var param uint32
		if code == window.ChangeDisplaySize {
			param = window.PackSize(m.DisplaySize())
		}
		m.NotifyChange(code, param)
	case s.Open != "":
		p.open(s.Open)
	case s.Close != "":
		if w := m.Find(window.Class(s.Close)); w != nil {
			m.Close(w)
		}
	}
	return nil
}

func (p *Player) report(title string) {
	m := p.GUI.Manager
	dirty := m.DirtyRegions()
	fmt.Fprintf(p.Out, "%s (%d dirty)\n", title, len(dirty))
	for _, w := range m.Windows() {
		r := w.Rect()
		fmt.Fprintf(p.Out, "  %-16s %4d,%-4d %4dx%-4d\n", w.Class(), r.X, r.Y, r.Width, r.Height)
	}
}
