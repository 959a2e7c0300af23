package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// Match is one widget found in an open window.
type Match struct {
	Window *window.Window
	Node   *layout.Node
}

// Rect returns the widget rectangle in display coordinates.
func (m Match) Rect() graphics.Rect {
	r := m.Window.Rect()
	return m.Node.Rect().Translate(r.X, r.Y)
}

// Center returns the centre of the widget in display coordinates.
func (m Match) Center() graphics.Point {
	return m.Rect().Center()
}

// Text returns the formatted text of the widget, or "" for widgets without
// text.
func (m Match) Text() string {
	if !m.Node.Kind().HasText() {
		return ""
	}
	env := m.Window.Env()
	if env.Strings == nil {
		return ""
	}
	if m.Node.Number() != widgets.InvalidNumber {
		return m.Window.Text(m.Node.Number())
	}
	return env.Strings.Format(m.Node.Desc.Text, &m.Node.Params)
}

// Finder locates widgets in the open windows.
type Finder interface {
	// Evaluate returns all matching widgets, windows bottom to top and
	// each tree depth-first pre-order.
	Evaluate(windows []*window.Window) []Match
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []Match
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Match {
	if len(r.matches) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no widgets: %s", desc))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Match {
	if index < 0 || index >= len(r.matches) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), desc))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(Match) bool
	desc string
}

func (f *predicateFinder) Evaluate(windows []*window.Window) []Match {
	return collectMatches(windows, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByNumber matches the widget with the given number in windows of class.
func ByNumber(class window.Class, number widgets.Number) Finder {
	return &predicateFinder{
		fn: func(m Match) bool {
			return m.Window.Class() == class && m.Node.Number() == number
		},
		desc: fmt.Sprintf("ByNumber(%s, %d)", class, number),
	}
}

// ByKind matches widgets of kind.
func ByKind(kind widgets.Kind) Finder {
	return &predicateFinder{
		fn:   func(m Match) bool { return m.Node.Kind() == kind },
		desc: fmt.Sprintf("ByKind(%s)", kind),
	}
}

// ByText matches widgets whose formatted text equals text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(m Match) bool { return m.Node.Kind().HasText() && m.Text() == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches widgets whose formatted text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(m Match) bool {
			return m.Node.Kind().HasText() && strings.Contains(m.Text(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByPredicate matches widgets satisfying fn.
func ByPredicate(fn func(Match) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

type inClassFinder struct {
	class    window.Class
	matching Finder
}

func (f *inClassFinder) Evaluate(windows []*window.Window) []Match {
	var in []*window.Window
	for _, w := range windows {
		if w.Class() == f.class {
			in = append(in, w)
		}
	}
	return f.matching.Evaluate(in)
}

func (f *inClassFinder) Description() string {
	return fmt.Sprintf("InClass(%s, %s)", f.class, f.matching.Description())
}

// InClass restricts matching to windows of class.
func InClass(class window.Class, matching Finder) Finder {
	return &inClassFinder{class: class, matching: matching}
}

// collectMatches walks every window tree depth-first pre-order, collecting
// widgets that satisfy the predicate.
func collectMatches(windows []*window.Window, predicate func(Match) bool) []Match {
	var results []Match
	for _, w := range windows {
		if w.Root() == nil {
			continue
		}
		w.Root().Walk(func(n *layout.Node) {
			if m := (Match{Window: w, Node: n}); predicate(m) {
				results = append(results, m)
			}
		})
	}
	return results
}
