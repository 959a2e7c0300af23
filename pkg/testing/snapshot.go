package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/widgets"
	"github.com/go-drift/guikit/pkg/window"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the geometry of every open window.
type Snapshot struct {
	Display [2]int            `json:"display"`
	Windows []*WindowSnapshot `json:"windows"`
}

// WindowSnapshot is one window in a Snapshot.
type WindowSnapshot struct {
	Class string      `json:"class"`
	Rect  [4]int      `json:"rect"`
	Slack [2]int      `json:"slack"`
	Root  *WidgetNode `json:"root"`
}

// WidgetNode is one widget in a WindowSnapshot. Offsets are relative to
// the window.
type WidgetNode struct {
	ID       string        `json:"id"`
	Kind     string        `json:"kind"`
	Number   *int          `json:"number,omitempty"`
	Rect     [4]int        `json:"rect"`
	Text     string        `json:"text,omitempty"`
	Children []*WidgetNode `json:"children,omitempty"`
}

// CaptureSnapshot captures the open windows bottom to top.
func (t *WindowTester) CaptureSnapshot() *Snapshot {
	size := t.Size()
	snap := &Snapshot{Display: [2]int{size.Width, size.Height}}
	for _, w := range t.manager.Windows() {
		r := w.Rect()
		slack := w.Slack()
		counter := &kindCounter{}
		snap.Windows = append(snap.Windows, &WindowSnapshot{
			Class: string(w.Class()),
			Rect:  [4]int{r.X, r.Y, r.Width, r.Height},
			Slack: [2]int{slack.Width, slack.Height},
			Root:  captureNode(w, w.Root(), counter),
		})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When GUIKIT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("GUIKIT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: GUIKIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: GUIKIT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

// kindCounter assigns stable IDs like "button#0", "button#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureNode(w *window.Window, n *layout.Node, counter *kindCounter) *WidgetNode {
	if n == nil {
		return nil
	}
	kind := n.Kind().String()
	r := n.Rect()
	node := &WidgetNode{
		ID:   counter.next(kind),
		Kind: kind,
		Rect: [4]int{r.X, r.Y, r.Width, r.Height},
	}
	if num := n.Number(); num != widgets.InvalidNumber {
		v := int(num)
		node.Number = &v
	}
	if n.Kind().HasText() {
		node.Text = Match{Window: w, Node: n}.Text()
	}
	for _, c := range n.Children {
		node.Children = append(node.Children, captureNode(w, c, counter))
	}
	return node
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
