package testing

import (
	"fmt"

	"github.com/go-drift/guikit/pkg/graphics"
)

// pointerState tracks an active pointer for gesture simulation.
type pointerState struct {
	start    graphics.Point
	position graphics.Point
	moved    bool
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int

func allocPointerID() int {
	nextPointerID++
	return nextPointerID
}

// Tap simulates a tap at the center of the first widget matched by finder.
func (t *WindowTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	return t.TapAt(result.First().Center())
}

// TapAt simulates a tap at the given display position.
func (t *WindowTester) TapAt(pos graphics.Point) error {
	id := allocPointerID()
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// Drag simulates a drag gesture on the first widget matched by finder.
func (t *WindowTester) Drag(finder Finder, delta graphics.Point) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Drag: finder matched no widgets: %s", finder.Description())
	}
	return t.DragFrom(result.First().Center(), delta)
}

// DragFrom simulates a drag from start by delta.
func (t *WindowTester) DragFrom(start, delta graphics.Point) error {
	id := allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	end := start.Add(delta)
	if err := t.SendPointerMove(end, id); err != nil {
		return err
	}
	return t.SendPointerUp(end, id)
}

// SendPointerDown sends a pointer-down event at pos.
func (t *WindowTester) SendPointerDown(pos graphics.Point, pointerID int) error {
	if _, ok := t.pointers[pointerID]; ok {
		return fmt.Errorf("pointer %d is already down", pointerID)
	}
	t.pointers[pointerID] = &pointerState{start: pos, position: pos}
	t.manager.PointerDown(pos)
	return nil
}

// SendPointerMove sends a pointer-move event at pos.
func (t *WindowTester) SendPointerMove(pos graphics.Point, pointerID int) error {
	state := t.pointers[pointerID]
	if state == nil {
		return nil
	}
	state.position = pos
	state.moved = state.moved || pos != state.start
	t.manager.PointerMove(pos)
	return nil
}

// SendPointerUp sends a pointer-up event at pos. A pointer released where it
// went down without moving clicks there.
func (t *WindowTester) SendPointerUp(pos graphics.Point, pointerID int) error {
	state := t.pointers[pointerID]
	if state == nil {
		return nil
	}
	delete(t.pointers, pointerID)
	t.manager.PointerUp(pos)
	if !state.moved && pos == state.start {
		t.manager.HandleClick(pos)
	}
	return nil
}
