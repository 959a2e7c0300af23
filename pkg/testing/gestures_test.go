package testing

import (
	"testing"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/testing/internal/testbed"
	"github.com/go-drift/guikit/pkg/widgets"
)

func TestTap_Counter(t *testing.T) {
	tester, c := newCounterTester(t, 0)

	if err := tester.Tap(ByNumber("counter", testbed.CounterButton)); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()

	if c.Count != 1 || !tester.Find(ByText("1")).Exists() {
		t.Error("expected count to be 1 after tap")
	}
}

func TestTap_CounterMultiple(t *testing.T) {
	tester, _ := newCounterTester(t, 0)

	for i := 0; i < 3; i++ {
		tester.Tap(ByNumber("counter", testbed.CounterButton))
	}

	if !tester.Find(ByText("3")).Exists() {
		t.Error("expected count to be 3 after three taps")
	}
}

func TestTap_Callback(t *testing.T) {
	var lastCount int
	tester := NewWindowTesterWithT(t, WithStrings(testbed.Strings()))
	c := &testbed.Counter{Count: 10, OnTap: func(count int) { lastCount = count }}
	tester.Open(c.Definition())

	tester.Tap(ByText("10"))

	if lastCount != 11 {
		t.Errorf("expected callback with count 11, got %d", lastCount)
	}
}

func TestTap_NoMatch(t *testing.T) {
	tester, _ := newCounterTester(t, 0)

	if err := tester.Tap(ByText("nonexistent")); err == nil {
		t.Error("expected error when tapping nonexistent widget")
	}
}

func TestTapAt_Outside(t *testing.T) {
	tester, c := newCounterTester(t, 0)

	if err := tester.TapAt(graphics.Point{X: 700, Y: 500}); err != nil {
		t.Errorf("TapAt failed: %v", err)
	}
	if c.Count != 0 {
		t.Error("tap outside every window should do nothing")
	}
}

func TestSendPointerDown_Twice(t *testing.T) {
	tester, _ := newCounterTester(t, 0)

	if err := tester.SendPointerDown(graphics.Point{}, 1); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendPointerDown(graphics.Point{}, 1); err == nil {
		t.Error("expected error for a pointer that is already down")
	}
}

func TestDrag_Titlebar(t *testing.T) {
	tester, c := newCounterTester(t, 0)
	w := tester.Window("counter")

	if err := tester.Drag(ByKind(widgets.KindTitleBar), graphics.Point{X: 50, Y: 5}); err != nil {
		t.Fatalf("Drag failed: %v", err)
	}
	if got := w.Rect().Origin(); got != (graphics.Point{X: 60, Y: 25}) {
		t.Errorf("origin after drag = %v, want (60,25)", got)
	}
	if c.Count != 0 {
		t.Error("a drag must not click")
	}
}

func TestDrag_ButtonDoesNotMove(t *testing.T) {
	tester, c := newCounterTester(t, 0)
	w := tester.Window("counter")

	tester.Drag(ByNumber("counter", testbed.CounterButton), graphics.Point{X: 30, Y: 0})
	if got := w.Rect().Origin(); got != (graphics.Point{X: 10, Y: 20}) {
		t.Errorf("origin = %v, want unchanged", got)
	}
	if c.Count != 0 {
		t.Error("a drag must not click")
	}
}
