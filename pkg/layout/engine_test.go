package layout

import (
	"reflect"
	"testing"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/text"
	"github.com/go-drift/guikit/pkg/widgets"
)

const (
	strOK language.StringID = language.FirstUserString + iota
	strCancel
	strValue
)

func testEngine() *Engine {
	en := language.English()
	en.Strings[strOK] = "OK"
	en.Strings[strCancel] = "Cancel"
	en.Strings[strValue] = "Value: {1}"
	// One unit per character and per line keeps expected sizes readable.
	return &Engine{
		Measurer: text.CellMeasurer{CellWidth: 1, CellHeight: 1},
		Strings:  language.NewTable(en),
	}
}

func spacer(number widgets.Number, w, h, fillX, fillY int) []widgets.Part {
	return []widgets.Part{
		widgets.Widget(widgets.KindEmpty, number, widgets.ColourNone),
		widgets.SetMinimalSize(w, h),
		widgets.SetFill(fillX, fillY),
	}
}

func row(children ...[]widgets.Part) []widgets.Part {
	parts := []widgets.Part{widgets.Intermediate(1, 0)}
	for _, c := range children {
		parts = append(parts, c...)
	}
	return append(parts, widgets.EndContainer())
}

func build(t *testing.T, parts []widgets.Part) *Node {
	t.Helper()
	d, err := widgets.Build(parts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return Instantiate(d)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		surplus    int
		weights    []int
		want       []int
		wantUnused int
	}{
		{"proportional", 30, []int{1, 2, 0}, []int{10, 20, 0}, 0},
		{"equal", 10, []int{1, 1, 1}, []int{3, 3, 4}, 0},
		{"all zero", 25, []int{0, 0}, []int{0, 0}, 25},
		{"no surplus", 0, []int{1, 1}, []int{0, 0}, 0},
		{"negative surplus", -5, []int{1}, []int{0}, 0},
		{"single", 7, []int{3}, []int{7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unused := Split(tt.surplus, tt.weights)
			if !reflect.DeepEqual(got, tt.want) || unused != tt.wantUnused {
				t.Errorf("Split(%d, %v) = %v, %d; want %v, %d", tt.surplus, tt.weights, got, unused, tt.want, tt.wantUnused)
			}
		})
	}
}

func TestSplitSharesSumToSurplus(t *testing.T) {
	weights := []int{3, 1, 4, 1, 5, 9, 2, 6}
	total := 0
	for _, w := range weights {
		total += w
	}
	for surplus := 0; surplus < 200; surplus++ {
		shares, unused := Split(surplus, weights)
		got := 0
		for i, s := range shares {
			got += s
			exact := float64(surplus) * float64(weights[i]) / float64(total)
			if diff := float64(s) - exact; diff <= -1 || diff >= 1 {
				t.Fatalf("surplus %d: share %d = %d, exact %.2f", surplus, i, s, exact)
			}
		}
		if got+unused != surplus {
			t.Fatalf("surplus %d: shares sum to %d", surplus, got)
		}
	}
}

func TestMinimalSizeOfRow(t *testing.T) {
	e := testEngine()
	root := build(t, row(
		[]widgets.Part{widgets.Widget(widgets.KindTextPushButton, 0, widgets.ColourRed), widgets.SetData(strOK, language.StrNull)},
		[]widgets.Part{widgets.Widget(widgets.KindTextPushButton, 1, widgets.ColourRed), widgets.SetData(strCancel, language.StrNull), widgets.SetPadding(1, 2, 3, 4)},
	))
	got := e.Minimal(root, nil)
	// "OK" is 2x1, "Cancel" is 6x1 plus 5x5 padding.
	if want := (graphics.Size{Width: 2 + 11, Height: 6}); got != want {
		t.Errorf("Minimal = %+v, want %+v", got, want)
	}
}

func TestLayoutDistributesByWeight(t *testing.T) {
	e := testEngine()
	root := build(t, row(
		spacer(0, 10, 5, 1, 0),
		spacer(1, 10, 5, 2, 0),
		spacer(2, 10, 5, 0, 0),
	))
	res := e.Layout(root, graphics.Size{Width: 60, Height: 5}, nil)

	if res.Size != (graphics.Size{Width: 60, Height: 5}) || !res.Unused.IsZero() {
		t.Fatalf("Layout = %+v", res)
	}
	wantX := []int{0, 20, 50}
	wantW := []int{20, 30, 10}
	for i := 0; i < 3; i++ {
		n := root.Find(widgets.Number(i))
		if n.Pos.X != wantX[i] || n.Size.Width != wantW[i] {
			t.Errorf("child %d at x=%d w=%d, want x=%d w=%d", i, n.Pos.X, n.Size.Width, wantX[i], wantW[i])
		}
	}
}

func TestLayoutZeroWeightsReportsSurplus(t *testing.T) {
	e := testEngine()
	root := build(t, row(spacer(0, 10, 5, 0, 0), spacer(1, 15, 5, 0, 0)))
	res := e.Layout(root, graphics.Size{Width: 100, Height: 5}, nil)

	if res.Size.Width != 25 {
		t.Errorf("root width = %d, want minimal 25", res.Size.Width)
	}
	if res.Unused != (graphics.Size{Width: 75}) {
		t.Errorf("Unused = %+v, want 75 wide", res.Unused)
	}
	if w := root.Find(0).Size.Width; w != 10 {
		t.Errorf("child width = %d, want 10", w)
	}
}

func TestLayoutNestedContainerSurplusPropagates(t *testing.T) {
	e := testEngine()
	// The inner row asks to fill but none of its children can grow.
	parts := []widgets.Part{widgets.Intermediate(1, 0)}
	parts = append(parts, widgets.Intermediate(1, 0), widgets.SetFill(1, 0))
	parts = append(parts, spacer(0, 10, 5, 0, 0)...)
	parts = append(parts, widgets.EndContainer())
	parts = append(parts, spacer(1, 10, 5, 0, 0)...)
	parts = append(parts, widgets.EndContainer())

	root := build(t, parts)
	res := e.Layout(root, graphics.Size{Width: 50, Height: 5}, nil)
	if res.Unused.Width != 30 {
		t.Errorf("Unused.Width = %d, want 30", res.Unused.Width)
	}
	inner := root.Children[0]
	if inner.Size.Width != 10 {
		t.Errorf("inner width = %d, want its minimum 10", inner.Size.Width)
	}
	if x := root.Find(1).Pos.X; x != 40 {
		t.Errorf("second child x = %d, want 40 (after the stretched cell)", x)
	}
}

// stuckBox is a container that asks to fill along x or y but holds one
// spacer that cannot grow.
func stuckBox(number widgets.Number, fillX, fillY int) []widgets.Part {
	parts := []widgets.Part{widgets.Intermediate(1, 0), widgets.SetFill(fillX, fillY)}
	parts = append(parts, spacer(number, 10, 5, 0, 0)...)
	return append(parts, widgets.EndContainer())
}

func TestLayoutSiblingSurplusAddsUp(t *testing.T) {
	tests := []struct {
		name       string
		parts      []widgets.Part
		avail      graphics.Size
		wantUnused graphics.Size
	}{
		{
			name:       "side by side",
			parts:      row(stuckBox(0, 1, 0), stuckBox(1, 1, 0)),
			avail:      graphics.Size{Width: 40, Height: 5},
			wantUnused: graphics.Size{Width: 20},
		},
		{
			name:       "three columns",
			parts:      row(stuckBox(0, 1, 0), stuckBox(1, 2, 0), stuckBox(2, 1, 0)),
			avail:      graphics.Size{Width: 70, Height: 5},
			wantUnused: graphics.Size{Width: 40},
		},
		{
			name: "stacked",
			parts: append(append(append([]widgets.Part{widgets.Intermediate(0, 1)},
				stuckBox(0, 0, 1)...), stuckBox(1, 0, 1)...), widgets.EndContainer()),
			avail:      graphics.Size{Width: 10, Height: 30},
			wantUnused: graphics.Size{Height: 20},
		},
		{
			name: "same column keeps the widest use",
			parts: append(append(append([]widgets.Part{widgets.Intermediate(0, 1)},
				stuckBox(0, 1, 0)...), spacer(1, 30, 5, 1, 0)...), widgets.EndContainer()),
			avail:      graphics.Size{Width: 50, Height: 10},
			wantUnused: graphics.Size{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine()
			root := build(t, tt.parts)
			res := e.Layout(root, tt.avail, nil)
			if res.Unused != tt.wantUnused {
				t.Errorf("Unused = %+v, want %+v", res.Unused, tt.wantUnused)
			}
			if got := res.Size.Add(res.Unused); got != tt.avail {
				t.Errorf("Size %+v + Unused %+v = %+v, want the offered %+v", res.Size, res.Unused, got, tt.avail)
			}
		})
	}
}

func TestLayoutResizeStepRemainderIsUnused(t *testing.T) {
	e := testEngine()
	root := build(t, row(append(spacer(0, 10, 1, 1, 0), widgets.SetResize(4, 0))))
	res := e.Layout(root, graphics.Size{Width: 21, Height: 1}, nil)
	if res.Unused != (graphics.Size{Width: 3}) || res.Size.Width != 18 {
		t.Errorf("Layout = %+v, want 18 wide with 3 unused", res)
	}
}

func TestLayoutClampsBelowMinimum(t *testing.T) {
	e := testEngine()
	root := build(t, row(spacer(0, 10, 5, 1, 1), spacer(1, 20, 8, 1, 1)))
	res := e.Layout(root, graphics.Size{Width: 3, Height: 2}, nil)

	if !res.Clamped {
		t.Error("expected Clamped")
	}
	if res.Size != res.Min || res.Size != (graphics.Size{Width: 30, Height: 8}) {
		t.Errorf("Size = %+v, Min = %+v, want both 30x8", res.Size, res.Min)
	}
	root.Walk(func(n *Node) {
		if n.Size.Width < 0 || n.Size.Height < 0 {
			t.Errorf("negative size %+v", n.Size)
		}
	})
}

func TestLayoutIsDeterministic(t *testing.T) {
	e := testEngine()
	parts := row(spacer(0, 3, 4, 1, 0), spacer(1, 5, 2, 3, 1), spacer(2, 7, 1, 2, 0))

	snapshot := func() []graphics.Rect {
		root := build(t, parts)
		e.Layout(root, graphics.Size{Width: 101, Height: 9}, nil)
		var out []graphics.Rect
		root.Walk(func(n *Node) { out = append(out, n.Rect()) })
		return out
	}
	a, b := snapshot(), snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("layouts differ:\n%v\n%v", a, b)
	}
}

func TestLayoutPaddingOffsetsChildren(t *testing.T) {
	e := testEngine()
	parts := []widgets.Part{widgets.Intermediate(1, 0), widgets.SetPadding(2, 3, 4, 5)}
	parts = append(parts, spacer(0, 10, 10, 0, 0)...)
	parts = append(parts, widgets.EndContainer())
	root := build(t, parts)
	res := e.Layout(root, graphics.Size{}, nil)

	if res.Size != (graphics.Size{Width: 17, Height: 17}) {
		t.Errorf("Size = %+v", res.Size)
	}
	if p := root.Find(0).Pos; p != (graphics.Point{X: 3, Y: 2}) {
		t.Errorf("child at %+v, want (3,2)", p)
	}
	if cr := root.ContentRect(); cr != (graphics.Rect{X: 3, Y: 2, Width: 10, Height: 10}) {
		t.Errorf("ContentRect = %+v", cr)
	}
}

func TestLayoutCentresNonFillingChild(t *testing.T) {
	e := testEngine()
	parts := []widgets.Part{widgets.Intermediate(0, 1)}
	parts = append(parts, spacer(0, 5, 2, 0, 0)...)
	parts = append(parts, spacer(1, 20, 2, 1, 0)...)
	parts = append(parts, widgets.EndContainer())
	root := build(t, parts)
	e.Layout(root, graphics.Size{}, nil)

	narrow := root.Find(0)
	if narrow.Pos.X != 7 || narrow.Size.Width != 5 {
		t.Errorf("narrow child at x=%d w=%d, want x=7 w=5", narrow.Pos.X, narrow.Size.Width)
	}
}

func TestLayoutResizeStep(t *testing.T) {
	e := testEngine()
	parts := row(append(spacer(0, 10, 1, 1, 0), widgets.SetResize(4, 0)))
	root := build(t, parts)
	e.Layout(root, graphics.Size{Width: 21, Height: 1}, nil)
	if w := root.Find(0).Size.Width; w != 18 {
		t.Errorf("stepped width = %d, want 18", w)
	}
}

func TestPanelAddsBorder(t *testing.T) {
	e := testEngine()
	e.Theme = DefaultTheme()
	parts := []widgets.Part{widgets.Widget(widgets.KindPanel, widgets.InvalidNumber, widgets.ColourBrown)}
	parts = append(parts, spacer(0, 10, 10, 0, 0)...)
	parts = append(parts, widgets.EndContainer())
	root := build(t, parts)
	res := e.Layout(root, graphics.Size{}, nil)
	if res.Size != (graphics.Size{Width: 14, Height: 14}) {
		t.Errorf("panel size = %+v, want 14x14", res.Size)
	}
	if p := root.Find(0).Pos; p != (graphics.Point{X: 2, Y: 2}) {
		t.Errorf("child at %+v, want (2,2)", p)
	}
}

type recordingHooks struct {
	params  []widgets.Number
	updates []widgets.Number
	raise   map[widgets.Number]graphics.Size
}

func (h *recordingHooks) StringParams(number widgets.Number, p *language.Params) {
	h.params = append(h.params, number)
	p.SetNumber(1, 12345)
}

func (h *recordingHooks) UpdateSize(number widgets.Number, n *Node) {
	h.updates = append(h.updates, number)
	if s, ok := h.raise[number]; ok {
		n.RaiseMin(s)
	}
}

func TestSizeHooks(t *testing.T) {
	e := testEngine()
	root := build(t, row(
		[]widgets.Part{widgets.Widget(widgets.KindLeftText, 0, widgets.ColourBrown), widgets.SetData(strValue, language.StrNull)},
		spacer(1, 1, 1, 0, 0),
	))
	hooks := &recordingHooks{raise: map[widgets.Number]graphics.Size{1: {Width: 40, Height: 3}}}
	e.Layout(root, graphics.Size{}, hooks)

	if !reflect.DeepEqual(hooks.params, []widgets.Number{0}) {
		t.Errorf("StringParams calls = %v", hooks.params)
	}
	if !reflect.DeepEqual(hooks.updates, []widgets.Number{0, 1}) {
		t.Errorf("UpdateSize calls = %v", hooks.updates)
	}
	if w := root.Find(0).Size.Width; w != len("Value: 12,345") {
		t.Errorf("text width = %d", w)
	}
	if s := root.Find(1).Size; s != (graphics.Size{Width: 40, Height: 3}) {
		t.Errorf("raised size = %+v", s)
	}
}

func TestHitTestFindsDeepest(t *testing.T) {
	e := testEngine()
	root := build(t, row(spacer(0, 10, 10, 0, 0), spacer(1, 10, 10, 0, 0)))
	e.Layout(root, graphics.Size{}, nil)

	if hit := root.HitTest(graphics.Point{X: 15, Y: 5}); hit == nil || hit.Number() != 1 {
		t.Errorf("HitTest(15,5) = %v", hit)
	}
	if hit := root.HitTest(graphics.Point{X: 25, Y: 5}); hit != nil {
		t.Errorf("HitTest outside = %v, want nil", hit)
	}
}

func TestReleaseDropsChildren(t *testing.T) {
	root := build(t, row(spacer(0, 1, 1, 0, 0)))
	child := root.Children[0]
	root.Release()
	if len(root.Children) != 0 || child.Parent() != nil {
		t.Error("Release should detach children")
	}
}
