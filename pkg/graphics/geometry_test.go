package graphics

import (
	"testing"

	"github.com/gonutz/check"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 5}
	check.Eq(t, r.Contains(Point{X: 10, Y: 20}), true)
	check.Eq(t, r.Contains(Point{X: 14, Y: 24}), true)
	check.Eq(t, r.Contains(Point{X: 15, Y: 24}), false)
	check.Eq(t, r.Contains(Point{X: 14, Y: 25}), false)
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 5, Height: 10}
	check.Eq(t, a.Union(b), Rect{X: 0, Y: 0, Width: 25, Height: 15})
	check.Eq(t, Rect{}.Union(b), b)
	check.Eq(t, a.Union(Rect{}), a)
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	check.Eq(t, a.Intersects(Rect{X: 9, Y: 9, Width: 2, Height: 2}), true)
	check.Eq(t, a.Intersects(Rect{X: 10, Y: 0, Width: 2, Height: 2}), false)
	check.Eq(t, a.Intersects(Rect{X: 5, Y: 5}), false)
}

func TestPaddingDeflateClamps(t *testing.T) {
	p := Padding{Top: 3, Left: 4, Right: 30, Bottom: 0}
	got := p.Deflate(Rect{X: 0, Y: 0, Width: 20, Height: 2})
	check.Eq(t, got, Rect{X: 4, Y: 3, Width: 0, Height: 0})
	check.Eq(t, p.Size(), Size{Width: 34, Height: 3})
}

func TestSizeSubClamps(t *testing.T) {
	check.Eq(t, Size{Width: 5, Height: 10}.Sub(Size{Width: 8, Height: 4}), Size{Width: 0, Height: 6})
}

func TestSizeAdd(t *testing.T) {
	check.Eq(t, Size{Width: 3, Height: 4}.Add(Size{Width: 7}), Size{Width: 10, Height: 4})
}

func TestColorComponents(t *testing.T) {
	c := RGB(0x8b, 0x5a, 0x2b)
	r, g, b := c.RGB()
	check.Eq(t, []uint8{r, g, b}, []uint8{0x8b, 0x5a, 0x2b})
	check.Eq(t, c.Alpha8(), uint8(0xff))
	check.Eq(t, c.Hex(), "#8b5a2b")
	check.Eq(t, RGBA8(1, 2, 3, 4), Color(0x04010203))
	check.Eq(t, ColorTransparent.Alpha8(), uint8(0))
}
