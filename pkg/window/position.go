package window

import "github.com/go-drift/guikit/pkg/graphics"

// PositionFunc returns the top-left corner of a window of the given size.
// It is consulted whenever the window is laid out.
type PositionFunc func(env *Env, size graphics.Size) graphics.Point

// PinAt places windows at a fixed point.
func PinAt(x, y int) PositionFunc {
	return func(*Env, graphics.Size) graphics.Point {
		return graphics.Point{X: x, Y: y}
	}
}

// PinBottom places windows marginX from the left edge with their top
// height above the bottom of the display.
func PinBottom(marginX, height int) PositionFunc {
	return func(env *Env, _ graphics.Size) graphics.Point {
		return graphics.Point{X: marginX, Y: env.DisplaySize().Height - height}
	}
}

// Centred centres windows on the display. Odd remainders are truncated, so
// a window wider than the display gets a negative offset.
func Centred(env *Env, size graphics.Size) graphics.Point {
	d := env.DisplaySize()
	return graphics.Point{
		X: (d.Width - size.Width) / 2,
		Y: (d.Height - size.Height) / 2,
	}
}
