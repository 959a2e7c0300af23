package window

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/text"
)

// Display is the surface windows are placed on.
type Display interface {
	Size() graphics.Size
}

// Resizer is implemented by displays whose size the manager may change.
type Resizer interface {
	SetSize(graphics.Size)
}

// Screen is a display of fixed size that can be resized explicitly.
type Screen struct {
	size graphics.Size
}

// NewScreen returns a screen of the given size.
func NewScreen(width, height int) *Screen {
	return &Screen{size: graphics.Size{Width: width, Height: height}}
}

// Size implements Display.
func (s *Screen) Size() graphics.Size { return s.size }

// SetSize implements Resizer.
func (s *Screen) SetSize(size graphics.Size) { s.size = size }

// Env bundles the collaborators every window needs. It is passed to the
// manager explicitly and reachable from each window through Window.Env.
type Env struct {
	Display  Display
	Measurer text.Measurer
	Strings  *language.Table
	Theme    layout.Theme
}

// DisplaySize returns the display size, or zero if there is no display.
func (e *Env) DisplaySize() graphics.Size {
	if e == nil || e.Display == nil {
		return graphics.Size{}
	}
	return e.Display.Size()
}

// ChangeCode identifies a broadcast change.
type ChangeCode uint8

const (
	// ChangeDisplayOld means displayed data is stale and should be redrawn.
	ChangeDisplayOld ChangeCode = iota
	// ChangeDisplaySize means the display was resized. The parameter holds
	// the previous size, see UnpackSize.
	ChangeDisplaySize
	// ChangeFinances means the cash amount changed.
	ChangeFinances
	// ChangeDate means the in-game date changed.
	ChangeDate
)

func (c ChangeCode) String() string {
	switch c {
	case ChangeDisplayOld:
		return "display-old"
	case ChangeDisplaySize:
		return "display-size"
	case ChangeFinances:
		return "finances"
	case ChangeDate:
		return "date"
	default:
		return "unknown"
	}
}

// PackSize packs a size into a change parameter, 16 bits per axis.
func PackSize(s graphics.Size) uint32 {
	return uint32(s.Width&0xffff)<<16 | uint32(s.Height&0xffff)
}

// UnpackSize reverses PackSize.
func UnpackSize(p uint32) graphics.Size {
	return graphics.Size{Width: int(p >> 16), Height: int(p & 0xffff)}
}
