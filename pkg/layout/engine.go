// Package layout sizes and positions widget instance trees.
//
// Layout runs in two passes. The minimal pass walks the tree bottom-up:
// leaves measure their text (asking the window for dynamic string
// parameters and size overrides), grids take the widest cell of each column
// and the tallest cell of each row. The distribution pass walks top-down and
// hands surplus space to columns and rows in proportion to their fill
// weights. Space no weight can absorb is reported back rather than dropped.
package layout

import (
	"log"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/text"
	"github.com/go-drift/guikit/pkg/widgets"
)

// SizeHooks lets the owner of a tree take part in the minimal pass.
type SizeHooks interface {
	// StringParams fills the dynamic arguments of a numbered widget's text.
	StringParams(number widgets.Number, params *language.Params)
	// UpdateSize may raise the minimal content size of a numbered widget
	// with Node.RaiseMin.
	UpdateSize(number widgets.Number, n *Node)
}

// Engine lays out node trees. It holds the collaborators needed to measure
// text and is safe to reuse for any number of trees.
type Engine struct {
	Measurer text.Measurer
	Strings  *language.Table
	Theme    Theme

	clampWarned bool
}

// NewEngine creates an engine with the default theme.
func NewEngine(m text.Measurer, strings *language.Table) *Engine {
	return &Engine{Measurer: m, Strings: strings, Theme: DefaultTheme()}
}

// Result describes a completed layout.
type Result struct {
	// Size is the size of the root after distribution.
	Size graphics.Size
	// Min is the minimal size of the root.
	Min graphics.Size
	// Unused is the surplus no fill weight could absorb.
	Unused graphics.Size
	// Clamped reports that the available space was smaller than Min on
	// some axis and the root was laid out at its minimal size instead.
	Clamped bool
}

// Layout runs both passes on root with avail as the offered space.
// Offering less than the minimal size is not an error: the tree is laid out
// at its minimal size on that axis and Result.Clamped is set.
func (e *Engine) Layout(root *Node, avail graphics.Size, hooks SizeHooks) Result {
	minSize := e.Minimal(root, hooks)
	clamped := avail.Width < minSize.Width || avail.Height < minSize.Height
	if clamped && !e.clampWarned {
		log.Printf("WARNING: layout offered %dx%d, below the minimal %dx%d; clamping to minimal size",
			avail.Width, avail.Height, minSize.Width, minSize.Height)
		e.clampWarned = true
	}
	size := avail.Max(minSize)
	unused := e.Distribute(root, graphics.Rect{Width: size.Width, Height: size.Height})
	return Result{Size: root.Size, Min: minSize, Unused: unused, Clamped: clamped}
}

// Minimal runs the bottom-up pass and returns the root's minimal size.
func (e *Engine) Minimal(root *Node, hooks SizeHooks) graphics.Size {
	e.minimal(root, hooks)
	return root.Min
}

func (e *Engine) minimal(n *Node, hooks SizeHooks) {
	d := n.Desc
	if d.Kind.IsContainer() {
		for _, c := range n.Children {
			e.minimal(c, hooks)
		}
		e.gridTracks(n)
		border := e.Theme.border(d.Kind)
		n.MinContent = graphics.Size{
			Width:  sum(n.colMin) + border.Horizontal(),
			Height: sum(n.rowMin) + border.Vertical(),
		}
	} else {
		n.MinContent = e.leafMin(n, hooks)
		n.fillX, n.fillY = d.FillX, d.FillY
	}
	n.MinContent = n.MinContent.Max(d.MinSize)
	if hooks != nil && d.Number != widgets.InvalidNumber {
		hooks.UpdateSize(d.Number, n)
	}
	n.Min = graphics.Size{
		Width:  n.MinContent.Width + d.Padding.Horizontal(),
		Height: n.MinContent.Height + d.Padding.Vertical(),
	}
}

func (e *Engine) leafMin(n *Node, hooks SizeHooks) graphics.Size {
	d := n.Desc
	var size graphics.Size
	switch {
	case d.Kind == widgets.KindCloseBox:
		size = e.Theme.CloseBox
	case d.Kind.HasText():
		n.Params.Reset()
		if hooks != nil && d.Number != widgets.InvalidNumber {
			hooks.StringParams(d.Number, &n.Params)
		}
		if e.Strings != nil && e.Measurer != nil {
			size = e.Strings.Longest(e.Measurer, d.Text, &n.Params)
		}
		border := e.Theme.border(d.Kind)
		size.Width += border.Horizontal()
		size.Height += border.Vertical()
	}
	return size
}

// gridTracks computes per-column and per-row minimal sizes and weights, and
// the container's effective fill weights.
func (e *Engine) gridTracks(n *Node) {
	rows, cols := n.Desc.Rows, n.Desc.Cols
	n.colMin = make([]int, cols)
	n.colFill = make([]int, cols)
	n.rowMin = make([]int, rows)
	n.rowFill = make([]int, rows)
	for i, c := range n.Children {
		r, col := i/cols, i%cols
		n.colMin[col] = max(n.colMin[col], c.Min.Width)
		n.rowMin[r] = max(n.rowMin[r], c.Min.Height)
		n.colFill[col] = max(n.colFill[col], c.fillX)
		n.rowFill[r] = max(n.rowFill[r], c.fillY)
	}
	n.fillX = maxOf(n.colFill)
	n.fillY = maxOf(n.rowFill)
	if n.fillX == 0 {
		n.fillX = n.Desc.FillX
	}
	if n.fillY == 0 {
		n.fillY = n.Desc.FillY
	}
}

// Distribute places n inside r and returns the surplus it could not use.
// r should be at least n.Min; a smaller r is treated as n.Min.
func (e *Engine) Distribute(n *Node, r graphics.Rect) graphics.Size {
	n.Pos = r.Origin()
	avail := r.Size().Max(n.Min)
	d := n.Desc

	if !d.Kind.IsContainer() {
		n.Size = graphics.Size{
			Width:  stepped(n.Min.Width, avail.Width, d.ResizeX),
			Height: stepped(n.Min.Height, avail.Height, d.ResizeY),
		}
		return avail.Sub(n.Size)
	}

	inset := d.Padding
	border := e.Theme.border(d.Kind)
	inset.Top += border.Top
	inset.Left += border.Left
	inset.Right += border.Right
	inset.Bottom += border.Bottom

	content := inset.Deflate(graphics.RectFromPointSize(r.Origin(), avail))
	shareX, unusedX := Split(content.Width-sum(n.colMin), n.colFill)
	shareY, unusedY := Split(content.Height-sum(n.rowMin), n.rowFill)

	colX := make([]int, len(n.colMin))
	colW := make([]int, len(n.colMin))
	x := content.X
	for i := range n.colMin {
		colX[i], colW[i] = x, n.colMin[i]+shareX[i]
		x += colW[i]
	}
	rowY := make([]int, len(n.rowMin))
	rowH := make([]int, len(n.rowMin))
	y := content.Y
	for i := range n.rowMin {
		rowY[i], rowH[i] = y, n.rowMin[i]+shareY[i]
		y += rowH[i]
	}

	// Columns sit side by side, so what they give back adds up across
	// columns; cells sharing a column only give back its narrowest use.
	colUnused := make([]int, len(colW))
	rowUnused := make([]int, len(rowH))
	for i := range colUnused {
		colUnused[i] = colW[i]
	}
	for i := range rowUnused {
		rowUnused[i] = rowH[i]
	}
	cols := d.Cols
	for i, c := range n.Children {
		row, col := i/cols, i%cols
		cell := graphics.Rect{X: colX[col], Y: rowY[row], Width: colW[col], Height: rowH[row]}
		placed := placeInCell(c, cell)
		u := e.Distribute(c, placed)
		colUnused[col] = min(colUnused[col], cell.Width-placed.Width+u.Width)
		rowUnused[row] = min(rowUnused[row], cell.Height-placed.Height+u.Height)
	}
	unused := graphics.Size{
		Width:  unusedX + sum(colUnused),
		Height: unusedY + sum(rowUnused),
	}
	n.Size = avail.Sub(unused)
	return unused
}

// placeInCell returns the rectangle a child occupies in its cell: the full
// cell along axes it fills, its minimal size centred along the others.
func placeInCell(c *Node, cell graphics.Rect) graphics.Rect {
	r := cell
	if c.fillX == 0 && cell.Width > c.Min.Width {
		r.X += (cell.Width - c.Min.Width) / 2
		r.Width = c.Min.Width
	}
	if c.fillY == 0 && cell.Height > c.Min.Height {
		r.Y += (cell.Height - c.Min.Height) / 2
		r.Height = c.Min.Height
	}
	return r
}

// stepped grows minSize toward avail in multiples of step.
func stepped(minSize, avail, step int) int {
	if avail <= minSize {
		return minSize
	}
	if step <= 1 {
		return avail
	}
	return minSize + (avail-minSize)/step*step
}

func sum(v []int) int {
	t := 0
	for _, x := range v {
		t += x
	}
	return t
}

func maxOf(v []int) int {
	m := 0
	for _, x := range v {
		m = max(m, x)
	}
	return m
}
