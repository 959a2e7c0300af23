package layout

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/widgets"
)

// Node is the runtime instance of one Descriptor inside one window.
// The engine writes its geometry; the owning window writes its Params.
type Node struct {
	Desc *widgets.Descriptor

	// Pos is the top-left corner relative to the window origin.
	Pos graphics.Point
	// Size is the assigned size, padding included.
	Size graphics.Size
	// MinContent is the minimal size without padding. Size hooks may raise it.
	MinContent graphics.Size
	// Min is the minimal size with padding, valid after the minimal pass.
	Min graphics.Size
	// Params are the dynamic string arguments of the widget's text.
	Params language.Params

	Children []*Node
	parent   *Node

	// Effective fill weights: a container grows if any child does.
	fillX, fillY int

	// Grid tracks, valid for containers after the minimal pass.
	colMin, rowMin   []int
	colFill, rowFill []int
}

// Instantiate creates the node tree for a descriptor tree.
func Instantiate(d *widgets.Descriptor) *Node {
	n := &Node{Desc: d}
	for _, c := range d.Children {
		child := Instantiate(c)
		child.parent = n
		n.Children = append(n.Children, child)
	}
	return n
}

// Kind returns the descriptor kind.
func (n *Node) Kind() widgets.Kind {
	return n.Desc.Kind
}

// Number returns the descriptor's widget number.
func (n *Node) Number() widgets.Number {
	return n.Desc.Number
}

// Parent returns the enclosing container, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Rect returns the node's rectangle relative to the window origin.
func (n *Node) Rect() graphics.Rect {
	return graphics.RectFromPointSize(n.Pos, n.Size)
}

// ContentRect returns Rect with the padding removed.
func (n *Node) ContentRect() graphics.Rect {
	return n.Desc.Padding.Deflate(n.Rect())
}

// RaiseMin grows the minimal content size to at least s on each axis.
// Size hooks call it; it never shrinks the size.
func (n *Node) RaiseMin(s graphics.Size) {
	n.MinContent = n.MinContent.Max(s)
}

// FillX returns the effective horizontal fill weight.
func (n *Node) FillX() int { return n.fillX }

// FillY returns the effective vertical fill weight.
func (n *Node) FillY() int { return n.fillY }

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Find returns the node with the given widget number, or nil.
func (n *Node) Find(number widgets.Number) *Node {
	if number == widgets.InvalidNumber {
		return nil
	}
	if n.Desc.Number == number {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(number); f != nil {
			return f
		}
	}
	return nil
}

// HitTest returns the deepest node whose rectangle contains p, with p
// relative to the window origin. Later siblings win over earlier ones.
func (n *Node) HitTest(p graphics.Point) *Node {
	if !n.Rect().Contains(p) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return n
}

// Release drops the tree so nothing keeps the instances alive.
func (n *Node) Release() {
	for _, c := range n.Children {
		c.Release()
		c.parent = nil
	}
	n.Children = nil
	n.colMin, n.rowMin, n.colFill, n.rowFill = nil, nil, nil, nil
}
