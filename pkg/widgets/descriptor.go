package widgets

import (
	"fmt"

	"github.com/go-drift/guikit/pkg/errors"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
)

// Descriptor is one node of a validated widget tree. Descriptors are built
// once from a static table and never mutated afterwards.
type Descriptor struct {
	Kind    Kind
	Number  Number
	Colour  ColourRange
	Text    language.StringID
	Tooltip language.StringID
	Padding graphics.Padding
	FillX   int
	FillY   int
	ResizeX int
	ResizeY int
	MinSize graphics.Size

	// Rows and Cols are the grid dimensions as resolved from the declared
	// counts and the number of children.
	Rows int
	Cols int

	Children []*Descriptor
}

// Walk visits d and its descendants depth-first, parents before children.
func (d *Descriptor) Walk(visit func(*Descriptor)) {
	visit(d)
	for _, c := range d.Children {
		c.Walk(visit)
	}
}

// Find returns the descriptor with the given number, or nil.
func (d *Descriptor) Find(number Number) *Descriptor {
	if number == InvalidNumber {
		return nil
	}
	var found *Descriptor
	d.Walk(func(n *Descriptor) {
		if found == nil && n.Number == number {
			found = n
		}
	})
	return found
}

// Numbers returns the widget numbers used in the tree in declaration order.
func (d *Descriptor) Numbers() []Number {
	var out []Number
	d.Walk(func(n *Descriptor) {
		if n.Number != InvalidNumber {
			out = append(out, n.Number)
		}
	})
	return out
}

type scope struct {
	node        *Descriptor
	declRows    int
	declCols    int
	openedIndex int
}

// Build validates a widget table and returns its tree.
// Every fault is reported as an *errors.TableError.
func Build(parts []Part) (*Descriptor, error) {
	if len(parts) == 0 {
		return nil, &errors.TableError{Index: -1, Reason: "empty table"}
	}

	var (
		root    *Descriptor
		stack   []scope
		current *Descriptor // target of modifiers
		numbers = make(map[Number]int)
	)

	attach := func(i int, d *Descriptor) error {
		if len(stack) == 0 {
			if root != nil {
				return &errors.TableError{Index: i, Reason: "more than one root widget"}
			}
			root = d
			return nil
		}
		top := &stack[len(stack)-1]
		top.node.Children = append(top.node.Children, d)
		if top.declRows > 0 && top.declCols > 0 && len(top.node.Children) > top.declRows*top.declCols {
			return &errors.TableError{Index: i, Reason: fmt.Sprintf("grid %dx%d has more than %d children", top.declRows, top.declCols, top.declRows*top.declCols)}
		}
		return nil
	}

	for i, p := range parts {
		switch {
		case p.typ == partWidget || p.typ == partIntermediate:
			if p.typ == partIntermediate && p.rows == 0 && p.cols == 0 {
				return nil, &errors.TableError{Index: i, Reason: "intermediate with zero rows and zero columns"}
			}
			if p.rows < 0 || p.cols < 0 {
				return nil, &errors.TableError{Index: i, Reason: "negative grid dimension"}
			}
			d := &Descriptor{Kind: p.kind, Number: p.number, Colour: p.colour}
			if d.Number < InvalidNumber {
				return nil, &errors.TableError{Index: i, Reason: fmt.Sprintf("invalid widget number %d", d.Number)}
			}
			if d.Number != InvalidNumber {
				if prev, dup := numbers[d.Number]; dup {
					return nil, &errors.TableError{Index: i, Reason: fmt.Sprintf("widget number %d already used by part %d", d.Number, prev)}
				}
				numbers[d.Number] = i
			}
			if err := attach(i, d); err != nil {
				return nil, err
			}
			current = d
			if d.Kind.IsContainer() {
				s := scope{node: d, declRows: p.rows, declCols: p.cols, openedIndex: i}
				if d.Kind == KindPanel {
					s.declRows, s.declCols = 0, 1
				}
				stack = append(stack, s)
			}

		case p.typ == partEndContainer:
			if len(stack) == 0 {
				return nil, &errors.TableError{Index: i, Reason: "EndContainer without an open container"}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.node.Rows, top.node.Cols = resolveGrid(top.declRows, top.declCols, len(top.node.Children))
			current = nil

		case p.typ.isModifier():
			if current == nil {
				return nil, &errors.TableError{Index: i, Reason: p.typ.String() + " without a preceding widget"}
			}
			if err := applyModifier(current, p); err != nil {
				return nil, &errors.TableError{Index: i, Reason: err.Error()}
			}

		default:
			return nil, &errors.TableError{Index: i, Reason: "unknown part"}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, &errors.TableError{Index: -1, Reason: fmt.Sprintf("container opened at part %d is never closed", top.openedIndex)}
	}
	return root, nil
}

// MustBuild is like Build but panics on a malformed table. It is meant for
// package-level tables, where a fault is a programming error.
func MustBuild(parts []Part) *Descriptor {
	d, err := Build(parts)
	if err != nil {
		panic(err)
	}
	return d
}

func applyModifier(d *Descriptor, p Part) error {
	switch p.typ {
	case partData:
		d.Text = p.text
		d.Tooltip = p.tooltip
	case partPadding:
		if p.padding.Top < 0 || p.padding.Left < 0 || p.padding.Right < 0 || p.padding.Bottom < 0 {
			return fmt.Errorf("negative padding")
		}
		d.Padding = p.padding
	case partFill:
		if p.x < 0 || p.y < 0 {
			return fmt.Errorf("negative fill weight")
		}
		d.FillX, d.FillY = p.x, p.y
	case partResize:
		if p.x < 0 || p.y < 0 {
			return fmt.Errorf("negative resize step")
		}
		d.ResizeX, d.ResizeY = p.x, p.y
	case partMinSize:
		if p.x < 0 || p.y < 0 {
			return fmt.Errorf("negative minimal size")
		}
		d.MinSize = graphics.Size{Width: p.x, Height: p.y}
	}
	return nil
}

// resolveGrid fills in the free dimension from the child count.
func resolveGrid(rows, cols, n int) (int, int) {
	switch {
	case rows == 0:
		rows = (n + cols - 1) / cols
	case cols == 0:
		cols = (n + rows - 1) / rows
	}
	return rows, cols
}
