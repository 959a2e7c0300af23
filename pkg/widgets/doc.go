// Package widgets describes window contents as flat tables of parts.
//
// A window definition is a list of Parts. Widget and Intermediate open
// nodes, the modifier parts (SetData, SetPadding, SetFill, SetResize,
// SetMinimalSize) apply to the most recent widget, and EndContainer closes
// the innermost open container. Build turns the list into an immutable
// Descriptor tree and rejects malformed tables with a *errors.TableError.
//
// # Containers
//
// Intermediate(rows, cols) creates a grid. A zero dimension is the free
// one and grows with the number of children:
//
//	widgets.Intermediate(1, 0) // a row
//	widgets.Intermediate(0, 1) // a column
//	widgets.Intermediate(2, 2) // a fixed 2x2 grid
//
// Panels are containers too. Their children are stacked in one column and
// the panel draws a border around them, so Widget(KindPanel, ...) must be
// closed with EndContainer like a grid.
//
// # Example
//
// A dialog with a caption, a close box and one button:
//
//	var parts = []widgets.Part{
//		widgets.Intermediate(0, 1),
//		widgets.Intermediate(1, 0),
//		widgets.Widget(widgets.KindTitleBar, widgets.InvalidNumber, widgets.ColourRed),
//		widgets.SetData(strCaption, strNull),
//		widgets.SetFill(1, 0),
//		widgets.Widget(widgets.KindCloseBox, widgets.InvalidNumber, widgets.ColourRed),
//		widgets.EndContainer(),
//		widgets.Widget(widgets.KindPanel, widgets.InvalidNumber, widgets.ColourRed),
//		widgets.Widget(widgets.KindTextPushButton, buttonOK, widgets.ColourYellow),
//		widgets.SetData(strOK, strNull),
//		widgets.EndContainer(),
//		widgets.EndContainer(),
//	}
//
// Static tables are usually checked once at startup with MustBuild.
//
// # Numbers
//
// Widgets that handlers, string parameters or tests need to address get a
// Number unique within the table. InvalidNumber marks anonymous widgets;
// any number of them may appear.
package widgets
