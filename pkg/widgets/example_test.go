package widgets_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/widgets"
)

const (
	strCaption language.StringID = language.FirstUserString + iota
	strOK
)

const buttonOK widgets.Number = 0

// This example builds a small dialog and prints its tree.
func ExampleBuild() {
	root, err := widgets.Build([]widgets.Part{
		widgets.Intermediate(0, 1),
		widgets.Intermediate(1, 0),
		widgets.Widget(widgets.KindTitleBar, widgets.InvalidNumber, widgets.ColourRed),
		widgets.SetData(strCaption, language.StrNull),
		widgets.SetFill(1, 0),
		widgets.Widget(widgets.KindCloseBox, widgets.InvalidNumber, widgets.ColourRed),
		widgets.EndContainer(),
		widgets.Widget(widgets.KindPanel, widgets.InvalidNumber, widgets.ColourRed),
		widgets.Widget(widgets.KindTextPushButton, buttonOK, widgets.ColourYellow),
		widgets.SetData(strOK, language.StrNull),
		widgets.EndContainer(),
		widgets.EndContainer(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	var print func(d *widgets.Descriptor, depth int)
	print = func(d *widgets.Descriptor, depth int) {
		line := strings.Repeat("  ", depth) + d.Kind.String()
		if d.Kind == widgets.KindGrid {
			line += fmt.Sprintf(" %dx%d", d.Rows, d.Cols)
		}
		if d.Number != widgets.InvalidNumber {
			line += fmt.Sprintf(" #%d", d.Number)
		}
		fmt.Println(line)
		for _, c := range d.Children {
			print(c, depth+1)
		}
	}
	print(root, 0)
	// Output:
	// grid 2x1
	//   grid 1x2
	//     titlebar
	//     closebox
	//   panel
	//     text_pushbutton #0
}

// This example shows how a malformed table is reported.
func ExampleBuild_malformed() {
	_, err := widgets.Build([]widgets.Part{
		widgets.Intermediate(1, 0),
		widgets.Widget(widgets.KindEmpty, widgets.InvalidNumber, widgets.ColourNone),
	})
	fmt.Println(err)
	// Output:
	// widget table: container opened at part 0 is never closed
}
