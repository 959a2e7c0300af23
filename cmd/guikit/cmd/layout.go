package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/window"
	"golang.org/x/term"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print window and widget geometry",
		Long: `Open the toolbar, the bottom toolbar and the quit dialog on a display
of the configured size and print the geometry of every window and widget.

Output is styled when stdout is a terminal. Use --plain to force plain
ASCII output.

Usage:
  guikit layout
  guikit layout --width 1024 --height 768
  guikit layout --plain`,
		Usage: "guikit layout [--width N] [--height N] [--plain]",
		Run:   runLayout,
	})
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#888888"))
	windowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0493F8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	slackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
)

func runLayout(args []string) error {
	size, rest, err := parseSizeFlags(args)
	if err != nil {
		return err
	}
	plain := false
	for _, arg := range rest {
		switch arg {
		case "--plain":
			plain = true
		default:
			return fmt.Errorf("unknown argument %q\n\nUsage: guikit layout [--width N] [--height N] [--plain]", arg)
		}
	}

	cfg, g, err := newSession(size)
	if err != nil {
		return err
	}
	g.ShowToolbar()
	g.ShowBottomToolbar()
	g.ShowQuitProgram()

	tty, width := terminal()
	styled := tty && !plain

	d := g.Manager.DisplaySize()
	fmt.Fprintf(stdout, "Display %dx%d, font %s\n\n", d.Width, d.Height, cfg.Font)
	fmt.Fprintln(stdout, layoutTable(g.Manager.Windows(), styled, width))
	return nil
}

// terminal reports whether stdout is a terminal and its width.
func terminal() (bool, int) {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, w
}

func layoutTable(windows []*window.Window, styled bool, width int) *table.Table {
	rows, windowRows, colours := layoutRows(windows)

	t := table.New().
		Headers("WINDOW", "WIDGET", "X", "Y", "W", "H", "MIN", "TEXT").
		Rows(rows...)
	if !styled {
		return t.Border(lipgloss.ASCIIBorder())
	}

	t = t.Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case windowRows[row]:
				if col == 6 && rows[row][6] != "" {
					return slackStyle.Padding(0, 1)
				}
				return windowStyle.Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if c := colours[row]; col == 1 && c.Alpha8() != 0 {
				style = style.Foreground(lipgloss.Color(c.Hex()))
			}
			return style
		})
	if width > 0 {
		t = t.Width(width)
	}
	return t
}

// layoutRows returns one row per window followed by its widgets in tree
// order, marks which rows describe windows and records the colour of each
// widget row. Window rows carry the unused slack in the MIN column.
func layoutRows(windows []*window.Window) ([][]string, map[int]bool, map[int]graphics.Color) {
	var rows [][]string
	windowRows := make(map[int]bool)
	colours := make(map[int]graphics.Color)
	for _, w := range windows {
		r := w.Rect()
		slack := ""
		if s := w.Slack(); s != (graphics.Size{}) {
			slack = fmt.Sprintf("slack %dx%d", s.Width, s.Height)
		}
		windowRows[len(rows)] = true
		rows = append(rows, []string{
			string(w.Class()), "", itoa(r.X), itoa(r.Y), itoa(r.Width), itoa(r.Height), slack, "",
		})

		strs := w.Env().Strings
		var walk func(n *layout.Node, depth int)
		walk = func(n *layout.Node, depth int) {
			abs := n.Rect().Translate(r.X, r.Y)
			text := ""
			if strs != nil {
				text = strs.Format(n.Desc.Text, &n.Params)
			}
			colours[len(rows)] = n.Desc.Colour.Base()
			rows = append(rows, []string{
				"",
				strings.Repeat("  ", depth) + widgetID(n),
				itoa(abs.X), itoa(abs.Y), itoa(abs.Width), itoa(abs.Height),
				fmt.Sprintf("%dx%d", n.Min.Width, n.Min.Height),
				text,
			})
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
		if root := w.Root(); root != nil {
			walk(root, 0)
		}
	}
	return rows, windowRows, colours
}

func widgetID(n *layout.Node) string {
	if n.Number() < 0 {
		return n.Kind().String()
	}
	return fmt.Sprintf("%s#%d", n.Kind(), n.Number())
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
