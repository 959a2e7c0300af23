package cmd

import (
	"fmt"

	"github.com/go-drift/guikit/cmd/guikit/internal/replay"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Play a scripted session",
		Long: `Play clicks, drags, resizes and state changes from a yaml script
against the toolbar windows, printing the live window list after each step.

Script format:
  open: [toolbar, bottom-toolbar]
  steps:
    - click: {window: toolbar, widget: 0}
    - click: {x: 12, y: 4}
    - drag: {from: {x: 300, y: 240}, to: {x: 100, y: 100}}
    - resize: {width: 1024, height: 768}
    - pay: 250
    - advance: 3
    - change: display-old
    - open: quit
    - close: quit

Usage:
  guikit replay session.yaml
  guikit replay --width 1024 session.yaml`,
		Usage: "guikit replay [--width N] [--height N] <script.yaml>",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	size, rest, err := parseSizeFlags(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("a script path is required\n\nUsage: guikit replay [--width N] [--height N] <script.yaml>")
	}

	script, err := replay.LoadFile(rest[0])
	if err != nil {
		return err
	}
	_, g, err := newSession(size)
	if err != nil {
		return err
	}

	p := &replay.Player{GUI: g, Out: stdout}
	if err := p.Run(script); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Replayed %d steps\n", len(script.Steps))
	return nil
}
