package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/guikit/cmd/guikit/internal/config"
	"github.com/go-drift/guikit/pkg/game"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/gui"
	"github.com/go-drift/guikit/pkg/window"
)

// newSession resolves the configuration and creates a GUI on a display of
// the configured size. A non-zero override replaces the configured axis.
func newSession(override graphics.Size) (*config.Resolved, *gui.GUI, error) {
	cfg, err := config.Resolve(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if override.Width > 0 {
		cfg.Display.Width = override.Width
	}
	if override.Height > 0 {
		cfg.Display.Height = override.Height
	}

	m := window.NewManager(cfg.Env())
	actions := gui.Actions{
		Quit: func() { fmt.Fprintln(stdout, "quit requested") },
	}
	g := gui.New(m, game.NewFinances(cfg.Cash), game.NewClock(game.StartDate), actions)
	return cfg, g, nil
}

// parseSizeFlags extracts --width N and --height N from args and returns
// the remaining arguments.
func parseSizeFlags(args []string) (graphics.Size, []string, error) {
	var size graphics.Size
	var rest []string
	for i := 0; i < len(args); i++ {
		var dst *int
		switch args[i] {
		case "--width":
			dst = &size.Width
		case "--height":
			dst = &size.Height
		default:
			rest = append(rest, args[i])
			continue
		}
		if i+1 >= len(args) {
			return size, nil, fmt.Errorf("%s requires a value", args[i])
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil || n <= 0 || n > 0xFFFF {
			return size, nil, fmt.Errorf("%s: invalid value %q", args[i], args[i+1])
		}
		*dst = n
		i++
	}
	return size, rest, nil
}
