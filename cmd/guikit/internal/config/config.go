// Package config loads the optional guikit.yaml of the guikit CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	guierrors "github.com/go-drift/guikit/pkg/errors"
	"github.com/go-drift/guikit/pkg/game"
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/gui"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/layout"
	"github.com/go-drift/guikit/pkg/text"
	"github.com/go-drift/guikit/pkg/window"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up in a directory.
const FileName = "guikit.yaml"

// SchemaMajor is the only supported major version of the file format.
const SchemaMajor = "v1"

// Font kinds.
const (
	FontBasic = "basic"
	FontCells = "cells"
)

// Defaults applied by Resolve.
const (
	DefaultWidth      = 640
	DefaultHeight     = 480
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultCash       = game.Money(100000)
)

// Config represents the optional guikit.yaml configuration.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	Display DisplayConfig `yaml:"display"`
	Font    FontConfig    `yaml:"font"`
	Theme   ThemeConfig   `yaml:"theme"`
	Strings string        `yaml:"strings,omitempty"`
	Money   MoneyConfig   `yaml:"money"`
}

// DisplayConfig is the initial display size.
type DisplayConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// FontConfig selects the text measurer.
type FontConfig struct {
	Kind       string `yaml:"kind,omitempty"`
	CellWidth  int    `yaml:"cell_width,omitempty"`
	CellHeight int    `yaml:"cell_height,omitempty"`
}

// ThemeConfig overrides decoration sizes. Absent entries keep the defaults.
type ThemeConfig struct {
	ButtonBorder   *PaddingConfig `yaml:"button_border,omitempty"`
	TitleBarBorder *PaddingConfig `yaml:"titlebar_border,omitempty"`
	PanelBorder    *PaddingConfig `yaml:"panel_border,omitempty"`
	CloseBox       *SizeConfig    `yaml:"closebox,omitempty"`
}

// PaddingConfig is a border in pixels.
type PaddingConfig struct {
	Top    int `yaml:"top"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// SizeConfig is a width and height in pixels.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MoneyConfig overrides the money conventions of the selected language and
// sets the starting cash in cents.
type MoneyConfig struct {
	Currency  *string `yaml:"currency,omitempty"`
	Thousands *string `yaml:"thousands,omitempty"`
	Decimal   *string `yaml:"decimal,omitempty"`
	Cash      *int64  `yaml:"cash,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root     string
	Version  string
	Display  graphics.Size
	Font     string
	Measurer text.Measurer
	Theme    layout.Theme
	Strings  *language.Table
	Cash     game.Money
}

// Env returns a window environment on a fresh screen of the configured size.
func (r *Resolved) Env() window.Env {
	return window.Env{
		Display:  window.NewScreen(r.Display.Width, r.Display.Height),
		Measurer: r.Measurer,
		Strings:  r.Strings,
		Theme:    r.Theme,
	}
}

// LoadOptional reads guikit.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads guikit.yaml (if present) from dir and resolves defaults.
// Validation failures are returned as *errors.GuiError of kind KindConfig.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, configError(err)
	}
	r, err := cfg.resolve(dir)
	if err != nil {
		return nil, configError(err)
	}
	return r, nil
}

func configError(err error) error {
	return &guierrors.GuiError{Op: "config.Resolve", Kind: guierrors.KindConfig, Err: err}
}

func (cfg *Config) resolve(dir string) (*Resolved, error) {
	version, err := checkVersion(cfg.Version)
	if err != nil {
		return nil, err
	}

	display := graphics.Size{Width: cfg.Display.Width, Height: cfg.Display.Height}
	if display.Width == 0 {
		display.Width = DefaultWidth
	}
	if display.Height == 0 {
		display.Height = DefaultHeight
	}
	if err := checkDisplay(display); err != nil {
		return nil, err
	}

	kind, measurer, err := cfg.Font.measurer()
	if err != nil {
		return nil, err
	}

	theme, err := cfg.Theme.apply(layout.DefaultTheme())
	if err != nil {
		return nil, err
	}

	table, err := cfg.stringTable(dir)
	if err != nil {
		return nil, err
	}

	cash := DefaultCash
	if cfg.Money.Cash != nil {
		cash = game.Money(*cfg.Money.Cash)
	}

	return &Resolved{
		Root:     dir,
		Version:  version,
		Display:  display,
		Font:     kind,
		Measurer: measurer,
		Theme:    theme,
		Strings:  table,
		Cash:     cash,
	}, nil
}

// checkVersion accepts an empty version or one whose major is SchemaMajor.
// The leading "v" is optional.
func checkVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaMajor + ".0.0", nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("version %q is not a semantic version", v)
	}
	if major := semver.Major(v); major != SchemaMajor {
		return "", fmt.Errorf("version %s is not supported (want %s.x)", v, SchemaMajor)
	}
	return semver.Canonical(v), nil
}

func checkDisplay(s graphics.Size) error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("display size %dx%d is negative", s.Width, s.Height)
	}
	if s.Width > 0xFFFF || s.Height > 0xFFFF {
		return fmt.Errorf("display size %dx%d exceeds 65535", s.Width, s.Height)
	}
	return nil
}

func (f FontConfig) measurer() (string, text.Measurer, error) {
	switch kind := strings.ToLower(strings.TrimSpace(f.Kind)); kind {
	case "", FontBasic:
		return FontBasic, text.NewFontMeasurer(nil), nil
	case FontCells:
		cw, ch := f.CellWidth, f.CellHeight
		if cw == 0 {
			cw = DefaultCellWidth
		}
		if ch == 0 {
			ch = DefaultCellHeight
		}
		if cw < 0 || ch < 0 {
			return "", nil, fmt.Errorf("font cell size %dx%d is negative", cw, ch)
		}
		return FontCells, text.CellMeasurer{CellWidth: cw, CellHeight: ch}, nil
	default:
		return "", nil, fmt.Errorf("unknown font kind %q (use %s or %s)", f.Kind, FontBasic, FontCells)
	}
}

func (t ThemeConfig) apply(theme layout.Theme) (layout.Theme, error) {
	borders := []struct {
		name string
		cfg  *PaddingConfig
		dst  *graphics.Padding
	}{
		{"button_border", t.ButtonBorder, &theme.ButtonBorder},
		{"titlebar_border", t.TitleBarBorder, &theme.TitleBarBorder},
		{"panel_border", t.PanelBorder, &theme.PanelBorder},
	}
	for _, b := range borders {
		if b.cfg == nil {
			continue
		}
		p := graphics.Padding{Top: b.cfg.Top, Left: b.cfg.Left, Right: b.cfg.Right, Bottom: b.cfg.Bottom}
		if p.Top < 0 || p.Left < 0 || p.Right < 0 || p.Bottom < 0 {
			return theme, fmt.Errorf("theme.%s has a negative side", b.name)
		}
		*b.dst = p
	}
	if t.CloseBox != nil {
		if t.CloseBox.Width < 0 || t.CloseBox.Height < 0 {
			return theme, fmt.Errorf("theme.closebox is negative")
		}
		theme.CloseBox = graphics.Size{Width: t.CloseBox.Width, Height: t.CloseBox.Height}
	}
	return theme, nil
}

// stringTable builds the string table: the built-in English strings, plus the
// configured language file selected as current. Money overrides apply to
// the current language.
func (cfg *Config) stringTable(dir string) (*language.Table, error) {
	table := gui.DefaultStrings()
	if path := strings.TrimSpace(cfg.Strings); path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		lang, err := language.LoadFile(path, gui.StringNames)
		if err != nil {
			return nil, err
		}
		table.Add(lang)
		table.Select(lang.Name)
	}

	cur, m := table.Current(), cfg.Money
	if m.Currency != nil {
		cur.Currency = *m.Currency
	}
	if m.Thousands != nil {
		cur.Thousands = *m.Thousands
	}
	if m.Decimal != nil {
		cur.Decimal = *m.Decimal
	}
	return table, nil
}
