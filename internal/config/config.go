// Package config loads the editor settings from a TOML file layered over
// built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gokin/internal/editor"
	"github.com/philipparndt/gokin/internal/scene"
	"github.com/philipparndt/gokin/pkg/sketch"
)

// Snap strategies
const (
	StrategyFirst   = "first"
	StrategyNearest = "nearest"
)

// Config is the full settings tree
type Config struct {
	Snap   SnapConfig   `toml:"snap"`
	Beam   BeamConfig   `toml:"beam"`
	Window WindowConfig `toml:"window"`
	Colors ColorConfig  `toml:"colors"`
}

type SnapConfig struct {
	Radius   float64 `toml:"radius"`
	Strategy string  `toml:"strategy"` // "first" or "nearest"
}

type BeamConfig struct {
	Width float64 `toml:"width"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ColorConfig struct {
	Fill       string `toml:"fill"`
	Stroke     string `toml:"stroke"`
	Accent     string `toml:"accent"`
	Background string `toml:"background"`
	Ground     string `toml:"ground"`
}

// Default returns the settings used when no file is given
func Default() Config {
	style := scene.DefaultStyle()
	return Config{
		Snap: SnapConfig{
			Radius:   sketch.DefaultSnapRadius,
			Strategy: StrategyFirst,
		},
		Beam:   BeamConfig{Width: editor.DefaultBeamWidth},
		Window: WindowConfig{Width: 1280, Height: 800},
		Colors: ColorConfig{
			Fill:       style.Fill,
			Stroke:     style.Stroke,
			Accent:     style.Accent,
			Background: style.Background,
			Ground:     style.Ground,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys the file sets that Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.Snap.Radius <= 0 {
		return fmt.Errorf("snap.radius must be positive, got %g", c.Snap.Radius)
	}
	switch c.Snap.Strategy {
	case StrategyFirst, StrategyNearest:
	default:
		return fmt.Errorf("snap.strategy must be %q or %q, got %q", StrategyFirst, StrategyNearest, c.Snap.Strategy)
	}
	if c.Beam.Width <= 0 {
		return fmt.Errorf("beam.width must be positive, got %g", c.Beam.Width)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	for name, hex := range c.Colors.byName() {
		if _, err := scene.ParseHexColor(hex, 1); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}
	}
	return nil
}

func (c ColorConfig) byName() map[string]string {
	return map[string]string{
		"fill":       c.Fill,
		"stroke":     c.Stroke,
		"accent":     c.Accent,
		"background": c.Background,
		"ground":     c.Ground,
	}
}

// SnapIndex builds the node lookup selected by snap.strategy
func (c Config) SnapIndex() sketch.SnapIndex {
	if c.Snap.Strategy == StrategyNearest {
		return sketch.NewRTreeIndex(c.Snap.Radius)
	}
	return sketch.NewLinearIndex(c.Snap.Radius)
}

// NewEditor returns an editor on an empty graph configured from c
func (c Config) NewEditor(opts ...editor.Option) *editor.Editor {
	g := sketch.New(sketch.WithSnapIndex(c.SnapIndex()))
	base := []editor.Option{editor.WithGraph(g), editor.WithBeamWidth(c.Beam.Width)}
	return editor.New(append(base, opts...)...)
}

// Style returns the drawing style with the configured colors
func (c Config) Style() scene.Style {
	s := scene.DefaultStyle()
	s.Fill = c.Colors.Fill
	s.Stroke = c.Colors.Stroke
	s.Accent = c.Colors.Accent
	s.Background = c.Colors.Background
	s.Ground = c.Colors.Ground
	s.BeamWidth = c.Beam.Width
	return s
}
