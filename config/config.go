// Package config loads runtime settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cellbridge/input"
	"github.com/lixenwraith/cellbridge/render"
	"github.com/lixenwraith/cellbridge/terminal"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported config format")

// BorderConfig holds single-line border glyphs, one character each
type BorderConfig struct {
	Horizontal  string `toml:"horizontal" yaml:"horizontal"`
	Vertical    string `toml:"vertical" yaml:"vertical"`
	TopLeft     string `toml:"top_left" yaml:"top_left"`
	TopRight    string `toml:"top_right" yaml:"top_right"`
	BottomLeft  string `toml:"bottom_left" yaml:"bottom_left"`
	BottomRight string `toml:"bottom_right" yaml:"bottom_right"`
}

// ThemeConfig is the file form of render.Theme
type ThemeConfig struct {
	Border         BorderConfig `toml:"border" yaml:"border"`
	ScrollbarTrack string       `toml:"scrollbar_track" yaml:"scrollbar_track"`
	ScrollbarThumb string       `toml:"scrollbar_thumb" yaml:"scrollbar_thumb"`

	// AspectRatio zero means detect from the terminal
	AspectRatio float32 `toml:"aspect_ratio" yaml:"aspect_ratio"`
	AlphaAsDim  bool    `toml:"alpha_as_dim" yaml:"alpha_as_dim"`
	Scrollbars  bool    `toml:"scrollbars" yaml:"scrollbars"`
}

// Config is the complete runtime configuration
type Config struct {
	ArenaSize      int    `toml:"arena_size" yaml:"arena_size"`
	FrameArenaSize int    `toml:"frame_arena_size" yaml:"frame_arena_size"`
	FPS            int    `toml:"fps" yaml:"fps"`
	ColorMode      string `toml:"color_mode" yaml:"color_mode"`
	Debug          bool   `toml:"debug" yaml:"debug"`
	LogDir         string `toml:"log_dir" yaml:"log_dir"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`

	Theme ThemeConfig `toml:"theme" yaml:"theme"`

	// Keymap overrides scroll bindings: key name to action name, "none" unbinds
	Keymap map[string]string `toml:"keymap" yaml:"keymap"`
}

// Default returns the built-in configuration
func Default() Config {
	def := render.DefaultTheme()
	return Config{
		FPS:       60,
		ColorMode: "auto",
		LogDir:    "logs",
		LogLevel:  "debug",
		Theme: ThemeConfig{
			Border: BorderConfig{
				Horizontal:  string(def.Border.Horizontal),
				Vertical:    string(def.Border.Vertical),
				TopLeft:     string(def.Border.TopLeft),
				TopRight:    string(def.Border.TopRight),
				BottomLeft:  string(def.Border.BottomLeft),
				BottomRight: string(def.Border.BottomRight),
			},
			ScrollbarTrack: string(def.Scrollbar.Track),
			ScrollbarThumb: string(def.Scrollbar.Thumb),
			AlphaAsDim:     def.AlphaAsDim,
			Scrollbars:     def.Scrollbars,
		},
	}
}

// Load reads a config file over Default; the format follows the extension
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Parse decodes data in the given format ("toml" or "yaml") over Default and validates it
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	case "yaml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", format, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be clamped
func (c Config) Validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if _, ok := terminal.ParseColorMode(c.ColorMode); !ok {
		return fmt.Errorf("unknown color_mode %q", c.ColorMode)
	}
	if c.Theme.AspectRatio < 0 {
		return fmt.Errorf("theme aspect_ratio must not be negative, got %v", c.Theme.AspectRatio)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	if _, err := input.ParseKeymap(c.Keymap); err != nil {
		return err
	}
	return nil
}

func glyph(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("theme %s must be a single character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Resolve converts the file form into a render.Theme
// A zero AspectRatio is left zero for the caller to detect
func (t ThemeConfig) Resolve() (render.Theme, error) {
	var theme render.Theme
	fields := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"border.horizontal", t.Border.Horizontal, &theme.Border.Horizontal},
		{"border.vertical", t.Border.Vertical, &theme.Border.Vertical},
		{"border.top_left", t.Border.TopLeft, &theme.Border.TopLeft},
		{"border.top_right", t.Border.TopRight, &theme.Border.TopRight},
		{"border.bottom_left", t.Border.BottomLeft, &theme.Border.BottomLeft},
		{"border.bottom_right", t.Border.BottomRight, &theme.Border.BottomRight},
		{"scrollbar_track", t.ScrollbarTrack, &theme.Scrollbar.Track},
		{"scrollbar_thumb", t.ScrollbarThumb, &theme.Scrollbar.Thumb},
	}
	for _, f := range fields {
		r, err := glyph(f.name, f.src)
		if err != nil {
			return render.Theme{}, err
		}
		*f.dst = r
	}

	theme.AspectRatio = t.AspectRatio
	theme.AlphaAsDim = t.AlphaAsDim
	theme.Scrollbars = t.Scrollbars
	return theme, nil
}

// ResolveKeymap merges the configured overrides into the default keymap
func (c Config) ResolveKeymap() (input.Keymap, error) {
	override, err := input.ParseKeymap(c.Keymap)
	if err != nil {
		return nil, err
	}
	return input.DefaultKeymap().Merge(override), nil
}
