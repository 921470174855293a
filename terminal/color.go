package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode maps a config value to a mode; "auto" and "" detect from the environment
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), true
	case "truecolor", "24bit":
		return ColorModeTrueColor, true
	case "256":
		return ColorMode256, true
	}
	return ColorMode256, false
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// ColorKind selects how a Color is emitted
type ColorKind uint8

const (
	ColorKindDefault ColorKind = iota // terminal default
	ColorKindRGB                      // 24-bit
	ColorKindIndexed                  // 256 palette, index in RGB.R
)

// Color is a resolved cell color
// The zero value is the terminal default
type Color struct {
	Kind ColorKind
	RGB  RGB
}

// ColorDefault is the terminal's own foreground or background
var ColorDefault = Color{}

// ColorFromRGB creates a 24-bit color
func ColorFromRGB(r, g, b uint8) Color {
	return Color{Kind: ColorKindRGB, RGB: RGB{r, g, b}}
}

// ColorFromIndex creates a 256-palette color
func ColorFromIndex(i uint8) Color {
	return Color{Kind: ColorKindIndexed, RGB: RGB{R: i}}
}

// IsDefault reports whether the color defers to the terminal
func (c Color) IsDefault() bool {
	return c.Kind == ColorKindDefault
}

// Index returns the palette index for indexed colors
func (c Color) Index() uint8 {
	return c.RGB.R
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
