package render

import (
	"github.com/lixenwraith/cellbridge/terminal"
)

// ScrollbarGlyphs are the runes of a vertical scrollbar
type ScrollbarGlyphs struct {
	Track rune
	Thumb rune
}

// Theme controls how render commands become cells
type Theme struct {
	// Border glyphs for single-line borders; double and rounded use built-in sets
	Border    terminal.BoxGlyphs
	Scrollbar ScrollbarGlyphs

	// AspectRatio is cell height over cell width; horizontal layout units are scaled by it
	AspectRatio float32

	// AlphaAsDim renders rectangles with alpha below 128 dimmed
	AlphaAsDim bool

	// Scrollbars draws a vertical bar in scroll containers whose content overflows
	Scrollbars bool
}

// DefaultTheme uses single-line box drawing, a full-block thumb and 2:1 cells
func DefaultTheme() Theme {
	return Theme{
		Border:      terminal.Glyphs(terminal.LineSingle),
		Scrollbar:   ScrollbarGlyphs{Track: '│', Thumb: '█'},
		AspectRatio: terminal.DefaultAspectRatio,
		AlphaAsDim:  true,
		Scrollbars:  true,
	}
}

// normalized fills unset fields from the default theme
// A zero Theme is equivalent to DefaultTheme
func (t Theme) normalized() Theme {
	if t == (Theme{}) {
		return DefaultTheme()
	}
	def := DefaultTheme()
	if t.Border == (terminal.BoxGlyphs{}) {
		t.Border = def.Border
	}
	if t.Scrollbar.Track == 0 {
		t.Scrollbar.Track = def.Scrollbar.Track
	}
	if t.Scrollbar.Thumb == 0 {
		t.Scrollbar.Thumb = def.Scrollbar.Thumb
	}
	if t.AspectRatio <= 0 {
		t.AspectRatio = def.AspectRatio
	}
	return t
}
