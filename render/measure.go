package render

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

// MeasureText returns the size of text in layout units
// Width is the widest line in columns divided by aspect; height is the line count
func MeasureText(text string, aspect float32) layout.Dimensions {
	if text == "" {
		return layout.Dimensions{}
	}
	if aspect <= 0 {
		aspect = terminal.DefaultAspectRatio
	}
	if !utf8.ValidString(text) {
		return layout.Dimensions{Width: float32(len(text)) / aspect, Height: 1}
	}

	maxWidth, lineWidth, lines := 0, 0, 1
	for _, r := range text {
		if r == '\n' {
			maxWidth = max(maxWidth, lineWidth)
			lineWidth = 0
			lines++
			continue
		}
		lineWidth += runewidth.RuneWidth(r)
	}
	maxWidth = max(maxWidth, lineWidth)

	return layout.Dimensions{Width: float32(maxWidth) / aspect, Height: float32(lines)}
}
