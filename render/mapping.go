package render

import (
	"math"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// toCells rounds to the nearest cell, keeping at least one cell for non-zero sizes
func toCells(x, y, w, h, srcW, srcH float32) core.Area {
	a := core.Area{X: round(x), Y: round(y), Width: round(w), Height: round(h)}
	if srcW > 0 && a.Width < 1 {
		a.Width = 1
	}
	if srcH > 0 && a.Height < 1 {
		a.Height = 1
	}
	return a
}

// BoxToCells maps a rectangle, border or clip box to cells, scaling x and width by the aspect ratio
func BoxToCells(b layout.BoundingBox, aspect float32) core.Area {
	return toCells(b.X*aspect, b.Y, b.Width*aspect, b.Height, b.Width, b.Height)
}

// TextBoxToCells maps a text box to cells
// Only x is scaled: measured text width is already in columns
func TextBoxToCells(b layout.BoundingBox, aspect float32) core.Area {
	return toCells(b.X*aspect, b.Y, b.Width, b.Height, b.Width, b.Height)
}

func channel(v float32) uint8 {
	return uint8(min(max(v, 0), 255))
}

// rgbOf drops alpha from a layout color
func rgbOf(c layout.Color) terminal.RGB {
	return terminal.RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}
