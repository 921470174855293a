package terminal

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

const (
	cubeStart      = 16
	grayscaleStart = 232
)

// palette256 holds the Lab-comparable colors of indices 16-255
// The first 16 are terminal-themed and unreliable for matching
var palette256 = func() [256 - cubeStart]colorful.Color {
	var p [256 - cubeStart]colorful.Color
	for i := range p {
		p[i] = toColorful(indexRGB(uint8(i + cubeStart)))
	}
	return p
}()

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// indexRGB returns the nominal RGB value of a palette index ≥ 16
func indexRGB(i uint8) RGB {
	if i >= grayscaleStart {
		level := 8 + 10*(i-grayscaleStart)
		return RGB{level, level, level}
	}
	n := i - cubeStart
	return RGB{cubeValues[n/36], cubeValues[(n/6)%6], cubeValues[n%6]}
}

// Nearest256 finds the perceptually nearest palette index using CIE Lab distance
func Nearest256(c RGB) uint8 {
	target := toColorful(c)
	best := 0
	bestDist := target.DistanceLab(palette256[0])
	for i := 1; i < len(palette256); i++ {
		if d := target.DistanceLab(palette256[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best + cubeStart)
}

// Palette maps RGB colors to what the terminal can display
type Palette struct {
	mode  ColorMode
	mu    sync.Mutex
	cache map[RGB]uint8
}

// NewPalette creates a palette for the given mode
func NewPalette(mode ColorMode) *Palette {
	return &Palette{mode: mode, cache: make(map[RGB]uint8)}
}

// Mode returns the palette's color mode
func (p *Palette) Mode() ColorMode {
	return p.mode
}

// Map converts an RGB value into a displayable Color
// 256-color results are memoized since layouts repeat a small set of colors
func (p *Palette) Map(c RGB) Color {
	if p.mode == ColorModeTrueColor {
		return Color{Kind: ColorKindRGB, RGB: c}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	idx, ok := p.cache[c]
	if !ok {
		idx = Nearest256(c)
		p.cache[c] = idx
	}
	return ColorFromIndex(idx)
}
