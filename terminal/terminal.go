package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Style is the visual state applied to a drawn cell
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// StyleDefault uses terminal default colors and no attributes
var StyleDefault = Style{}

// Cell represents a single terminal cell
// Rune 0 marks the trailing half of a wide glyph
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Style returns the cell's style
func (c Cell) Style() Style {
	return Style{Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
}

// Canvas is a cell-addressed output surface
type Canvas interface {
	// Size returns dimensions in cells
	Size() (width, height int)

	// SetCell writes one cell; out-of-bounds writes are ignored
	SetCell(x, y int, c Cell)
}
