package terminal

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border)
)

// BoxGlyphs is one set of border runes
type BoxGlyphs struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

var boxGlyphs = [...]BoxGlyphs{
	LineSingle:  {'─', '│', '┌', '┐', '└', '┘'},
	LineDouble:  {'═', '║', '╔', '╗', '╚', '╝'},
	LineRounded: {'─', '│', '╭', '╮', '╰', '╯'},
	LineHeavy:   {'━', '┃', '┏', '┓', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

// Glyphs returns the built-in glyph set for a line type, single for unknown types
func Glyphs(line LineType) BoxGlyphs {
	if int(line) >= len(boxGlyphs) {
		return boxGlyphs[LineSingle]
	}
	return boxGlyphs[line]
}

// Sides is a bitmask of rectangle edges
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SidesNone Sides = 0
	SidesAll        = SideTop | SideRight | SideBottom | SideLeft
)
