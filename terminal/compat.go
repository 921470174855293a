package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Tcell converts the color to its tcell equivalent
func (c Color) Tcell() tcell.Color {
	switch c.Kind {
	case ColorKindRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	case ColorKindIndexed:
		return tcell.PaletteColor(int(c.RGB.R))
	}
	return tcell.ColorDefault
}

// Tcell converts the style to a tcell.Style
func (s Style) Tcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.Fg.Tcell()).
		Background(s.Bg.Tcell()).
		Bold(s.Attrs&AttrBold != 0).
		Dim(s.Attrs&AttrDim != 0).
		Italic(s.Attrs&AttrItalic != 0).
		Underline(s.Attrs&AttrUnderline != 0).
		Blink(s.Attrs&AttrBlink != 0).
		Reverse(s.Attrs&AttrReverse != 0)
}

// AttrFromTcell extracts attribute bits from a tcell.AttrMask
func AttrFromTcell(mask tcell.AttrMask) Attr {
	var a Attr
	if mask&tcell.AttrBold != 0 {
		a |= AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		a |= AttrDim
	}
	if mask&tcell.AttrItalic != 0 {
		a |= AttrItalic
	}
	if mask&tcell.AttrUnderline != 0 {
		a |= AttrUnderline
	}
	if mask&tcell.AttrBlink != 0 {
		a |= AttrBlink
	}
	if mask&tcell.AttrReverse != 0 {
		a |= AttrReverse
	}
	return a
}
