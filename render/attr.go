package render

import (
	"github.com/lixenwraith/cellbridge/terminal"
)

// Packed text attribute bits accepted in TextConfig.UserData
const (
	packedBold      = 0x01
	packedDim       = 0x02
	packedUnderline = 0x04
	packedReverse   = 0x08
	packedItalic    = 0x10
)

// TextAttr styles a text element; set it as TextConfig.UserData
type TextAttr struct {
	Bold      bool
	Dim       bool
	Underline bool
	Reverse   bool
	Italic    bool
}

// Pack encodes the attributes as bits
func (a TextAttr) Pack() uint32 {
	var bits uint32
	if a.Bold {
		bits |= packedBold
	}
	if a.Dim {
		bits |= packedDim
	}
	if a.Underline {
		bits |= packedUnderline
	}
	if a.Reverse {
		bits |= packedReverse
	}
	if a.Italic {
		bits |= packedItalic
	}
	return bits
}

// UnpackTextAttr decodes packed bits
func UnpackTextAttr(bits uint32) TextAttr {
	return TextAttr{
		Bold:      bits&packedBold != 0,
		Dim:       bits&packedDim != 0,
		Underline: bits&packedUnderline != 0,
		Reverse:   bits&packedReverse != 0,
		Italic:    bits&packedItalic != 0,
	}
}

// Terminal converts to cell attributes
func (a TextAttr) Terminal() terminal.Attr {
	var attr terminal.Attr
	if a.Bold {
		attr |= terminal.AttrBold
	}
	if a.Dim {
		attr |= terminal.AttrDim
	}
	if a.Underline {
		attr |= terminal.AttrUnderline
	}
	if a.Reverse {
		attr |= terminal.AttrReverse
	}
	if a.Italic {
		attr |= terminal.AttrItalic
	}
	return attr
}

// textAttrOf reads attributes from command user data; unknown types carry none
func textAttrOf(userData any) terminal.Attr {
	switch v := userData.(type) {
	case TextAttr:
		return v.Terminal()
	case *TextAttr:
		if v != nil {
			return v.Terminal()
		}
	case uint32:
		return UnpackTextAttr(v).Terminal()
	case uint8:
		return UnpackTextAttr(uint32(v)).Terminal()
	case uintptr:
		return UnpackTextAttr(uint32(v)).Terminal()
	case int:
		return UnpackTextAttr(uint32(v)).Terminal()
	}
	return terminal.AttrNone
}
