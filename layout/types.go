package layout

// Color channels are 0-255 floats; alpha 0 is fully transparent
type Color struct {
	R, G, B, A float32
}

// Dimensions is a width/height pair in layout units
type Dimensions struct {
	Width, Height float32
}

// Vector2 is a 2D offset or position in layout units
type Vector2 struct {
	X, Y float32
}

// BoundingBox is a positioned rectangle in layout units
type BoundingBox struct {
	X, Y, Width, Height float32
}

// Contains reports whether other lies fully inside b
func (b BoundingBox) Contains(other BoundingBox) bool {
	return other.X >= b.X && other.Y >= b.Y &&
		other.X+other.Width <= b.X+b.Width &&
		other.Y+other.Height <= b.Y+b.Height
}

// ContainsPoint reports whether p lies inside b
func (b BoundingBox) ContainsPoint(p Vector2) bool {
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}

// ElementID identifies an element across frames
// ID zero means "derive from parent"
type ElementID struct {
	ID     uint32
	Offset uint32
	BaseID uint32
}

// SizingType selects how an axis is sized
type SizingType uint8

const (
	SizingFit     SizingType = iota // wrap content, clamped to MinMax
	SizingGrow                      // fit, then expand into free parent space
	SizingPercent                   // fraction of parent inner size
	SizingFixed                     // exact size
)

// SizingMinMax bounds Fit and Grow sizing; zero Max means unbounded
type SizingMinMax struct {
	Min, Max float32
}

// SizingAxis configures one axis
type SizingAxis struct {
	Type    SizingType
	MinMax  SizingMinMax
	Percent float32 // 0..1, only for SizingPercent
}

// Fit sizes to content; optional min and max
func Fit(minMax ...float32) SizingAxis {
	return SizingAxis{Type: SizingFit, MinMax: minMaxOf(minMax)}
}

// Grow expands into free space; optional min and max
func Grow(minMax ...float32) SizingAxis {
	return SizingAxis{Type: SizingGrow, MinMax: minMaxOf(minMax)}
}

// Fixed sizes to exactly v
func Fixed(v float32) SizingAxis {
	return SizingAxis{Type: SizingFixed, MinMax: SizingMinMax{Min: v, Max: v}}
}

// Percent sizes to a fraction of the parent's inner size
func Percent(p float32) SizingAxis {
	return SizingAxis{Type: SizingPercent, Percent: p}
}

func minMaxOf(v []float32) SizingMinMax {
	var mm SizingMinMax
	if len(v) > 0 {
		mm.Min = v[0]
	}
	if len(v) > 1 {
		mm.Max = v[1]
	}
	return mm
}

// max returns the effective upper bound
func (mm SizingMinMax) max() float32 {
	if mm.Max <= 0 {
		return maxFloat
	}
	return mm.Max
}

// Sizing holds both axes
type Sizing struct {
	Width, Height SizingAxis
}

// Padding is inner spacing per side
type Padding struct {
	Left, Right, Top, Bottom uint16
}

// PaddingAll pads every side equally
func PaddingAll(v uint16) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// LayoutDirection is the main axis children flow along
type LayoutDirection uint8

const (
	LeftToRight LayoutDirection = iota
	TopToBottom
)

// AlignX positions content horizontally
type AlignX uint8

const (
	AlignXLeft AlignX = iota
	AlignXRight
	AlignXCenter
)

// AlignY positions content vertically
type AlignY uint8

const (
	AlignYTop AlignY = iota
	AlignYBottom
	AlignYCenter
)

// ChildAlignment places children within the free inner space
type ChildAlignment struct {
	X AlignX
	Y AlignY
}

// LayoutConfig is the box model of an element
type LayoutConfig struct {
	Sizing         Sizing
	Padding        Padding
	ChildGap       uint16
	ChildAlignment ChildAlignment
	Direction      LayoutDirection
}

// CornerRadius is carried to renderers; layout ignores it
type CornerRadius struct {
	TopLeft, TopRight, BottomLeft, BottomRight float32
}

// Any reports whether any corner is rounded
func (r CornerRadius) Any() bool {
	return r.TopLeft > 0 || r.TopRight > 0 || r.BottomLeft > 0 || r.BottomRight > 0
}

// BorderWidth is per-side border thickness
type BorderWidth struct {
	Left, Right, Top, Bottom uint16
}

// Any reports whether any side has a border
func (w BorderWidth) Any() bool {
	return w.Left > 0 || w.Right > 0 || w.Top > 0 || w.Bottom > 0
}

// BorderConfig configures an element border drawn after its children
type BorderConfig struct {
	Color Color
	Width BorderWidth
}

// ClipConfig turns an element into a clip and scroll container
type ClipConfig struct {
	Horizontal  bool
	Vertical    bool
	ChildOffset Vector2 // applied to children, normally the scroll position
}

// Enabled reports whether either axis clips
func (c ClipConfig) Enabled() bool {
	return c.Horizontal || c.Vertical
}

// ElementDeclaration fully describes one box
type ElementDeclaration struct {
	ID              ElementID
	Layout          LayoutConfig
	BackgroundColor Color
	CornerRadius    CornerRadius
	Border          BorderConfig
	Clip            ClipConfig
	UserData        any
}

// TextWrapMode controls line breaking
type TextWrapMode uint8

const (
	WrapWords    TextWrapMode = iota // break on spaces and newlines
	WrapNewlines                     // break on newlines only
	WrapNone                         // break on newlines only, never shrink
)

// TextAlignment places each line within the text element width
type TextAlignment uint8

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// TextConfig styles a text element
type TextConfig struct {
	TextColor     Color
	FontID        uint16
	FontSize      uint16
	LetterSpacing uint16
	LineHeight    uint16 // zero uses the measured line height
	WrapMode      TextWrapMode
	Alignment     TextAlignment
	UserData      any
}

const maxFloat = float32(3.4e38)
