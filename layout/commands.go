package layout

// CommandType tags a render command
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandRectangle
	CommandBorder
	CommandText
	CommandImage
	CommandClipStart
	CommandClipEnd
	CommandCustom
)

var commandTypeNames = [...]string{
	CommandNone:      "none",
	CommandRectangle: "rectangle",
	CommandBorder:    "border",
	CommandText:      "text",
	CommandImage:     "image",
	CommandClipStart: "clip-start",
	CommandClipEnd:   "clip-end",
	CommandCustom:    "custom",
}

// String returns a readable name
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "unknown"
}

// RectangleData is the payload of CommandRectangle
type RectangleData struct {
	BackgroundColor Color
	CornerRadius    CornerRadius
}

// TextData is the payload of CommandText
// StringContents may borrow caller memory valid only until the next layout pass
type TextData struct {
	StringContents string
	TextColor      Color
	FontID         uint16
	FontSize       uint16
	LetterSpacing  uint16
	LineHeight     uint16
}

// BorderData is the payload of CommandBorder
type BorderData struct {
	Color        Color
	CornerRadius CornerRadius
	Width        BorderWidth
}

// ClipData is the payload of CommandClipStart and CommandClipEnd
type ClipData struct {
	Horizontal bool
	Vertical   bool
}

// RenderCommand is one drawing instruction
// Only the payload matching Type is meaningful
type RenderCommand struct {
	BoundingBox BoundingBox
	Type        CommandType
	ID          uint32
	ZIndex      int16
	UserData    any

	Rectangle RectangleData
	Text      TextData
	Border    BorderData
	Clip      ClipData
}
