package render

import (
	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

// scrollbarThumb returns thumb offset and length within a track of the given height
// Returns false when the content fits
func scrollbarThumb(track int, data layout.ScrollContainerData) (offset, length int, ok bool) {
	content := data.ContentDimensions.Height
	view := data.ContainerDimensions.Height
	if track <= 0 || content <= view || view <= 0 {
		return 0, 0, false
	}
	length = max(1, round(float32(track)*view/content))
	length = min(length, track)
	travel := content - view
	offset = round(float32(track-length) * -data.ScrollPosition.Y / travel)
	offset = min(max(offset, 0), track-length)
	return offset, length, true
}

// drawScrollbar draws a vertical bar in the rightmost column of a vertical scroll container
func (b *Backend) drawScrollbar(area core.Area, data layout.ScrollContainerData) {
	if !data.Config.Vertical || area.Empty() {
		return
	}
	offset, length, ok := scrollbarThumb(area.Height, data)
	if !ok {
		return
	}
	x := area.X + area.Width - 1
	glyphs := b.theme.Scrollbar
	for row := 0; row < area.Height; row++ {
		r := glyphs.Track
		if row >= offset && row < offset+length {
			r = glyphs.Thumb
		}
		b.painter.FillRect(core.Area{X: x, Y: area.Y + row, Width: 1, Height: 1}, r, terminal.StyleDefault)
	}
}
