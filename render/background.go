package render

import (
	"github.com/lixenwraith/cellbridge/layout"
)

// ResolveBackground returns the color of the nearest rectangle before idx whose box contains cmds[idx]
// Commands are emitted parent first, so the first containing rectangle scanning backwards is the innermost
// ok is false when no rectangle contains the command
func ResolveBackground(cmds []layout.RenderCommand, idx int) (color layout.Color, ok bool) {
	if idx < 0 || idx >= len(cmds) {
		return layout.Color{}, false
	}
	target := cmds[idx].BoundingBox
	for j := idx - 1; j >= 0; j-- {
		prev := &cmds[j]
		if prev.Type != layout.CommandRectangle {
			continue
		}
		if prev.BoundingBox.Contains(target) {
			return prev.Rectangle.BackgroundColor, true
		}
	}
	return layout.Color{}, false
}
