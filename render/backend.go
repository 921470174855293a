// Package render turns published layout commands into terminal cells.
package render

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/bridge"
	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/terminal"
)

// RendererName is the name the backend registers under
const RendererName = "terminal"

// Dimming threshold for AlphaAsDim
const dimAlpha = 128

type clearer interface {
	Clear()
}

// openClip remembers a clip command until its end so the scrollbar can be drawn
type openClip struct {
	id   uint32
	area core.Area
}

// Backend draws snapshots onto a terminal canvas
type Backend struct {
	theme   Theme
	palette *terminal.Palette
	painter *terminal.Painter
	logger  *log.Logger
	engine  *bridge.Engine
	clips   []openClip
	drawn   bool
}

// NewBackend creates a backend; a zero theme selects DefaultTheme and a nil palette selects truecolor
func NewBackend(canvas terminal.Canvas, theme Theme, palette *terminal.Palette, logger *log.Logger) *Backend {
	if palette == nil {
		palette = terminal.NewPalette(terminal.ColorModeTrueColor)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Backend{
		theme:   theme.normalized(),
		palette: palette,
		painter: terminal.NewPainter(canvas),
		logger:  logger.WithPrefix("render"),
	}
}

// Attach installs the backend's text measurement and registers it as a renderer
func (b *Backend) Attach(e *bridge.Engine) error {
	b.engine = e
	e.SetMeasureText(b.Measure)
	return e.Provide(RendererName, b)
}

// Theme returns the active theme
func (b *Backend) Theme() Theme {
	return b.theme
}

// SetTheme replaces the theme; a zero theme restores the default
// A changed aspect ratio drops the attached engine's cached text sizes
func (b *Backend) SetTheme(t Theme) {
	old := b.theme.AspectRatio
	b.theme = t.normalized()
	if b.engine != nil && b.theme.AspectRatio != old {
		b.engine.Layout().ResetMeasureTextCache()
	}
	b.logger.Debug("theme changed", "aspect", b.theme.AspectRatio, "alpha_as_dim", b.theme.AlphaAsDim)
}

// SetCanvas retargets drawing, used after the terminal is recreated
func (b *Backend) SetCanvas(c terminal.Canvas) {
	b.painter.SetCanvas(c)
}

// Drawn reports whether the last Render call drew a frame
func (b *Backend) Drawn() bool {
	return b.drawn
}

// Measure is the layout text measurement for this backend's aspect ratio
func (b *Backend) Measure(text string, _ *layout.TextConfig) layout.Dimensions {
	return MeasureText(text, b.theme.AspectRatio)
}

func (b *Backend) color(c layout.Color) terminal.Color {
	return b.palette.Map(rgbOf(c))
}

// inherited returns the background of the innermost rectangle behind cmds[idx]
func (b *Backend) inherited(cmds []layout.RenderCommand, idx int) terminal.Color {
	if bg, ok := ResolveBackground(cmds, idx); ok && bg.A > 0 {
		return b.color(bg)
	}
	return terminal.ColorDefault
}

// Render draws a snapshot; clean snapshots leave the canvas untouched
func (b *Backend) Render(snap *bridge.RenderSnapshot) {
	b.drawn = false
	if snap == nil || !snap.Dirty {
		return
	}
	if c, ok := b.painter.Canvas().(clearer); ok {
		c.Clear()
	}
	b.painter.ResetClip()
	b.clips = b.clips[:0]

	ar := b.theme.AspectRatio
	cmds := snap.Commands
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case layout.CommandRectangle:
			b.drawRectangle(BoxToCells(cmd.BoundingBox, ar), &cmd.Rectangle)
		case layout.CommandText:
			b.drawText(TextBoxToCells(cmd.BoundingBox, ar), &cmd.Text, b.inherited(cmds, i), cmd.UserData)
		case layout.CommandBorder:
			b.drawBorder(BoxToCells(cmd.BoundingBox, ar), &cmd.Border, b.inherited(cmds, i))
		case layout.CommandClipStart:
			area := BoxToCells(cmd.BoundingBox, ar)
			b.painter.PushClip(area)
			b.clips = append(b.clips, openClip{id: cmd.ID, area: area})
		case layout.CommandClipEnd:
			if n := len(b.clips); n > 0 {
				clip := b.clips[n-1]
				b.clips = b.clips[:n-1]
				if b.theme.Scrollbars {
					if data, ok := snap.ScrollData(clip.id); ok {
						b.drawScrollbar(clip.area, data)
					}
				}
			}
			b.painter.PopClip()
		}
	}
	b.drawn = true
}

func (b *Backend) drawRectangle(area core.Area, data *layout.RectangleData) {
	style := terminal.Style{Bg: b.color(data.BackgroundColor)}
	if b.theme.AlphaAsDim && data.BackgroundColor.A < dimAlpha {
		style.Attrs |= terminal.AttrDim
	}
	b.painter.FillRect(area, ' ', style)
}

func (b *Backend) drawText(area core.Area, data *layout.TextData, bg terminal.Color, userData any) {
	if data.StringContents == "" {
		return
	}
	style := terminal.Style{
		Fg:    b.color(data.TextColor),
		Bg:    bg,
		Attrs: textAttrOf(userData),
	}
	b.painter.DrawText(area.X, area.Y, data.StringContents, style)
}

// borderGlyphs picks rounded for any corner radius, double for any width of 2 or more, else the theme's set
func (b *Backend) borderGlyphs(data *layout.BorderData) terminal.BoxGlyphs {
	w := data.Width
	switch {
	case data.CornerRadius.Any():
		return terminal.Glyphs(terminal.LineRounded)
	case w.Top >= 2 || w.Right >= 2 || w.Bottom >= 2 || w.Left >= 2:
		return terminal.Glyphs(terminal.LineDouble)
	}
	return b.theme.Border
}

func (b *Backend) drawBorder(area core.Area, data *layout.BorderData, bg terminal.Color) {
	var sides terminal.Sides
	if data.Width.Top > 0 {
		sides |= terminal.SideTop
	}
	if data.Width.Right > 0 {
		sides |= terminal.SideRight
	}
	if data.Width.Bottom > 0 {
		sides |= terminal.SideBottom
	}
	if data.Width.Left > 0 {
		sides |= terminal.SideLeft
	}
	if sides == terminal.SidesNone {
		return
	}

	fg := terminal.ColorDefault
	if data.Color != (layout.Color{}) {
		fg = b.color(data.Color)
	}
	b.painter.DrawBorder(area, sides, b.borderGlyphs(data), terminal.Style{Fg: fg, Bg: bg})
}
