package terminal

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellbridge/core"
)

// Painter issues drawing primitives against a Canvas, honoring a clip stack
type Painter struct {
	canvas Canvas
	clip   ClipStack
}

// NewPainter creates a painter over c
func NewPainter(c Canvas) *Painter {
	return &Painter{canvas: c}
}

// Canvas returns the target surface
func (p *Painter) Canvas() Canvas {
	return p.canvas
}

// SetCanvas retargets the painter and resets its clip
func (p *Painter) SetCanvas(c Canvas) {
	p.canvas = c
	p.clip.Reset()
}

// ClipDepth returns the number of active clips
func (p *Painter) ClipDepth() int {
	return p.clip.Depth()
}

// PushClip restricts drawing to a within the current clip
func (p *Painter) PushClip(a core.Area) {
	p.clip.Push(a)
}

// PopClip restores the previous clip
func (p *Painter) PopClip() {
	p.clip.Pop()
}

// ResetClip removes every clip
func (p *Painter) ResetClip() {
	p.clip.Reset()
}

func (p *Painter) visible(x, y int) bool {
	w, h := p.canvas.Size()
	return x >= 0 && y >= 0 && x < w && y < h && p.clip.Allows(x, y)
}

func (p *Painter) set(x, y int, r rune, st Style) {
	if p.visible(x, y) {
		p.canvas.SetCell(x, y, Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs})
	}
}

// FillRect fills the visible part of an area with r
func (p *Painter) FillRect(a core.Area, r rune, st Style) {
	w, h := p.canvas.Size()
	a = a.Intersect(core.Area{Width: w, Height: h})
	if top, ok := p.clip.Top(); ok {
		a = a.Intersect(top)
	}
	if a.Empty() {
		return
	}

	cell := Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs}
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			p.canvas.SetCell(x, y, cell)
		}
	}
}

// DrawText writes a single line starting at (x, y) and returns the columns advanced
// Wide glyphs occupy two cells and are skipped whole if either cell is clipped
func (p *Painter) DrawText(x, y int, s string, st Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if w == 1 {
			p.set(col, y, r, st)
		} else if p.visible(col, y) && p.visible(col+1, y) {
			p.canvas.SetCell(col, y, Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs})
			p.canvas.SetCell(col+1, y, Cell{Rune: 0, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs})
		}
		col += w
	}
	return col - x
}

// DrawBorder draws the selected edges of a; corners appear where two drawn edges meet
func (p *Painter) DrawBorder(a core.Area, sides Sides, g BoxGlyphs, st Style) {
	if a.Empty() || sides == SidesNone {
		return
	}
	x0, y0 := a.X, a.Y
	x1, y1 := a.X+a.Width-1, a.Y+a.Height-1

	if sides&SideTop != 0 {
		for x := x0; x <= x1; x++ {
			p.set(x, y0, g.Horizontal, st)
		}
	}
	if sides&SideBottom != 0 {
		for x := x0; x <= x1; x++ {
			p.set(x, y1, g.Horizontal, st)
		}
	}
	if sides&SideLeft != 0 {
		for y := y0; y <= y1; y++ {
			p.set(x0, y, g.Vertical, st)
		}
	}
	if sides&SideRight != 0 {
		for y := y0; y <= y1; y++ {
			p.set(x1, y, g.Vertical, st)
		}
	}

	if sides&(SideTop|SideLeft) == SideTop|SideLeft {
		p.set(x0, y0, g.TopLeft, st)
	}
	if sides&(SideTop|SideRight) == SideTop|SideRight {
		p.set(x1, y0, g.TopRight, st)
	}
	if sides&(SideBottom|SideLeft) == SideBottom|SideLeft {
		p.set(x0, y1, g.BottomLeft, st)
	}
	if sides&(SideBottom|SideRight) == SideBottom|SideRight {
		p.set(x1, y1, g.BottomRight, st)
	}
}
