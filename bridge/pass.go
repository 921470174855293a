package bridge

import (
	"slices"
	"strings"
	"time"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
)

// Surfaces narrower or shorter than this are not laid out
const minSurfaceSize = 2

// capture is the result of one surface pass
type capture struct {
	surface  core.Entity
	commands []layout.RenderCommand
	dims     layout.Dimensions
	scroll   []layout.ScrollContainerData
}

// detach clones text that borrows frame arena memory so the capture survives the next arena reset
func (c *capture) detach() {
	for i := range c.commands {
		if c.commands[i].Type == layout.CommandText {
			c.commands[i].Text.StringContents = strings.Clone(c.commands[i].Text.StringContents)
		}
	}
}

// runPasses lays out every surface, replacing last frame's captures
func (e *Engine) runPasses(_ *engine.World, _ time.Duration) {
	e.captures = e.captures[:0]
	overflowBefore := e.arena.Overflows()

	for _, s := range e.surfaces.All() {
		cfg, ok := e.surfaces.Get(s)
		if !ok {
			continue
		}
		if cfg.Width < minSurfaceSize || cfg.Height < minSurfaceSize {
			e.statSkipped.Add(1)
			continue
		}

		dims := layout.Dimensions{Width: cfg.Width, Height: cfg.Height}
		if last, seen := e.lastDims[s]; seen && last != dims && last.Width != 0 && last.Height != 0 {
			e.layout.ResetMeasureTextCache()
			e.logger.Debug("surface resized, text cache reset", "surface", s, "width", dims.Width, "height", dims.Height)
		}
		e.lastDims[s] = dims

		if n := len(e.captures); n > 0 {
			e.captures[n-1].detach()
		}

		e.layout.SetLayoutDimensions(dims)
		e.arena.Reset()
		e.layout.BeginLayout()

		e.pass.active = true
		e.pass.surface = s
		e.pass.current = s
		e.pass.walkChildren(s)
		e.pass.active = false
		e.pass.current = core.NoEntity
		e.pass.surface = core.NoEntity

		cmds := e.layout.EndLayout()
		e.captures = append(e.captures, capture{
			surface:  s,
			commands: slices.Clone(cmds),
			dims:     dims,
			scroll:   e.layout.ScrollContainers(),
		})
		e.statPasses.Add(1)
		e.statArenaUsed.Store(int64(e.arena.Used()))
	}

	for s := range e.lastDims {
		if !e.surfaces.Has(s) {
			delete(e.lastDims, s)
		}
	}
	if n := e.arena.Overflows() - overflowBefore; n > 0 {
		e.statArenaFull.Add(int64(n))
	}
}
