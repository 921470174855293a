package bridge

import (
	"time"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
)

func (c *capture) snapshot(frame uint64, dt time.Duration) RenderSnapshot {
	return RenderSnapshot{
		Commands:     c.commands,
		LayoutWidth:  c.dims.Width,
		LayoutHeight: c.dims.Height,
		FrameNumber:  frame,
		DeltaTime:    dt,
		Dirty:        len(c.commands) > 0,
		Surface:      c.surface,
		Scroll:       c.scroll,
	}
}

// publish stores this frame's captures as snapshots
// The render target receives the last pass; each surface receives its own
// Entities that stopped being surfaces lose their snapshot
func (e *Engine) publish(w *engine.World, dt time.Duration) {
	e.frame++

	primary := RenderSnapshot{FrameNumber: e.frame, DeltaTime: dt, Surface: core.NoEntity}
	if n := len(e.captures); n > 0 {
		primary = e.captures[n-1].snapshot(e.frame, dt)
	}
	e.snapshots.Set(e.target, primary)
	e.statCommands.Store(int64(len(primary.Commands)))
	if primary.Dirty {
		e.statDirtyFrames.Add(1)
	}

	for _, s := range e.surfaces.All() {
		snap := RenderSnapshot{FrameNumber: e.frame, DeltaTime: dt, Surface: s}
		for i := range e.captures {
			if e.captures[i].surface == s {
				snap = e.captures[i].snapshot(e.frame, dt)
				break
			}
		}
		e.snapshots.Set(s, snap)
	}

	for _, s := range w.Query().With(e.snapshots).Execute() {
		if s != e.target && !e.surfaces.Has(s) {
			e.snapshots.Remove(s)
		}
	}
}
