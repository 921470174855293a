// Package bridge connects the entity hierarchy to the layout engine once per frame
// and publishes the resulting render commands to registered renderers.
package bridge

import (
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
	"github.com/lixenwraith/cellbridge/status"
)

// ErrRendererExists is returned when a renderer name is provided twice
var ErrRendererExists = errors.New("renderer already provided")

// Config configures the bridge engine
type Config struct {
	// ArenaSize is the layout engine memory budget in bytes; zero or below minimum selects the minimum
	ArenaSize int

	// FrameArenaSize bounds dynamic text per pass; zero selects the default, negative disables it
	FrameArenaSize int

	Logger *log.Logger
}

// Engine owns the layout context, the frame arena and per-frame captures for one world
type Engine struct {
	world  *engine.World
	layout *layout.Context
	arena  *FrameArena
	pass   Pass
	logger *log.Logger

	surfaces  *engine.Store[Surface]
	snapshots *engine.Store[RenderSnapshot]
	target    core.Entity

	lastDims map[core.Entity]layout.Dimensions
	captures []capture
	frame    uint64

	renderers []rendererEntry
	regCount  int

	statPasses      *atomic.Int64
	statSkipped     *atomic.Int64
	statCommands    *atomic.Int64
	statArenaUsed   *atomic.Int64
	statArenaFull   *atomic.Int64
	statLayoutErrs  *atomic.Int64
	statLastError   *status.AtomicString
	statRenderers   *atomic.Int64
	statDirtyFrames *atomic.Int64
}

// Use installs the bridge into a world and returns its engine
// Repeated calls return the engine from the first call and ignore cfg
func Use(w *engine.World, cfg Config) *Engine {
	if e, ok := engine.GetResource[*Engine](w.Resources); ok {
		return e
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("bridge")

	mem := cfg.ArenaSize
	if mem != 0 && mem < layout.MinMemorySize() {
		logger.Warn("layout arena below minimum, clamping", "requested", mem, "min", layout.MinMemorySize())
	}
	mem = max(mem, layout.MinMemorySize())

	reg := engine.MustGetResource[*status.Registry](w.Resources)
	e := &Engine{
		world:     w,
		arena:     NewFrameArena(cfg.FrameArenaSize, logger),
		logger:    logger,
		surfaces:  engine.GetStore[Surface](w),
		snapshots: engine.GetStore[RenderSnapshot](w),
		lastDims:  make(map[core.Entity]layout.Dimensions),

		statPasses:      reg.Ints.Get("bridge.passes"),
		statSkipped:     reg.Ints.Get("bridge.surfaces.skipped"),
		statCommands:    reg.Ints.Get("bridge.commands"),
		statArenaUsed:   reg.Ints.Get("bridge.arena.used"),
		statArenaFull:   reg.Ints.Get("bridge.arena.overflows"),
		statLayoutErrs:  reg.Ints.Get("bridge.layout.errors"),
		statLastError:   reg.Strings.Get("bridge.layout.last_error"),
		statRenderers:   reg.Ints.Get("bridge.renderers"),
		statDirtyFrames: reg.Ints.Get("bridge.frames.dirty"),
	}
	e.layout = layout.NewContext(layout.Options{MemorySize: mem, ErrorHandler: e.handleLayoutError})
	e.pass = Pass{
		world:    w,
		ctx:      e.layout,
		arena:    e.arena,
		bindings: engine.GetStore[Binding](w),
		logger:   logger,
	}

	e.target = w.CreateEntity()
	engine.GetStore[RenderTarget](w).Set(e.target, RenderTarget{})
	e.snapshots.Set(e.target, RenderSnapshot{})

	engine.AddResource(w.Resources, e)
	w.AddSystem(engine.PhasePreStore, engine.NewSystem("bridge.layout", 0, e.runPasses))
	w.AddSystem(engine.PhaseOnStore, engine.NewSystem("bridge.publish", 0, e.publish))
	w.AddSystem(engine.PhaseOnStore, engine.NewSystem("bridge.render", 100, e.dispatch))

	logger.Debug("bridge installed", "layout_memory", mem, "frame_arena", e.arena.Cap())
	return e
}

func (e *Engine) handleLayoutError(d layout.ErrorData) {
	e.statLayoutErrs.Add(1)
	e.statLastError.Store(d.Type.String())
	e.logger.Error("layout error", "type", d.Type.String(), "detail", d.Text)
}

// Layout returns the layout context, for scroll updates and pointer state
func (e *Engine) Layout() *layout.Context {
	return e.layout
}

// Arena returns the frame arena
func (e *Engine) Arena() *FrameArena {
	return e.arena
}

// Target returns the render-target entity
func (e *Engine) Target() core.Entity {
	return e.target
}

// SetMeasureText installs the text measurement used by every pass
func (e *Engine) SetMeasureText(fn layout.MeasureTextFunc) {
	e.layout.SetMeasureTextFunction(fn)
}

// Snapshot returns the primary snapshot of the most recent frame
func (e *Engine) Snapshot() RenderSnapshot {
	snap, _ := e.snapshots.Get(e.target)
	return snap
}

// Commands returns the commands of the most recent frame
func (e *Engine) Commands() []layout.RenderCommand {
	return e.Snapshot().Commands
}

// SurfaceSnapshot returns the snapshot published on a surface entity
func (e *Engine) SurfaceSnapshot(surface core.Entity) (RenderSnapshot, bool) {
	if !e.surfaces.Has(surface) {
		return RenderSnapshot{}, false
	}
	return e.snapshots.Get(surface)
}
