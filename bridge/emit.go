package bridge

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
)

// Pass is the state of one surface's layout pass, handed to every binding
type Pass struct {
	world    *engine.World
	ctx      *layout.Context
	arena    *FrameArena
	bindings *engine.Store[Binding]
	logger   *log.Logger

	active  bool
	current core.Entity
	surface core.Entity
	scratch []byte
}

// Active reports whether a layout pass is running
func (p *Pass) Active() bool { return p.active }

// Entity returns the entity whose binding is executing
func (p *Pass) Entity() core.Entity { return p.current }

// Surface returns the surface being laid out
func (p *Pass) Surface() core.Entity { return p.surface }

// World returns the world being walked
func (p *Pass) World() *engine.World { return p.world }

// Layout exposes the layout context for declarations the pass does not wrap
func (p *Pass) Layout() *layout.Context { return p.ctx }

func (p *Pass) usable(op string) bool {
	if !p.active {
		p.logger.Warn("layout call outside a pass", "op", op)
		return false
	}
	return true
}

// Open opens an element whose id derives from the calling line and the current entity
// Calls from a loop share one line; use OpenIndexed there
func (p *Pass) Open(decl layout.ElementDeclaration) {
	p.open(AutoID(p.current, callerSite(0)), decl)
}

// OpenSite opens an element identified by a site from NewSite
func (p *Pass) OpenSite(site uint32, decl layout.ElementDeclaration) {
	p.open(AutoID(p.current, site), decl)
}

// OpenIndexed opens the index-th repetition of a site
func (p *Pass) OpenIndexed(site, index uint32, decl layout.ElementDeclaration) {
	p.open(IndexedID(p.current, site, index), decl)
}

// open fills in the id unless the declaration names one
// Clip containers without an explicit child offset scroll by their current position
func (p *Pass) open(id layout.ElementID, decl layout.ElementDeclaration) {
	if !p.usable("open") {
		return
	}
	if decl.ID.ID == 0 {
		decl.ID = id
	}
	p.ctx.OpenElementWithID(decl.ID)
	if decl.Clip.Enabled() && decl.Clip.ChildOffset == (layout.Vector2{}) {
		decl.Clip.ChildOffset = p.ctx.ScrollOffset()
	}
	p.ctx.ConfigureOpenElement(decl)
}

// Close closes the most recently opened element
func (p *Pass) Close() {
	if !p.usable("close") {
		return
	}
	p.ctx.CloseElement()
}

// Element opens an element, runs body for its contents and closes it
func (p *Pass) Element(decl layout.ElementDeclaration, body func()) {
	p.open(AutoID(p.current, callerSite(0)), decl)
	if body != nil && p.active {
		body()
	}
	p.Close()
}

// ElementSite is Element with an explicit site
func (p *Pass) ElementSite(site uint32, decl layout.ElementDeclaration, body func()) {
	p.OpenSite(site, decl)
	if body != nil && p.active {
		body()
	}
	p.Close()
}

// Text adds a text element; s must stay unchanged until the frame is rendered
func (p *Pass) Text(s string, cfg layout.TextConfig) {
	if !p.usable("text") {
		return
	}
	p.ctx.Text(s, cfg)
}

// Textf formats text into frame memory and adds it
// Nothing is added if the frame arena is disabled or full
func (p *Pass) Textf(cfg layout.TextConfig, format string, args ...any) {
	if !p.usable("textf") {
		return
	}
	p.scratch = fmt.Appendf(p.scratch[:0], format, args...)
	if s := p.arena.Copy(p.scratch); s != "" {
		p.ctx.Text(s, cfg)
	}
}

// String copies s into frame memory so it may be passed to Text after the source changes
func (p *Pass) String(s string) string {
	return p.arena.CopyString(s)
}

// ScrollOffset returns the scroll position of the open element
func (p *Pass) ScrollOffset() layout.Vector2 {
	if !p.usable("scroll offset") {
		return layout.Vector2{}
	}
	return p.ctx.ScrollOffset()
}
