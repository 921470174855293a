package bridge

import (
	"fmt"
	"time"

	"github.com/lixenwraith/cellbridge/engine"
)

// Renderer consumes the primary snapshot once per frame
type Renderer interface {
	Render(snap *RenderSnapshot)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(snap *RenderSnapshot)

// Render calls f
func (f RendererFunc) Render(snap *RenderSnapshot) { f(snap) }

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	name     string
	renderer Renderer
	priority int
	index    int // registration order for stable sort
}

// Provide registers a renderer at priority 0
func (e *Engine) Provide(name string, r Renderer) error {
	return e.ProvideWithPriority(name, r, 0)
}

// ProvideWithPriority registers a renderer; lower priorities render first
func (e *Engine) ProvideWithPriority(name string, r Renderer, priority int) error {
	for _, entry := range e.renderers {
		if entry.name == name {
			return fmt.Errorf("%w: %s", ErrRendererExists, name)
		}
	}

	entry := rendererEntry{name: name, renderer: r, priority: priority, index: e.regCount}
	e.regCount++

	// Insertion sort: find position and insert
	pos := len(e.renderers)
	for i, existing := range e.renderers {
		if priority < existing.priority || (priority == existing.priority && entry.index < existing.index) {
			pos = i
			break
		}
	}
	e.renderers = append(e.renderers, rendererEntry{})
	copy(e.renderers[pos+1:], e.renderers[pos:])
	e.renderers[pos] = entry

	e.statRenderers.Store(int64(len(e.renderers)))
	e.logger.Debug("renderer provided", "name", name, "priority", priority)
	return nil
}

// Renderers returns registered renderer names in dispatch order
func (e *Engine) Renderers() []string {
	names := make([]string, len(e.renderers))
	for i, entry := range e.renderers {
		names[i] = entry.name
	}
	return names
}

// dispatch hands the primary snapshot to every visible renderer
func (e *Engine) dispatch(_ *engine.World, _ time.Duration) {
	snap, _ := e.snapshots.Get(e.target)
	for _, entry := range e.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(&snap)
	}
}
