package render

import (
	"time"

	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/terminal"
)

// Display is a canvas that shows pending writes on demand
type Display interface {
	terminal.Canvas
	Show()
}

// Presenter flushes the composed buffer to the display after the backend draws a frame
type Presenter struct {
	backend *Backend
	buffer  *terminal.Buffer
	display Display
}

// NewPresenter creates a presenter; the backend should draw into buffer
func NewPresenter(backend *Backend, buffer *terminal.Buffer, display Display) *Presenter {
	return &Presenter{backend: backend, buffer: buffer, display: display}
}

// Update implements engine.System
func (p *Presenter) Update(_ *engine.World, _ time.Duration) {
	if !p.backend.Drawn() {
		return
	}
	p.buffer.FlushTo(p.display)
	p.display.Show()
}

// Priority implements engine.System
func (p *Presenter) Priority() int { return 0 }

// Name implements engine.NamedSystem
func (p *Presenter) Name() string { return "render.present" }
