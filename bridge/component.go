package bridge

import (
	"time"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/layout"
)

// LayoutFunc declares the layout elements of one entity
// The entity being laid out is p.Entity(); children appear where children.Emit is called
type LayoutFunc func(p *Pass, children Children)

// Binding attaches a layout callback to an entity
// Entities without a binding are transparent: their children are laid out in their place
type Binding struct {
	Layout LayoutFunc
}

// Surface marks an entity as an independent layout root with dimensions in layout units
type Surface struct {
	Width  float32
	Height float32
}

// RenderTarget tags the singleton entity holding the primary snapshot
type RenderTarget struct{}

// RenderSnapshot is the published result of a frame's layout
// Text in Commands may borrow frame memory; it is valid until the next frame's layout pass
type RenderSnapshot struct {
	Commands     []layout.RenderCommand
	LayoutWidth  float32
	LayoutHeight float32
	FrameNumber  uint64
	DeltaTime    time.Duration
	Dirty        bool

	// Surface is the entity whose pass produced the commands, NoEntity if none ran
	Surface core.Entity

	// Scroll holds container state observed at the end of the pass
	Scroll []layout.ScrollContainerData
}

// ScrollData returns the scroll state of the container with the given element id
func (s *RenderSnapshot) ScrollData(id uint32) (layout.ScrollContainerData, bool) {
	for _, d := range s.Scroll {
		if d.ID == id {
			return d, true
		}
	}
	return layout.ScrollContainerData{}, false
}
