package bridge

import (
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/engine"
	"github.com/lixenwraith/cellbridge/layout"
)

const testFrame = 16 * time.Millisecond

var quietLogger = log.New(io.Discard)

func runeMeasure(text string, _ *layout.TextConfig) layout.Dimensions {
	if text == "" {
		return layout.Dimensions{}
	}
	return layout.Dimensions{Width: float32(utf8.RuneCountInString(text)), Height: 1}
}

// newTestBridge creates a world with the bridge installed and a surface of the given size
func newTestBridge(w, h float32) (*engine.World, *Engine, core.Entity) {
	world := engine.NewWorld()
	e := Use(world, Config{Logger: quietLogger})
	e.SetMeasureText(runeMeasure)
	surface := world.CreateEntity()
	engine.GetStore[Surface](world).Set(surface, Surface{Width: w, Height: h})
	return world, e, surface
}

// bind attaches a binding to a new child of parent
func bind(w *engine.World, parent core.Entity, fn LayoutFunc) core.Entity {
	e := w.CreateEntity()
	w.SetParent(e, parent)
	if fn != nil {
		engine.GetStore[Binding](w).Set(e, Binding{Layout: fn})
	}
	return e
}

func commandTypes(cmds []layout.RenderCommand) []layout.CommandType {
	out := make([]layout.CommandType, len(cmds))
	for i, c := range cmds {
		out[i] = c.Type
	}
	return out
}
