package input

import (
	"time"

	"github.com/lixenwraith/cellbridge/engine"
)

// ScrollSystem feeds collected keys through a resolver into the scroll containers once per frame
type ScrollSystem struct {
	collector *Collector
	resolver  *ScrollResolver
	updater   ScrollUpdater
}

// NewScrollSystem creates the per-frame scroll system
func NewScrollSystem(c *Collector, r *ScrollResolver, u ScrollUpdater) *ScrollSystem {
	return &ScrollSystem{collector: c, resolver: r, updater: u}
}

// Install registers collection in OnLoad and scrolling in OnUpdate
func (s *ScrollSystem) Install(w *engine.World) {
	w.AddSystem(engine.PhaseOnLoad, s.collector)
	w.AddSystem(engine.PhaseOnUpdate, s)
}

// Update implements engine.System
func (s *ScrollSystem) Update(_ *engine.World, dt time.Duration) {
	s.resolver.Apply(s.collector.Current(), float32(dt.Seconds()), s.updater)
}

// Priority implements engine.System
func (s *ScrollSystem) Priority() int { return 0 }

// Name implements engine.NamedSystem
func (s *ScrollSystem) Name() string { return "input.scroll" }
