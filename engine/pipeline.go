package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/cellbridge/status"
)

type pipelineEntry struct {
	sys    System
	timing *status.Gauge // nil for unnamed systems
}

// pipeline holds systems bucketed by phase, each bucket sorted by priority
type pipeline struct {
	mu     sync.RWMutex
	phases [phaseCount][]pipelineEntry
}

// AddSystem registers a system in a phase
// Equal priorities keep registration order
func (w *World) AddSystem(phase Phase, system System) {
	if phase >= phaseCount {
		panic("engine: invalid phase " + phase.String())
	}

	entry := pipelineEntry{sys: system}
	if named, ok := system.(NamedSystem); ok {
		reg := MustGetResource[*status.Registry](w.Resources)
		entry.timing = reg.Floats.Get("system." + named.Name() + ".ms")
	}

	w.pipeline.mu.Lock()
	defer w.pipeline.mu.Unlock()

	bucket := append(w.pipeline.phases[phase], entry)
	// Insertion sort, stable, small N
	for i := len(bucket) - 1; i > 0 && bucket[i-1].sys.Priority() > bucket[i].sys.Priority(); i-- {
		bucket[i-1], bucket[i] = bucket[i], bucket[i-1]
	}
	w.pipeline.phases[phase] = bucket
}

// Systems returns a copy of the systems registered in a phase, in run order
func (w *World) Systems(phase Phase) []System {
	w.pipeline.mu.RLock()
	defer w.pipeline.mu.RUnlock()
	if phase >= phaseCount {
		return nil
	}
	out := make([]System, len(w.pipeline.phases[phase]))
	for i, e := range w.pipeline.phases[phase] {
		out[i] = e.sys
	}
	return out
}

func (p *pipeline) run(w *World, dt time.Duration) {
	p.mu.RLock()
	var phases [phaseCount][]pipelineEntry
	for i := range p.phases {
		phases[i] = append([]pipelineEntry(nil), p.phases[i]...)
	}
	p.mu.RUnlock()

	for _, bucket := range phases {
		for _, e := range bucket {
			if e.timing == nil {
				e.sys.Update(w, dt)
				continue
			}
			start := time.Now()
			e.sys.Update(w, dt)
			e.timing.Set(float64(time.Since(start).Microseconds()) / 1000)
		}
	}
}
