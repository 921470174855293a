package engine

import (
	"time"
)

// Phase orders groups of systems within a frame
type Phase uint8

const (
	PhaseOnLoad     Phase = iota // input collection, external reloads
	PhasePostLoad                // derived input state
	PhasePreUpdate               // bookkeeping before logic
	PhaseOnUpdate                // application logic, scroll handling
	PhaseOnValidate              // consistency checks
	PhasePostUpdate              // reactions to logic
	PhasePreStore                // layout passes
	PhaseOnStore                 // publishing and rendering
	PhasePostFrame               // surface flush
	phaseCount
)

var phaseNames = [phaseCount]string{
	"OnLoad", "PostLoad", "PreUpdate", "OnUpdate", "OnValidate",
	"PostUpdate", "PreStore", "OnStore", "PostFrame",
}

// String returns the phase name
func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "Phase(?)"
}

// System is a unit of per-frame work
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first within a phase
}

// NamedSystem is implemented by systems that want per-system timing metrics
type NamedSystem interface {
	System
	Name() string
}

// SystemFunc adapts a plain function into a NamedSystem
type SystemFunc struct {
	name     string
	priority int
	fn       func(w *World, dt time.Duration)
}

// NewSystem wraps fn as a system
func NewSystem(name string, priority int, fn func(w *World, dt time.Duration)) *SystemFunc {
	return &SystemFunc{name: name, priority: priority, fn: fn}
}

// Update runs the wrapped function
func (s *SystemFunc) Update(w *World, dt time.Duration) { s.fn(w, dt) }

// Priority returns the ordering key
func (s *SystemFunc) Priority() int { return s.priority }

// Name returns the metric label
func (s *SystemFunc) Name() string { return s.name }
