package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cellbridge/status"
)

// DefaultFrameInterval targets roughly 60 frames per second
const DefaultFrameInterval = 16 * time.Millisecond

// Loop drives World.Progress on a fixed interval from the caller's goroutine
type Loop struct {
	world    *World
	clock    Clock
	interval time.Duration
	last     time.Time

	// Optional hooks run on the loop goroutine outside the world lock
	beforeFrame func()

	statFrames  *atomic.Int64
	statFrameMs *status.Gauge
}

// NewLoop creates a loop; a non-positive interval selects DefaultFrameInterval
func NewLoop(w *World, clock Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	reg := MustGetResource[*status.Registry](w.Resources)
	return &Loop{
		world:       w,
		clock:       clock,
		interval:    interval,
		statFrames:  reg.Ints.Get("engine.frames"),
		statFrameMs: reg.Floats.Get("engine.frame.ms"),
	}
}

// IntervalForFPS converts a frame rate into a tick interval, zero for non-positive rates
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// BeforeFrame installs a hook that runs ahead of each frame
func (l *Loop) BeforeFrame(fn func()) {
	l.beforeFrame = fn
}

// Step runs one frame with the delta measured by the clock since the previous step
func (l *Loop) Step() time.Duration {
	now := l.clock.Now()
	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now

	if l.beforeFrame != nil {
		l.beforeFrame()
	}

	start := time.Now()
	l.world.Progress(dt)
	l.statFrames.Add(1)
	l.statFrameMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	return dt
}

// Run steps the world until ctx is cancelled
// Returns nil on cancellation; the world is never interrupted mid-frame
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.Step()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Step()
		}
	}
}
