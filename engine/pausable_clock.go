package engine

import (
	"sync"
	"time"
)

// PausableClock freezes frame time while paused so the loop reports zero deltas
type PausableClock struct {
	mu     sync.RWMutex
	source Clock

	paused     bool
	pauseStart time.Time
	pausedFor  time.Duration
}

// NewPausableClock wraps a clock; nil uses the system clock
func NewPausableClock(source Clock) *PausableClock {
	if source == nil {
		source = NewTimeProvider()
	}
	return &PausableClock{source: source}
}

// Now returns source time minus all paused time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if pc.paused {
		return pc.pauseStart.Add(-pc.pausedFor)
	}
	return pc.source.Now().Add(-pc.pausedFor)
}

// Pause stops time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume restarts time from where it stopped
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.Paused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// Paused reports the pause state
func (pc *PausableClock) Paused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// PausedFor returns cumulative pause time including a pause in progress
func (pc *PausableClock) PausedFor() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
