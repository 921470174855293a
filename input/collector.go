package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/cellbridge/engine"
)

// DefaultSequenceTimeout is how long an idle pause may separate the keys of a sequence
const DefaultSequenceTimeout = time.Second

// Collector queues key states from the event goroutine and releases one per frame
// Frames without a key inside the sequence timeout report nil so the resolver keeps its
// remembered key; after the timeout they report an empty state, which clears it
type Collector struct {
	mu      sync.Mutex
	queue   []KeyState
	timeout time.Duration

	current *KeyState
	idle    time.Duration
	empty   KeyState
	frame   KeyState
}

// NewCollector creates a collector; a non-positive timeout selects DefaultSequenceTimeout
func NewCollector(timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = DefaultSequenceTimeout
	}
	return &Collector{timeout: timeout, idle: timeout}
}

// Push queues a key state; safe from any goroutine
func (c *Collector) Push(ks KeyState) {
	c.mu.Lock()
	c.queue = append(c.queue, ks)
	c.mu.Unlock()
}

// Pending returns the number of queued states
func (c *Collector) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Current returns this frame's key state, nil while a sequence may still continue
func (c *Collector) Current() *KeyState {
	return c.current
}

// Advance pops the next queued state for the frame that lasted dt
func (c *Collector) Advance(dt time.Duration) {
	c.mu.Lock()
	if len(c.queue) > 0 {
		c.frame = c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()
		c.current = &c.frame
		c.idle = 0
		return
	}
	c.mu.Unlock()

	c.idle += dt
	if c.idle < c.timeout {
		c.current = nil
		return
	}
	c.current = &c.empty
}

// Update implements engine.System
func (c *Collector) Update(_ *engine.World, dt time.Duration) {
	c.Advance(dt)
}

// Priority implements engine.System
func (c *Collector) Priority() int { return 0 }

// Name implements engine.NamedSystem
func (c *Collector) Name() string { return "input.collect" }
