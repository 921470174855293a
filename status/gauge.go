package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 reading that also remembers the highest value set since the last ResetPeak
// The zero value reads 0 with no peak
type Gauge struct {
	cur  atomic.Uint64
	peak atomic.Uint64
}

// Set records v and raises the peak if v exceeds it
func (g *Gauge) Set(v float64) {
	g.cur.Store(math.Float64bits(v))
	g.raise(v)
}

// Get returns the latest reading
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.cur.Load())
}

// Add adds delta to the reading and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.cur.Load()
		v := math.Float64frombits(old) + delta
		if g.cur.CompareAndSwap(old, math.Float64bits(v)) {
			g.raise(v)
			return v
		}
	}
}

// Peak returns the highest reading since the last ResetPeak
func (g *Gauge) Peak() float64 {
	return math.Float64frombits(g.peak.Load())
}

// ResetPeak lowers the peak to the latest reading
func (g *Gauge) ResetPeak() {
	g.peak.Store(g.cur.Load())
}

func (g *Gauge) raise(v float64) {
	for {
		old := g.peak.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if g.peak.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}
