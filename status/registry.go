package status

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry groups the metric maps shared by the world, the bridge and the renderer
// Components cache cell pointers at construction and update them from the frame loop
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Gauge]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Gauge](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

type dumpLine struct {
	key, value string
}

// Dump visits every metric in key order across all kinds
// Gauges named *.ms print as milliseconds with their peak
func (r *Registry) Dump(fn func(key, value string)) {
	lines := make([]dumpLine, 0, r.TotalCount())
	r.Bools.Range(func(k string, c *atomic.Bool) {
		lines = append(lines, dumpLine{k, strconv.FormatBool(c.Load())})
	})
	r.Ints.Range(func(k string, c *atomic.Int64) {
		lines = append(lines, dumpLine{k, strconv.FormatInt(c.Load(), 10)})
	})
	r.Floats.Range(func(k string, c *Gauge) {
		lines = append(lines, dumpLine{k, formatGauge(k, c)})
	})
	r.Strings.Range(func(k string, c *AtomicString) {
		lines = append(lines, dumpLine{k, c.Load()})
	})

	slices.SortStableFunc(lines, func(a, b dumpLine) int {
		return strings.Compare(a.key, b.key)
	})
	for _, l := range lines {
		fn(l.key, l.value)
	}
}

func formatGauge(key string, g *Gauge) string {
	if strings.HasSuffix(key, ".ms") {
		return strconv.FormatFloat(g.Get(), 'f', 2, 64) + "ms (peak " +
			strconv.FormatFloat(g.Peak(), 'f', 2, 64) + "ms)"
	}
	return strconv.FormatFloat(g.Get(), 'f', 3, 64)
}
