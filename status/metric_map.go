package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metric cells of one type
// Lookup creates cells on demand; owners keep the pointer and write it without the map lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell named key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell := m.cells[key]
	m.mu.RUnlock()
	if cell != nil {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell = m.cells[key]; cell == nil {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// Has reports whether key is registered
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cells[key] != nil
}

// Keys returns registered names in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.cells))
}

// Range visits cells in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	for _, k := range m.Keys() {
		fn(k, m.Get(k))
	}
}

// Count returns the number of registered cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
