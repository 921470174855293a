package engine

import (
	"iter"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/cellbridge/core"
)

// SetParent attaches child under parent, detaching it from any previous parent
// Passing core.NoEntity as parent makes child a root
// Returns false and leaves the hierarchy unchanged when parent is child or one of its descendants
func (w *World) SetParent(child, parent core.Entity) bool {
	if child == parent {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	for up := parent; up != core.NoEntity; up = w.parents[up] {
		if up == child {
			log.Warn("hierarchy cycle rejected", "child", child, "parent", parent)
			return false
		}
	}

	if old, ok := w.parents[child]; ok {
		if old == parent {
			return true
		}
		w.children[old] = removeEntity(w.children[old], child)
		delete(w.parents, child)
	}
	if parent == core.NoEntity {
		return true
	}
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return true
}

// Parent returns the entity's parent, or NoEntity for roots
func (w *World) Parent(e core.Entity) core.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parents[e]
}

// ChildCount returns the number of direct children
func (w *World) ChildCount(e core.Entity) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.children[e])
}

// Children yields direct children in insertion order
// The list is snapshotted when iteration starts so callbacks may mutate the hierarchy
func (w *World) Children(e core.Entity) iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		w.mu.RLock()
		kids := w.children[e]
		snapshot := make([]core.Entity, len(kids))
		copy(snapshot, kids)
		w.mu.RUnlock()

		for _, c := range snapshot {
			if !yield(c) {
				return
			}
		}
	}
}
