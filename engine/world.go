package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/cellbridge/core"
	"github.com/lixenwraith/cellbridge/status"
)

// World owns entity identities, the parent/child forest, typed component stores and the phased system pipeline
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Hierarchy, children kept in insertion order
	parents  map[core.Entity]core.Entity
	children map[core.Entity][]core.Entity

	storeMu    sync.RWMutex
	stores     map[reflect.Type]AnyStore
	storeOrder []AnyStore

	// Global ResourceStore
	Resources *ResourceStore

	pipeline    pipeline
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with TimeResource and a status registry installed
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		parents:      make(map[core.Entity]core.Entity),
		children:     make(map[core.Entity][]core.Entity),
		stores:       make(map[reflect.Type]AnyStore),
		Resources:    NewResourceStore(),
	}
	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, status.NewRegistry())
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether the entity was created and not yet destroyed
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes the entity, its descendants and all their components
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	doomed := w.collectSubtreeLocked(e, nil)
	if p, ok := w.parents[e]; ok {
		w.children[p] = removeEntity(w.children[p], e)
	}
	for _, d := range doomed {
		delete(w.alive, d)
		delete(w.parents, d)
		delete(w.children, d)
	}
	w.mu.Unlock()

	for _, s := range w.allStores() {
		s.RemoveBatch(doomed)
	}
}

// collectSubtreeLocked appends e and all descendants depth-first
func (w *World) collectSubtreeLocked(e core.Entity, out []core.Entity) []core.Entity {
	out = append(out, e)
	for _, c := range w.children[e] {
		out = w.collectSubtreeLocked(c, out)
	}
	return out
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.parents = make(map[core.Entity]core.Entity)
	w.children = make(map[core.Entity][]core.Entity)
	w.mu.Unlock()

	for _, s := range w.allStores() {
		s.Clear()
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Progress runs one frame: every phase in order, systems by ascending priority
func (w *World) Progress(dt time.Duration) {
	w.RunSafe(func() {
		w.ProgressLocked(dt)
	})
}

// ProgressLocked runs one frame assuming the caller already holds the update lock
func (w *World) ProgressLocked(dt time.Duration) {
	tr := MustGetResource[*TimeResource](w.Resources)
	tr.Update(time.Now(), dt, tr.FrameNumber+1)
	w.pipeline.run(w, dt)
}

func removeEntity(list []core.Entity, e core.Entity) []core.Entity {
	for i, c := range list {
		if c == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
