package engine

import (
	"reflect"
)

// GetStore returns the world's store for component type T, creating it on first use
// Stores are keyed by reflect.Type the same way resources are
func GetStore[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.storeMu.RLock()
	if s, ok := w.stores[t]; ok {
		w.storeMu.RUnlock()
		return s.(*Store[T])
	}
	w.storeMu.RUnlock()

	w.storeMu.Lock()
	defer w.storeMu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.storeOrder = append(w.storeOrder, s)
	return s
}

// allStores returns a snapshot of registered stores in creation order
func (w *World) allStores() []AnyStore {
	w.storeMu.RLock()
	defer w.storeMu.RUnlock()
	out := make([]AnyStore, len(w.storeOrder))
	copy(out, w.storeOrder)
	return out
}
