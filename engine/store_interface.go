package engine

import (
	"github.com/lixenwraith/cellbridge/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip a destroyed entity from every store without knowing T
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
	RemoveBatch(entities []core.Entity)
}

// QueryableStore extends AnyStore with the entity listing the query builder intersects
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
