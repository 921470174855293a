package engine

import "github.com/lixenwraith/cellbridge/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
//
// Example usage:
//
//	panel := world.NewEntity().
//	    ChildOf(root).
//	    Build()
//	engine.With(eb, engine.GetStore[bridge.Binding](world), bridge.Binding{Layout: drawPanel})
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, component)
	return eb
}

// ChildOf attaches the entity under parent.
// Panics if called after Build().
func (eb *EntityBuilder) ChildOf(parent core.Entity) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot change parent after Build()")
	}
	eb.world.SetParent(eb.entity, parent)
	return eb
}

// Entity returns the reserved ID without finalizing
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build finalizes entity construction and returns the entity ID.
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
