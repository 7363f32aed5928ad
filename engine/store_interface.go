package engine

import (
	"github.com/lixenwraith/pyramid-smash/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to clear an entity from every store without knowing component types
type AnyStore interface {
	// Remove deletes the component of an entity
	Remove(e core.Entity)

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Clear removes all components from this store
	Clear()
}

// QueryableStore extends AnyStore with the entity listing the query builder intersects
type QueryableStore interface {
	AnyStore

	// All returns all entities that have this component type
	All() []core.Entity
}

// kindStore is a store reachable by ComponentKind
type kindStore interface {
	QueryableStore
	attachZero(e core.Entity)
}
