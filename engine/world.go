package engine

import (
	"fmt"

	"github.com/lixenwraith/pyramid-smash/core"
)

// World owns entity ids and their component stores
// Not safe for concurrent use; the game loop goroutine owns it
type World struct {
	capacity    int
	next        core.Entity   // lowest never-issued id
	free        []core.Entity // released ids, reused LIFO
	alive       []bool
	generations []uint32
	live        int

	Components ComponentStore
	stores     [KindCount]kindStore
}

// NewWorld creates a world holding at most capacity live entities
func NewWorld(capacity int) *World {
	if capacity <= 0 {
		panic(fmt.Sprintf("engine: world capacity must be positive, got %d", capacity))
	}
	w := &World{
		capacity:    capacity,
		free:        make([]core.Entity, 0, 64),
		alive:       make([]bool, capacity),
		generations: make([]uint32, capacity),
		Components:  newComponentStore(capacity),
	}
	w.stores = w.Components.byKind()
	return w
}

// CreateEntity reserves an id, reusing the most recently released one first
func (w *World) CreateEntity() (core.Entity, error) {
	var e core.Entity
	switch {
	case len(w.free) > 0:
		e = w.free[len(w.free)-1]
		w.free = w.free[:len(w.free)-1]
	case int(w.next) < w.capacity:
		e = w.next
		w.next++
	default:
		return core.NoEntity, ErrWorldFull
	}
	w.alive[e] = true
	w.live++
	return e, nil
}

// DestroyEntity clears every component of e and releases its id
// Returns false without side effects when e is not live
func (w *World) DestroyEntity(e core.Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.alive[e] = false
	w.generations[e]++
	w.free = append(w.free, e)
	w.live--
	return true
}

// IsAlive reports whether e is a live id
func (w *World) IsAlive(e core.Entity) bool {
	return int(e) < w.capacity && w.alive[e]
}

// Generation returns how many times the slot of e has been released
func (w *World) Generation(e core.Entity) uint32 {
	if int(e) >= w.capacity {
		return 0
	}
	return w.generations[e]
}

// Attach adds a zero-valued component of kind to e, keeping an existing one
func (w *World) Attach(e core.Entity, kind ComponentKind) error {
	if !kind.Valid() {
		return fmt.Errorf("attach %s: unknown component kind", kind)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("attach %s to entity %d: %w", kind, e, ErrInvalidEntity)
	}
	w.stores[kind].attachZero(e)
	return nil
}

// Has reports whether e carries kind
func (w *World) Has(e core.Entity, kind ComponentKind) bool {
	if !kind.Valid() {
		return false
	}
	return w.stores[kind].Has(e)
}

// Store returns the type-erased store of kind
func (w *World) Store(kind ComponentKind) QueryableStore {
	if !kind.Valid() {
		return nil
	}
	return w.stores[kind]
}

// Query returns the entities holding every kind, as a fresh snapshot
// No kinds yields an empty result
func (w *World) Query(kinds ...ComponentKind) []core.Entity {
	qb := w.NewQuery()
	for _, k := range kinds {
		if !k.Valid() {
			return []core.Entity{}
		}
		qb.With(w.stores[k])
	}
	return qb.Execute()
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.live
}

// Capacity returns the maximum number of live entities
func (w *World) Capacity() int {
	return w.capacity
}

// Clear destroys every entity, bumping generations of live slots
func (w *World) Clear() {
	for i := 0; i < int(w.next); i++ {
		if w.alive[i] {
			w.alive[i] = false
			w.generations[i]++
		}
	}
	for _, s := range w.stores {
		s.Clear()
	}
	w.next = 0
	w.free = w.free[:0]
	w.live = 0
}
