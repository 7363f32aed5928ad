package engine

import (
	"github.com/lixenwraith/pyramid-smash/core"
)

const absent = -1

// Store is a sparse set holding component T for entities
// Dense arrays keep iteration cache-friendly; removal swaps the last element into the hole
type Store[T any] struct {
	sparse   []int32       // entity -> dense index, absent when missing
	dense    []T           // component values
	entities []core.Entity // dense index -> entity
}

// NewStore creates a store sized for capacity entities
func NewStore[T any](capacity int) *Store[T] {
	s := &Store[T]{
		sparse:   make([]int32, capacity),
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
	for i := range s.sparse {
		s.sparse[i] = absent
	}
	return s
}

// Set inserts or updates the component for e
func (s *Store[T]) Set(e core.Entity, val T) {
	s.grow(e)
	if idx := s.sparse[e]; idx != absent {
		s.dense[idx] = val
		return
	}
	s.sparse[e] = int32(len(s.dense))
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get returns the component for e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if int(e) >= len(s.sparse) || s.sparse[e] == absent {
		var zero T
		return zero, false
	}
	return s.dense[s.sparse[e]], true
}

// Ptr returns a pointer into dense storage, valid until the next structural change
func (s *Store[T]) Ptr(e core.Entity) *T {
	if int(e) >= len(s.sparse) || s.sparse[e] == absent {
		return nil
	}
	return &s.dense[s.sparse[e]]
}

// Remove deletes the component for e, no-op if absent
func (s *Store[T]) Remove(e core.Entity) {
	if int(e) >= len(s.sparse) {
		return
	}
	idx := s.sparse[e]
	if idx == absent {
		return
	}
	last := int32(len(s.dense) - 1)
	if idx != last {
		moved := s.entities[last]
		s.dense[idx] = s.dense[last]
		s.entities[idx] = moved
		s.sparse[moved] = idx
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[e] = absent
}

// Has reports whether e has this component
func (s *Store[T]) Has(e core.Entity) bool {
	return int(e) < len(s.sparse) && s.sparse[e] != absent
}

// All returns a copy of the entities holding this component, in dense order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities holding this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	for _, e := range s.entities {
		s.sparse[e] = absent
	}
	clear(s.dense)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
}

// attachZero sets the zero value unless e already has the component
func (s *Store[T]) attachZero(e core.Entity) {
	if s.Has(e) {
		return
	}
	var zero T
	s.Set(e, zero)
}

func (s *Store[T]) grow(e core.Entity) {
	if int(e) < len(s.sparse) {
		return
	}
	n := len(s.sparse) * 2
	if n <= int(e) {
		n = int(e) + 1
	}
	sparse := make([]int32, n)
	copy(sparse, s.sparse)
	for i := len(s.sparse); i < n; i++ {
		sparse[i] = absent
	}
	s.sparse = sparse
}
