package engine

import (
	"github.com/lixenwraith/pyramid-smash/component"
)

// ComponentStore holds the typed store of every component kind
// Systems copy it once at construction; the pointers stay valid for the world's lifetime
type ComponentStore struct {
	Transform   *Store[component.TransformComponent]
	Velocity    *Store[component.VelocityComponent]
	PhysicsBody *Store[component.PhysicsBodyComponent]

	// Tags
	Block *Store[component.BlockComponent]
	Bomb  *Store[component.BombComponent]

	// Transient
	Input *Store[component.InputComponent]
}

func newComponentStore(capacity int) ComponentStore {
	return ComponentStore{
		Transform:   NewStore[component.TransformComponent](capacity),
		Velocity:    NewStore[component.VelocityComponent](capacity),
		PhysicsBody: NewStore[component.PhysicsBodyComponent](capacity),
		Block:       NewStore[component.BlockComponent](capacity),
		Bomb:        NewStore[component.BombComponent](capacity),
		Input:       NewStore[component.InputComponent](capacity),
	}
}

// byKind indexes the stores by ComponentKind
func (c *ComponentStore) byKind() [KindCount]kindStore {
	return [KindCount]kindStore{
		KindTransform:   c.Transform,
		KindVelocity:    c.Velocity,
		KindPhysicsBody: c.PhysicsBody,
		KindBlock:       c.Block,
		KindBomb:        c.Bomb,
		KindInput:       c.Input,
	}
}
