package component

import "github.com/lixenwraith/pyramid-smash/physics"

// PhysicsBodyComponent links an entity to its rigid body
// Present exactly while the physics registry holds a body for the entity
type PhysicsBodyComponent struct {
	Handle physics.BodyHandle
}
