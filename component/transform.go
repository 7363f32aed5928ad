package component

import "github.com/lixenwraith/pyramid-smash/vmath"

// TransformComponent is the world pose of an entity
// Rotation is a unit quaternion once written by physics readback
type TransformComponent struct {
	Position vmath.Vec3
	Rotation vmath.Quat
}

// NewTransform returns a pose at pos with identity rotation
func NewTransform(pos vmath.Vec3) TransformComponent {
	return TransformComponent{Position: pos, Rotation: vmath.QuatIdentity()}
}
