package physics

import "github.com/lixenwraith/pyramid-smash/vmath"

// BodyHandle is the world-unique identifier of a rigid body
type BodyHandle uint64

// InvalidHandle is never assigned to a body
const InvalidHandle BodyHandle = 0

// RigidBody is a simulated body owned by a World
type RigidBody struct {
	handle   BodyHandle
	bodyType BodyType

	pos    vmath.Vec3
	rot    vmath.Quat
	linvel vmath.Vec3
	angvel vmath.Vec3

	// Kinematic target, persists until overwritten
	nextPos    vmath.Vec3
	nextRot    vmath.Quat
	hasNextPos bool
	hasNextRot bool

	collider *Collider
	invMass  float64
	damping  float64

	sleeping bool
	removed  bool
}

// Handle returns the world-unique body handle
func (b *RigidBody) Handle() BodyHandle { return b.handle }

// BodyType returns how the body is driven
func (b *RigidBody) BodyType() BodyType { return b.bodyType }

// Translation returns the current position
func (b *RigidBody) Translation() vmath.Vec3 { return b.pos }

// Rotation returns the current orientation
func (b *RigidBody) Rotation() vmath.Quat { return b.rot }

// Linvel returns the linear velocity
func (b *RigidBody) Linvel() vmath.Vec3 { return b.linvel }

// Angvel returns the angular velocity in rad/s
func (b *RigidBody) Angvel() vmath.Vec3 { return b.angvel }

// IsDynamic reports a force-simulated body
func (b *RigidBody) IsDynamic() bool { return b.bodyType == BodyDynamic }

// IsFixed reports an immovable body
func (b *RigidBody) IsFixed() bool { return b.bodyType == BodyFixed }

// IsKinematicPositionBased reports an externally posed body
func (b *RigidBody) IsKinematicPositionBased() bool {
	return b.bodyType == BodyKinematicPositionBased
}

// IsSleeping reports whether integration is suspended
func (b *RigidBody) IsSleeping() bool { return b.sleeping }

// IsRemoved reports whether the body was taken out of its world
func (b *RigidBody) IsRemoved() bool { return b.removed }

// Collider returns the attached collider or nil
func (b *RigidBody) Collider() *Collider { return b.collider }

// Mass returns the body mass, zero for fixed and kinematic bodies
func (b *RigidBody) Mass() float64 {
	if b.invMass == 0 {
		return 0
	}
	return 1.0 / b.invMass
}

// SetLinvel overwrites linear velocity, ignored for non-dynamic bodies
func (b *RigidBody) SetLinvel(v vmath.Vec3, wake bool) {
	if b.bodyType != BodyDynamic {
		return
	}
	b.linvel = v
	if wake {
		b.WakeUp()
	}
}

// SetAngvel overwrites angular velocity, ignored for non-dynamic bodies
func (b *RigidBody) SetAngvel(w vmath.Vec3, wake bool) {
	if b.bodyType != BodyDynamic {
		return
	}
	b.angvel = w
	if wake {
		b.WakeUp()
	}
}

// SetTranslation teleports the body
func (b *RigidBody) SetTranslation(v vmath.Vec3, wake bool) {
	b.pos = v
	if wake {
		b.WakeUp()
	}
}

// SetNextKinematicTranslation sets the position reached at the end of the next step
func (b *RigidBody) SetNextKinematicTranslation(v vmath.Vec3) {
	if b.bodyType != BodyKinematicPositionBased {
		return
	}
	b.nextPos = v
	b.hasNextPos = true
}

// SetNextKinematicRotation sets the orientation reached at the end of the next step
func (b *RigidBody) SetNextKinematicRotation(q vmath.Quat) {
	if b.bodyType != BodyKinematicPositionBased {
		return
	}
	b.nextRot = q
	b.hasNextRot = true
}

// NextKinematicTranslation returns the pending kinematic position target
func (b *RigidBody) NextKinematicTranslation() (vmath.Vec3, bool) {
	return b.nextPos, b.hasNextPos
}

// NextKinematicRotation returns the pending kinematic orientation target
func (b *RigidBody) NextKinematicRotation() (vmath.Quat, bool) {
	return b.nextRot, b.hasNextRot
}

// WakeUp resumes integration of a sleeping body
func (b *RigidBody) WakeUp() {
	b.sleeping = false
}

// Sleep suspends integration and zeroes velocities
func (b *RigidBody) Sleep() {
	if b.bodyType != BodyDynamic {
		return
	}
	b.sleeping = true
	b.linvel = vmath.Vec3{}
	b.angvel = vmath.Vec3{}
}

// moving reports whether the solver should treat the body as mobile this step
func (b *RigidBody) moving() bool {
	return b.bodyType == BodyDynamic && !b.sleeping
}
