package physics

import (
	"math"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

// BodyType selects how the solver drives a body
type BodyType uint8

const (
	BodyDynamic                BodyType = iota // Force-simulated
	BodyFixed                                  // Never moves
	BodyKinematicPositionBased                 // Pose set externally each step
)

// String returns the body type name
func (t BodyType) String() string {
	switch t {
	case BodyDynamic:
		return "dynamic"
	case BodyFixed:
		return "fixed"
	case BodyKinematicPositionBased:
		return "kinematic"
	default:
		return "unknown"
	}
}

// RigidBodyDesc describes a body before creation
type RigidBodyDesc struct {
	Type          BodyType
	Translation   vmath.Vec3
	Rotation      vmath.Quat
	Linvel        vmath.Vec3
	LinearDamping float64
}

// NewDynamicBodyDesc returns a descriptor for a force-simulated body at the origin
func NewDynamicBodyDesc() *RigidBodyDesc {
	return &RigidBodyDesc{Type: BodyDynamic, Rotation: vmath.QuatIdentity()}
}

// NewFixedBodyDesc returns a descriptor for an immovable body at the origin
func NewFixedBodyDesc() *RigidBodyDesc {
	return &RigidBodyDesc{Type: BodyFixed, Rotation: vmath.QuatIdentity()}
}

// NewKinematicPositionBasedBodyDesc returns a descriptor for an externally driven body
func NewKinematicPositionBasedBodyDesc() *RigidBodyDesc {
	return &RigidBodyDesc{Type: BodyKinematicPositionBased, Rotation: vmath.QuatIdentity()}
}

// SetTranslation sets the initial position
func (d *RigidBodyDesc) SetTranslation(x, y, z float64) *RigidBodyDesc {
	d.Translation = vmath.V3(x, y, z)
	return d
}

// SetRotation sets the initial orientation
func (d *RigidBodyDesc) SetRotation(q vmath.Quat) *RigidBodyDesc {
	d.Rotation = q
	return d
}

// SetLinvel sets the initial linear velocity
func (d *RigidBodyDesc) SetLinvel(v vmath.Vec3) *RigidBodyDesc {
	d.Linvel = v
	return d
}

// SetLinearDamping sets velocity damping per second
func (d *RigidBodyDesc) SetLinearDamping(damping float64) *RigidBodyDesc {
	d.LinearDamping = damping
	return d
}

func (d *RigidBodyDesc) validate() error {
	if d == nil {
		return ErrInvalidBodyDesc
	}
	if !vmath.V3IsFinite(d.Translation) || !vmath.V3IsFinite(d.Linvel) || !vmath.V3IsFinite(d.Rotation.V) {
		return ErrInvalidBodyDesc
	}
	if math.IsNaN(d.Rotation.W) || d.LinearDamping < 0 {
		return ErrInvalidBodyDesc
	}
	return nil
}

// ShapeType identifies collider geometry
type ShapeType uint8

const (
	ShapeCuboid ShapeType = iota
	ShapeBall
)

const (
	defaultRestitution = 0.2
	defaultFriction    = 0.5
	defaultDensity     = 1.0
)

// ColliderDesc describes collision geometry and material
type ColliderDesc struct {
	Shape       ShapeType
	HalfExtents vmath.Vec3 // Cuboid only
	Radius      float64    // Ball only
	Mass        float64    // Zero derives mass from volume at unit density
	Restitution float64
	Friction    float64
}

// Cuboid returns a box collider descriptor with the given half extents
func Cuboid(hx, hy, hz float64) *ColliderDesc {
	return &ColliderDesc{
		Shape:       ShapeCuboid,
		HalfExtents: vmath.V3(hx, hy, hz),
		Restitution: defaultRestitution,
		Friction:    defaultFriction,
	}
}

// Ball returns a sphere collider descriptor
func Ball(radius float64) *ColliderDesc {
	return &ColliderDesc{
		Shape:       ShapeBall,
		Radius:      radius,
		Restitution: defaultRestitution,
		Friction:    defaultFriction,
	}
}

// SetMass overrides the volume-derived mass
func (d *ColliderDesc) SetMass(mass float64) *ColliderDesc {
	d.Mass = mass
	return d
}

// SetRestitution sets bounciness in [0, 1]
func (d *ColliderDesc) SetRestitution(r float64) *ColliderDesc {
	d.Restitution = r
	return d
}

// SetFriction sets the Coulomb friction coefficient
func (d *ColliderDesc) SetFriction(f float64) *ColliderDesc {
	d.Friction = f
	return d
}

func (d *ColliderDesc) validate() error {
	if d == nil {
		return ErrInvalidCollider
	}
	switch d.Shape {
	case ShapeCuboid:
		if !vmath.V3IsFinite(d.HalfExtents) || d.HalfExtents[0] <= 0 || d.HalfExtents[1] <= 0 || d.HalfExtents[2] <= 0 {
			return ErrInvalidCollider
		}
	case ShapeBall:
		if math.IsNaN(d.Radius) || math.IsInf(d.Radius, 0) || d.Radius <= 0 {
			return ErrInvalidCollider
		}
	default:
		return ErrInvalidCollider
	}
	if math.IsNaN(d.Mass) || math.IsInf(d.Mass, 0) || d.Mass < 0 {
		return ErrInvalidCollider
	}
	if d.Restitution < 0 || d.Restitution > 1 || d.Friction < 0 {
		return ErrInvalidCollider
	}
	return nil
}

// volume of the described shape
func (d *ColliderDesc) volume() float64 {
	if d.Shape == ShapeBall {
		return 4.0 / 3.0 * math.Pi * d.Radius * d.Radius * d.Radius
	}
	return 8 * d.HalfExtents[0] * d.HalfExtents[1] * d.HalfExtents[2]
}
