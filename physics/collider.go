package physics

import (
	"math"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

// Collider is collision geometry attached to one body
type Collider struct {
	shape       ShapeType
	halfExtents vmath.Vec3
	radius      float64
	mass        float64
	restitution float64
	friction    float64
	body        *RigidBody
}

// Shape returns the collider geometry kind
func (c *Collider) Shape() ShapeType { return c.shape }

// HalfExtents returns cuboid half extents, zero for balls
func (c *Collider) HalfExtents() vmath.Vec3 { return c.halfExtents }

// Radius returns the ball radius, zero for cuboids
func (c *Collider) Radius() float64 { return c.radius }

// Mass returns the collider mass
func (c *Collider) Mass() float64 { return c.mass }

// Body returns the parent body
func (c *Collider) Body() *RigidBody { return c.body }

// aabbHalf returns world-space half extents of the collider bounds
func (c *Collider) aabbHalf() vmath.Vec3 {
	if c.shape == ShapeBall {
		return vmath.V3(c.radius, c.radius, c.radius)
	}
	// |R| * h bounds a rotated box
	m := c.body.rot.Mat4()
	h := c.halfExtents
	var out vmath.Vec3
	for row := 0; row < 3; row++ {
		out[row] = math.Abs(m.At(row, 0))*h[0] + math.Abs(m.At(row, 1))*h[1] + math.Abs(m.At(row, 2))*h[2]
	}
	return out
}
