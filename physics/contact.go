package physics

import (
	"math"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

// pairKey orders two handles so a pair has one identity
type pairKey struct {
	a, b BodyHandle
}

func makePairKey(h1, h2 BodyHandle) pairKey {
	if h1 > h2 {
		h1, h2 = h2, h1
	}
	return pairKey{a: h1, b: h2}
}

func (k pairKey) less(o pairKey) bool {
	if k.a != o.a {
		return k.a < o.a
	}
	return k.b < o.b
}

// contact is one touching pair; normal points from a to b
type contact struct {
	a, b   *RigidBody
	normal vmath.Vec3
	depth  float64 // negative within contactMargin
}

// detect runs the O(n^2) pair test; body counts here stay in the tens
func (w *World) detect() []contact {
	out := make([]contact, 0, len(w.order))
	for i := 0; i < len(w.order); i++ {
		a := w.order[i]
		if a.collider == nil {
			continue
		}
		for j := i + 1; j < len(w.order); j++ {
			b := w.order[j]
			if b.collider == nil {
				continue
			}
			if !a.moving() && !b.moving() {
				continue
			}
			if c, ok := collide(a, b); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// collide dispatches on shape pair
func collide(a, b *RigidBody) (contact, bool) {
	sa, sb := a.collider.shape, b.collider.shape
	switch {
	case sa == ShapeBall && sb == ShapeBall:
		return collideBalls(a, b)
	case sa == ShapeBall && sb == ShapeCuboid:
		c, ok := collideBallBox(a, b)
		return c, ok
	case sa == ShapeCuboid && sb == ShapeBall:
		c, ok := collideBallBox(b, a)
		if ok {
			c.a, c.b = a, b
			c.normal = c.normal.Mul(-1)
		}
		return c, ok
	default:
		return collideBoxes(a, b)
	}
}

func collideBalls(a, b *RigidBody) (contact, bool) {
	d := b.pos.Sub(a.pos)
	dist := d.Len()
	depth := a.collider.radius + b.collider.radius - dist
	if depth < -contactMargin {
		return contact{}, false
	}
	n := vmath.V3(0, 1, 0)
	if dist > vmath.Epsilon {
		n = d.Mul(1.0 / dist)
	}
	return contact{a: a, b: b, normal: n, depth: depth}, true
}

// collideBallBox tests ball a against box b
func collideBallBox(ball, box *RigidBody) (contact, bool) {
	r := ball.collider.radius
	half := box.collider.aabbHalf()
	closest := vmath.ClosestPointOnAABB(ball.pos, box.pos, half)
	diff := ball.pos.Sub(closest)
	dist := diff.Len()

	if dist > vmath.Epsilon {
		depth := r - dist
		if depth < -contactMargin {
			return contact{}, false
		}
		// diff points box -> ball; contact normal runs ball -> box
		return contact{a: ball, b: box, normal: diff.Mul(-1.0 / dist), depth: depth}, true
	}

	// Center inside the box: push out along the shallowest axis
	o := vmath.AABBOverlap(ball.pos, vmath.V3(r, r, r), box.pos, half)
	axis := minAxis(o)
	n := vmath.Vec3{}
	n[axis] = sign(box.pos[axis] - ball.pos[axis])
	return contact{a: ball, b: box, normal: n, depth: o[axis]}, true
}

func collideBoxes(a, b *RigidBody) (contact, bool) {
	o := vmath.AABBOverlap(a.pos, a.collider.aabbHalf(), b.pos, b.collider.aabbHalf())
	if o[0] < -contactMargin || o[1] < -contactMargin || o[2] < -contactMargin {
		return contact{}, false
	}
	// Near-touching on one axis only counts if the others overlap
	touchingAxes := 0
	for _, v := range o {
		if v > 0 {
			touchingAxes++
		}
	}
	if touchingAxes < 2 {
		return contact{}, false
	}
	axis := minAxis(o)
	n := vmath.Vec3{}
	n[axis] = sign(b.pos[axis] - a.pos[axis])
	return contact{a: a, b: b, normal: n, depth: o[axis]}, true
}

func minAxis(o vmath.Vec3) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if o[i] < o[axis] {
			axis = i
		}
	}
	return axis
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// solveVelocity applies normal and friction impulses; restitution only on the first pass
func (c *contact) solveVelocity(bounce bool) {
	invA, invB := c.a.invMassIfMoving(), c.b.invMassIfMoving()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	rv := c.b.linvel.Sub(c.a.linvel)
	vn := rv.Dot(c.normal)
	if vn >= 0 {
		return
	}

	e := 0.0
	if bounce && -vn > restitutionThreshold {
		e = math.Min(c.a.collider.restitution, c.b.collider.restitution)
	}
	j := -(1.0 + e) * vn / invSum
	impulse := c.normal.Mul(j)
	c.a.linvel = c.a.linvel.Sub(impulse.Mul(invA))
	c.b.linvel = c.b.linvel.Add(impulse.Mul(invB))

	// Coulomb friction on the tangential remainder
	rv = c.b.linvel.Sub(c.a.linvel)
	tangent := rv.Sub(c.normal.Mul(rv.Dot(c.normal)))
	if tangent.Len() < vmath.Epsilon {
		return
	}
	tangent = vmath.V3Normalize(tangent)
	jt := -rv.Dot(tangent) / invSum
	mu := math.Sqrt(c.a.collider.friction * c.b.collider.friction)
	jt = vmath.Clamp(jt, -mu*j, mu*j)
	fImpulse := tangent.Mul(jt)
	c.a.linvel = c.a.linvel.Sub(fImpulse.Mul(invA))
	c.b.linvel = c.b.linvel.Add(fImpulse.Mul(invB))

	if invA > 0 && c.b.moving() {
		c.a.WakeUp()
	}
	if invB > 0 && c.a.moving() {
		c.b.WakeUp()
	}
}

// applyRolling spins balls so they roll on the surface they touch
func (c *contact) applyRolling() {
	if c.a.collider.shape == ShapeBall && c.a.moving() {
		// Surface normal points from b toward a
		n := c.normal.Mul(-1)
		c.a.angvel = n.Cross(c.a.linvel.Sub(c.b.linvel)).Mul(1.0 / c.a.collider.radius)
	}
	if c.b.collider.shape == ShapeBall && c.b.moving() {
		c.b.angvel = c.normal.Cross(c.b.linvel.Sub(c.a.linvel)).Mul(1.0 / c.b.collider.radius)
	}
}

// correctPosition pushes overlapping bodies apart by inverse mass share
func (c *contact) correctPosition() {
	invA, invB := c.a.invMassIfMoving(), c.b.invMassIfMoving()
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	excess := c.depth - correctionSlop
	if excess <= 0 {
		return
	}
	corr := c.normal.Mul(excess / invSum * correctionPercent)
	c.a.pos = c.a.pos.Sub(corr.Mul(invA))
	c.b.pos = c.b.pos.Add(corr.Mul(invB))
}

func (b *RigidBody) invMassIfMoving() float64 {
	if !b.moving() {
		return 0
	}
	return b.invMass
}
