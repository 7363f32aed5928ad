package physics

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

// DefaultTimestep is the fixed step length in seconds
const DefaultTimestep = 1.0 / 60.0

const (
	defaultSolverIterations = 8
	restitutionThreshold    = 1.0   // m/s closing speed below which contacts do not bounce
	correctionPercent       = 0.8   // share of penetration resolved per step
	correctionSlop          = 0.005 // penetration tolerated without correction
	contactMargin           = 0.02  // separation still treated as touching
)

// World owns every rigid body and advances them in fixed steps
type World struct {
	Gravity          vmath.Vec3
	Timestep         float64
	SolverIterations int

	nextHandle BodyHandle
	bodies     map[BodyHandle]*RigidBody
	order      []*RigidBody // creation order, keeps stepping deterministic

	touching map[pairKey]struct{}
}

// NewWorld creates an empty world with the given gravity
func NewWorld(gravity vmath.Vec3) *World {
	return &World{
		Gravity:          gravity,
		Timestep:         DefaultTimestep,
		SolverIterations: defaultSolverIterations,
		nextHandle:       1,
		bodies:           make(map[BodyHandle]*RigidBody),
		order:            make([]*RigidBody, 0, 64),
		touching:         make(map[pairKey]struct{}),
	}
}

// CreateRigidBody inserts a body built from desc
func (w *World) CreateRigidBody(desc *RigidBodyDesc) (*RigidBody, error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}

	b := &RigidBody{
		handle:   w.nextHandle,
		bodyType: desc.Type,
		pos:      desc.Translation,
		rot:      vmath.QuatNormalize(desc.Rotation),
		linvel:   desc.Linvel,
		damping:  desc.LinearDamping,
	}
	if b.bodyType == BodyDynamic {
		b.invMass = 1.0
	} else {
		b.linvel = vmath.Vec3{}
	}

	w.nextHandle++
	w.bodies[b.handle] = b
	w.order = append(w.order, b)
	return b, nil
}

// CreateCollider attaches collision geometry to body and sets its mass
func (w *World) CreateCollider(desc *ColliderDesc, body *RigidBody) (*Collider, error) {
	if err := desc.validate(); err != nil {
		return nil, err
	}
	if body == nil || body.removed || w.bodies[body.handle] != body {
		return nil, ErrBodyRemoved
	}
	if body.collider != nil {
		return nil, fmt.Errorf("body %d: %w", body.handle, ErrColliderExists)
	}

	mass := desc.Mass
	if mass == 0 {
		mass = desc.volume() * defaultDensity
	}

	c := &Collider{
		shape:       desc.Shape,
		halfExtents: desc.HalfExtents,
		radius:      desc.Radius,
		mass:        mass,
		restitution: desc.Restitution,
		friction:    desc.Friction,
		body:        body,
	}
	body.collider = c
	if body.bodyType == BodyDynamic {
		body.invMass = 1.0 / mass
	}
	return c, nil
}

// RemoveRigidBody takes body and its collider out of the world
// Returns false if the body was not in this world
func (w *World) RemoveRigidBody(body *RigidBody) bool {
	if body == nil || w.bodies[body.handle] != body {
		return false
	}
	delete(w.bodies, body.handle)
	for i, b := range w.order {
		if b == body {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	for key := range w.touching {
		if key.a == body.handle || key.b == body.handle {
			delete(w.touching, key)
		}
	}
	body.removed = true
	return true
}

// Body looks up a live body by handle
func (w *World) Body(h BodyHandle) (*RigidBody, bool) {
	b, ok := w.bodies[h]
	return b, ok
}

// BodyCount returns the number of live bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Step advances the world by one Timestep and records contact changes in events
// events may be nil
func (w *World) Step(events *EventQueue) {
	dt := w.Timestep
	if events != nil && events.autoDrain {
		events.Clear()
	}

	// Velocities: gravity and damping for dynamics, target velocity for kinematics
	for _, b := range w.order {
		switch {
		case b.moving():
			b.linvel = b.linvel.Add(w.Gravity.Mul(dt))
			if b.damping > 0 {
				b.linvel = b.linvel.Mul(1.0 / (1.0 + dt*b.damping))
			}
		case b.bodyType == BodyKinematicPositionBased:
			if b.hasNextPos {
				b.linvel = b.nextPos.Sub(b.pos).Mul(1.0 / dt)
			} else {
				b.linvel = vmath.Vec3{}
			}
		}
	}

	// Velocity constraints against contacts at the start-of-step pose
	contacts := w.detect()
	for iter := 0; iter < w.SolverIterations; iter++ {
		for i := range contacts {
			contacts[i].solveVelocity(iter == 0)
		}
	}
	for i := range contacts {
		contacts[i].applyRolling()
	}

	// Positions
	for _, b := range w.order {
		switch {
		case b.moving():
			b.pos = b.pos.Add(b.linvel.Mul(dt))
			b.rot = vmath.QuatIntegrate(b.rot, b.angvel, dt)
		case b.bodyType == BodyKinematicPositionBased:
			if b.hasNextPos {
				b.pos = b.nextPos
			}
			if b.hasNextRot {
				b.rot = vmath.QuatNormalize(b.nextRot)
			}
		}
	}

	// Penetration left after integration
	after := w.detect()
	for i := range after {
		after[i].correctPosition()
	}

	w.diffContacts(after, events)
}

// diffContacts emits start/stop events between the previous and current touching sets
func (w *World) diffContacts(current []contact, events *EventQueue) {
	now := make(map[pairKey]struct{}, len(current))
	for _, c := range current {
		key := makePairKey(c.a.handle, c.b.handle)
		now[key] = struct{}{}
		if _, was := w.touching[key]; !was && events != nil {
			events.push(CollisionEvent{Handle1: key.a, Handle2: key.b, Started: true})
		}
	}
	if events != nil {
		stopped := make([]pairKey, 0)
		for key := range w.touching {
			if _, still := now[key]; !still {
				stopped = append(stopped, key)
			}
		}
		sort.Slice(stopped, func(i, j int) bool { return stopped[i].less(stopped[j]) })
		for _, key := range stopped {
			events.push(CollisionEvent{Handle1: key.a, Handle2: key.b, Started: false})
		}
	}
	w.touching = now
}
