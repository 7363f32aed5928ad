package system

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/physics"
	"github.com/lixenwraith/pyramid-smash/status"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// CollisionEvent is a physics contact change resolved to entities
// Entity fields are core.NoEntity when the body was not registered
type CollisionEvent struct {
	Entity1 core.Entity
	Entity2 core.Entity
	Handle1 physics.BodyHandle
	Handle2 physics.BodyHandle
	Started bool
}

// PhysicsSystem binds the component store to the rigid-body world
// It owns the world, its event queue and the handle/entity registry
type PhysicsSystem struct {
	world *engine.World
	log   logrus.FieldLogger

	physWorld *physics.World
	events    *physics.EventQueue

	handleToEntity map[physics.BodyHandle]core.Entity
	entityToBody   map[core.Entity]*physics.RigidBody

	listeners []func(CollisionEvent)

	statBodies     *atomic.Int64
	statCollisions *atomic.Int64
}

// NewPhysicsSystem creates an uninitialized binding; call InitPhysics before use
func NewPhysicsSystem(world *engine.World, reg *status.Registry, log logrus.FieldLogger) *PhysicsSystem {
	return &PhysicsSystem{
		world:          world,
		log:            log.WithField("system", "physics"),
		handleToEntity: make(map[physics.BodyHandle]core.Entity),
		entityToBody:   make(map[core.Entity]*physics.RigidBody),
		statBodies:     reg.Ints.Get(status.PhysicsBodies),
		statCollisions: reg.Ints.Get(status.PhysicsCollisions),
	}
}

// Name returns system's name
func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// InitPhysics creates the rigid-body world; it must complete before any other physics call
func (s *PhysicsSystem) InitPhysics(ctx context.Context, gravity vmath.Vec3) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("init physics: %w", err)
	}
	if s.physWorld != nil {
		return errors.New("physics already initialized")
	}
	if !vmath.V3IsFinite(gravity) {
		return fmt.Errorf("init physics: gravity %v is not finite", gravity)
	}
	s.physWorld = physics.NewWorld(gravity)
	s.events = physics.NewEventQueue(true)
	s.log.WithField("gravity", gravity).Debug("physics world ready")
	return nil
}

// Initialized reports whether InitPhysics has completed
func (s *PhysicsSystem) Initialized() bool {
	return s.physWorld != nil
}

// PhysicsWorld returns the rigid-body world
func (s *PhysicsSystem) PhysicsWorld() (*physics.World, error) {
	if s.physWorld == nil {
		return nil, engine.ErrPhysicsNotInitialized
	}
	return s.physWorld, nil
}

// OnCollision adds a listener called for every drained collision event
// Listeners run inside Update and must not create or destroy entities
func (s *PhysicsSystem) OnCollision(fn func(CollisionEvent)) {
	s.listeners = append(s.listeners, fn)
}

// RegisterBody links e to body: PhysicsBody component plus both registry maps
func (s *PhysicsSystem) RegisterBody(e core.Entity, body *physics.RigidBody) error {
	if s.physWorld == nil {
		return engine.ErrPhysicsNotInitialized
	}
	if body == nil || body.IsRemoved() {
		return fmt.Errorf("register body for entity %d: body is not in the world", e)
	}
	if !s.world.IsAlive(e) {
		return fmt.Errorf("register body: entity %d: %w", e, engine.ErrInvalidEntity)
	}
	if _, ok := s.entityToBody[e]; ok {
		return fmt.Errorf("register body: entity %d already has a body", e)
	}
	if owner, ok := s.handleToEntity[body.Handle()]; ok {
		return fmt.Errorf("register body: handle %d already owned by entity %d", body.Handle(), owner)
	}

	s.world.Components.PhysicsBody.Set(e, component.PhysicsBodyComponent{Handle: body.Handle()})
	s.handleToEntity[body.Handle()] = e
	s.entityToBody[e] = body
	s.statBodies.Store(int64(len(s.entityToBody)))
	return nil
}

// UnregisterBody removes the registry entries and the PhysicsBody component of e
// The body stays in the physics world. Returns false when e had no body
func (s *PhysicsSystem) UnregisterBody(e core.Entity) bool {
	body, ok := s.entityToBody[e]
	if !ok {
		return false
	}
	delete(s.entityToBody, e)
	delete(s.handleToEntity, body.Handle())
	s.world.Components.PhysicsBody.Remove(e)
	s.statBodies.Store(int64(len(s.entityToBody)))
	return true
}

// DestroyBody removes the body of e from the physics world, then unregisters it
// Idempotent: returns false when e has no body
func (s *PhysicsSystem) DestroyBody(e core.Entity) bool {
	body, ok := s.entityToBody[e]
	if !ok {
		return false
	}
	if s.physWorld != nil {
		s.physWorld.RemoveRigidBody(body)
	}
	s.UnregisterBody(e)
	return true
}

// Body returns the body registered for e
func (s *PhysicsSystem) Body(e core.Entity) (*physics.RigidBody, bool) {
	b, ok := s.entityToBody[e]
	return b, ok
}

// EntityByHandle resolves a body handle to its entity
func (s *PhysicsSystem) EntityByHandle(h physics.BodyHandle) (core.Entity, bool) {
	e, ok := s.handleToEntity[h]
	return e, ok
}

// BodyCount returns the number of registered bodies
func (s *PhysicsSystem) BodyCount() int {
	return len(s.entityToBody)
}

// CheckRegistry verifies the handle/entity maps are mutual inverses, every registered
// body is live, and PhysicsBody components match the registry exactly
func (s *PhysicsSystem) CheckRegistry() error {
	if len(s.entityToBody) != len(s.handleToEntity) {
		return fmt.Errorf("registry size mismatch: %d entities, %d handles", len(s.entityToBody), len(s.handleToEntity))
	}
	for e, body := range s.entityToBody {
		if owner, ok := s.handleToEntity[body.Handle()]; !ok || owner != e {
			return fmt.Errorf("handle %d of entity %d maps back to %d", body.Handle(), e, owner)
		}
		if body.IsRemoved() {
			return fmt.Errorf("entity %d holds removed body %d", e, body.Handle())
		}
		pb, ok := s.world.Components.PhysicsBody.Get(e)
		if !ok || pb.Handle != body.Handle() {
			return fmt.Errorf("entity %d PhysicsBody component out of sync with handle %d", e, body.Handle())
		}
	}
	if n := s.world.Components.PhysicsBody.Count(); n != len(s.entityToBody) {
		return fmt.Errorf("%d PhysicsBody components for %d registered bodies", n, len(s.entityToBody))
	}
	return nil
}

// Update runs one fixed step: kinematic push, velocity push, step, readback
func (s *PhysicsSystem) Update() error {
	if s.physWorld == nil {
		return engine.ErrPhysicsNotInitialized
	}
	c := &s.world.Components

	// Kinematic bodies take their next pose from Transform
	for _, e := range s.world.Query(engine.KindTransform, engine.KindPhysicsBody) {
		body, ok := s.entityToBody[e]
		if !ok || !body.IsKinematicPositionBased() {
			continue
		}
		t, _ := c.Transform.Get(e)
		body.SetNextKinematicTranslation(t.Position)
		body.SetNextKinematicRotation(t.Rotation)
	}

	// Velocity overwrites dynamic body velocity
	for _, e := range s.world.Query(engine.KindTransform, engine.KindVelocity) {
		body, ok := s.entityToBody[e]
		if !ok || !body.IsDynamic() {
			continue
		}
		v, _ := c.Velocity.Get(e)
		body.SetLinvel(v.Linear, true)
	}

	s.physWorld.Step(s.events)
	s.events.DrainCollisionEvents(s.dispatch)

	// Readback for everything not externally posed
	for _, e := range s.world.Query(engine.KindTransform, engine.KindPhysicsBody) {
		body, ok := s.entityToBody[e]
		if !ok || body.IsKinematicPositionBased() {
			continue
		}
		t := c.Transform.Ptr(e)
		t.Position = body.Translation()
		t.Rotation = body.Rotation()

		if body.IsDynamic() {
			if v := c.Velocity.Ptr(e); v != nil {
				v.Linear = body.Linvel()
			}
		}
	}
	return nil
}

func (s *PhysicsSystem) dispatch(ev physics.CollisionEvent) {
	out := CollisionEvent{
		Entity1: core.NoEntity,
		Entity2: core.NoEntity,
		Handle1: ev.Handle1,
		Handle2: ev.Handle2,
		Started: ev.Started,
	}
	if e, ok := s.handleToEntity[ev.Handle1]; ok {
		out.Entity1 = e
	}
	if e, ok := s.handleToEntity[ev.Handle2]; ok {
		out.Entity2 = e
	}
	if ev.Started {
		s.statCollisions.Add(1)
	}
	for _, fn := range s.listeners {
		fn(out)
	}
}
