package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/physics"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// EntityFactory builds archetype entities across the component store and physics world
// Each call either fully succeeds or leaves no entity, component or body behind
type EntityFactory struct {
	world   *engine.World
	physics *PhysicsSystem
	log     logrus.FieldLogger
}

// NewEntityFactory creates a factory over world and ps
func NewEntityFactory(world *engine.World, ps *PhysicsSystem, log logrus.FieldLogger) *EntityFactory {
	return &EntityFactory{
		world:   world,
		physics: ps,
		log:     log.WithField("component", "factory"),
	}
}

// DynamicBox creates a simulated box: Transform, Velocity and PhysicsBody
func (f *EntityFactory) DynamicBox(pos, halfExtents vmath.Vec3, mass float64) (core.Entity, error) {
	body := physics.NewDynamicBodyDesc().SetTranslation(pos.X(), pos.Y(), pos.Z())
	collider := physics.Cuboid(halfExtents.X(), halfExtents.Y(), halfExtents.Z()).
		SetMass(mass).
		SetRestitution(parameter.BlockRestitution).
		SetFriction(parameter.BlockFriction)
	return f.spawn("dynamic box", pos, body, collider, true)
}

// StaticBox creates an immovable box: Transform and PhysicsBody
func (f *EntityFactory) StaticBox(pos, halfExtents vmath.Vec3) (core.Entity, error) {
	body := physics.NewFixedBodyDesc().SetTranslation(pos.X(), pos.Y(), pos.Z())
	collider := physics.Cuboid(halfExtents.X(), halfExtents.Y(), halfExtents.Z()).
		SetFriction(parameter.GroundFriction)
	return f.spawn("static box", pos, body, collider, false)
}

// Sphere creates a simulated ball: Transform, Velocity and PhysicsBody
func (f *EntityFactory) Sphere(pos vmath.Vec3, radius, mass float64) (core.Entity, error) {
	body := physics.NewDynamicBodyDesc().SetTranslation(pos.X(), pos.Y(), pos.Z())
	collider := physics.Ball(radius).
		SetMass(mass).
		SetRestitution(parameter.BallRestitution).
		SetFriction(parameter.BallFriction)
	return f.spawn("sphere", pos, body, collider, true)
}

// KinematicBox creates an externally posed box driven by its Transform
func (f *EntityFactory) KinematicBox(pos, halfExtents vmath.Vec3) (core.Entity, error) {
	body := physics.NewKinematicPositionBasedBodyDesc().SetTranslation(pos.X(), pos.Y(), pos.Z())
	collider := physics.Cuboid(halfExtents.X(), halfExtents.Y(), halfExtents.Z())
	return f.spawn("kinematic box", pos, body, collider, false)
}

func (f *EntityFactory) spawn(
	archetype string,
	pos vmath.Vec3,
	bodyDesc *physics.RigidBodyDesc,
	colliderDesc *physics.ColliderDesc,
	withVelocity bool,
) (core.Entity, error) {
	pw, err := f.physics.PhysicsWorld()
	if err != nil {
		return core.NoEntity, fmt.Errorf("create %s: %w", archetype, err)
	}

	e, err := f.world.CreateEntity()
	if err != nil {
		return core.NoEntity, fmt.Errorf("create %s: %w", archetype, err)
	}

	f.world.Components.Transform.Set(e, component.NewTransform(pos))
	if withVelocity {
		f.world.Components.Velocity.Set(e, component.VelocityComponent{})
	}

	// Rollback in reverse order of construction
	var body *physics.RigidBody
	fail := func(cause error) (core.Entity, error) {
		if body != nil {
			pw.RemoveRigidBody(body)
		}
		f.world.DestroyEntity(e)
		f.log.WithError(cause).WithField("archetype", archetype).Warn("entity creation rolled back")
		return core.NoEntity, fmt.Errorf("create %s: %w: %w", archetype, engine.ErrPhysicsBodyCreationFailed, cause)
	}

	body, err = pw.CreateRigidBody(bodyDesc)
	if err != nil {
		return fail(err)
	}
	if _, err = pw.CreateCollider(colliderDesc, body); err != nil {
		return fail(err)
	}
	if err = f.physics.RegisterBody(e, body); err != nil {
		return fail(err)
	}

	f.log.WithFields(logrus.Fields{
		"entity":    e,
		"handle":    body.Handle(),
		"archetype": archetype,
	}).Debug("entity created")
	return e, nil
}
