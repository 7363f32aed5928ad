package input

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// RayCaster turns a point in normalized device coordinates into a world ray
type RayCaster interface {
	Ray(x, y float64) (origin, dir vmath.Vec3)
}

type grab struct {
	entity     core.Entity
	generation uint32
}

// DragController lets a pointer grab a live ball and throw it on release
// The Input component exists on the ball only while the drag is active
type DragController struct {
	world  *engine.World
	caster RayCaster
	log    logrus.FieldLogger

	grabs map[int]grab // pointer id -> grabbed ball
}

// NewDragController creates a controller picking balls through caster
func NewDragController(world *engine.World, caster RayCaster, log logrus.FieldLogger) *DragController {
	return &DragController{
		world:  world,
		caster: caster,
		log:    log.WithField("component", "drag"),
		grabs:  make(map[int]grab),
	}
}

// PointerDown grabs the ball nearest to the pointer ray, if any lies within pick radius
func (d *DragController) PointerDown(pointerID int, x, y float64) (core.Entity, bool) {
	if _, busy := d.grabs[pointerID]; busy {
		d.PointerUp(pointerID, x, y)
	}

	e, ok := d.pick(x, y)
	if !ok {
		return core.NoEntity, false
	}

	d.world.Components.Input.Set(e, component.InputComponent{
		DragStartX: x,
		DragStartY: y,
		DragEndX:   x,
		DragEndY:   y,
		PointerID:  pointerID,
		Active:     true,
	})
	d.grabs[pointerID] = grab{entity: e, generation: d.world.Generation(e)}
	d.log.WithFields(logrus.Fields{"entity": e, "pointer": pointerID}).Debug("drag started")
	return e, true
}

// PointerMove updates the drag end of the ball held by pointerID
func (d *DragController) PointerMove(pointerID int, x, y float64) bool {
	in := d.input(pointerID)
	if in == nil {
		return false
	}
	in.DragEndX = x
	in.DragEndY = y
	return true
}

// PointerUp releases the held ball, writing the throw into its Velocity
// Returns the throw and whether a live ball was thrown
func (d *DragController) PointerUp(pointerID int, x, y float64) (vmath.Vec3, bool) {
	in := d.input(pointerID)
	if in == nil {
		return vmath.Vec3{}, false
	}
	g := d.grabs[pointerID]
	delete(d.grabs, pointerID)

	in.DragEndX = x
	in.DragEndY = y
	throw := ThrowVector(*in)
	d.world.Components.Input.Remove(g.entity)

	if vel := d.world.Components.Velocity.Ptr(g.entity); vel != nil {
		vel.Linear = throw
	}
	d.log.WithFields(logrus.Fields{"entity": g.entity, "pointer": pointerID}).Debug("ball thrown")
	return throw, true
}

// Cancel ends a drag the way a release does
func (d *DragController) Cancel(pointerID int) (vmath.Vec3, bool) {
	in := d.input(pointerID)
	if in == nil {
		delete(d.grabs, pointerID)
		return vmath.Vec3{}, false
	}
	return d.PointerUp(pointerID, in.DragEndX, in.DragEndY)
}

// Reset drops every drag without throwing
func (d *DragController) Reset() {
	for id := range d.grabs {
		if d.input(id) != nil {
			d.world.Components.Input.Remove(d.grabs[id].entity)
		}
		delete(d.grabs, id)
	}
}

// Dragging reports whether pointerID holds a ball
func (d *DragController) Dragging(pointerID int) bool {
	return d.input(pointerID) != nil
}

// input returns the active Input component held by pointerID
// Stale grabs on despawned or recycled entities are discarded
func (d *DragController) input(pointerID int) *component.InputComponent {
	g, ok := d.grabs[pointerID]
	if !ok {
		return nil
	}
	if !d.world.IsAlive(g.entity) || d.world.Generation(g.entity) != g.generation {
		delete(d.grabs, pointerID)
		return nil
	}
	in := d.world.Components.Input.Ptr(g.entity)
	if in == nil || !in.Active || in.PointerID != pointerID {
		delete(d.grabs, pointerID)
		return nil
	}
	return in
}

func (d *DragController) pick(x, y float64) (core.Entity, bool) {
	origin, dir := d.caster.Ray(x, y)

	best := core.NoEntity
	bestDist := parameter.DragPickRadius
	for _, e := range d.world.Query(engine.KindBomb, engine.KindTransform) {
		tr, _ := d.world.Components.Transform.Get(e)
		if dist := vmath.DistanceToRay(tr.Position, origin, dir); dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best, best != core.NoEntity
}

// ThrowVector converts a drag in NDC into a launch velocity
func ThrowVector(in component.InputComponent) vmath.Vec3 {
	dx := in.DragEndX - in.DragStartX
	dy := in.DragEndY - in.DragStartY
	return vmath.V3(dx*parameter.DragThrowScale, -dy*parameter.DragThrowScale, parameter.DragThrowForward)
}
