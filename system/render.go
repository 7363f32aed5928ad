package system

import (
	"sync/atomic"

	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/render"
	"github.com/lixenwraith/pyramid-smash/status"
)

// Drawer submits one frame
type Drawer interface {
	Render()
}

// RenderSystem copies transforms into meshes and draws exactly one frame per tick
type RenderSystem struct {
	world  *engine.World
	meshes *render.MeshRegistry
	drawer Drawer

	statFrames *atomic.Int64
}

func NewRenderSystem(world *engine.World, meshes *render.MeshRegistry, drawer Drawer, reg *status.Registry) *RenderSystem {
	return &RenderSystem{
		world:      world,
		meshes:     meshes,
		drawer:     drawer,
		statFrames: reg.Ints.Get(status.RenderFrames),
	}
}

// Name returns system's name
func (s *RenderSystem) Name() string {
	return "render"
}

func (s *RenderSystem) Priority() int {
	return parameter.PriorityRender
}

// Update poses every mesh whose entity has a Transform, then renders
func (s *RenderSystem) Update() error {
	transforms := s.world.Components.Transform
	for _, e := range s.meshes.Entities() {
		t, ok := transforms.Get(e)
		if !ok {
			continue
		}
		r, _ := s.meshes.Get(e)
		r.SetPosition(t.Position)
		r.SetOrientation(t.Rotation)
	}
	s.drawer.Render()
	s.statFrames.Add(1)
	return nil
}
