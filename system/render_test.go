package system

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pyramid-smash/component"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/logger"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/render"
	"github.com/lixenwraith/pyramid-smash/status"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

type countingDrawer struct {
	frames int
}

func (d *countingDrawer) Render() { d.frames++ }

type listScene struct {
	objects []render.Renderable
}

func (s *listScene) Add(obj render.Renderable) { s.objects = append(s.objects, obj) }

func (s *listScene) Remove(obj render.Renderable) error {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return nil
		}
	}
	return render.ErrNotInScene
}

func TestRenderSystem_PosesMeshesAndCountsFrames(t *testing.T) {
	w := engine.NewWorld(8)
	reg := status.NewRegistry()
	meshes := render.NewMeshRegistry(&listScene{}, logger.Discard())
	drawer := &countingDrawer{}
	rs := NewRenderSystem(w, meshes, drawer, reg)

	e, err := w.CreateEntity()
	require.NoError(t, err)
	w.Components.Transform.Set(e, component.TransformComponent{
		Position: vmath.V3(1, 2, 3),
		Rotation: vmath.QuatXYZW(0, 0.7071067811865476, 0, 0.7071067811865476),
	})
	mesh := render.NewBoxMesh(1, 1, 1, render.Hex(parameter.ColorBlockBase))
	meshes.AddMesh(e, mesh)

	// A mesh without a Transform keeps its pose
	orphan, err := w.CreateEntity()
	require.NoError(t, err)
	orphanMesh := render.NewSphereMesh(0.4, render.Hex(parameter.ColorBall))
	orphanMesh.SetPosition(vmath.V3(9, 9, 9))
	meshes.AddMesh(orphan, orphanMesh)

	for i := 0; i < 3; i++ {
		require.NoError(t, rs.Update())
	}

	assert.Equal(t, 3, drawer.frames)
	assert.Equal(t, int64(3), reg.Ints.Get(status.RenderFrames).Load())
	assert.Equal(t, vmath.V3(1, 2, 3), mesh.Position())
	assert.InDelta(t, 0.7071067811865476, mesh.Orientation().V.Y(), 1e-12)
	assert.Equal(t, vmath.V3(9, 9, 9), orphanMesh.Position())
}

func TestRenderSystem_DrawsToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cam := render.NewCamera(
		vmath.V3(parameter.CameraX, parameter.CameraY, parameter.CameraZ),
		vmath.V3(parameter.CameraTargetX, parameter.CameraTargetY, parameter.CameraTargetZ),
		parameter.CameraFovDeg, parameter.CameraNear, parameter.CameraFar,
	)
	scene := render.NewScene(screen, cam)
	w := engine.NewWorld(8)
	reg := status.NewRegistry()
	rs := NewRenderSystem(w, render.NewMeshRegistry(scene, logger.Discard()), scene, reg)

	require.NoError(t, rs.Update())
	require.NoError(t, rs.Update())
	assert.Equal(t, uint64(2), scene.Frames())
}
