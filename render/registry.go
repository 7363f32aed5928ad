package render

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pyramid-smash/core"
)

// MeshRegistry maps entities to their renderables, independent of the component store
type MeshRegistry struct {
	scene  SceneGraph
	meshes map[core.Entity]Renderable
	log    logrus.FieldLogger
}

// NewMeshRegistry creates a registry adding meshes to scene
func NewMeshRegistry(scene SceneGraph, log logrus.FieldLogger) *MeshRegistry {
	return &MeshRegistry{
		scene:  scene,
		meshes: make(map[core.Entity]Renderable),
		log:    log.WithField("component", "meshes"),
	}
}

// AddMesh registers r for e and adds it to the scene
// A previous registration for e is removed from the scene and disposed
func (m *MeshRegistry) AddMesh(e core.Entity, r Renderable) {
	if old, ok := m.meshes[e]; ok && old != r {
		m.RemoveMesh(e)
	}
	m.meshes[e] = r
	m.scene.Add(r)
}

// RemoveMesh takes the mesh of e out of the scene and disposes it
// Disposal runs even when scene removal fails. Returns false when e has no mesh
func (m *MeshRegistry) RemoveMesh(e core.Entity) bool {
	r, ok := m.meshes[e]
	if !ok {
		return false
	}
	delete(m.meshes, e)
	defer r.Dispose()

	if err := m.scene.Remove(r); err != nil {
		m.log.WithError(err).WithField("entity", e).Warn("scene removal failed")
	}
	return true
}

// Get returns the renderable of e
func (m *MeshRegistry) Get(e core.Entity) (Renderable, bool) {
	r, ok := m.meshes[e]
	return r, ok
}

// Has reports whether e has a registered mesh
func (m *MeshRegistry) Has(e core.Entity) bool {
	_, ok := m.meshes[e]
	return ok
}

// Len returns the number of registered meshes
func (m *MeshRegistry) Len() int {
	return len(m.meshes)
}

// Entities returns the entities with a mesh in ascending order
func (m *MeshRegistry) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(m.meshes))
	for e := range m.meshes {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
