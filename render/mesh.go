package render

import (
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// Renderable is an object the scene can hold and the render step can pose
type Renderable interface {
	SetPosition(p vmath.Vec3)
	SetOrientation(q vmath.Quat)
	// Dispose releases geometry and material; the object must not be drawn afterwards
	Dispose()
}

// GeometryKind selects how a mesh is rasterized
type GeometryKind uint8

const (
	GeometryBox GeometryKind = iota
	GeometrySphere
)

// Geometry describes mesh shape in local space
type Geometry struct {
	Kind        GeometryKind
	HalfExtents vmath.Vec3 // box
	Radius      float64    // sphere
}

// Material holds surface appearance
type Material struct {
	Color RGB
}

// Mesh is a posed geometry with a material
type Mesh struct {
	geometry *Geometry
	material *Material

	position    vmath.Vec3
	orientation vmath.Quat
}

// NewBoxMesh creates a box of full width, height and depth
func NewBoxMesh(width, height, depth float64, color RGB) *Mesh {
	return &Mesh{
		geometry:    &Geometry{Kind: GeometryBox, HalfExtents: vmath.V3(width/2, height/2, depth/2)},
		material:    &Material{Color: color},
		orientation: vmath.QuatIdentity(),
	}
}

// NewSphereMesh creates a sphere
func NewSphereMesh(radius float64, color RGB) *Mesh {
	return &Mesh{
		geometry:    &Geometry{Kind: GeometrySphere, Radius: radius},
		material:    &Material{Color: color},
		orientation: vmath.QuatIdentity(),
	}
}

func (m *Mesh) SetPosition(p vmath.Vec3)    { m.position = p }
func (m *Mesh) SetOrientation(q vmath.Quat) { m.orientation = q }
func (m *Mesh) Position() vmath.Vec3        { return m.position }
func (m *Mesh) Orientation() vmath.Quat     { return m.orientation }

// Dispose drops geometry and material, safe to call more than once
func (m *Mesh) Dispose() {
	m.geometry = nil
	m.material = nil
}

// Disposed reports whether Dispose has run
func (m *Mesh) Disposed() bool {
	return m.geometry == nil
}

// Geometry returns the shape, nil once disposed
func (m *Mesh) Geometry() *Geometry { return m.geometry }

// Material returns the appearance, nil once disposed
func (m *Mesh) Material() *Material { return m.material }

// corners returns the world-space box corners
func (m *Mesh) corners() [8]vmath.Vec3 {
	var out [8]vmath.Vec3
	h := m.geometry.HalfExtents
	i := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				local := vmath.V3(sx*h.X(), sy*h.Y(), sz*h.Z())
				out[i] = m.position.Add(m.orientation.Rotate(local))
				i++
			}
		}
	}
	return out
}
