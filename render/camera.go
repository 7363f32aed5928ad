package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

// Camera is a perspective view over the scene
type Camera struct {
	Position vmath.Vec3
	Target   vmath.Vec3
	Up       vmath.Vec3
	FovY     float64 // degrees
	Near     float64
	Far      float64

	aspect  float64
	view    mgl64.Mat4
	proj    mgl64.Mat4
	viewPro mgl64.Mat4
	inverse mgl64.Mat4
}

// NewCamera creates a camera at pos looking at target with y up
func NewCamera(pos, target vmath.Vec3, fovY, near, far float64) *Camera {
	c := &Camera{
		Position: pos,
		Target:   target,
		Up:       vmath.V3(0, 1, 0),
		FovY:     fovY,
		Near:     near,
		Far:      far,
		aspect:   1,
	}
	c.Update()
	return c
}

// SetAspect sets viewport width over height and rebuilds the matrices
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return
	}
	c.aspect = aspect
	c.Update()
}

// Aspect returns the viewport aspect ratio
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// Update rebuilds matrices after a field change
func (c *Camera) Update() {
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FovY), c.aspect, c.Near, c.Far)
	c.viewPro = c.proj.Mul4(c.view)
	c.inverse = c.viewPro.Inv()
}

// Project maps a world point to normalized device coordinates
// depth is the view-space distance; ok is false for points behind the near plane
func (c *Camera) Project(p vmath.Vec3) (ndc vmath.Vec3, depth float64, ok bool) {
	clip := c.viewPro.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near {
		return vmath.Vec3{}, w, false
	}
	return clip.Vec3().Mul(1 / w), w, true
}

// Ray returns the world-space ray through ndc x, y in [-1, 1]
func (c *Camera) Ray(x, y float64) (origin, dir vmath.Vec3) {
	near := c.inverse.Mul4x1(mgl64.Vec4{x, y, -1, 1})
	far := c.inverse.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return n, vmath.V3Normalize(f.Sub(n))
}

// FocalY returns the projection scale on the y axis, 1/tan(fov/2)
func (c *Camera) FocalY() float64 {
	return c.proj.At(1, 1)
}
