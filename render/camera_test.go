package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pyramid-smash/vmath"
)

func TestCamera_ProjectTargetToCenter(t *testing.T) {
	c := NewCamera(vmath.V3(10, 10, 20), vmath.V3(0, 5, 0), 75, 0.1, 1000)
	c.SetAspect(2)

	ndc, depth, ok := c.Project(vmath.V3(0, 5, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0, ndc.X(), 1e-9)
	assert.InDelta(t, 0, ndc.Y(), 1e-9)
	assert.InDelta(t, vmath.V3(10, 5, 20).Len(), depth, 1e-6)
}

func TestCamera_BehindIsRejected(t *testing.T) {
	c := NewCamera(vmath.V3(0, 0, 10), vmath.V3(0, 0, 0), 60, 0.1, 100)
	_, _, ok := c.Project(vmath.V3(0, 0, 20))
	assert.False(t, ok)
}

func TestCamera_RayThroughCenter(t *testing.T) {
	c := NewCamera(vmath.V3(10, 10, 20), vmath.V3(0, 5, 0), 75, 0.1, 1000)
	_, dir := c.Ray(0, 0)

	want := vmath.V3Normalize(vmath.V3(-10, -5, -20))
	assert.InDelta(t, want.X(), dir.X(), 1e-6)
	assert.InDelta(t, want.Y(), dir.Y(), 1e-6)
	assert.InDelta(t, want.Z(), dir.Z(), 1e-6)
}

func TestCamera_SetAspectIgnoresInvalid(t *testing.T) {
	c := NewCamera(vmath.V3(0, 0, 10), vmath.V3(0, 0, 0), 60, 0.1, 100)
	c.SetAspect(0)
	assert.Equal(t, 1.0, c.Aspect())
}

func TestConvexHull(t *testing.T) {
	pts := []point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}}
	hull := convexHull(pts)

	assert.Len(t, hull, 4)
	assert.True(t, insideHull(hull, point{1, 1}))
	assert.True(t, insideHull(hull, point{0, 1}))
	assert.False(t, insideHull(hull, point{3, 1}))
}

func TestRGB(t *testing.T) {
	c := Hex(0x804020)
	assert.Equal(t, RGB{R: 0x80, G: 0x40, B: 0x20}, c)
	assert.Equal(t, RGB{R: 255, G: 128, B: 64}, c.Scale(2))
	assert.Equal(t, RGB{}, c.Scale(-1))
}
