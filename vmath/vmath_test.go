package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIntegrate_StaysUnit(t *testing.T) {
	q := QuatIdentity()
	w := V3(0.3, 2.0, -1.1)
	for i := 0; i < 600; i++ {
		q = QuatIntegrate(q, w, 1.0/60.0)
	}
	assert.InDelta(t, 1.0, q.Len(), 1e-9)
}

func TestQuatIntegrate_ZeroSpin(t *testing.T) {
	q := QuatXYZW(0, 0.6, 0, 0.8)
	assert.Equal(t, q, QuatIntegrate(q, Vec3{}, 1.0/60.0))
}

func TestQuatNormalize_Degenerate(t *testing.T) {
	assert.Equal(t, QuatIdentity(), QuatNormalize(Quat{}))
}

func TestV3Normalize_Zero(t *testing.T) {
	assert.Equal(t, Vec3{}, V3Normalize(Vec3{}))
	assert.InDelta(t, 1.0, V3Normalize(V3(3, 4, 0)).Len(), 1e-12)
}

func TestV3IsFinite(t *testing.T) {
	assert.True(t, V3IsFinite(V3(1, 2, 3)))
	assert.False(t, V3IsFinite(V3(math.NaN(), 0, 0)))
	assert.False(t, V3IsFinite(V3(0, math.Inf(1), 0)))
}

func TestClosestPointOnAABB(t *testing.T) {
	c := V3(0, 0, 0)
	h := V3(1, 1, 1)
	assert.Equal(t, V3(1, 0.5, -1), ClosestPointOnAABB(V3(3, 0.5, -2), c, h))
	inside := V3(0.2, -0.3, 0.1)
	assert.Equal(t, inside, ClosestPointOnAABB(inside, c, h))
}

func TestAABBOverlap(t *testing.T) {
	o := AABBOverlap(V3(0, 0, 0), V3(0.5, 0.5, 0.5), V3(0.9, 0, 0), V3(0.5, 0.5, 0.5))
	assert.InDelta(t, 0.1, o[0], 1e-12)
	assert.InDelta(t, 1.0, o[1], 1e-12)

	sep := AABBOverlap(V3(0, 0, 0), V3(0.5, 0.5, 0.5), V3(2, 0, 0), V3(0.5, 0.5, 0.5))
	assert.LessOrEqual(t, sep[0], 0.0)
}

func TestDistanceToRay(t *testing.T) {
	origin := V3(0, 0, 0)
	dir := V3(0, 0, -1)
	assert.InDelta(t, 2.0, DistanceToRay(V3(2, 0, -5), origin, dir), 1e-12)
	// Behind the origin measures to the origin itself
	assert.InDelta(t, 5.0, DistanceToRay(V3(0, 0, 5), origin, dir), 1e-12)
}
