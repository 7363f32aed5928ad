// Package vmath wraps mathgl's float64 vectors and quaternions with the
// handful of helpers the simulation needs
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a float64 3D vector (x, y, z)
type Vec3 = mgl64.Vec3

// Quat is a float64 rotation quaternion (W + V)
type Quat = mgl64.Quat

// Epsilon is the tolerance used for float comparisons in the simulation
const Epsilon = 1e-9

// V3 builds a vector from components
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// QuatIdentity returns the no-rotation quaternion (0, 0, 0, 1)
func QuatIdentity() Quat {
	return mgl64.QuatIdent()
}

// QuatXYZW builds a quaternion from x, y, z, w components
func QuatXYZW(x, y, z, w float64) Quat {
	return Quat{W: w, V: Vec3{x, y, z}}
}

// V3Normalize returns v scaled to unit length, zero vector stays zero
func V3Normalize(v Vec3) Vec3 {
	l := v.Len()
	if l < Epsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// V3IsFinite reports whether no component is NaN or Inf
func V3IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// V3Mul is the component-wise product
func V3Mul(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
