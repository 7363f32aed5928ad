package vmath

// QuatNormalize returns q at unit length, degenerate input falls back to identity
func QuatNormalize(q Quat) Quat {
	l := q.Len()
	if l < Epsilon {
		return QuatIdentity()
	}
	return q.Scale(1.0 / l)
}

// QuatIntegrate advances orientation q by angular velocity w (rad/s) over dt
// q' = q + 0.5*dt*(w*q), renormalized
func QuatIntegrate(q Quat, w Vec3, dt float64) Quat {
	if w.Len() < Epsilon {
		return q
	}
	spin := Quat{W: 0, V: w}.Mul(q).Scale(0.5 * dt)
	return QuatNormalize(q.Add(spin))
}

// QuatEqual compares two quaternions within tolerance
func QuatEqual(a, b Quat, tol float64) bool {
	return abs(a.W-b.W) <= tol &&
		abs(a.V[0]-b.V[0]) <= tol &&
		abs(a.V[1]-b.V[1]) <= tol &&
		abs(a.V[2]-b.V[2]) <= tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
