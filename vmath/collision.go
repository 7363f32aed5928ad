package vmath

// ClosestPointOnAABB clamps p into the box centered at c with half extents h
func ClosestPointOnAABB(p, c, h Vec3) Vec3 {
	return Vec3{
		Clamp(p[0], c[0]-h[0], c[0]+h[0]),
		Clamp(p[1], c[1]-h[1], c[1]+h[1]),
		Clamp(p[2], c[2]-h[2], c[2]+h[2]),
	}
}

// AABBOverlap returns per-axis penetration of two boxes; any non-positive axis means separated
func AABBOverlap(ca, ha, cb, hb Vec3) Vec3 {
	d := cb.Sub(ca)
	return Vec3{
		ha[0] + hb[0] - abs(d[0]),
		ha[1] + hb[1] - abs(d[1]),
		ha[2] + hb[2] - abs(d[2]),
	}
}

// DistanceToRay returns the distance from p to the ray origin + t*dir, t >= 0
// dir must be unit length
func DistanceToRay(p, origin, dir Vec3) float64 {
	t := p.Sub(origin).Dot(dir)
	if t < 0 {
		t = 0
	}
	return p.Sub(origin.Add(dir.Mul(t))).Len()
}
