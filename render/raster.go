package render

import (
	"math"
	"sort"
)

type point struct {
	x, y float64
}

func cross(o, a, b point) float64 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}

// convexHull returns the hull of pts in counter-clockwise order (monotone chain)
func convexHull(pts []point) []point {
	if len(pts) < 3 {
		return pts
	}
	sorted := make([]point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].x != sorted[j].x {
			return sorted[i].x < sorted[j].x
		}
		return sorted[i].y < sorted[j].y
	})

	hull := make([]point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// insideHull tests p against a counter-clockwise convex polygon, edges included
func insideHull(hull []point, p point) bool {
	if len(hull) < 3 {
		return false
	}
	for i := range hull {
		if cross(hull[i], hull[(i+1)%len(hull)], p) < 0 {
			return false
		}
	}
	return true
}

// hullBounds returns the integer cell rectangle covering hull, clipped to w x h
func hullBounds(hull []point, w, h int) (x0, y0, x1, y1 int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range hull {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	x0 = max(int(math.Floor(minX)), 0)
	y0 = max(int(math.Floor(minY)), 0)
	x1 = min(int(math.Ceil(maxX)), w-1)
	y1 = min(int(math.Ceil(maxY)), h-1)
	return
}
