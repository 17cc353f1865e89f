package geom

import "math"

// Orient returns the sign of (b-a) x (c-b): strictly positive when a, b, c
// turn counter-clockwise, zero when they are collinear, strictly negative
// when they turn clockwise.
func Orient(a, b, c Point) int {
	cross := b.Sub(a).Cross(c.Sub(b))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// Above reports whether p is above q under the lexicographic order used
// throughout this module: greater y wins, and on a horizontal tie the
// smaller x wins. This gives a total order over points with no ties,
// which vertex classification and sweep-event ordering both rely on.
func Above(p, q Point) bool {
	if p.Y != q.Y {
		return p.Y > q.Y
	}
	return p.X < q.X
}

// CCWAngle returns the signed interior angle at b, in degrees in [0, 360),
// measured counter-clockwise from ray b->c to ray b->a. For a
// counter-clockwise ring with a before b and c after it, this is the
// polygon's interior angle at b.
func CCWAngle(a, b, c Point) float64 {
	u, v := a.Sub(b), c.Sub(b)
	ul, vl := u.Len(), v.Len()
	if ul == 0 || vl == 0 {
		return 0
	}
	cos := u.Dot(v) / (ul * vl)
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos) * 180 / math.Pi

	if Orient(a, b, c) <= 0 {
		angle = 360 - angle
	}
	return math.Mod(angle, 360)
}

// onSegmentBoundingBox reports whether p lies within the axis-aligned
// bounding box of segment a-b, assuming a, b, p are already known collinear.
func onSegmentBoundingBox(a, b, p Point) bool {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// PointInTriangle reports whether p lies inside or on the boundary of
// triangle a-b-c. The three edge cross products must agree in sign; a zero
// cross product is treated as "on that edge" and accepted only when p also
// falls within that edge's bounding box.
func PointInTriangle(a, b, c, p Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))

	if d1 == 0 && onSegmentBoundingBox(a, b, p) {
		return true
	}
	if d2 == 0 && onSegmentBoundingBox(b, c, p) {
		return true
	}
	if d3 == 0 && onSegmentBoundingBox(c, a, p) {
		return true
	}

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
