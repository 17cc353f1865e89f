package geom

// SignedArea returns twice the signed area enclosed by ring, positive when
// the ring winds counter-clockwise, negative when clockwise.
func SignedArea(ring []Point) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// SegmentsIntersect reports whether open or closed segments p1-p2 and
// q1-q2 intersect, including touching endpoints and collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := Orient(p1, p2, q1)
	o2 := Orient(p1, p2, q2)
	o3 := Orient(q1, q2, p1)
	o4 := Orient(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegmentBoundingBox(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegmentBoundingBox(p1, p2, q2) {
		return true
	}
	if o3 == 0 && onSegmentBoundingBox(q1, q2, p1) {
		return true
	}
	if o4 == 0 && onSegmentBoundingBox(q1, q2, p2) {
		return true
	}
	return false
}
