package polypath

import "github.com/polypath/polypath/geom"

// validateRing checks the ring shape invariants Query requires before
// building a DCEL from it: non-empty, at least a triangle, and simple (no
// two non-adjacent edges crossing).
func validateRing(ring []geom.Point) error {
	n := len(ring)
	if n == 0 {
		return &ValidationError{Err: ErrEmptyRing, NumVertices: n}
	}
	if n < 3 {
		return &ValidationError{Err: ErrTooFewVertices, NumVertices: n}
	}
	if selfIntersects(ring) {
		return &ValidationError{Err: ErrSelfIntersecting, NumVertices: n}
	}
	return nil
}

// selfIntersects reports whether any two non-adjacent edges of ring cross.
func selfIntersects(ring []geom.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (j+1)%n == i {
				continue
			}
			b1, b2 := ring[j], ring[(j+1)%n]
			if geom.SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// orientedCCW returns ring re-ordered to wind counter-clockwise, reversing
// it if necessary. BuildFromPolygon requires a CCW ring.
func orientedCCW(ring []geom.Point) []geom.Point {
	if geom.SignedArea(ring) >= 0 {
		return ring
	}
	reversed := make([]geom.Point, len(ring))
	for i, p := range ring {
		reversed[len(ring)-1-i] = p
	}
	return reversed
}
