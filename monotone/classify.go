// Package monotone classifies polygon vertices and runs the sweep that
// splits a simple polygon's DCEL into y-monotone faces by inserting
// diagonals.
package monotone

import "github.com/polypath/polypath/geom"

// VertexClass is one of the five roles a polygon vertex can play during
// monotone partitioning.
type VertexClass int

const (
	Regular VertexClass = iota
	Start
	Split
	End
	Merge
)

func (c VertexClass) String() string {
	switch c {
	case Start:
		return "start"
	case Split:
		return "split"
	case End:
		return "end"
	case Merge:
		return "merge"
	default:
		return "regular"
	}
}

// Classify determines the role of vertex b, given its predecessor a and
// successor c on the polygon boundary. Ties at exactly 180 degrees of
// interior angle classify as regular.
func Classify(a, b, c geom.Point) VertexClass {
	prevBelow := geom.Above(b, a)
	nextBelow := geom.Above(b, c)
	angle := geom.CCWAngle(a, b, c)

	switch {
	case prevBelow && nextBelow:
		switch {
		case angle < 180:
			return Start
		case angle > 180:
			return Split
		default:
			return Regular
		}
	case !prevBelow && !nextBelow:
		switch {
		case angle < 180:
			return End
		case angle > 180:
			return Merge
		default:
			return Regular
		}
	default:
		return Regular
	}
}
