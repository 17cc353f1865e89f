// Package funnel extracts the shortest taut path through a sleeve of
// adjacent triangles, using the funnel (string-pulling) algorithm described
// at http://digestingduck.blogspot.com/2010/03/simple-stupid-funnel-algorithm.html.
package funnel

import (
	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
)

// diagonalHalfEdge returns the half-edge bounding f1 whose twin bounds f2.
// f1 and f2 must share exactly one edge.
func diagonalHalfEdge(f1, f2 *dcel.Face) *dcel.HalfEdge {
	h := f1.Outer
	for {
		if h.Twin.Face == f2 {
			return h
		}
		h = h.Next
	}
}

// portals returns, for each consecutive pair of faces in path, the
// half-edge diagonal between them split into its two endpoints: bot is the
// origin of the half-edge bounding the earlier face, top is its
// destination. Despite the names, which side is geometrically "above" the
// other depends on the direction the path of triangles runs; treat them as
// the two rails of the funnel, not as a literal top/bottom.
func portals(path []*dcel.Face) (bot, top []geom.Point) {
	for i := 0; i < len(path)-1; i++ {
		h := diagonalHalfEdge(path[i], path[i+1])
		bot = append(bot, h.Origin.Point)
		top = append(top, h.Destination().Point)
	}
	return bot, top
}

// crossFromApex returns the cross product of (b-apex) and (c-apex): a
// positive result means c is to the left of the ray apex->b.
func crossFromApex(apex, b, c geom.Point) float64 {
	return b.Sub(apex).Cross(c.Sub(apex))
}

// numConsecutiveEqualToStart returns how many elements starting at index 1
// equal pts[0], stopping at the first that doesn't.
func numConsecutiveEqualToStart(pts []geom.Point) int {
	count := 0
	for _, p := range pts[1:] {
		if !p.Equal(pts[0]) {
			break
		}
		count++
	}
	return count
}

// ShortestPath returns the shortest polyline from start to end through the
// sleeve of adjacent triangles given by path, path[0] containing start and
// path[len(path)-1] containing end.
func ShortestPath(path []*dcel.Face, start, end geom.Point) []geom.Point {
	bot, top := portals(path)
	return shortestPathFromPortals(bot, top, start, end)
}

// shortestPathFromPortals runs the funnel scan directly over a sequence of
// portals, without reference to the faces that produced them.
func shortestPathFromPortals(bot, top []geom.Point, start, end geom.Point) []geom.Point {
	bot = append(append([]geom.Point{}, bot...), end)
	top = append(append([]geom.Point{}, top...), end)

	botIdx, topIdx := 0, 0
	apex := start
	result := []geom.Point{apex}

	for {
		stuck := true

		if apex.Equal(end) {
			break
		}
		if top[topIdx].Equal(end) || bot[botIdx].Equal(end) {
			result = append(result, end)
			break
		}

		botNext := bot[botIdx+1]
		topNext := top[topIdx+1]

		if crossFromApex(apex, bot[botIdx], botNext) >= 0 {
			stuck = false

			if bot[botIdx].Equal(apex) || crossFromApex(apex, top[topIdx], botNext) < 0 {
				botIdx++
			} else {
				apex = top[topIdx]
				result = append(result, apex)

				botIdx = topIdx + numConsecutiveEqualToStart(top[topIdx:])
				topIdx = botIdx + 1
				continue
			}
		}

		if crossFromApex(apex, top[topIdx], topNext) <= 0 {
			stuck = false

			if top[topIdx].Equal(apex) || crossFromApex(apex, bot[botIdx], topNext) > 0 {
				topIdx++
			} else {
				apex = bot[botIdx]
				result = append(result, apex)

				topIdx = botIdx + numConsecutiveEqualToStart(bot[botIdx:])
				botIdx = topIdx + 1
				continue
			}
		}

		if stuck {
			dBot := geom.Distance(bot[botIdx], end)
			dTop := geom.Distance(top[topIdx], end)

			if dBot > dTop {
				apex = top[topIdx]
				result = append(result, apex)

				botIdx = topIdx + numConsecutiveEqualToStart(top[topIdx:])
				topIdx = botIdx + 1
			} else {
				apex = bot[botIdx]
				result = append(result, apex)

				topIdx = botIdx + numConsecutiveEqualToStart(bot[botIdx:])
				botIdx = topIdx + 1
			}
		}
	}
	return result
}
