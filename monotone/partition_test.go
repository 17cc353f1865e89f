package monotone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
	"github.com/polypath/polypath/monotone"
)

// deBergPolygon is the running example from Computational Geometry, Mark de
// Berg, 3rd ed., page 50, listed counter-clockwise as BuildFromPolygon
// requires.
func deBergPolygon() []geom.Point {
	return []geom.Point{
		{10.94, 19.59}, {10.38, 17.95}, {9, 19}, {8.54, 15.91},
		{9.58, 14.31}, {10.76, 15.11}, {15.58, 12.45}, {13.88, 16.55},
		{16.16, 15.91}, {17.2, 19.51}, {14.86, 18.85}, {14.68, 21.97},
		{13.48, 21.35}, {11.82, 22.31}, {10, 21},
	}
}

func diagonalExists(d *dcel.DCEL, a, b geom.Point) bool {
	for _, h := range d.HalfEdges {
		if h.Origin.Point == a && h.Destination().Point == b {
			return true
		}
		if h.Origin.Point == b && h.Destination().Point == a {
			return true
		}
	}
	return false
}

func TestMakePartitionMonotoneInsertsExpectedDiagonals(t *testing.T) {
	r := require.New(t)
	d, err := dcel.BuildFromPolygon(deBergPolygon())
	r.NoError(err)

	monotone.MakePartitionMonotone(d)

	r.True(diagonalExists(d, geom.Point{13.48, 21.35}, geom.Point{10, 21}), "v4-v6")
	r.True(diagonalExists(d, geom.Point{14.86, 18.85}, geom.Point{10.38, 17.95}), "v2-v8")
	r.True(diagonalExists(d, geom.Point{13.88, 16.55}, geom.Point{10.38, 17.95}), "v14-v8")
	r.True(diagonalExists(d, geom.Point{10.76, 15.11}, geom.Point{8.54, 15.91}), "v12-v10")
}

func TestMakePartitionMonotoneFacesAreMonotone(t *testing.T) {
	r := require.New(t)
	d, err := dcel.BuildFromPolygon(deBergPolygon())
	r.NoError(err)

	monotone.MakePartitionMonotone(d)

	for _, f := range d.BoundedFaces() {
		verts := dcel.VerticesOfFace(f)
		topIdx := 0
		for i, v := range verts {
			if geom.Above(v.Point, verts[topIdx].Point) {
				topIdx = i
			}
		}
		botIdx := 0
		for i, v := range verts {
			if geom.Above(verts[botIdx].Point, v.Point) {
				botIdx = i
			}
		}
		r.NotEqual(topIdx, botIdx)

		// Walking the boundary from the top vertex, the vertices descend to
		// the bottom vertex and then ascend back to the top.
		n := len(verts)
		descending := true
		for k := 0; k < n; k++ {
			cur, next := verts[(topIdx+k)%n], verts[(topIdx+k+1)%n]
			if cur == verts[botIdx] {
				descending = false
			}
			if descending {
				r.True(geom.Above(cur.Point, next.Point), "chain must descend from the top vertex")
			} else {
				r.True(geom.Above(next.Point, cur.Point), "chain must ascend from the bottom vertex")
			}
		}
	}
}

func TestClassifyOnDiamond(t *testing.T) {
	r := require.New(t)
	// A ccw diamond: bottom, right, top, left. The right and left vertices
	// share a y-coordinate, but each has one neighbour above and one below,
	// so both classify as regular.
	diamond := []geom.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	classes := []monotone.VertexClass{monotone.End, monotone.Regular, monotone.Start, monotone.Regular}
	for i, p := range diamond {
		a := diamond[(i-1+len(diamond))%len(diamond)]
		c := diamond[(i+1)%len(diamond)]
		r.Equal(classes[i], monotone.Classify(a, p, c), "vertex %d", i)
	}
}
