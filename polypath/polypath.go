// Package polypath orchestrates the full pipeline that answers a single
// shortest-path query inside a simple polygon: DCEL construction, monotone
// partitioning, triangulation, a dual-graph sleeve search, and the funnel
// algorithm.
package polypath

import (
	"fmt"
	"log/slog"

	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/dualgraph"
	"github.com/polypath/polypath/funnel"
	"github.com/polypath/polypath/geom"
	"github.com/polypath/polypath/monotone"
	"github.com/polypath/polypath/triangulate"
)

// Path is an ordered polyline from a query's source point to its
// destination point.
type Path []geom.Point

// Query computes the shortest taut path from src to dst inside the simple
// polygon bounded by ring. ring must not repeat its closing vertex; src and
// dst must lie strictly inside the polygon.
func Query(ring []geom.Point, src, dst geom.Point) (Path, error) {
	if err := validateRing(ring); err != nil {
		return nil, err
	}
	ring = orientedCCW(ring)

	slog.Debug("polypath: building dcel", "vertices", len(ring))
	d, err := dcel.BuildFromPolygon(ring)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolygon, err)
	}

	diagonals := monotone.MakePartitionMonotone(d)
	slog.Debug("polypath: partitioned into monotone faces", "diagonals", diagonals, "faces", len(d.BoundedFaces()))

	triangulate.Polygon(d)
	slog.Debug("polypath: triangulated", "faces", len(d.BoundedFaces()))

	srcFace := findContainingFace(d, src)
	if srcFace == nil {
		return nil, fmt.Errorf("%w: source %v", ErrPointNotInPolygon, src)
	}

	root := dualgraph.Build(srcFace)
	sleeve := dualgraph.PathToPoint(root, dst)
	if sleeve == nil {
		return nil, fmt.Errorf("%w: destination %v", ErrPointNotInPolygon, dst)
	}
	slog.Debug("polypath: found sleeve", "triangles", len(sleeve))

	if len(sleeve) == 1 {
		return Path{src, dst}, nil
	}

	path := funnel.ShortestPath(sleeve, src, dst)
	slog.Debug("polypath: funnel complete", "points", len(path))
	return Path(path), nil
}

// findContainingFace returns the bounded triangular face of d containing p,
// or nil if none does.
func findContainingFace(d *dcel.DCEL, p geom.Point) *dcel.Face {
	for _, f := range d.BoundedFaces() {
		verts := dcel.VerticesOfFace(f)
		if len(verts) != 3 {
			continue
		}
		if geom.PointInTriangle(verts[0].Point, verts[1].Point, verts[2].Point, p) {
			return f
		}
	}
	return nil
}
