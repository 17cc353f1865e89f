// Package dcel implements a doubly-connected edge list: a planar
// subdivision of vertices, half-edges, and faces connected by reciprocal
// next/prev/twin/incident-face links. It supports building a DCEL from a
// simple counter-clockwise polygon ring and splitting faces in place by
// inserting diagonals.
package dcel

import (
	"fmt"

	"github.com/polypath/polypath/geom"
)

// Vertex is a single coordinate of the subdivision. Incident is the
// half-edge that originates here and bounds the polygon's interior.
type Vertex struct {
	Point    geom.Point
	Incident *HalfEdge
}

// HalfEdge is one direction of an edge pair. Twin is the oppositely
// directed half-edge sharing the same two endpoints; Next and Prev walk
// the boundary of Face counter-clockwise for interior faces.
type HalfEdge struct {
	Origin *Vertex
	Twin   *HalfEdge
	Next   *HalfEdge
	Prev   *HalfEdge
	Face   *Face
}

// Destination returns the vertex this half-edge points to.
func (h *HalfEdge) Destination() *Vertex {
	return h.Twin.Origin
}

// Face is a bounded region of the subdivision, or the single unbounded
// face. Outer is nil for the unbounded face; Inner holds its boundary
// half-edges (here, always exactly one, since the DCEL never has holes).
type Face struct {
	id    int
	Outer *HalfEdge
	Inner []*HalfEdge
}

// Unbounded reports whether f is the DCEL's single unbounded face.
func (f *Face) Unbounded() bool {
	return f.Outer == nil
}

// DCEL owns every vertex, half-edge, and face it creates. Cross-references
// between them are non-owning links.
type DCEL struct {
	Vertices  []*Vertex
	HalfEdges []*HalfEdge

	faces      map[int]*Face
	nextFaceID int
	unbounded  *Face
}

func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

func (d *DCEL) newFace(outer *HalfEdge, inner []*HalfEdge) *Face {
	f := &Face{id: d.nextFaceID, Outer: outer, Inner: inner}
	d.nextFaceID++
	d.faces[f.id] = f
	return f
}

func (d *DCEL) removeFace(f *Face) {
	delete(d.faces, f.id)
}

// Faces returns every live face, bounded and unbounded, in no particular
// order.
func (d *DCEL) Faces() []*Face {
	out := make([]*Face, 0, len(d.faces))
	for _, f := range d.faces {
		out = append(out, f)
	}
	return out
}

// BoundedFaces returns every live face except the unbounded one.
func (d *DCEL) BoundedFaces() []*Face {
	out := make([]*Face, 0, len(d.faces))
	for _, f := range d.faces {
		if !f.Unbounded() {
			out = append(out, f)
		}
	}
	return out
}

// NumFaces returns the number of faces currently tracked, unbounded
// included.
func (d *DCEL) NumFaces() int {
	return len(d.faces)
}

// Unbounded returns the DCEL's single unbounded face.
func (d *DCEL) Unbounded() *Face {
	return d.unbounded
}

// BuildFromPolygon builds a DCEL from a simple counter-clockwise ring of
// distinct vertices with no repeated closing vertex. The caller (the
// orchestrator) is responsible for orientation repair before calling this.
func BuildFromPolygon(ring []geom.Point) (*DCEL, error) {
	n := len(ring)
	if n < 3 {
		return nil, fmt.Errorf("dcel: ring must have at least 3 vertices, got %d", n)
	}

	d := &DCEL{faces: make(map[int]*Face)}

	d.Vertices = make([]*Vertex, n)
	for i, p := range ring {
		d.Vertices[i] = &Vertex{Point: p}
	}

	d.HalfEdges = make([]*HalfEdge, 2*n)
	for i := 0; i < n; i++ {
		u := d.Vertices[i]
		v := d.Vertices[(i+1)%n]

		interior := &HalfEdge{Origin: u}
		exterior := &HalfEdge{Origin: v, Twin: interior}
		interior.Twin = exterior

		d.HalfEdges[2*i] = interior
		d.HalfEdges[2*i+1] = exterior
		u.Incident = interior
	}

	for i := 0; i < n; i++ {
		interior := d.HalfEdges[2*i]
		interiorNext := d.HalfEdges[2*((i+1)%n)]
		interior.Next = interiorNext
		interiorNext.Prev = interior

		exterior := d.HalfEdges[2*i+1]
		exteriorNext := d.HalfEdges[2*((i-1+n)%n)+1]
		exterior.Next = exteriorNext
		exteriorNext.Prev = exterior
	}

	bounded := d.newFace(d.HalfEdges[0], nil)
	unbounded := d.newFace(nil, []*HalfEdge{d.HalfEdges[1]})
	d.unbounded = unbounded

	walkAssignFace(bounded.Outer, bounded)
	walkAssignFace(unbounded.Inner[0], unbounded)

	return d, nil
}

// walkAssignFace sets Face on every half-edge of the boundary starting at
// start, following Next until it returns to start.
func walkAssignFace(start *HalfEdge, f *Face) {
	h := start
	for {
		h.Face = f
		h = h.Next
		if h == start {
			break
		}
	}
}

// VerticesOfFace walks f's outer boundary and collects the origins in
// order.
func VerticesOfFace(f *Face) []*Vertex {
	invariant(f.Outer != nil, "dcel: VerticesOfFace called on the unbounded face")
	var out []*Vertex
	h := f.Outer
	for {
		out = append(out, h.Origin)
		h = h.Next
		if h == f.Outer {
			break
		}
	}
	return out
}
