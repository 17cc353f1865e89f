package dcel

// maxVertexDegree bounds the rotation walks below. A simple polygon under
// repeated diagonal insertion never gives a vertex more incident edges than
// this; it exists only to turn a logic bug into a panic instead of a hang.
const maxVertexDegree = 1 << 20

// HalfEdgeFromOriginBounding returns the half-edge that originates at v and
// bounds face f, by rotating around v's star until the incident face
// matches. The star of v is finite, so this always terminates.
func HalfEdgeFromOriginBounding(v *Vertex, f *Face) *HalfEdge {
	h := v.Incident
	for i := 0; h.Face != f; i++ {
		invariant(i < maxVertexDegree, "dcel: vertex star exceeded bound looking for face")
		h = h.Prev.Twin
	}
	return h
}

// HalfEdgeFromTo returns the half-edge whose origin is u and whose
// destination is v, by rotating around u's star.
func HalfEdgeFromTo(u, v *Vertex) *HalfEdge {
	h := u.Incident
	for i := 0; h.Twin.Origin != v; i++ {
		invariant(i < maxVertexDegree, "dcel: vertex star exceeded bound looking for edge to destination")
		h = h.Prev.Twin
	}
	return h
}

// facesAroundVertex returns every face incident to v, bounded and
// unbounded, each appearing once per edge of v's star that bounds it.
func facesAroundVertex(v *Vertex) []*Face {
	var out []*Face
	h := v.Incident
	for i := 0; ; i++ {
		invariant(i < maxVertexDegree, "dcel: vertex star exceeded bound enumerating faces")
		out = append(out, h.Face)
		h = h.Prev.Twin
		if h == v.Incident {
			break
		}
	}
	return out
}

// CommonFaceForDiagonal returns the single bounded face incident to both u
// and v in which the open diagonal u-v lies. It panics if the faces around
// u and v do not share exactly one bounded face, which indicates the
// diagonal is not a valid insertion for this DCEL.
func CommonFaceForDiagonal(u, v *Vertex) *Face {
	facesU := facesAroundVertex(u)
	facesV := make(map[*Face]bool, len(facesU))
	for _, f := range facesAroundVertex(v) {
		facesV[f] = true
	}

	var found *Face
	for _, f := range facesU {
		if f.Unbounded() || !facesV[f] {
			continue
		}
		invariant(found == nil || found == f, "dcel: diagonal %v-%v has more than one common bounded face", u.Point, v.Point)
		found = f
	}
	invariant(found != nil, "dcel: diagonal %v-%v has no common bounded face", u.Point, v.Point)
	return found
}

// InsertDiagonal splices a new pair of twin half-edges e_uv/e_vu between u
// and v, both on the boundary of bounded face f, splitting f into two new
// faces. The caller must ensure the open segment u-v lies strictly in f's
// interior. Returns the new half-edge running from u to v.
func InsertDiagonal(d *DCEL, u, v *Vertex, f *Face) *HalfEdge {
	invariant(!f.Unbounded(), "dcel: cannot insert a diagonal into the unbounded face")
	invariant(u != v, "dcel: diagonal endpoints must be distinct")

	h1 := HalfEdgeFromOriginBounding(u, f)
	h2 := HalfEdgeFromOriginBounding(v, f)

	eUV := &HalfEdge{Origin: u}
	eVU := &HalfEdge{Origin: v, Twin: eUV}
	eUV.Twin = eVU

	oldH1Prev := h1.Prev
	oldH2Prev := h2.Prev

	eUV.Next = h2
	eUV.Prev = oldH1Prev
	oldH1Prev.Next = eUV
	h1.Prev = eVU

	eVU.Next = h1
	eVU.Prev = oldH2Prev
	oldH2Prev.Next = eVU
	h2.Prev = eUV

	d.HalfEdges = append(d.HalfEdges, eUV, eVU)

	d.removeFace(f)
	f1 := d.newFace(eUV, nil)
	f2 := d.newFace(eVU, nil)
	walkAssignFace(f1.Outer, f1)
	walkAssignFace(f2.Outer, f2)

	return eUV
}
