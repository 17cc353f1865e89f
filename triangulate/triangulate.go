// Package triangulate splits each y-monotone face of a DCEL into triangles
// using the stack-based sweep of de Berg, Computational Geometry (3rd ed.),
// section 3.3.
package triangulate

import (
	"sort"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
)

// leftRightChains returns the set of vertices on the left and right
// polygonal chains of the y-monotone face f, given the vertices at the top
// and bottom of the monotone subdivision. Both chains include top and bot.
func leftRightChains(f *dcel.Face, top, bot *dcel.Vertex) (left, right map[*dcel.Vertex]bool) {
	left = map[*dcel.Vertex]bool{top: true, bot: true}
	right = map[*dcel.Vertex]bool{top: true, bot: true}

	topH := f.Outer
	for topH.Origin != top {
		topH = topH.Next
	}

	h := topH
	onLeft := true
	for {
		if onLeft {
			left[h.Origin] = true
		} else {
			right[h.Origin] = true
		}
		h = h.Next
		if h.Origin == bot {
			onLeft = false
		}
		if h == topH {
			break
		}
	}
	return left, right
}

// Face triangulates the single y-monotone face f in place, splitting it
// into triangular faces by inserting diagonals.
func Face(d *dcel.DCEL, f *dcel.Face) {
	raw := dcel.VerticesOfFace(f)
	vertices := make([]*dcel.Vertex, len(raw))
	copy(vertices, raw)
	sort.Slice(vertices, func(i, j int) bool {
		return geom.Above(vertices[i].Point, vertices[j].Point)
	})

	n := len(vertices)
	if n < 3 {
		return
	}
	top, bot := vertices[0], vertices[n-1]
	left, right := leftRightChains(f, top, bot)

	stack := arraystack.New()
	stack.Push(vertices[0])
	stack.Push(vertices[1])
	bottom := vertices[0]

	peek := func() *dcel.Vertex {
		v, _ := stack.Peek()
		return v.(*dcel.Vertex)
	}
	pop := func() *dcel.Vertex {
		v, _ := stack.Pop()
		return v.(*dcel.Vertex)
	}

	for j := 2; j < n-1; j++ {
		vj := vertices[j]
		top := peek()

		switch {
		case left[vj] && right[top]:
			face := dcel.HalfEdgeFromTo(bottom, vj).Face
			for !stack.Empty() {
				u := pop()
				if !stack.Empty() {
					face = dcel.InsertDiagonal(d, vj, u, face).Face
				}
			}
			stack.Push(vertices[j-1])
			stack.Push(vj)
			bottom = vertices[j-1]

		case right[vj] && left[top]:
			face := dcel.HalfEdgeFromTo(vj, bottom).Face
			for !stack.Empty() {
				u := pop()
				if !stack.Empty() {
					face = dcel.InsertDiagonal(d, vj, u, face).Twin.Face
				}
			}
			stack.Push(vertices[j-1])
			stack.Push(vj)
			bottom = vertices[j-1]

		case right[vj] && right[top]:
			u := pop()
			face := dcel.HalfEdgeFromTo(vj, u).Face
			for !stack.Empty() {
				if geom.Orient(vj.Point, u.Point, peek().Point) <= 0 {
					break
				}
				u = pop()
				face = dcel.InsertDiagonal(d, vj, u, face).Face
			}
			stack.Push(u)
			stack.Push(vj)

		default: // vj and top both on the left chain
			u := pop()
			face := dcel.HalfEdgeFromTo(u, vj).Face
			for !stack.Empty() {
				if geom.Orient(vj.Point, u.Point, peek().Point) > 0 {
					break
				}
				u = pop()
				face = dcel.InsertDiagonal(d, vj, u, face).Twin.Face
			}
			stack.Push(u)
			stack.Push(vj)
		}
	}

	var remaining []*dcel.Vertex
	for !stack.Empty() {
		remaining = append(remaining, pop())
	}
	if len(remaining) > 2 {
		for _, u := range remaining[1 : len(remaining)-1] {
			dcel.InsertDiagonal(d, bot, u, dcel.CommonFaceForDiagonal(bot, u))
		}
	}
}

// Polygon triangulates every bounded face currently in d. d's faces must
// already be y-monotone, as produced by monotone.MakePartitionMonotone.
func Polygon(d *dcel.DCEL) {
	faces := d.BoundedFaces()
	for _, f := range faces {
		Face(d, f)
	}
}
