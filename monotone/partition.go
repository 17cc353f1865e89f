package monotone

import (
	"sort"

	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
	"github.com/polypath/polypath/sweep"
)

// sweepContext bundles the mutable state threaded through every event
// handler, so none of it is global: the DCEL being split, the sweep-line
// status, the helper map, and the classification already computed for each
// vertex processed so far.
type sweepContext struct {
	d       *dcel.DCEL
	status  *sweep.Status
	helper  map[*dcel.HalfEdge]*dcel.Vertex
	classOf map[*dcel.Vertex]VertexClass

	diagonals int
}

// adjacentEdges returns the outgoing and incoming interior half-edges at v:
// e_i (outgoing) and e_{i-1} (incoming). e_{i-1} is derived via
// v.Incident.Twin.Next.Twin rather than v.Incident.Prev, because the
// unbounded face's boundary -- and only it -- is guaranteed never to be
// touched by diagonal insertion, so walking through it is the one way to
// recover the original ring adjacency even after earlier diagonals have
// spliced v.Incident.Prev onto something else.
func adjacentEdges(v *dcel.Vertex) (ei, eiPrev *dcel.HalfEdge) {
	ei = v.Incident
	eiPrev = v.Incident.Twin.Next.Twin
	return ei, eiPrev
}

// MakePartitionMonotone splits every bounded face of d into y-monotone
// pieces by inserting diagonals in place, following de Berg's sweep. It
// returns the number of diagonals inserted.
func MakePartitionMonotone(d *dcel.DCEL) int {
	ctx := &sweepContext{
		d:       d,
		status:  sweep.New(),
		helper:  make(map[*dcel.HalfEdge]*dcel.Vertex),
		classOf: make(map[*dcel.Vertex]VertexClass),
	}

	queue := make([]*dcel.Vertex, len(d.Vertices))
	copy(queue, d.Vertices)
	sort.Slice(queue, func(i, j int) bool {
		return geom.Above(queue[i].Point, queue[j].Point)
	})

	for _, v := range queue {
		ei, eiPrev := adjacentEdges(v)
		prev := eiPrev.Origin
		next := ei.Destination()

		class := Classify(prev.Point, v.Point, next.Point)
		ctx.classOf[v] = class

		switch class {
		case Start:
			ctx.handleStart(v, ei)
		case End:
			ctx.handleEnd(v, eiPrev)
		case Split:
			ctx.handleSplit(v, ei)
		case Merge:
			ctx.handleMerge(v, eiPrev)
		case Regular:
			ctx.handleRegular(v, ei, eiPrev, prev, next)
		}
	}

	return ctx.diagonals
}

func (ctx *sweepContext) insertDiagonalFrom(v *dcel.Vertex, target *dcel.Vertex, f *dcel.Face) {
	dcel.InsertDiagonal(ctx.d, v, target, f)
	ctx.diagonals++
}

// closeEdge implements the "if helper[e] is a merge vertex, insert a
// diagonal v-helper[e] in e's face" step shared by end, merge, and
// regular.
func (ctx *sweepContext) closeEdge(v *dcel.Vertex, e *dcel.HalfEdge) {
	h, ok := ctx.helper[e]
	if ok && ctx.classOf[h] == Merge {
		ctx.insertDiagonalFrom(v, h, e.Face)
	}
}

func (ctx *sweepContext) handleStart(v *dcel.Vertex, ei *dcel.HalfEdge) {
	ctx.status.Insert(ei, v.Point)
	ctx.helper[ei] = v
}

func (ctx *sweepContext) handleEnd(v *dcel.Vertex, eiPrev *dcel.HalfEdge) {
	ctx.closeEdge(v, eiPrev)
	ctx.status.Delete(eiPrev, v.Point)
}

func (ctx *sweepContext) handleSplit(v *dcel.Vertex, ei *dcel.HalfEdge) {
	ej := ctx.status.LeftmostOf(v.Point)
	ctx.insertDiagonalFrom(v, ctx.helper[ej], ej.Face)
	ctx.helper[ej] = v

	ctx.status.Insert(ei, v.Point)
	ctx.helper[ei] = v
}

func (ctx *sweepContext) handleMerge(v *dcel.Vertex, eiPrev *dcel.HalfEdge) {
	ctx.closeEdge(v, eiPrev)
	ctx.status.Delete(eiPrev, v.Point)

	ej := ctx.status.LeftmostOf(v.Point)
	if h, ok := ctx.helper[ej]; ok && ctx.classOf[h] == Merge {
		ctx.insertDiagonalFrom(v, h, ej.Face)
	}
	ctx.helper[ej] = v
}

func (ctx *sweepContext) handleRegular(v *dcel.Vertex, ei, eiPrev *dcel.HalfEdge, prev, next *dcel.Vertex) {
	interiorOnRight := geom.Above(prev.Point, next.Point)
	if interiorOnRight {
		ctx.closeEdge(v, eiPrev)
		ctx.status.Delete(eiPrev, v.Point)

		ctx.status.Insert(ei, v.Point)
		ctx.helper[ei] = v
		return
	}

	ej := ctx.status.LeftmostOf(v.Point)
	if h, ok := ctx.helper[ej]; ok && ctx.classOf[h] == Merge {
		ctx.insertDiagonalFrom(v, h, ej.Face)
	}
	ctx.helper[ej] = v
}
