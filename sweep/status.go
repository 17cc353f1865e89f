// Package sweep implements the sweep-line status structure used by the
// monotone-partitioning pass: an ordered set of half-edges keyed by the
// x-coordinate at which each currently crosses the horizontal sweep line.
package sweep

import (
	"math"

	"github.com/google/btree"

	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
)

// xAtSweep returns the x-coordinate at which half-edge h meets the
// horizontal line y = v.Y. Vertical edges report their (shared) x; horizontal
// edges report the larger of their two endpoint x values, the "trailing"
// end; all other edges are linearly interpolated.
func xAtSweep(h *dcel.HalfEdge, v geom.Point) float64 {
	a := h.Origin.Point
	b := h.Destination().Point

	if a.X == b.X {
		return a.X
	}
	if a.Y == b.Y {
		return math.Max(a.X, b.X)
	}
	t := (v.Y - a.Y) / (b.Y - a.Y)
	return a.X + t*(b.X-a.X)
}

// keyer computes an item's ordering key given the sweep's current event
// vertex. A real status entry keys off its half-edge; a search pivot keys
// off a fixed x with no dependence on the current event.
type keyer interface {
	keyX(current geom.Point) float64
}

type edgeKey struct{ edge *dcel.HalfEdge }

func (k edgeKey) keyX(current geom.Point) float64 { return xAtSweep(k.edge, current) }

type fixedKey struct{ x float64 }

func (k fixedKey) keyX(geom.Point) float64 { return k.x }

type statusItem struct {
	key    keyer
	status *Status
}

func (it *statusItem) Less(than btree.Item) bool {
	other := than.(*statusItem)
	return it.key.keyX(it.status.current) < other.key.keyX(it.status.current)
}

// Status is the sweep-line status: a balanced ordered set of half-edges,
// re-keyed dynamically as the current event vertex changes. No two stored
// half-edges ever compare equal, because they bound a simple polygon and so
// do not cross.
type Status struct {
	tree    *btree.BTree
	current geom.Point
	byEdge  map[*dcel.HalfEdge]*statusItem
}

// New creates an empty sweep-line status.
func New() *Status {
	return &Status{
		tree:   btree.New(8),
		byEdge: make(map[*dcel.HalfEdge]*statusItem),
	}
}

// Insert adds h to the status, keyed at the current event vertex v.
func (s *Status) Insert(h *dcel.HalfEdge, v geom.Point) {
	s.current = v
	item := &statusItem{key: edgeKey{h}, status: s}
	s.tree.ReplaceOrInsert(item)
	s.byEdge[h] = item
}

// Delete removes h from the status, re-keying at the current event vertex v
// first so any final comparisons made during the tree rebalance are
// correct.
func (s *Status) Delete(h *dcel.HalfEdge, v geom.Point) {
	s.current = v
	item, ok := s.byEdge[h]
	if !ok {
		return
	}
	s.tree.Delete(item)
	delete(s.byEdge, h)
}

// LeftmostOf returns the half-edge immediately to the left of v on the
// current sweep line: the stored half-edge with the largest key that is
// still <= v.X. Returns nil if the status is empty or every stored edge
// lies to the right of v.
func (s *Status) LeftmostOf(v geom.Point) *dcel.HalfEdge {
	s.current = v
	pivot := &statusItem{key: fixedKey{v.X}, status: s}

	var found *dcel.HalfEdge
	s.tree.DescendLessOrEqual(pivot, func(item btree.Item) bool {
		found = item.(*statusItem).key.(edgeKey).edge
		return false
	})
	return found
}

// Len returns the number of half-edges currently stored.
func (s *Status) Len() int {
	return len(s.byEdge)
}
