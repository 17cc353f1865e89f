// Package dualgraph builds the dual graph of a triangulated DCEL: one node
// per triangular face, an edge between two nodes whenever their faces share
// a diagonal. The dual graph of a triangulated simple polygon is a tree, so
// it is built and searched iteratively with an explicit stack rather than
// recursion.
package dualgraph

import (
	"github.com/polypath/polypath/dcel"
	"github.com/polypath/polypath/geom"
)

// Node is one face of the triangulation, linked to the face that discovered
// it (Parent) and the faces it discovered in turn (Children).
type Node struct {
	Face     *dcel.Face
	Parent   *Node
	Children []*Node
}

// adjacentFaces returns the bounded faces sharing an edge with f.
func adjacentFaces(f *dcel.Face) []*dcel.Face {
	var out []*dcel.Face
	seen := make(map[*dcel.Face]bool)

	h := f.Outer
	for {
		twinFace := h.Twin.Face
		if !twinFace.Unbounded() && !seen[twinFace] {
			seen[twinFace] = true
			out = append(out, twinFace)
		}
		h = h.Next
		if h == f.Outer {
			break
		}
	}
	return out
}

// Build constructs the dual graph of every bounded face reachable from
// root, returning the root node. Because a triangulated simple polygon's
// dual graph is a tree, each face other than root is visited exactly once,
// discovered through the one neighbor that is its parent.
func Build(root *dcel.Face) *Node {
	rootNode := &Node{Face: root}

	var stack []*Node
	for _, f := range adjacentFaces(root) {
		child := &Node{Face: f, Parent: rootNode}
		rootNode.Children = append(rootNode.Children, child)
		stack = append(stack, child)
	}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, f := range adjacentFaces(current.Face) {
			if f == current.Parent.Face {
				continue
			}
			child := &Node{Face: f, Parent: current}
			current.Children = append(current.Children, child)
			stack = append(stack, child)
		}
	}
	return rootNode
}

// faceContainsPoint reports whether p lies in the triangle bounded by f's
// outer component.
func faceContainsPoint(f *dcel.Face, p geom.Point) bool {
	verts := dcel.VerticesOfFace(f)
	return geom.PointInTriangle(verts[0].Point, verts[1].Point, verts[2].Point, p)
}

// findNode walks the tree rooted at root looking for the face containing p.
func findNode(root *Node, p geom.Point) *Node {
	stack := []*Node{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if faceContainsPoint(current.Face, p) {
			return current
		}
		stack = append(stack, current.Children...)
	}
	return nil
}

// PathToPoint returns the sequence of triangular faces from root to the one
// containing p, root first. Returns nil if no face in the tree contains p.
func PathToPoint(root *Node, p geom.Point) []*dcel.Face {
	target := findNode(root, p)
	if target == nil {
		return nil
	}

	var path []*dcel.Face
	for n := target; n != nil; n = n.Parent {
		path = append([]*dcel.Face{n.Face}, path...)
	}
	return path
}
