// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "github.com/golang/geo/r2"

// Edge is an undirected triangulation edge between points P and Q, identified
// by the index of one of its half-edges.
type Edge struct {
	Index int
	P, Q  r2.Point
}

// NextHalfedge returns the next half-edge in the triangle of e.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfedge returns the previous half-edge in the triangle of e.
func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// TriangleOfEdge returns the index of the triangle containing half-edge e.
func TriangleOfEdge(e int) int {
	return e / 3
}

// EdgesOfTriangle returns the three half-edges of triangle t.
func EdgesOfTriangle(t int) [3]int {
	return [3]int{3 * t, 3*t + 1, 3*t + 2}
}

// PointsOfTriangle returns the point indices of triangle t in CCW order.
func (dt *Triangulation) PointsOfTriangle(t int) [3]int {
	if t < 0 || t >= dt.NumTriangles() {
		panic("PointsOfTriangle: t out of bounds")
	}
	return [3]int{dt.Triangles[3*t], dt.Triangles[3*t+1], dt.Triangles[3*t+2]}
}

// TrianglesAdjacentToTriangle returns the triangles sharing an edge with t.
func (dt *Triangulation) TrianglesAdjacentToTriangle(t int) []int {
	if t < 0 || t >= dt.NumTriangles() {
		panic("TrianglesAdjacentToTriangle: t out of bounds")
	}
	adjacent := make([]int, 0, 3)
	for _, e := range EdgesOfTriangle(t) {
		if opposite := dt.Halfedges[e]; opposite != EmptyHalfedge {
			adjacent = append(adjacent, TriangleOfEdge(opposite))
		}
	}
	return adjacent
}

// TriangleCenter returns the circumcenter of triangle t.
func (dt *Triangulation) TriangleCenter(t int) r2.Point {
	a, b, c := dt.TriangleVertices(t)
	return TriangleCircumcenter(a, b, c)
}

func (dt *Triangulation) ForEachTriangle(fn func(t int, a, b, c r2.Point)) {
	for t := range dt.NumTriangles() {
		a, b, c := dt.TriangleVertices(t)
		fn(t, a, b, c)
	}
}

// Edges returns every undirected edge once. Interior edges are reported by
// the half-edge with the larger index, hull edges by their only half-edge.
func (dt *Triangulation) Edges() []Edge {
	edges := make([]Edge, 0, len(dt.Triangles)/2+len(dt.Hull))
	dt.ForEachTriangleEdge(func(e Edge) {
		edges = append(edges, e)
	})
	return edges
}

func (dt *Triangulation) ForEachTriangleEdge(fn func(Edge)) {
	for e, opposite := range dt.Halfedges {
		if e > opposite {
			fn(Edge{
				Index: e,
				P:     dt.Points[dt.Triangles[e]],
				Q:     dt.Points[dt.Triangles[NextHalfedge(e)]],
			})
		}
	}
}

// HullEdges returns the hull edges in CCW order. Index is the position of P
// in Hull.
func (dt *Triangulation) HullEdges() []Edge {
	edges := make([]Edge, len(dt.Hull))
	for i, p := range dt.Hull {
		q := dt.Hull[(i+1)%len(dt.Hull)]
		edges[i] = Edge{Index: i, P: dt.Points[p], Q: dt.Points[q]}
	}
	return edges
}

// EdgesAroundPoint returns the half-edges leaving the origin of start, in CCW
// order. For a hull point the walk stops at the hull, so start should be the
// point's outgoing hull edge (see OutgoingEdges).
func (dt *Triangulation) EdgesAroundPoint(start int) []int {
	var result []int
	outgoing := start
	for {
		result = append(result, outgoing)
		outgoing = dt.Halfedges[PrevHalfedge(outgoing)]
		if outgoing == EmptyHalfedge || outgoing == start {
			break
		}
	}
	return result
}

// OutgoingEdges returns, per point, one half-edge leaving that point. Hull
// points get their outgoing hull edge. Points not present in the
// triangulation (skipped duplicates) get EmptyHalfedge.
func (dt *Triangulation) OutgoingEdges() []int {
	index := make([]int, len(dt.Points))
	for i := range index {
		index[i] = EmptyHalfedge
	}
	for e, p := range dt.Triangles {
		if index[p] == EmptyHalfedge || dt.Halfedges[e] == EmptyHalfedge {
			index[p] = e
		}
	}
	return index
}
