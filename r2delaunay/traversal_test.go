// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"testing"

	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Half-edge arithmetic

func TestNextHalfedge(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{30, 31}, {32, 30},
	}
	for _, tt := range tests {
		if got := NextHalfedge(tt.in); got != tt.want {
			t.Errorf("NextHalfedge(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrevHalfedge(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 2}, {1, 0}, {2, 1},
		{3, 5}, {4, 3}, {5, 4},
		{30, 32}, {32, 31},
	}
	for _, tt := range tests {
		if got := PrevHalfedge(tt.in); got != tt.want {
			t.Errorf("PrevHalfedge(%d) = %v, want %v", tt.in, got, tt.want)
		}
		if got := NextHalfedge(PrevHalfedge(tt.in)); got != tt.in {
			t.Errorf("NextHalfedge(PrevHalfedge(%d)) = %v, want %v", tt.in, got, tt.in)
		}
	}
}

func TestTriangleOfEdge(t *testing.T) {
	for e := range 12 {
		want := e / 3
		if got := TriangleOfEdge(e); got != want {
			t.Errorf("TriangleOfEdge(%d) = %v, want %v", e, got, want)
		}
	}
	if diff := cmp.Diff([3]int{6, 7, 8}, EdgesOfTriangle(2)); diff != "" {
		t.Errorf("EdgesOfTriangle(2) mismatch (-want +got):\n%s", diff)
	}
}

// Triangulation traversal

func TestTriangulation_EdgesAroundPoint(t *testing.T) {
	dt := mustNewFixtureTriangulation(t, "diamond")
	outgoing := dt.OutgoingEdges()

	tests := []struct {
		name          string
		point         int
		wantNeighbors []int
	}{
		{"interior point", 0, []int{1, 2, 3, 4}},
		{"hull point", 1, []int{2, 0}},
		{"hull point opposite", 3, []int{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges := dt.EdgesAroundPoint(outgoing[tt.point])
			neighbors := make([]int, len(edges))
			for i, e := range edges {
				if dt.Triangles[e] != tt.point {
					t.Fatalf("edge %d starts at %d, want %d", e, dt.Triangles[e], tt.point)
				}
				neighbors[i] = dt.Triangles[NextHalfedge(e)]
			}
			if !cyclicEqual(neighbors, tt.wantNeighbors) {
				t.Errorf("neighbors of %d = %v, want rotation of %v", tt.point, neighbors, tt.wantNeighbors)
			}
		})
	}
}

func TestTriangulation_OutgoingEdges(t *testing.T) {
	dt := mustNewFixtureTriangulation(t, "duplicates")
	outgoing := dt.OutgoingEdges()
	if len(outgoing) != len(dt.Points) {
		t.Fatalf("len(dt.OutgoingEdges()) = %d, want %d", len(outgoing), len(dt.Points))
	}

	onHull := make(map[int]bool)
	for _, p := range dt.Hull {
		onHull[p] = true
	}

	missing := 0
	for p, e := range outgoing {
		if e == EmptyHalfedge {
			missing++
			continue
		}
		if dt.Triangles[e] != p {
			t.Errorf("outgoing[%d] = %d starts at %d", p, e, dt.Triangles[e])
		}
		if onHull[p] && dt.Halfedges[e] != EmptyHalfedge {
			t.Errorf("outgoing[%d] = %d, want the hull edge of a hull point", p, e)
		}
	}
	// duplicates.svg repeats three of its eight points.
	if missing != 3 {
		t.Errorf("points without outgoing edges = %d, want 3", missing)
	}
}

func TestTriangulation_Edges(t *testing.T) {
	points := utils.GenerateUniformPoints(300, 5, unitSquare(50))
	dt, err := NewTriangulation(points)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}

	edges := dt.Edges()
	want := (len(dt.Triangles) + len(dt.Hull)) / 2
	if len(edges) != want {
		t.Errorf("len(dt.Edges()) = %d, want %d", len(edges), want)
	}

	seen := make(map[[2]int]bool)
	for _, e := range edges {
		a, b := dt.Triangles[e.Index], dt.Triangles[NextHalfedge(e.Index)]
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			t.Errorf("edge (%d, %d) reported twice", a, b)
		}
		seen[[2]int{a, b}] = true
		if e.P != dt.Points[dt.Triangles[e.Index]] {
			t.Errorf("edge %d P = %v, want %v", e.Index, e.P, dt.Points[dt.Triangles[e.Index]])
		}
	}
}

func TestTriangulation_HullEdges(t *testing.T) {
	dt := mustNewFixtureTriangulation(t, "pentagon_ring")
	edges := dt.HullEdges()
	if len(edges) != len(dt.Hull) {
		t.Fatalf("len(dt.HullEdges()) = %d, want %d", len(edges), len(dt.Hull))
	}
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if e.Q != next.P {
			t.Errorf("hull edge %d ends at %v, next starts at %v", i, e.Q, next.P)
		}
	}
}

func TestTriangulation_TrianglesAdjacentToTriangle(t *testing.T) {
	dt := mustNewFixtureTriangulation(t, "diamond")
	for tIdx := range dt.NumTriangles() {
		adjacent := dt.TrianglesAdjacentToTriangle(tIdx)
		if len(adjacent) != 2 {
			t.Errorf("dt.TrianglesAdjacentToTriangle(%d) = %v, want 2 triangles", tIdx, adjacent)
		}
		for _, a := range adjacent {
			if a == tIdx {
				t.Errorf("triangle %d is adjacent to itself", tIdx)
			}
		}
	}
}

func TestTriangulation_PointsOfTriangle(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.PointsOfTriangle(%d) did not panic, want panic", in)
			}
		}()
		dt.PointsOfTriangle(in)
	}

	dt := mustNewFixtureTriangulation(t, "pentagon_ring")
	for tIdx := range dt.NumTriangles() {
		got := dt.PointsOfTriangle(tIdx)
		want := [3]int{dt.Triangles[3*tIdx], dt.Triangles[3*tIdx+1], dt.Triangles[3*tIdx+2]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("dt.PointsOfTriangle(%d) mismatch (-want +got):\n%s", tIdx, diff)
		}
	}

	assertPanic(dt, -1)
	assertPanic(dt, dt.NumTriangles())
}

func TestTriangulation_ForEachTriangle(t *testing.T) {
	dt := mustNewFixtureTriangulation(t, "diamond")
	var visited []int
	dt.ForEachTriangle(func(tIdx int, a, b, c r2.Point) {
		visited = append(visited, tIdx)
		if orient(a.X, a.Y, b.X, b.Y, c.X, c.Y) <= 0 {
			t.Errorf("triangle %d (%v, %v, %v) is not CCW", tIdx, a, b, c)
		}
		center := dt.TriangleCenter(tIdx)
		if da, db := a.Sub(center).Norm(), b.Sub(center).Norm(); da-db > 1e-9 || db-da > 1e-9 {
			t.Errorf("dt.TriangleCenter(%d) = %v is not equidistant", tIdx, center)
		}
	})
	if diff := cmp.Diff([]int{0, 1, 2, 3}, visited); diff != "" {
		t.Errorf("ForEachTriangle visit order mismatch (-want +got):\n%s", diff)
	}
}

// Helpers

func mustNewFixtureTriangulation(t *testing.T, name string) *Triangulation {
	t.Helper()
	dt, err := NewTriangulation(loadFixture(t, name))
	if err != nil {
		t.Fatalf("NewTriangulation(%s) error = %v, want nil", name, err)
	}
	return dt
}
