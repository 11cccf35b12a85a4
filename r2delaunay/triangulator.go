// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// triangulator holds the construction state of a single triangulation.
// Hull ring, hash and edge stack are valid only while triangulate runs.
type triangulator struct {
	eps float64

	coords       []float64
	triangles    []int
	halfedges    []int
	trianglesLen int

	center r2.Point

	hullStart int
	hullSize  int
	hullNext  []int
	hullPrev  []int
	hullTri   []int
	hullHash  []int

	edgeStack    []int
	droppedEdges int
	skipped      int
}

func newTriangulator(points []r2.Point, opts TriangulationOptions) *triangulator {
	n := len(points)
	maxTriangles := max(2*n-5, 1)
	hashSize := int(math.Ceil(math.Sqrt(float64(n))))

	tr := &triangulator{
		eps:       opts.Epsilon,
		coords:    make([]float64, 2*n),
		triangles: make([]int, maxTriangles*3),
		halfedges: make([]int, maxTriangles*3),
		hullNext:  make([]int, n),
		hullPrev:  make([]int, n),
		hullTri:   make([]int, n),
		hullHash:  make([]int, hashSize),
		edgeStack: make([]int, opts.EdgeStackSize),
	}
	for i, p := range points {
		tr.coords[2*i] = p.X
		tr.coords[2*i+1] = p.Y
	}
	for i := range tr.hullHash {
		tr.hullHash[i] = -1
	}
	return tr
}

func (tr *triangulator) x(i int) float64 { return tr.coords[2*i] }
func (tr *triangulator) y(i int) float64 { return tr.coords[2*i+1] }

func (tr *triangulator) triangulate() error {
	n := len(tr.coords) / 2

	i0, i1, i2, err := tr.seed()
	if err != nil {
		return err
	}
	tr.center = circumcenter(tr.x(i0), tr.y(i0), tr.x(i1), tr.y(i1), tr.x(i2), tr.y(i2))

	ids := make([]int, n)
	dists := make([]float64, n)
	for i := range n {
		ids[i] = i
		dists[i] = squaredDist(tr.x(i), tr.y(i), tr.center.X, tr.center.Y)
	}
	quicksort(ids, dists, 0, n-1)

	tr.hullStart = i0
	tr.hullSize = 3

	tr.hullNext[i0], tr.hullPrev[i2] = i1, i1
	tr.hullNext[i1], tr.hullPrev[i0] = i2, i2
	tr.hullNext[i2], tr.hullPrev[i1] = i0, i0

	tr.hullTri[i0] = 0
	tr.hullTri[i1] = 1
	tr.hullTri[i2] = 2

	tr.hashHull(i0)
	tr.hashHull(i1)
	tr.hashHull(i2)

	tr.addTriangle(i0, i1, i2, EmptyHalfedge, EmptyHalfedge, EmptyHalfedge)

	var xp, yp float64
	for k, i := range ids {
		x, y := tr.x(i), tr.y(i)

		// seeds are already in place
		if i == i0 || i == i1 || i == i2 {
			xp, yp = x, y
			continue
		}

		if k > 0 && math.Abs(x-xp) <= tr.eps && math.Abs(y-yp) <= tr.eps {
			tr.skipped++
			continue
		}
		xp, yp = x, y

		if !tr.insert(i) {
			tr.skipped++
		}
	}

	return nil
}

// seed picks the initial CCW triangle: the point nearest the bounding box
// centre, its nearest distinct neighbour and the point forming the smallest
// circumcircle with both.
func (tr *triangulator) seed() (i0, i1, i2 int, err error) {
	n := len(tr.coords) / 2

	bounds := r2.EmptyRect()
	for i := range n {
		bounds = bounds.AddPoint(r2.Point{X: tr.x(i), Y: tr.y(i)})
	}
	c := bounds.Center()

	minDist := math.Inf(1)
	for i := range n {
		d := squaredDist(c.X, c.Y, tr.x(i), tr.y(i))
		if d < minDist {
			i0 = i
			minDist = d
		}
	}
	i0x, i0y := tr.x(i0), tr.y(i0)

	minDist = math.Inf(1)
	for i := range n {
		if i == i0 {
			continue
		}
		d := squaredDist(i0x, i0y, tr.x(i), tr.y(i))
		if d < minDist && d > 0 {
			i1 = i
			minDist = d
		}
	}
	i1x, i1y := tr.x(i1), tr.y(i1)

	minRadius := math.Inf(1)
	for i := range n {
		if i == i0 || i == i1 {
			continue
		}
		r := circumradius(i0x, i0y, i1x, i1y, tr.x(i), tr.y(i))
		if r < minRadius {
			i2 = i
			minRadius = r
		}
	}
	if math.IsInf(minRadius, 1) {
		return 0, 0, 0, ErrDegenerateInput
	}

	if orient(i0x, i0y, i1x, i1y, tr.x(i2), tr.y(i2)) < 0 {
		i1, i2 = i2, i1
	}
	return i0, i1, i2, nil
}

// insert adds point i outside the current hull. It reports false when no
// visible hull edge exists, which happens for near-duplicates.
func (tr *triangulator) insert(i int) bool {
	x, y := tr.x(i), tr.y(i)

	start := -1
	key := tr.hashKey(x, y)
	for j := range len(tr.hullHash) {
		start = tr.hullHash[(key+j)%len(tr.hullHash)]
		if start != -1 && start != tr.hullNext[start] {
			break
		}
	}
	if start == -1 {
		return false
	}

	start = tr.hullPrev[start]
	e := start
	q := tr.hullNext[e]
	for !tr.visible(x, y, e, q) {
		e = q
		if e == start {
			return false
		}
		q = tr.hullNext[e]
	}

	t := tr.addTriangle(e, i, tr.hullNext[e], EmptyHalfedge, EmptyHalfedge, tr.hullTri[e])

	tr.hullTri[i] = tr.legalize(t + 2)
	tr.hullTri[e] = t
	tr.hullSize++

	// walk forward through the hull
	next := tr.hullNext[e]
	q = tr.hullNext[next]
	for tr.visible(x, y, next, q) {
		t = tr.addTriangle(next, i, q, tr.hullTri[i], EmptyHalfedge, tr.hullTri[next])
		tr.hullTri[i] = tr.legalize(t + 2)
		tr.hullNext[next] = next // removed
		tr.hullSize--
		next = q
		q = tr.hullNext[next]
	}

	// walk backward only if the first visible edge was the walk start
	if e == start {
		q = tr.hullPrev[e]
		for tr.visible(x, y, q, e) {
			t = tr.addTriangle(q, i, e, EmptyHalfedge, tr.hullTri[e], tr.hullTri[q])
			tr.legalize(t + 2)
			tr.hullTri[q] = t
			tr.hullNext[e] = e // removed
			tr.hullSize--
			e = q
			q = tr.hullPrev[e]
		}
	}

	tr.hullStart = e
	tr.hullPrev[i] = e
	tr.hullNext[e] = i
	tr.hullPrev[next] = i
	tr.hullNext[i] = next

	tr.hashHull(i)
	tr.hashHull(e)
	return true
}

// visible reports whether (x, y) lies strictly outside the hull edge a->b.
func (tr *triangulator) visible(x, y float64, a, b int) bool {
	return orient(x, y, tr.x(a), tr.y(a), tr.x(b), tr.y(b)) < 0
}

func (tr *triangulator) hashKey(x, y float64) int {
	size := len(tr.hullHash)
	return int(math.Floor(pseudoAngle(x-tr.center.X, y-tr.center.Y)*float64(size))) % size
}

func (tr *triangulator) hashHull(i int) {
	tr.hullHash[tr.hashKey(tr.x(i), tr.y(i))] = i
}

func (tr *triangulator) addTriangle(i0, i1, i2, a, b, c int) int {
	t := tr.trianglesLen

	tr.triangles[t] = i0
	tr.triangles[t+1] = i1
	tr.triangles[t+2] = i2

	tr.link(t, a)
	tr.link(t+1, b)
	tr.link(t+2, c)

	tr.trianglesLen += 3
	return t
}

func (tr *triangulator) link(a, b int) {
	tr.halfedges[a] = b
	if b != EmptyHalfedge {
		tr.halfedges[b] = a
	}
}

// hull linearizes the hull ring starting at hullStart.
func (tr *triangulator) hull() []int {
	hull := make([]int, tr.hullSize)
	e := tr.hullStart
	for i := range hull {
		hull[i] = e
		e = tr.hullNext[e]
	}
	return hull
}
