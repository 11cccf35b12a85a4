// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi implements planar Voronoi diagrams, built on the Delaunay
// triangulation of package r2delaunay.
package r2voronoi

import (
	"fmt"
	"math"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

var defaultEpsilon = math.Pow(2, -52)

// Diagram is the Voronoi diagram of a set of sites.
//
// Vertex i is the circumcenter of triangle i of the underlying triangulation.
// Cells of sites on the convex hull are unbounded: their vertex chain is open
// and they have one more neighbor than vertices. Sites dropped as duplicates
// during triangulation have empty cells.
type Diagram struct {
	Sites    []r2.Point
	Vertices []r2.Point

	// NOTE: Sorted in CCW per cell.
	CellVertices      []int
	CellVertexOffsets []int
	// NOTE: Sorted in CCW per cell.
	CellNeighbors       []int
	CellNeighborOffsets []int

	Bounded []bool

	Triangulation *r2delaunay.Triangulation

	eps float64
}

type DiagramOptions struct {
	// Epsilon is passed to the triangulation as its duplicate threshold.
	Epsilon float64
}

type DiagramOption func(*DiagramOptions) error

func WithEpsilon(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps < 0 || math.IsNaN(eps) {
			return errors.Errorf("WithEpsilon: eps must be non-negative, got %v", eps)
		}
		o.Epsilon = eps
		return nil
	}
}

// NewDiagram computes the Voronoi diagram of sites. Triangulation errors are
// wrapped and still match the r2delaunay sentinels with errors.Is.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Epsilon: defaultEpsilon,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, errors.Wrap(err, "r2voronoi: invalid option")
		}
	}

	return newDiagram(sites, opts.Epsilon)
}

func newDiagram(sites []r2.Point, eps float64) (*Diagram, error) {
	dt, err := r2delaunay.NewTriangulation(sites, r2delaunay.WithEpsilon(eps))
	if err != nil {
		return nil, errors.Wrap(err, "r2voronoi: triangulation failed")
	}

	numSites := len(sites)
	numTriangles := dt.NumTriangles()
	vd := &Diagram{
		Sites:               dt.Points,
		Vertices:            make([]r2.Point, numTriangles),
		CellVertices:        make([]int, 0, len(dt.Triangles)),
		CellVertexOffsets:   make([]int, numSites+1),
		CellNeighbors:       make([]int, 0, len(dt.Triangles)+len(dt.Hull)),
		CellNeighborOffsets: make([]int, numSites+1),
		Bounded:             make([]bool, numSites),
		Triangulation:       dt,
		eps:                 eps,
	}

	for t := range numTriangles {
		vd.Vertices[t] = dt.TriangleCenter(t)
	}

	outgoing := dt.OutgoingEdges()
	for site, start := range outgoing {
		vd.CellVertexOffsets[site] = len(vd.CellVertices)
		vd.CellNeighborOffsets[site] = len(vd.CellNeighbors)
		if start == r2delaunay.EmptyHalfedge {
			continue
		}

		edges := dt.EdgesAroundPoint(start)
		for _, e := range edges {
			vd.CellVertices = append(vd.CellVertices, r2delaunay.TriangleOfEdge(e))
			vd.CellNeighbors = append(vd.CellNeighbors, dt.Triangles[r2delaunay.NextHalfedge(e)])
		}

		// Hull sites start at their outgoing hull edge; close the fan with the
		// origin of the incoming one.
		if dt.Halfedges[start] == r2delaunay.EmptyHalfedge {
			last := edges[len(edges)-1]
			vd.CellNeighbors = append(vd.CellNeighbors, dt.Triangles[r2delaunay.PrevHalfedge(last)])
		} else {
			vd.Bounded[site] = true
		}
	}
	vd.CellVertexOffsets[numSites] = len(vd.CellVertices)
	vd.CellNeighborOffsets[numSites] = len(vd.CellNeighbors)

	return vd, nil
}

// NumCells returns the number of cells, one per site.
func (vd *Diagram) NumCells() int {
	return len(vd.Sites)
}

// Cell returns a view of the cell of site i.
func (vd *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= vd.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, vd.NumCells())
	}
	return Cell{idx: i, d: vd}, nil
}

// Relax performs steps iterations of Lloyd relaxation. Each bounded cell
// moves its site to the centroid of its polygon; unbounded and empty cells
// keep their site. The diagram is rebuilt after every step, and the input
// sites slice is left untouched.
func (vd *Diagram) Relax(steps int) error {
	if steps < 0 {
		return errors.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	for step := range steps {
		sites := make([]r2.Point, vd.NumCells())
		moved := 0
		for i := range sites {
			c := Cell{idx: i, d: vd}
			sites[i] = c.Centroid()
			if sites[i] != c.Site() {
				moved++
			}
		}

		next, err := newDiagram(sites, vd.eps)
		if err != nil {
			return errors.Wrapf(err, "r2voronoi: relax step %d", step)
		}
		*vd = *next

		r2delaunay.Logger().Debug("r2voronoi: relax step",
			"step", step,
			"moved", moved)
	}

	return nil
}
