// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes the Delaunay triangulation of a planar point set
// by incremental sweep-hull insertion with edge-flip legalization.
//
// The result is stored in flat index arrays: every three consecutive entries of
// Triangles form one counter-clockwise triangle, and Halfedges[e] is the
// opposite half-edge of e in the adjacent triangle, or EmptyHalfedge when e lies
// on the convex hull.
package r2delaunay

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
	pkgerrors "github.com/pkg/errors"
)

const (
	// EmptyHalfedge marks a half-edge without a twin, i.e. a convex hull edge.
	EmptyHalfedge = -1

	defaultEdgeStackSize = 512
)

var defaultEpsilon = math.Pow(2, -52)

var (
	// ErrInsufficientPoints is returned when fewer than 3 points are given.
	ErrInsufficientPoints = errors.New("r2delaunay: insufficient points for triangulation (minimum 3 required)")
	// ErrDegenerateInput is returned when all points are collinear or coincident.
	ErrDegenerateInput = errors.New("r2delaunay: no Delaunay triangulation exists for this input")
)

// Triangulation is the read-only result of NewTriangulation.
type Triangulation struct {
	Points []r2.Point
	// NOTE: Each triple is CCW.
	Triangles []int
	Halfedges []int
	// NOTE: Sorted in CCW.
	Hull []int
}

type TriangulationOptions struct {
	// Epsilon is the per-axis distance under which a point is treated as a
	// duplicate of the previously inserted one.
	Epsilon float64
	// EdgeStackSize bounds the number of pending edges during legalization.
	// Edges pushed beyond it are dropped.
	EdgeStackSize int
}

type TriangulationOption func(*TriangulationOptions) error

func WithEpsilon(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps < 0 || math.IsNaN(eps) {
			return pkgerrors.Errorf("WithEpsilon: eps must be non-negative, got %v", eps)
		}
		o.Epsilon = eps
		return nil
	}
}

func WithEdgeStackSize(n int) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if n <= 0 {
			return pkgerrors.Errorf("WithEdgeStackSize: size must be positive, got %d", n)
		}
		o.EdgeStackSize = n
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of points.
//
// Points closer than Epsilon (per axis) to the previously inserted point are
// skipped and do not appear in any triangle. The points slice is retained,
// not copied.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Epsilon:       defaultEpsilon,
		EdgeStackSize: defaultEdgeStackSize,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, pkgerrors.Wrap(err, "r2delaunay: invalid option")
		}
	}

	if len(points) < 3 {
		return nil, ErrInsufficientPoints
	}

	tr := newTriangulator(points, opts)
	if err := tr.triangulate(); err != nil {
		return nil, err
	}

	dt := &Triangulation{
		Points:    points,
		Triangles: tr.triangles[:tr.trianglesLen:tr.trianglesLen],
		Halfedges: tr.halfedges[:tr.trianglesLen:tr.trianglesLen],
		Hull:      tr.hull(),
	}

	Logger().Debug("r2delaunay: triangulation built",
		"points", len(points),
		"triangles", dt.NumTriangles(),
		"hull", len(dt.Hull),
		"skipped", tr.skipped)
	if tr.droppedEdges > 0 {
		Logger().Warn("r2delaunay: edge stack overflow, legalization truncated",
			"capacity", len(tr.edgeStack),
			"dropped", tr.droppedEdges)
	}

	return dt, nil
}

// NumTriangles returns the number of triangles.
func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles) / 3
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= dt.NumTriangles() {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := 3 * tIdx
	return dt.Points[dt.Triangles[t]], dt.Points[dt.Triangles[t+1]], dt.Points[dt.Triangles[t+2]]
}
