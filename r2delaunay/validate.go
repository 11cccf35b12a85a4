// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

const (
	validateRelTolerance = 1e-9
	hullEps              = 1e-10
)

// Validate performs sanity checks on the triangulation and returns the first
// problem found, or nil. It is meant for tests and debugging.
func (dt *Triangulation) Validate() error {
	if len(dt.Triangles)%3 != 0 || len(dt.Halfedges) != len(dt.Triangles) {
		return errors.Errorf("invalid array lengths: triangles %d, halfedges %d",
			len(dt.Triangles), len(dt.Halfedges))
	}

	for e, opposite := range dt.Halfedges {
		if opposite == EmptyHalfedge {
			continue
		}
		if opposite < 0 || opposite >= len(dt.Halfedges) || dt.Halfedges[opposite] != e {
			return errors.Errorf("invalid halfedge connection %d -> %d", e, opposite)
		}
		if dt.Triangles[e] != dt.Triangles[NextHalfedge(opposite)] ||
			dt.Triangles[opposite] != dt.Triangles[NextHalfedge(e)] {
			return errors.Errorf("halfedges %d and %d do not share endpoints", e, opposite)
		}
	}

	var trianglesArea float64
	for t := range dt.NumTriangles() {
		a, b, c := dt.TriangleVertices(t)
		area := signedArea(a, b, c)
		if area < 0 {
			return errors.Errorf("triangle %d is not CCW", t)
		}
		trianglesArea += area
	}

	hull := make([]r2.Point, len(dt.Hull))
	for i, p := range dt.Hull {
		hull[i] = dt.Points[p]
	}
	hullArea := polygonArea(hull)
	if hullArea <= 0 {
		return errors.New("hull is not CCW")
	}

	refArea := convexHullArea(dt.Points)
	scale := math.Max(refArea, 1) * validateRelTolerance
	if math.Abs(hullArea-refArea) > scale || math.Abs(trianglesArea-refArea) > scale {
		return errors.Errorf("hull areas disagree: hull %v, triangles %v, reference %v",
			hullArea, trianglesArea, refArea)
	}

	return nil
}

func signedArea(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

// polygonArea returns the signed area of a closed polygon, positive for CCW.
func polygonArea(points []r2.Point) float64 {
	var area float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.Cross(q)
	}
	return area / 2
}

// convexHullArea computes the convex hull area of points independently of the
// sweep: the points are extruded into a unit prism, and the hull faces lying
// on the bottom cap triangulate the planar hull.
func convexHullArea(points []r2.Point) float64 {
	n := len(points)
	bounds := r2.RectFromPoints(points...)
	height := math.Max(bounds.Size().X, bounds.Size().Y)
	if height == 0 {
		return 0
	}

	prism := make([]r3.Vector, 2*n)
	for i, p := range points {
		prism[i] = r3.Vector{X: p.X, Y: p.Y, Z: 0}
		prism[n+i] = r3.Vector{X: p.X, Y: p.Y, Z: height}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(prism, true, true, hullEps)

	var area float64
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		if a >= n || b >= n || c >= n {
			continue
		}
		area += math.Abs(signedArea(points[a], points[b], points[c]))
	}
	return area
}
