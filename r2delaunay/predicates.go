// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"math"

	"github.com/golang/geo/r2"
)

// orient returns the cross product of (q-p) and (r-q): positive when p, q, r
// turn counter-clockwise, negative when clockwise, zero when collinear.
func orient(px, py, qx, qy, rx, ry float64) float64 {
	return (qx-px)*(ry-qy) - (qy-py)*(rx-qx)
}

// inCircle reports whether p lies strictly inside the circumcircle of the CCW
// triangle (a, b, c). Points on the circle are not inside.
func inCircle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	dx := ax - px
	dy := ay - py
	ex := bx - px
	ey := by - py
	fx := cx - px
	fy := cy - py

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-
		dy*(ex*cp-bp*fx)+
		ap*(ex*fy-ey*fx) > 0
}

// circumradius returns the squared circumradius of (a, b, c), +Inf (or NaN)
// for collinear input.
func circumradius(ax, ay, bx, by, cx, cy float64) float64 {
	dx := bx - ax
	dy := by - ay
	ex := cx - ax
	ey := cy - ay

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	x := (ey*bl - dy*cl) * d
	y := (dx*cl - ex*bl) * d

	return x*x + y*y
}

func circumcenter(ax, ay, bx, by, cx, cy float64) r2.Point {
	dx := bx - ax
	dy := by - ay
	ex := cx - ax
	ey := cy - ay

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)

	return r2.Point{
		X: ax + (ey*bl-dy*cl)*d,
		Y: ay + (dx*cl-ex*bl)*d,
	}
}

// pseudoAngle maps a direction to [0, 1), monotonically in its polar angle.
func pseudoAngle(dx, dy float64) float64 {
	s := math.Abs(dx) + math.Abs(dy)
	if s == 0 {
		return 0
	}
	p := dx / s
	if dy > 0 {
		return (3 - p) / 4
	}
	return (1 + p) / 4
}

func squaredDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// TriangleCircumcenter returns the centre of the circle through a, b and c.
// The result has infinite or NaN coordinates when the points are collinear.
func TriangleCircumcenter(a, b, c r2.Point) r2.Point {
	return circumcenter(a.X, a.Y, b.X, b.Y, c.X, c.Y)
}
