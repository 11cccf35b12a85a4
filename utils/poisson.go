// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

type poissonSampler struct {
	random *rand.Rand

	bounds r2.Rect
	center r2.Point
	// rejectSq is the squared radius of the sampling disc, or 0 for a rectangle.
	rejectSq float64

	minDist  float64
	cellSize float64
	gridW    int
	gridH    int

	grid   []r2.Point
	filled []bool
	active []r2.Point
	points []r2.Point
}

// SamplePoissonDisk samples points in bounds such that no two points are
// closer than minDist. Each active point tries pointsPerIteration candidates
// before it is retired; pass 0 to use DefaultPointsPerIteration.
// The seed parameter ensures reproducibility.
func SamplePoissonDisk(seed int64, bounds r2.Rect, minDist float64, pointsPerIteration int) []r2.Point {
	return samplePoissonDisk(seed, bounds, 0, minDist, pointsPerIteration)
}

// SamplePoissonDiskCircle is SamplePoissonDisk restricted to the disc of the
// given center and radius.
func SamplePoissonDiskCircle(seed int64, center r2.Point, radius, minDist float64, pointsPerIteration int) []r2.Point {
	bounds := r2.RectFromCenterSize(center, r2.Point{X: 2 * radius, Y: 2 * radius})
	return samplePoissonDisk(seed, bounds, radius*radius, minDist, pointsPerIteration)
}

func samplePoissonDisk(seed int64, bounds r2.Rect, rejectSq, minDist float64, pointsPerIteration int) []r2.Point {
	if minDist <= 0 || bounds.IsEmpty() {
		return nil
	}
	if pointsPerIteration <= 0 {
		pointsPerIteration = DefaultPointsPerIteration
	}

	size := bounds.Size()
	cellSize := minDist / math.Sqrt2
	s := &poissonSampler{
		//nolint:gosec
		random:   rand.New(rand.NewSource(seed)),
		bounds:   bounds,
		center:   bounds.Center(),
		rejectSq: rejectSq,
		minDist:  minDist,
		cellSize: cellSize,
		gridW:    int(size.X/cellSize) + 1,
		gridH:    int(size.Y/cellSize) + 1,
	}
	s.grid = make([]r2.Point, s.gridW*s.gridH)
	s.filled = make([]bool, s.gridW*s.gridH)

	s.addFirstPoint()
	for len(s.active) > 0 {
		idx := s.random.Intn(len(s.active))
		p := s.active[idx]

		found := false
		for range pointsPerIteration {
			if s.addNextPoint(p) {
				found = true
			}
		}

		if !found {
			s.active[idx] = s.active[len(s.active)-1]
			s.active = s.active[:len(s.active)-1]
		}
	}

	return s.points
}

func (s *poissonSampler) addFirstPoint() {
	size := s.bounds.Size()
	for {
		p := r2.Point{
			X: s.bounds.X.Lo + size.X*s.random.Float64(),
			Y: s.bounds.Y.Lo + size.Y*s.random.Float64(),
		}
		if s.rejected(p) {
			continue
		}
		s.add(p)
		return
	}
}

func (s *poissonSampler) addNextPoint(p r2.Point) bool {
	radius := s.minDist * (1 + s.random.Float64())
	angle := 2 * math.Pi * s.random.Float64()
	q := r2.Point{
		X: p.X + radius*math.Sin(angle),
		Y: p.Y + radius*math.Cos(angle),
	}

	if q.X < s.bounds.X.Lo || q.X >= s.bounds.X.Hi ||
		q.Y < s.bounds.Y.Lo || q.Y >= s.bounds.Y.Hi ||
		s.rejected(q) {
		return false
	}

	qi, qj := s.cell(q)
	for i := max(0, qi-2); i < min(s.gridW, qi+3); i++ {
		for j := max(0, qj-2); j < min(s.gridH, qj+3); j++ {
			k := j*s.gridW + i
			if s.filled[k] && s.grid[k].Sub(q).Norm() < s.minDist {
				return false
			}
		}
	}

	s.add(q)
	return true
}

func (s *poissonSampler) rejected(p r2.Point) bool {
	if s.rejectSq == 0 {
		return false
	}
	d := p.Sub(s.center)
	return d.Dot(d) > s.rejectSq
}

func (s *poissonSampler) cell(p r2.Point) (int, int) {
	return int((p.X - s.bounds.X.Lo) / s.cellSize), int((p.Y - s.bounds.Y.Lo) / s.cellSize)
}

func (s *poissonSampler) add(p r2.Point) {
	i, j := s.cell(p)
	k := j*s.gridW + i
	s.grid[k] = p
	s.filled[k] = true
	s.active = append(s.active, p)
	s.points = append(s.points, p)
}
