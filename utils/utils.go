// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded generators of planar sample points for
// triangulations and Voronoi diagrams.
package utils

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	// DefaultScale is the side length of the square used by GeneratePoints.
	DefaultScale = 1000

	// DefaultPointsPerIteration is the number of candidates tried around each
	// active Poisson-disk sample.
	DefaultPointsPerIteration = 30

	defaultPoissonMinDistance = 40
)

// Distribution selects a point generator for GeneratePoints.
type Distribution int

const (
	Uniform Distribution = iota
	Gaussian
	Grid
	Poisson
)

var distributionNames = [...]string{
	Uniform:  "uniform",
	Gaussian: "gaussian",
	Grid:     "grid",
	Poisson:  "poisson",
}

// Distributions lists all distributions in declaration order.
var Distributions = []Distribution{Uniform, Gaussian, Grid, Poisson}

func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionNames) {
		return "Distribution(" + strconv.Itoa(int(d)) + ")"
	}
	return distributionNames[d]
}

// ParseDistribution returns the distribution with the given case-insensitive name.
func ParseDistribution(name string) (Distribution, error) {
	for i, n := range distributionNames {
		if strings.EqualFold(n, name) {
			return Distribution(i), nil
		}
	}
	return 0, errors.Errorf("ParseDistribution: unknown distribution %q", name)
}

// GeneratePoints generates about cnt points of distribution d inside a
// DefaultScale square. Grid and Poisson may return more points than cnt.
// The seed parameter ensures reproducibility.
func GeneratePoints(d Distribution, cnt int, seed int64) ([]r2.Point, error) {
	bounds := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: DefaultScale, Y: DefaultScale})
	switch d {
	case Uniform:
		return GenerateUniformPoints(cnt, seed, bounds), nil
	case Gaussian:
		return GenerateGaussianPoints(cnt, seed, r2.Point{}, DefaultScale), nil
	case Grid:
		return GenerateGridPoints(cnt), nil
	case Poisson:
		var points []r2.Point
		for len(points) < cnt {
			batch := SamplePoissonDisk(seed, bounds, defaultPoissonMinDistance, DefaultPointsPerIteration)
			points = append(points, batch...)
			seed++
		}
		return points, nil
	}
	return nil, errors.Errorf("GeneratePoints: unknown distribution %v", d)
}

// GenerateUniformPoints generates cnt points uniformly distributed in bounds.
// The seed parameter ensures reproducibility.
func GenerateUniformPoints(cnt int, seed int64, bounds r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	size := bounds.Size()
	for i := range cnt {
		points[i] = r2.Point{
			X: bounds.X.Lo + random.Float64()*size.X,
			Y: bounds.Y.Lo + random.Float64()*size.Y,
		}
	}

	return points
}

// GenerateGaussianPoints generates cnt points scattered around center with an
// approximately normal distribution within center ± scale/2.
// The seed parameter ensures reproducibility.
func GenerateGaussianPoints(cnt int, seed int64, center r2.Point, scale float64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: center.X + pseudoNormal(random)*scale,
			Y: center.Y + pseudoNormal(random)*scale,
		}
	}

	return points
}

// pseudoNormal approximates a normal sample in [-0.5, 0.5] by summing six
// uniform samples.
func pseudoNormal(random *rand.Rand) float64 {
	var v float64
	for range 6 {
		v += random.Float64()
	}
	return 0.5 * (v - 3) / 3
}

// GenerateGridPoints generates a square lattice with unit spacing and
// ceil(sqrt(cnt)) points per side.
func GenerateGridPoints(cnt int) []r2.Point {
	side := int(math.Ceil(math.Sqrt(float64(cnt))))
	points := make([]r2.Point, 0, side*side)
	for i := range side {
		for j := range side {
			points = append(points, r2.Point{X: float64(i), Y: float64(j)})
		}
	}
	return points
}
