// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"embed"
	"strconv"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
)

// Fixtures are SVG files under testdata/fixtures. Every <circle> element is one
// input point at (cx, cy), in document order.

//go:embed testdata/fixtures
var fixtures embed.FS

func loadFixture(t testing.TB, name string) []r2.Point {
	t.Helper()
	fixture, err := fixtures.Open("testdata/fixtures/" + name + ".svg")
	if err != nil {
		t.Fatalf("could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	root, err := svgparser.Parse(fixture, true)
	if err != nil {
		t.Fatalf("failed to parse fixture %q: %v", name, err)
	}

	circles := root.FindAll("circle")
	if len(circles) == 0 {
		t.Fatalf("no circles found in fixture %q", name)
	}

	points := make([]r2.Point, 0, len(circles))
	for _, c := range circles {
		x, err := strconv.ParseFloat(c.Attributes["cx"], 64)
		if err != nil {
			t.Fatalf("fixture %q: invalid cx %q: %v", name, c.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(c.Attributes["cy"], 64)
		if err != nil {
			t.Fatalf("fixture %q: invalid cy %q: %v", name, c.Attributes["cy"], err)
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	return points
}
