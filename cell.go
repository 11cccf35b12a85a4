// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// Bounded reports whether the cell is a closed polygon. Cells of hull sites
// extend to infinity and are not bounded.
func (c Cell) Bounded() bool {
	return c.d.Bounded[c.idx]
}

// NumVertices returns the number of vertices in the cell.
func (c Cell) NumVertices() int {
	return c.d.CellVertexOffsets[c.idx+1] - c.d.CellVertexOffsets[c.idx]
}

// VertexIndices returns the indices of the vertices that form the cell in the
// Diagram's Vertices, sorted in counter-clockwise order.
func (c Cell) VertexIndices() []int {
	return c.d.CellVertices[c.d.CellVertexOffsets[c.idx]:c.d.CellVertexOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.d.CellVertexOffsets[c.idx]
	end := c.d.CellVertexOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.d.Vertices[c.d.CellVertices[start+i]], nil
}

// NumNeighbors returns the number of neighboring cells.
// This equals NumVertices for bounded cells and NumVertices+1 otherwise.
func (c Cell) NumNeighbors() int {
	return c.d.CellNeighborOffsets[c.idx+1] - c.d.CellNeighborOffsets[c.idx]
}

// NeighborIndices returns the indices of the neighboring cells in the Diagram,
// sorted in counter-clockwise order. Vertex i lies between neighbors i and i+1.
func (c Cell) NeighborIndices() []int {
	return c.d.CellNeighbors[c.d.CellNeighborOffsets[c.idx]:c.d.CellNeighborOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	start := c.d.CellNeighborOffsets[c.idx]
	end := c.d.CellNeighborOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	nc, err := c.d.Cell(c.d.CellNeighbors[start+i])
	if err != nil {
		return Cell{}, err
	}
	return nc, nil
}

// Polygon returns a copy of the cell vertices.
func (c Cell) Polygon() []r2.Point {
	indices := c.VertexIndices()
	polygon := make([]r2.Point, len(indices))
	for i, idx := range indices {
		polygon[i] = c.d.Vertices[idx]
	}
	return polygon
}

// Area returns the area of a bounded cell, or 0 for unbounded and empty cells.
func (c Cell) Area() float64 {
	if !c.Bounded() {
		return 0
	}
	area, _ := c.moments()
	return area
}

// Centroid returns the centroid of a bounded cell. Unbounded, empty and
// degenerate cells return their site.
func (c Cell) Centroid() r2.Point {
	if !c.Bounded() {
		return c.Site()
	}
	area, centroid := c.moments()
	if area == 0 {
		return c.Site()
	}
	return centroid
}

// moments returns the signed area and the centroid of the closed vertex chain.
// Coordinates are taken relative to the site to keep the products small.
func (c Cell) moments() (float64, r2.Point) {
	site := c.Site()
	polygon := c.Polygon()

	var area float64
	var m r2.Point
	for i, p := range polygon {
		p = p.Sub(site)
		q := polygon[(i+1)%len(polygon)].Sub(site)
		cross := p.Cross(q)
		area += cross
		m = m.Add(p.Add(q).Mul(cross))
	}
	area /= 2
	if area == 0 {
		return 0, site
	}
	return area, site.Add(m.Mul(1 / (6 * area)))
}
