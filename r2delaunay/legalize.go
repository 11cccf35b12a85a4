// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

// legalize restores the Delaunay condition around half-edge a and returns the
// half-edge that ends up opposite the newly inserted point.
//
// If the pair of triangles sharing a does not satisfy the Delaunay condition
// (p1 is inside the circumcircle of [p0, pr, pl]) the shared edge is flipped
// and the edge br is queued for the same check:
//
//	          pl                    pl
//	         /||\                  /  \
//	      al/ || \bl            al/    \a
//	       /  ||  \              /      \
//	      /  a||b  \    flip    /___ar___\
//	    p0\   ||   /p1   =>   p0\---bl---/p1
//	       \  ||  /              \      /
//	      ar\ || /br             b\    /br
//	         \||/                  \  /
//	          pr                    pr
//
// Pending edges live on tr.edgeStack; pushes beyond its capacity are dropped.
func (tr *triangulator) legalize(a int) int {
	i := 0
	var ar int

	for {
		b := tr.halfedges[a]

		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b == EmptyHalfedge {
			if i == 0 {
				break
			}
			i--
			a = tr.edgeStack[i]
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := tr.triangles[ar]
		pr := tr.triangles[a]
		pl := tr.triangles[al]
		p1 := tr.triangles[bl]

		illegal := inCircle(
			tr.x(p0), tr.y(p0),
			tr.x(pr), tr.y(pr),
			tr.x(pl), tr.y(pl),
			tr.x(p1), tr.y(p1))

		if !illegal {
			if i == 0 {
				break
			}
			i--
			a = tr.edgeStack[i]
			continue
		}

		tr.triangles[a] = p1
		tr.triangles[b] = p0

		hbl := tr.halfedges[bl]

		// edge swapped on the other side of the hull (rare); fix the hull triangle reference
		if hbl == EmptyHalfedge {
			e := tr.hullStart
			for {
				if tr.hullTri[e] == bl {
					tr.hullTri[e] = a
					break
				}
				e = tr.hullPrev[e]
				if e == tr.hullStart {
					break
				}
			}
		}

		tr.link(a, hbl)
		tr.link(b, tr.halfedges[ar])
		tr.link(ar, bl)

		br := b0 + (b+1)%3
		if i < len(tr.edgeStack) {
			tr.edgeStack[i] = br
			i++
		} else {
			tr.droppedEdges++
		}
	}

	return ar
}
