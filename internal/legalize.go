package internal

// Lawson flip legalization. Every interior edge of the table is tested: if the
// vertex of the second triangle opposite the edge lies strictly inside the
// circumcircle of the first, the shared diagonal is replaced by the one joining
// the two opposite vertices. Flips can invalidate edges that were already
// checked, so full passes repeat until one performs no flips.
//
// Triangles and the table are updated in place, and the number of flips is
// returned.
func Legalize(triangles TriangleList, table *EdgeTable) int {
	if table == nil {
		return 0
	}
	total := 0
	for {
		flipped := 0
		for slot := range table.Edges {
			if flipEdge(triangles, table, slot) {
				flipped++
			}
		}
		total += flipped
		if flipped == 0 {
			return total
		}
	}
}

// Flip the edge at slot if it is illegal. Naming the first triangle (p, x, y)
// with p opposite the edge {x, y}, and q the opposite vertex of the second
// triangle, the pair becomes (p, x, q) and (q, y, p). Both keep the winding of
// the first triangle, which also rules out flipping a non-convex quadrilateral.
func flipEdge(triangles TriangleList, table *EdgeTable, slot int) bool {
	record := table.Edges[slot]
	t0, t1 := record.Triangles[0], record.Triangles[1]
	if t1 == NoTriangle {
		return false
	}
	first, second := &triangles[t0], &triangles[t1]
	o0 := first.Opposite(record.Edge)
	o1 := second.Opposite(record.Edge)
	if o0 < 0 || o1 < 0 {
		throw(ErrInvalidEdgeTable, "edge %v is not shared by triangles %d and %d", record.Edge, t0, t1)
	}

	q := second.Vertices[o1]
	if !first.Circumcircle().StrictlyContains(q) {
		return false
	}

	pi, qi := first.Indices[o0], second.Indices[o1]
	xi, yi := first.Indices[(o0+1)%3], first.Indices[(o0+2)%3]
	p, x, y := first.Vertices[o0], first.Vertices[(o0+1)%3], first.Vertices[(o0+2)%3]

	winding := Orientation(p, x, y)
	if Orientation(p, x, q)*winding <= 0 || Orientation(q, y, p)*winding <= 0 {
		return false
	}
	// Only possible if the triangulation already overlaps itself
	if table.Find(Edge{pi, qi}) >= 0 {
		return false
	}

	*first = Triangle{Indices: [3]int{pi, xi, qi}, Vertices: [3]Point{p, x, q}}
	*second = Triangle{Indices: [3]int{qi, yi, pi}, Vertices: [3]Point{q, y, p}}

	// {x, q} moved from the second triangle to the first, {y, p} the other way
	table.replaceOwner(Edge{xi, qi}, t1, t0)
	table.replaceOwner(Edge{yi, pi}, t0, t1)
	table.rekey(slot, Edge{pi, qi})
	return true
}
