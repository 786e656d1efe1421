package internal

// Ear clipping triangulation of a simple polygon. The polygon may wind either
// way; the resulting triangles are always counterclockwise and index into
// points. Exactly n-2 triangles are produced, along with the shared edge table
// that was built while clipping.
//
// A polygon with fewer than three points yields nothing. If the ring runs out
// of ears before n-2 triangles exist, the polygon is self-intersecting or
// degenerate and this panics with ErrMalformedPolygon.
func EarClip(points []Point) (TriangleList, *EdgeTable) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	ears := newEarIndex(points)
	triangles := make(TriangleList, 0, n-2)
	table := NewEdgeTable(2*n - 3)
	for len(triangles) < n-2 {
		ear := ears.findEar()
		if ear < 0 {
			throw(ErrMalformedPolygon, "no ear left after %d of %d triangles", len(triangles), n-2)
		}

		v := ears.VNIs[ear]
		triangles = append(triangles, NewTriangle(points, v.Left, v.Index, v.Right))
		ti := len(triangles) - 1
		table.AddTriangle(&triangles[ti], ti)

		if len(triangles) < n-2 {
			ears.clip(ear)
		}
	}
	return triangles, table
}

// Panic with ErrSelfIntersecting if any two non-adjacent polygon edges touch.
func CheckSimple(points []Point) {
	if len(points) < 4 {
		return
	}
	i, j := Polygon{points}.FindSelfIntersection()
	if i >= 0 {
		n := len(points)
		throw(ErrSelfIntersecting, "edge (%d, %d) meets edge (%d, %d)",
			i, CircularIndex(i+1, n), j, CircularIndex(j+1, n))
	}
}
