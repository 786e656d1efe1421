package internal

// Fan triangulation around a hub. The last point is the hub; the others are
// boundary vertices in order around it. Triangles (hub, i, i+1) are emitted for
// consecutive boundary vertices, plus (hub, last, first) when cycle is set,
// and the fan is then legalized.
//
// The closing triangle is suppressed when the second boundary vertex lies in
// the wedge between the last and first boundary vertices as seen from the hub,
// since closing would then overlap the first triangle of the fan.
//
// Triangles are always counterclockwise: a fan triangle that winds the other
// way is emitted as (hub, i+1, i). With exactly three points the result is the
// single triangle over 0, 1 and 2.
func Radial(points []Point, cycle bool) (TriangleList, *EdgeTable) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	if n < 4 {
		triangles := TriangleList{fanTriangle(points, 0, 1, 2)}
		return triangles, BuildEdgeTable(triangles)
	}

	hub := n - 1
	boundary := n - 1
	angle := [3]Point{points[0], points[hub], points[hub-1]}
	cycle = cycle && !PointInAngle(angle, points[1])

	count := boundary - 1
	if cycle {
		count = boundary
	}
	triangles := make(TriangleList, 0, count)
	for i := 0; i < count; i++ {
		triangles = append(triangles, fanTriangle(points, hub, i, CircularIndex(i+1, boundary)))
	}

	table := BuildEdgeTable(triangles)
	Legalize(triangles, table)
	return triangles, table
}

func fanTriangle(points []Point, hub, a, b int) Triangle {
	if Orientation(points[hub], points[a], points[b]) < 0 {
		a, b = b, a
	}
	return NewTriangle(points, hub, a, b)
}
