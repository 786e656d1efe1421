package internal

// Edge equality is symmetric: {a,b} == {b,a}.
func (e Edge) Equal(other Edge) bool {
	return (e[0] == other[0] && e[1] == other[1]) || (e[0] == other[1] && e[1] == other[0])
}

// Normalized form with the smaller index first, suitable as a map key.
func (e Edge) Key() Edge {
	if e[0] > e[1] {
		return Edge{e[1], e[0]}
	}
	return e
}

func NewTriangle(points []Point, a, b, c int) Triangle {
	return Triangle{
		Indices:  [3]int{a, b, c},
		Vertices: [3]Point{points[a], points[b], points[c]},
	}
}

// The three edges in winding order.
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.Indices[0], t.Indices[1]},
		{t.Indices[1], t.Indices[2]},
		{t.Indices[2], t.Indices[0]},
	}
}

func (t *Triangle) HasEdge(edge Edge) bool {
	for _, e := range t.Edges() {
		if e.Equal(edge) {
			return true
		}
	}
	return false
}

// Slot (0..2) of the vertex that is not on the edge, or -1 if the edge does not
// belong to the triangle.
func (t *Triangle) Opposite(edge Edge) int {
	if !t.HasEdge(edge) {
		return -1
	}
	for i, index := range t.Indices {
		if index != edge[0] && index != edge[1] {
			return i
		}
	}
	return -1
}

func (t *Triangle) HasIndexAtLeast(limit int) bool {
	return t.Indices[0] >= limit || t.Indices[1] >= limit || t.Indices[2] >= limit
}

// Positive for counterclockwise triangles.
func (t *Triangle) SignedArea() float64 {
	return Orientation(t.Vertices[0], t.Vertices[1], t.Vertices[2]) / 2
}

func (t *Triangle) Circumcircle() Circle {
	return CircumcircleOf(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

// Flatten into a render-ready index buffer.
func (list TriangleList) Indices() []int {
	result := make([]int, 0, len(list)*3)
	for _, tri := range list {
		result = append(result, tri.Indices[:]...)
	}
	return result
}

func (list TriangleList) SignedArea() float64 {
	var area float64
	for i := range list {
		area += list[i].SignedArea()
	}
	return area
}
