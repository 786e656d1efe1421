package internal

// A closed ring of points. The last point connects back to the first.
type Polygon struct {
	Points []Point
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(next)
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Even-odd point-in-polygon. This is provided primarily for validating
// triangulations by sampling.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return PointInPolygon(poly.Points, p)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Check every pair of non-adjacent edges for an intersection. Returns the
// first offending pair of edges, identified by their start vertex, or (-1, -1)
// when the ring is simple.
func (poly Polygon) FindSelfIntersection() (int, int) {
	n := len(poly.Points)
	segment := func(i int) [2]Point {
		return [2]Point{poly.Points[i], poly.Points[CircularIndex(i+1, n)]}
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			// The first and last edges share vertex 0
			if i == 0 && j == n-1 {
				continue
			}
			if SegmentsIntersect(segment(i), segment(j)) {
				return i, j
			}
		}
	}
	return -1, -1
}
