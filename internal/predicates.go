package internal

import "math"

// Signed cross product of (p1-o) and (p2-o). Positive means p2 is a left turn
// from the ray o->p1, and the magnitude is twice the area of the triangle.
func Orientation(o, p1, p2 Point) float64 {
	return p1.Sub(o).Cross(p2.Sub(o))
}

// Open containment test for a triangle. The middle vertex is the hub; s1 and s2
// are the weights of p toward the two outer vertices, scaled by the span s0.
// Points on an edge, or within Epsilon of the far edge, are outside.
func PointInTriangle(tri [3]Point, p Point) bool {
	o := tri[1]
	s0 := Orientation(o, tri[0], tri[2])
	s1 := Orientation(o, tri[0], p)
	s2 := Orientation(o, tri[2], p)
	if s0 < 0 {
		s0, s1, s2 = -s0, -s1, -s2
	}
	// With both weights positive, s1-s2 > 0 already holds
	if s1 <= 0 || s2 >= 0 {
		return false
	}
	return s1-s2 < s0-Epsilon
}

// Is p inside the wedge spanned by the rays angle[1]->angle[0] and
// angle[1]->angle[2] (or the opposite wedge)?
func PointInAngle(angle [3]Point, p Point) bool {
	a := Orientation(angle[1], angle[0], p)
	b := Orientation(angle[1], angle[2], p)
	return a*b <= 0
}

// Is p left of the segment, within the segment's y span? Horizontal segments
// never count. The span is half-open so that a ray through a shared vertex is
// only counted once.
func PointLeftOfSegment(seg [2]Point, p Point) bool {
	a, b := seg[0], seg[1]
	if a.Y == b.Y {
		return false
	}
	if (p.Y < a.Y) == (p.Y < b.Y) {
		return false
	}
	x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return x > p.X
}

// Even-odd rule over every edge of the closed ring.
func PointInPolygon(points []Point, p Point) bool {
	crossings := 0
	for i, vertex := range points {
		next := points[CircularIndex(i+1, len(points))]
		if PointLeftOfSegment([2]Point{vertex, next}, p) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Proper or improper intersection of the closed segments l1 and l2. Touching
// endpoints count. The bounding box check rejects collinear segments that lie
// on the same line but do not overlap.
func SegmentsIntersect(l1, l2 [2]Point) bool {
	if math.Max(l1[0].X, l1[1].X) < math.Min(l2[0].X, l2[1].X) ||
		math.Max(l2[0].X, l2[1].X) < math.Min(l1[0].X, l1[1].X) ||
		math.Max(l1[0].Y, l1[1].Y) < math.Min(l2[0].Y, l2[1].Y) ||
		math.Max(l2[0].Y, l2[1].Y) < math.Min(l1[0].Y, l1[1].Y) {
		return false
	}
	acad := Orientation(l1[0], l2[0], l2[1])
	bcbd := Orientation(l1[1], l2[0], l2[1])
	cacb := Orientation(l2[0], l1[0], l1[1])
	dadb := Orientation(l2[1], l1[0], l1[1])
	return acad*bcbd <= 0 && cacb*dadb <= 0
}

// Circle through three points, from the perpendicular bisectors of (a, b) and
// (b, c). Collinear points give an infinite radius, which no containment test
// accepts.
func CircumcircleOf(a, b, c Point) Circle {
	a1 := 2 * (b.X - a.X)
	a2 := 2 * (c.X - b.X)
	b1 := 2 * (b.Y - a.Y)
	b2 := 2 * (c.Y - b.Y)
	c1 := square(b.X) - square(a.X) + square(b.Y) - square(a.Y)
	c2 := square(c.X) - square(b.X) + square(c.Y) - square(b.Y)
	delta := a1*b2 - a2*b1
	if math.Abs(delta) < DegenerateEpsilon {
		return Circle{Radius: math.Inf(1)}
	}
	center := Point{
		X: (c1*b2 - c2*b1) / delta,
		Y: (a1*c2 - a2*c1) / delta,
	}
	return Circle{Center: center, Radius: a.Sub(center).Norm()}
}

// Closed containment, used for Bowyer-Watson cavity detection.
func (c Circle) Contains(p Point) bool {
	if math.IsInf(c.Radius, 1) {
		return false
	}
	return p.Sub(c.Center).Norm() <= c.Radius
}

// Containment with an Epsilon margin, used by the Lawson flip.
func (c Circle) StrictlyContains(p Point) bool {
	if math.IsInf(c.Radius, 1) {
		return false
	}
	return p.Sub(c.Center).Norm() < c.Radius-Epsilon
}
