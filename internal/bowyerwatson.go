package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

// SuperTriangleScale multiplies the bounding box diagonal to get the distance
// from the box center to each super triangle vertex. The circle test only uses
// the super vertices for their direction from the center, so the scale just
// has to keep every input point strictly inside.
const SuperTriangleScale = 10

// Incremental Delaunay triangulation of an unordered point set. Points are
// inserted in input order. For each one, every triangle whose circumcircle
// contains it is removed, and the cavity left behind is filled by joining its
// boundary edges to the new point. Triangles touching the super triangle are
// dropped at the end, so no index in the result is >= len(points).
//
// The super vertices behave as if they were infinitely far away, so the
// result covers the whole convex hull.
//
// Exact duplicates of an earlier point are not inserted. Fewer than three
// points yield nothing.
func BowyerWatson(points []Point) TriangleList {
	m := len(points)
	if m < 3 {
		return nil
	}

	// Private working buffer: the input plus the three super triangle vertices
	super := superTriangle(points)
	work := make([]Point, m, m+3)
	copy(work, points)
	work = append(work, super[:]...)
	circles := superCircles{
		work:   work,
		first:  m,
		center: r2.RectFromPoints(points...).Center(),
	}

	superTri := NewTriangle(work, m, m+1, m+2)
	superTri.IsExterior = true
	triangles := NewArray[Triangle](2*m + 1)
	triangles.Append(superTri)

	seen := make(map[Point]struct{}, m)
	for i := 0; i < m; i++ {
		p := work[i]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		bad := NewArray[Triangle](8)
		for j := 0; j < triangles.Len(); j++ {
			tri := triangles.At(j)
			if circles.contains(tri, p) {
				tri.IsBad = true
				bad.Append(*tri)
			}
		}
		if bad.Len() == 0 {
			fatalf("point %d %v is not inside any circumcircle", i, p)
		}
		triangles = triangles.Filter(func(tri Triangle) bool { return !tri.IsBad })

		for _, edge := range cavityBoundary(bad).Slice() {
			tri := NewTriangle(work, edge[0], edge[1], i)
			tri.IsExterior = tri.HasIndexAtLeast(m)
			triangles.Append(tri)
		}
	}

	return TriangleList(triangles.Filter(func(tri Triangle) bool { return !tri.IsExterior }).Slice())
}

// Closed circumcircle test with the super vertices taken to infinity along
// their direction from center. Indices >= first are super vertices.
//
//   - No super vertex: the ordinary circle.
//   - One: the circle becomes the open half-plane on the super vertex's side of
//     the real edge, plus the inside of that edge.
//   - Two: the open half-plane through the real vertex, facing away from the
//     third super vertex.
//   - Three: the whole plane.
type superCircles struct {
	work   []Point
	first  int
	center Point
}

func (s superCircles) contains(tri *Triangle, p Point) bool {
	var finite, super [3]int
	nFinite, nSuper := 0, 0
	for _, index := range tri.Indices {
		if index >= s.first {
			super[nSuper] = index
			nSuper++
		} else {
			finite[nFinite] = index
			nFinite++
		}
	}

	switch nSuper {
	case 0:
		return tri.Circumcircle().Contains(p)
	case 1:
		a, b := s.work[finite[0]], s.work[finite[1]]
		side := b.Sub(a).Cross(s.direction(super[0]))
		if side == 0 {
			side = Orientation(a, b, s.work[super[0]])
		}
		o := Orientation(a, b, p)
		if o == 0 {
			return p.Sub(a).Dot(b.Sub(a)) > 0 && p.Sub(b).Dot(a.Sub(b)) > 0
		}
		return o*side > 0
	case 2:
		// Super indices are first, first+1 and first+2
		third := 3*s.first + 3 - super[0] - super[1]
		return p.Sub(s.work[finite[0]]).Dot(s.direction(third)) < 0
	default:
		return true
	}
}

func (s superCircles) direction(index int) Point {
	return s.work[index].Sub(s.center)
}

// Edges that belong to exactly one bad triangle, deduplicated.
func cavityBoundary(bad *Array[Triangle]) *Array[Edge] {
	edges := NewArray[Edge](bad.Len() * 3)
	for j := 0; j < bad.Len(); j++ {
		tri := bad.At(j)
		for _, edge := range tri.Edges() {
			if !isEdgeSharedByAnyOther(bad, edge, j) {
				edges.Append(edge)
			}
		}
	}
	return edges.Deduplicate(Edge.Equal)
}

func isEdgeSharedByAnyOther(triangles *Array[Triangle], edge Edge, except int) bool {
	for k := 0; k < triangles.Len(); k++ {
		if k != except && triangles.At(k).HasEdge(edge) {
			return true
		}
	}
	return false
}

// Equilateral triangle around the bounding box center, counterclockwise, with
// its vertices at 120 degree spacing.
func superTriangle(points []Point) [3]Point {
	bounds := r2.RectFromPoints(points...)
	center := bounds.Center()
	radius := bounds.Size().Norm()
	if radius == 0 {
		radius = 1
	}
	radius *= SuperTriangleScale

	halfRoot3 := math.Sqrt(3) / 2
	return [3]Point{
		{X: center.X + halfRoot3*radius, Y: center.Y - radius/2},
		{X: center.X, Y: center.Y + radius},
		{X: center.X - halfRoot3*radius, Y: center.Y - radius/2},
	}
}
