// Package advanced exposes the working structures behind the triangulate
// package: triangle buffers with cached vertices, the shared edge table, ear
// descriptors and the geometric predicates. Use it when you need more than a
// flat index buffer, e.g. to legalize a triangulation you built yourself.
package advanced

import "github.com/xide/triangulate/internal"

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type TriangleList = internal.TriangleList
type Circle = internal.Circle
type SharedEdge = internal.SharedEdge
type EdgeTable = internal.EdgeTable
type VNI = internal.VNI
type Polygon = internal.Polygon
type TriangulateError = internal.TriangulateError

const NoTriangle = internal.NoTriangle

var (
	ErrMalformedPolygon = internal.ErrMalformedPolygon
	ErrSelfIntersecting = internal.ErrSelfIntersecting
	ErrInvalidEdgeTable = internal.ErrInvalidEdgeTable
)

// Predicates
var (
	Orientation        = internal.Orientation
	PointInTriangle    = internal.PointInTriangle
	PointInAngle       = internal.PointInAngle
	PointLeftOfSegment = internal.PointLeftOfSegment
	PointInPolygon     = internal.PointInPolygon
	SegmentsIntersect  = internal.SegmentsIntersect
	CircumcircleOf     = internal.CircumcircleOf
)

func HandleTriangulatePanicRecover(r interface{}) error {
	return internal.HandleTriangulatePanicRecover(r)
}

// Ear clip a simple polygon of either winding. The returned table is the one
// built while clipping, ready to be passed to Legalize.
func EarClip(points []Point) (triangles TriangleList, table *EdgeTable, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			triangles, table, err = nil, nil, recoveredErr
		}
	}()
	triangles, table = internal.EarClip(points)
	return triangles, table, nil
}

// Returns ErrSelfIntersecting (wrapped) if two non-adjacent edges of the
// polygon touch.
func CheckSimple(points []Point) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	internal.CheckSimple(points)
	return nil
}

// Delaunay triangulation of an unordered point set. Duplicate points are
// skipped.
func BowyerWatson(points []Point) (triangles TriangleList, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			triangles, err = nil, recoveredErr
		}
	}()
	return internal.BowyerWatson(points), nil
}

// Fan around the last point, then legalize.
func Radial(points []Point, cycle bool) (triangles TriangleList, table *EdgeTable, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			triangles, table, err = nil, nil, recoveredErr
		}
	}()
	triangles, table = internal.Radial(points, cycle)
	return triangles, table, nil
}

// Flip illegal edges until the triangulation is locally Delaunay. The triangles
// and table are updated in place. Returns the number of flips.
func Legalize(triangles TriangleList, table *EdgeTable) (flips int, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.Legalize(triangles, table), nil
}

// Build the shared edge table of a triangle buffer. Fails with
// ErrInvalidEdgeTable if an edge is used by more than two triangles.
func BuildEdgeTable(triangles TriangleList) (table *EdgeTable, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			table, err = nil, recoveredErr
		}
	}()
	return internal.BuildEdgeTable(triangles), nil
}

func BuildVNIs(points []Point) []VNI {
	return internal.BuildVNIs(points)
}

func NewTriangle(points []Point, a, b, c int) Triangle {
	return internal.NewTriangle(points, a, b, c)
}
