package internal

import "github.com/golang/geo/r2"

// Points are plain values. Vertices are identified by their position in the
// caller's slice, never by address, so the caller keeps ownership of the
// coordinates and we never reorder them.
type Point = r2.Point

// An unordered pair of vertex indices. The stored order is kept because
// triangles care about winding, but equality ignores it.
type Edge [2]int

// NoTriangle marks the empty owner slot of a boundary edge.
const NoTriangle = -1

type Triangle struct {
	Indices  [3]int
	Vertices [3]Point
	// Only meaningful while Bowyer-Watson is running.
	IsBad      bool
	IsExterior bool
}

type TriangleList []Triangle

type Circle struct {
	Center Point
	Radius float64
}

// Vertex neighbor info. Each polygon vertex gets one of these while ear
// clipping runs. Left and Right are the neighbors in the shrinking ring.
type VNI struct {
	Left, Right int
	Index       int
	IsConvex    bool
	Retired     bool
	// Number of ring vertices strictly inside the triangle (Left, Index, Right)
	InnerCount int
}

// An edge annotated with the triangles that own it. Boundary edges have
// Triangles[1] == NoTriangle.
type SharedEdge struct {
	Edge      Edge
	Triangles [2]int
}
