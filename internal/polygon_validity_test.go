package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of a simple polygon is valid. The
// polygon may wind either way. The rules are:
// 1. There are exactly n-2 triangles.
// 2. The set of indices in the triangles equals the set of polygon indices.
// 3. Every polygon edge is an edge of some triangle.
// 4. Every triangle is counterclockwise, with nonzero area.
// 5. No edge is used by more than two triangles.
// 6. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, points []Point, triangles TriangleList) {
	t.Helper()
	n := len(points)
	require.Len(t, triangles, n-2, "triangle count")

	seen := make(map[int]struct{}, n)
	multiplicity := make(map[Edge]int, 3*len(triangles))
	for i := range triangles {
		tri := &triangles[i]
		for slot, index := range tri.Indices {
			require.True(t, index >= 0 && index < n, "index %d out of range in %s", index, tri)
			require.Equal(t, points[index], tri.Vertices[slot], "cached vertex mismatch in %s", tri)
			seen[index] = struct{}{}
		}
		require.True(t, tri.SignedArea() > 0, "triangle must be counterclockwise with nonzero area: %s", tri)
		for _, edge := range tri.Edges() {
			multiplicity[edge.Key()]++
		}
	}
	require.Len(t, seen, n, "set of indices in the triangles must equal the set of polygon indices")

	for edge, count := range multiplicity {
		require.LessOrEqual(t, count, 2, "edge %v used by %d triangles", edge, count)
	}
	for i := 0; i < n; i++ {
		edge := Edge{i, CircularIndex(i+1, n)}.Key()
		require.Contains(t, multiplicity, edge, "polygon edge %v is not in the set of triangle edges", edge)
	}

	require.InDelta(t, math.Abs(Polygon{points}.SignedArea()), triangles.SignedArea(), Tolerance,
		"sum of the areas of all triangles is equal to the area of the polygon")
}

// Check that every interior edge of the table passes the empty circumcircle
// test, with the same margin the flip uses.
func assertLocallyDelaunay(t *testing.T, triangles TriangleList, table *EdgeTable) {
	t.Helper()
	for _, record := range table.Edges {
		if record.Triangles[1] == NoTriangle {
			continue
		}
		first, second := &triangles[record.Triangles[0]], &triangles[record.Triangles[1]]
		o := second.Opposite(record.Edge)
		require.GreaterOrEqual(t, o, 0, "edge %v does not belong to %s", record.Edge, second)
		assert.False(t, first.Circumcircle().StrictlyContains(second.Vertices[o]),
			"edge %v is illegal between %s and %s", record.Edge, first, second)
	}
}

// Check that the table agrees with a table rebuilt from the triangles.
func assertTableConsistent(t *testing.T, triangles TriangleList, table *EdgeTable) {
	t.Helper()
	rebuilt := BuildEdgeTable(triangles)
	require.Equal(t, rebuilt.Len(), table.Len())
	for _, record := range table.Edges {
		slot := rebuilt.Find(record.Edge)
		require.GreaterOrEqual(t, slot, 0, "edge %v does not exist in the triangles", record.Edge)
		expected := rebuilt.Edges[slot].Triangles
		assert.ElementsMatch(t, expected[:], record.Triangles[:], "owners of edge %v", record.Edge)
	}
}

func triangleContains(tri *Triangle, p Point) bool {
	a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
	return Orientation(a, b, p) >= 0 && Orientation(b, c, p) >= 0 && Orientation(c, a, p) >= 0
}

// Sample a grid over the padded bounding box and check that every sample is
// covered by the triangles exactly when it is inside the polygon. The grid is
// offset by an irrational-ish amount so samples never land on the integer
// coordinates fixtures are drawn with.
func validateTrianglesBySampling(t *testing.T, triangles TriangleList, points []Point) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.3183

	polygon := Polygon{points}
	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			covered := false
			for i := range triangles {
				if triangleContains(&triangles[i], p) {
					covered = true
					break
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, covered, "point %v should be covered by a triangle", p)
			} else {
				assert.False(t, covered, "point %v should not be covered by any triangle", p)
			}
		}
	}
}
