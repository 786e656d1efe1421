package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	o := Point{X: 0, Y: 0}
	assert.InDelta(t, 1.0, Orientation(o, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}), Tolerance)
	assert.InDelta(t, -1.0, Orientation(o, Point{X: 0, Y: 1}, Point{X: 1, Y: 0}), Tolerance)
	assert.Zero(t, Orientation(o, Point{X: 1, Y: 1}, Point{X: 2, Y: 2}))
}

func TestPointInTriangle(t *testing.T) {
	tri := [3]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	reversed := [3]Point{tri[2], tri[1], tri[0]}

	cases := []struct {
		name   string
		p      Point
		inside bool
	}{
		{"interior", Point{X: 1, Y: 1}, true},
		{"near hypotenuse", Point{X: 1.9, Y: 1.9}, true},
		{"on hypotenuse", Point{X: 2, Y: 2}, false},
		{"on leg", Point{X: 2, Y: 0}, false},
		{"vertex", Point{X: 4, Y: 0}, false},
		{"outside beyond hypotenuse", Point{X: 3, Y: 3}, false},
		// Inside the slab parallel to the far edge, but not the triangle
		{"inside slab only", Point{X: 3, Y: -1}, false},
		{"behind hub", Point{X: -1, Y: -1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.inside, PointInTriangle(tri, c.p))
			assert.Equal(t, c.inside, PointInTriangle(reversed, c.p), "winding must not matter")
		})
	}
}

func TestPointInAngle(t *testing.T) {
	angle := [3]Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	assert.True(t, PointInAngle(angle, Point{X: 1, Y: 1}))
	assert.True(t, PointInAngle(angle, Point{X: -1, Y: -1}), "opposite wedge counts too")
	assert.False(t, PointInAngle(angle, Point{X: -1, Y: 1}))
	assert.True(t, PointInAngle(angle, Point{X: 2, Y: 0}), "on a ray")
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	assert.True(t, PointInPolygon(square, Point{X: 1, Y: 1}))
	assert.False(t, PointInPolygon(square, Point{X: 3, Y: 1}))
	assert.False(t, PointInPolygon(square, Point{X: -1, Y: 1}))
	assert.False(t, PointInPolygon(square, Point{X: 1, Y: 3}))

	// The ray from this point passes exactly through the vertex of the notch
	notched := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}
	assert.True(t, PointInPolygon(notched, Point{X: 0.5, Y: 2}))
	assert.False(t, PointInPolygon(notched, Point{X: 2, Y: 3}))
}

func TestSegmentsIntersect(t *testing.T) {
	seg := func(x1, y1, x2, y2 float64) [2]Point {
		return [2]Point{{X: x1, Y: y1}, {X: x2, Y: y2}}
	}
	assert.True(t, SegmentsIntersect(seg(0, 0, 2, 2), seg(0, 2, 2, 0)), "proper crossing")
	assert.True(t, SegmentsIntersect(seg(0, 0, 2, 0), seg(2, 0, 3, 1)), "shared endpoint")
	assert.True(t, SegmentsIntersect(seg(0, 0, 2, 0), seg(1, 0, 1, 1)), "T junction")
	assert.False(t, SegmentsIntersect(seg(0, 0, 1, 0), seg(0, 1, 1, 1)), "parallel")
	assert.False(t, SegmentsIntersect(seg(0, 0, 1, 0), seg(2, 0, 3, 0)), "collinear and disjoint")
	assert.True(t, SegmentsIntersect(seg(0, 0, 2, 0), seg(1, 0, 3, 0)), "collinear overlap")
}

func TestCircumcircle(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		c := CircumcircleOf(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0, Y: 2})
		assert.InDelta(t, 1.0, c.Center.X, Tolerance)
		assert.InDelta(t, 1.0, c.Center.Y, Tolerance)
		assert.InDelta(t, math.Sqrt2, c.Radius, Tolerance)
	})

	t.Run("every vertex lies on the circle", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			angle := float64(i)
			a := Point{X: 3 + 5*math.Cos(angle), Y: -2 + 5*math.Sin(angle)}
			b := Point{X: 3 + 5*math.Cos(angle+2), Y: -2 + 5*math.Sin(angle+2)}
			c := Point{X: 3 + 5*math.Cos(angle+4.5), Y: -2 + 5*math.Sin(angle+4.5)}
			circle := CircumcircleOf(a, b, c)
			assert.InDelta(t, 5.0, circle.Radius, Tolerance, fmt.Sprintf("iteration %d", i))
			assert.InDelta(t, 3.0, circle.Center.X, Tolerance)
			assert.InDelta(t, -2.0, circle.Center.Y, Tolerance)
		}
	})

	t.Run("collinear is infinite", func(t *testing.T) {
		c := CircumcircleOf(Point{X: 0, Y: 0}, Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
		assert.True(t, math.IsInf(c.Radius, 1))
		assert.False(t, c.Contains(Point{X: 1, Y: 0}))
		assert.False(t, c.StrictlyContains(Point{X: 1, Y: 0}))
	})

	t.Run("contains", func(t *testing.T) {
		c := Circle{Center: Point{X: 0, Y: 0}, Radius: 1}
		assert.True(t, c.Contains(Point{X: 1, Y: 0}), "closed test accepts the boundary")
		assert.False(t, c.StrictlyContains(Point{X: 1, Y: 0}), "strict test rejects the boundary")
		assert.True(t, c.StrictlyContains(Point{X: 0.5, Y: 0}))
		assert.False(t, c.Contains(Point{X: 1.1, Y: 0}))
	})
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestPolygon(t *testing.T) {
	square := Polygon{[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}
	assert.InDelta(t, 1.0, square.SignedArea(), Tolerance)
	assert.True(t, square.IsCCW())
	assert.InDelta(t, -1.0, square.Reverse().SignedArea(), Tolerance)
	assert.False(t, square.Reverse().IsCCW())

	i, j := square.FindSelfIntersection()
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)

	bowtie := Polygon{[]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}}
	i, j = bowtie.FindSelfIntersection()
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)
}
