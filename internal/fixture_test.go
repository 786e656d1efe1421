package internal

import (
	"embed"
	"log"
	"math"

	"github.com/xide/triangulate/internal/svgpoly"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds a single polygon. Unlike the generated shapes below, the winding
// is left as drawn, so some fixtures are clockwise.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := svgpoly.Parse(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	return polygons[0]
}

var fixtureNames = []string{"comb", "zigzag", "arch", "spiral"}

// Some ad hoc code specified fixtures

func UnitSquare() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func RegularPolygon(n int, radius float64) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Long diagonal from 0 to 2, short one from 1 to 3. Only the short one is
// Delaunay.
func FlatRhombus() []Point {
	return []Point{{X: -2, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 1}}
}

func Bowtie() []Point {
	return []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
}
