// Package svgpoly reads polygon outlines out of SVG documents. This is not a
// full (or even correct) SVG reader: it only looks at the points attribute of
// <polygon> elements and ignores transforms, styles and every other shape.
package svgpoly

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

var ErrNoPolygons = errors.New("no polygons found")

// Parse returns the points of every <polygon> element, in document order.
func Parse(r io.Reader) ([][]r2.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, ErrNoPolygons
	}

	polygons := make([][]r2.Point, 0, len(elements))
	for i, el := range elements {
		points, err := ParsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// ParsePoints parses a points attribute. Coordinates may be separated by
// commas, whitespace or both, e.g. "0,0 1,0 1,1" or "0 0, 1 0, 1 1".
func ParsePoints(attr string) ([]r2.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]r2.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	return points, nil
}
