// A small 2D triangulation package for Go.
//
// Three entry points are provided: ear clipping of a simple polygon (with
// optional Delaunay legalization), Bowyer-Watson Delaunay triangulation of an
// unordered point set, and a fan around a hub point. All of them return a flat
// index buffer with three entries per counterclockwise triangle, indexing into
// the caller's points, which are never modified or reordered.
package triangulate

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xide/triangulate/advanced"
	"go.uber.org/zap"
)

type Point = advanced.Point

var (
	ErrMalformedPolygon = advanced.ErrMalformedPolygon
	ErrSelfIntersecting = advanced.ErrSelfIntersecting
	ErrInvalidEdgeTable = advanced.ErrInvalidEdgeTable
	ErrUnknownMode      = errors.New("unknown mode")
)

type Mode int

const (
	EarClipping Mode = iota
	BowyerWatson
	Fan
)

var modeNames = map[Mode]string{
	EarClipping:  "earclip",
	BowyerWatson: "delaunay",
	Fan:          "radial",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode accepts the names printed by Mode.String, case insensitively.
func ParseMode(name string) (Mode, error) {
	for mode, modeName := range modeNames {
		if strings.EqualFold(name, modeName) {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", name)
}

// Triangulate dispatches to EarClip, Delaunay or Radial.
func Triangulate(mode Mode, points []Point, opts ...Option) ([]int, error) {
	switch mode {
	case EarClipping:
		return EarClip(points, opts...)
	case BowyerWatson:
		return Delaunay(points, opts...)
	case Fan:
		return Radial(points, opts...)
	}
	return nil, errors.Wrapf(ErrUnknownMode, "%d", int(mode))
}

// EarClip triangulates a simple polygon, given in either winding, into
// len(points)-2 triangles. Unless disabled with WithLegalization(false), the
// result is then flipped until every interior edge is locally Delaunay, which
// never changes the polygon boundary.
//
// Fewer than three points give an empty result. A polygon that runs out of
// ears fails with ErrMalformedPolygon.
func EarClip(points []Point, opts ...Option) ([]int, error) {
	o := applyOptions(opts)
	if o.checkSimple {
		if err := advanced.CheckSimple(points); err != nil {
			return nil, err
		}
	}

	triangles, table, err := advanced.EarClip(points)
	if err != nil {
		return nil, errors.WithMessage(err, "ear clipping")
	}
	o.logger.Debug("ear clipped", zap.Int("points", len(points)), zap.Int("triangles", len(triangles)))

	if o.legalize {
		flips, err := advanced.Legalize(triangles, table)
		if err != nil {
			return nil, errors.WithMessage(err, "legalizing")
		}
		o.logger.Debug("legalized", zap.Int("flips", flips))
	}
	return triangles.Indices(), nil
}

// Delaunay triangulates an unordered point set. Exact duplicates of earlier
// points are skipped, and fewer than three points give an empty result.
func Delaunay(points []Point, opts ...Option) ([]int, error) {
	o := applyOptions(opts)
	triangles, err := advanced.BowyerWatson(points)
	if err != nil {
		return nil, errors.WithMessage(err, "bowyer-watson")
	}
	o.logger.Debug("delaunay",
		zap.Int("points", len(points)),
		zap.Int("duplicates", countDuplicates(points)),
		zap.Int("triangles", len(triangles)))
	return triangles.Indices(), nil
}

// Radial fans out from the last point, which must see every other point in
// order, and legalizes the result. See WithCycle for closing the fan.
func Radial(points []Point, opts ...Option) ([]int, error) {
	o := applyOptions(opts)
	triangles, _, err := advanced.Radial(points, o.cycle)
	if err != nil {
		return nil, errors.WithMessage(err, "radial")
	}
	o.logger.Debug("radial", zap.Int("points", len(points)), zap.Int("triangles", len(triangles)), zap.Bool("cycle", o.cycle))
	return triangles.Indices(), nil
}

func countDuplicates(points []Point) int {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(points) - len(seen)
}
