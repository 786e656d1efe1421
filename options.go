package triangulate

import "go.uber.org/zap"

// Option configures a single triangulation call.
//
// Example:
//
//	indices, err := triangulate.EarClip(points, triangulate.WithLegalization(false))
type Option func(*options)

type options struct {
	legalize    bool
	cycle       bool
	checkSimple bool
	logger      *zap.Logger
}

func defaultOptions() options {
	return options{
		legalize: true,
		logger:   zap.NewNop(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLegalization controls whether ear clipping output is flipped into a
// constrained Delaunay triangulation. On by default. The radial mode always
// legalizes.
func WithLegalization(legalize bool) Option {
	return func(o *options) {
		o.legalize = legalize
	}
}

// WithCycle asks the radial mode to close the fan with a triangle from the
// last boundary vertex back to the first. The closing triangle is still
// skipped if it would overlap the first one. Off by default.
func WithCycle(cycle bool) Option {
	return func(o *options) {
		o.cycle = cycle
	}
}

// WithSimplicityCheck makes ear clipping reject self-intersecting polygons up
// front with ErrSelfIntersecting. This costs O(n²), so it is off by default;
// without it, most self-intersecting input fails later with
// ErrMalformedPolygon.
func WithSimplicityCheck(check bool) Option {
	return func(o *options) {
		o.checkSimple = check
	}
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
