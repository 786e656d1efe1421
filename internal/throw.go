package internal

import "github.com/pkg/errors"

// Threading errors up and down the ear bookkeeping and the flip loop would add
// a lot of noise. Instead, we panic with a TriangulateError, and the public API
// recovers to convert it to an error.

var (
	ErrMalformedPolygon = errors.New("malformed polygon")
	ErrSelfIntersecting = errors.New("self-intersecting polygon")
	ErrInvalidEdgeTable = errors.New("invalid edge table")
)

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping one of the sentinel errors.
func throw(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
