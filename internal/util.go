package internal

import "math"

// Tolerance is used for plain float equality, mostly when comparing areas.
const Tolerance = 1e-6

// Epsilon is the boundary margin shared by the point-in-triangle test and the
// Lawson flip test. A vertex has to be this far inside before it counts, which
// keeps co-circular and collinear configurations from flipping back and forth.
const Epsilon = 1e-9

// DegenerateEpsilon is the smallest circumcircle determinant we still solve.
// Anything below it is a collinear triangle with an infinite circumcircle.
const DegenerateEpsilon = 1e-12

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func square(x float64) float64 {
	return x * x
}
