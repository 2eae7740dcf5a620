package bsplines

import "math"

// Tolerance configures the combined absolute/relative policy used to
// compare knot parameters for equality. Spline parameters span [0,1], so an
// absolute epsilon dominates near zero while a relative epsilon absorbs
// accumulated floating-point drift further from it.
//
// The zero value is not usable; use DefaultTolerance or construct one with
// both fields set to a positive value.
type Tolerance struct {
	AbsEps float64
	RelEps float64
}

// DefaultTolerance is the tolerance policy used whenever an operation does
// not take an explicit Tolerance argument.
var DefaultTolerance = Tolerance{
	AbsEps: 1e-9,
	RelEps: 1e-9,
}

// ApproxEqual reports whether x and y are equal within t: true iff their
// absolute difference is at most AbsEps, or their relative error against
// the larger-magnitude operand is at most RelEps.
func (t Tolerance) ApproxEqual(x, y float64) bool {
	diff := math.Abs(x - y)
	if diff <= t.AbsEps {
		return true
	}
	largest := math.Max(math.Abs(x), math.Abs(y))
	if largest == 0 {
		return true
	}
	return diff/largest <= t.RelEps
}

// fequals is the package-internal float comparison, always using
// DefaultTolerance. It is used wherever knot parameters are compared
// inside the kernel; callers who need a different policy should use
// Tolerance.ApproxEqual directly (e.g. via BSpline.Equals).
func fequals(x, y float64) bool {
	return DefaultTolerance.ApproxEqual(x, y)
}
