package bsplines

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the public surface of this package. Callers
// MUST branch on these with errors.Is; messages are not part of the
// contract and may gain context via wrapf without losing identity.
var (
	// ErrDimZero is returned by New when dim < 1.
	ErrDimZero = errors.New("bsplines: dim must be >= 1")

	// ErrDegGeNCtrlp is returned when an operation would leave (or start
	// with) n_ctrlp <= deg, violating the spline invariant.
	ErrDegGeNCtrlp = errors.New("bsplines: degree must be less than the number of control points")

	// ErrOverUnderflow is returned when signed size arithmetic on control
	// point / knot counts does not agree with the sign of a requested delta,
	// or a size computation cannot be represented as a non-negative int.
	ErrOverUnderflow = errors.New("bsplines: size arithmetic overflowed or underflowed")

	// ErrMalloc is returned when a size computation for a control-point or
	// knot buffer cannot be satisfied (e.g. overflows int before an
	// allocation would even be attempted).
	ErrMalloc = errors.New("bsplines: allocation failed")

	// ErrUndefinedParameter is returned by Evaluate when u falls outside the
	// spline's evaluable domain.
	ErrUndefinedParameter = errors.New("bsplines: u is outside the evaluable domain")

	// ErrMultiplicity is returned when a knot-multiplicity constraint is
	// violated (s > order before insertion, or s+n > order after).
	ErrMultiplicity = errors.New("bsplines: multiplicity constraint violated")

	// ErrInputEqOutput is returned by operations that forbid aliasing the
	// source and destination spline (currently only Copy).
	ErrInputEqOutput = errors.New("bsplines: input and output must not alias")
)

// wrapf adds method context to an error while preserving its identity for
// errors.Is. It mirrors the pattern used for sentinel errors across the
// wider B-spline/graph tooling this package grew out of: never stringify a
// sentinel, always wrap it.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
