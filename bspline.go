package bsplines

import (
	"math"

	"github.com/gomlx/exceptions"
)

// BSpline represents a B-spline curve of degree Degree() over points in
// R^Dim(), with NumCtrlPoints() control points and NumKnots() knots, where
// NumKnots() == NumCtrlPoints() + Order().
//
// The zero value is the "default state" described by the package: zero
// sizes, nil arrays. It is not a valid spline for any operation other than
// Free/IsZero; construct one with New.
type BSpline struct {
	deg, order int
	dim        int
	nCtrlp     int
	nKnots     int
	ctrlp      []float64 // len == nCtrlp*dim, row-major
	knots      []float64 // len == nKnots, non-decreasing
}

// KnotType selects how New fills the knot vector.
type KnotType int

const (
	// KnotsNone leaves the knot vector semantically uninitialised (zeroed);
	// the caller is expected to fill it in afterwards.
	KnotsNone KnotType = iota
	// KnotsOpened spaces knots uniformly across [0,1], including the
	// endpoints, with no boundary clamping.
	KnotsOpened
	// KnotsClamped repeats the first and last knot Order() times so the
	// curve interpolates the first and last control point.
	KnotsClamped
)

func (k KnotType) String() string {
	switch k {
	case KnotsNone:
		return "None"
	case KnotsOpened:
		return "Opened"
	case KnotsClamped:
		return "Clamped"
	default:
		return "KnotType(?)"
	}
}

// New allocates a BSpline of the given degree, dimension, and control-point
// count, and fills its knot vector per kind.
func New(deg, dim, nCtrlp int, kind KnotType) (*BSpline, error) {
	const method = "bsplines.New"
	if dim < 1 {
		return nil, wrapf(method, ErrDimZero)
	}
	if deg >= nCtrlp {
		return nil, wrapf(method, ErrDegGeNCtrlp)
	}
	if deg < 0 || deg == math.MaxInt {
		return nil, wrapf(method, ErrOverUnderflow)
	}
	order := deg + 1
	if nCtrlp < 0 || nCtrlp > math.MaxInt-order {
		return nil, wrapf(method, ErrOverUnderflow)
	}
	nKnots := nCtrlp + order

	ctrlpLen, err := sizeCheck(nCtrlp, dim)
	if err != nil {
		return nil, wrapf(method, err)
	}

	b := &BSpline{
		deg:    deg,
		order:  order,
		dim:    dim,
		nCtrlp: nCtrlp,
		nKnots: nKnots,
		ctrlp:  make([]float64, ctrlpLen),
		knots:  make([]float64, nKnots),
	}
	if err := b.SetupKnots(kind); err != nil {
		return nil, wrapf(method, err)
	}
	return b, nil
}

// sizeCheck computes n*dim, failing with ErrMalloc if the multiplication
// cannot be represented as a non-negative int -- the only "allocation
// failure" a garbage-collected runtime can be made to predict ahead of
// calling make.
func sizeCheck(n, dim int) (int, error) {
	if n < 0 || dim < 0 {
		return 0, ErrOverUnderflow
	}
	if n == 0 || dim == 0 {
		return 0, nil
	}
	size := n * dim
	if size/dim != n || size < 0 {
		return 0, ErrMalloc
	}
	return size, nil
}

// IsZero reports whether b is in the package's "default state": the state
// produced by the zero value, and the state every failure path that
// produces a distinct output resets its output to.
func (b *BSpline) IsZero() bool {
	return b == nil || (b.deg == 0 && b.order == 0 && b.dim == 0 &&
		b.nCtrlp == 0 && b.nKnots == 0 && b.ctrlp == nil && b.knots == nil)
}

// Free releases b's storage and resets it to the default state. Go's
// garbage collector reclaims the backing arrays on its own; Free exists so
// that callers porting code from a manually-managed original can call it
// unconditionally and safely, on any BSpline including the zero value.
func (b *BSpline) Free() {
	if b == nil {
		return
	}
	*b = BSpline{}
}

// reset is the internal counterpart of Free used on failure paths: it puts
// b back into the default state. Unlike Free it does not check for a nil
// receiver.
func (b *BSpline) reset() {
	*b = BSpline{}
}

// Degree returns the polynomial degree d.
func (b *BSpline) Degree() int { return b.deg }

// Order returns d+1.
func (b *BSpline) Order() int { return b.order }

// Dim returns the dimension of the ambient space the control points live in.
func (b *BSpline) Dim() int { return b.dim }

// NumCtrlPoints returns the number of control points.
func (b *BSpline) NumCtrlPoints() int { return b.nCtrlp }

// NumKnots returns the number of knots, always NumCtrlPoints()+Order().
func (b *BSpline) NumKnots() int { return b.nKnots }

// CtrlPoints returns the dense row-major control-point array
// (NumCtrlPoints()*Dim() scalars). The returned slice aliases b's storage
// and must not be modified; use Resize/Copy to obtain a mutable one.
func (b *BSpline) CtrlPoints() []float64 { return b.ctrlp }

// Knots returns the knot vector (NumKnots() scalars, non-decreasing). The
// returned slice aliases b's storage and must not be modified.
func (b *BSpline) Knots() []float64 { return b.knots }

// point returns the i-th control point as a sub-slice of ctrlp. Panics
// (via exceptions.Panicf) if i is out of range -- every caller is internal
// and expected to have already validated i against nCtrlp.
func (b *BSpline) point(i int) []float64 {
	if i < 0 || i >= b.nCtrlp {
		exceptions.Panicf("bsplines: internal: control point index %d out of range [0,%d)", i, b.nCtrlp)
	}
	return b.ctrlp[i*b.dim : (i+1)*b.dim]
}
