package bsplines

// Equals reports whether b and other are structurally equal: the same
// scalar attributes, and every control-point scalar and knot equal within
// tol. Scan order does not affect the result; elements are compared by
// index.
func (b *BSpline) Equals(other *BSpline, tol Tolerance) bool {
	if b.deg != other.deg || b.order != other.order || b.dim != other.dim ||
		b.nCtrlp != other.nCtrlp || b.nKnots != other.nKnots {
		return false
	}
	for i := range b.ctrlp {
		if !tol.ApproxEqual(b.ctrlp[i], other.ctrlp[i]) {
			return false
		}
	}
	for i := range b.knots {
		if !tol.ApproxEqual(b.knots[i], other.knots[i]) {
			return false
		}
	}
	return true
}
