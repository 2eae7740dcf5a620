package bsplines

// SetupKnots (re)fills b's knot vector in place according to kind. The
// backing array is already sized NumKnots() and is not reallocated.
//
//   - KnotsNone zeroes the vector; the caller is expected to fill it in.
//   - KnotsOpened spaces knots[i] = i/(NumKnots()-1) uniformly over [0,1].
//   - KnotsClamped repeats 0 and 1 Order() times at the ends and spaces the
//     interior knots uniformly using denominator NumKnots()-2*Degree()-1.
func (b *BSpline) SetupKnots(kind KnotType) error {
	switch kind {
	case KnotsNone:
		for i := range b.knots {
			b.knots[i] = 0
		}
	case KnotsOpened:
		denom := float64(b.nKnots - 1)
		for i := range b.knots {
			b.knots[i] = float64(i) / denom
		}
	case KnotsClamped:
		order := b.order
		for i := 0; i < order; i++ {
			b.knots[i] = 0
			b.knots[b.nKnots-1-i] = 1
		}
		denom := float64(b.nKnots - 2*b.deg - 1)
		for i := order; i < b.nKnots-order; i++ {
			numerator := float64(i - order + 1)
			b.knots[i] = numerator / denom
		}
	}
	return nil
}
