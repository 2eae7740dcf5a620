package bsplines

// Buckle sets z to src with every control point linearly interpolated
// toward the chord joining the first and last control points by factor
// (1-factor): P'_i = factor*P_i + (1-factor)*chord(i), where chord(i) is
// the point on the segment [P_0, P_{N-1}] at relative position i/(N-1). z
// may alias src; only the control points change, the knot vector and
// sizes are unaffected.
func (z *BSpline) Buckle(src *BSpline, factor float64) error {
	dim := src.dim
	nCtrlp := src.nCtrlp

	newCtrlp := make([]float64, nCtrlp*dim)
	p0, pLast := src.point(0), src.point(nCtrlp-1)
	denom := float64(nCtrlp - 1)
	for i := 0; i < nCtrlp; i++ {
		t := 0.0
		if denom > 0 {
			t = float64(i) / denom
		}
		pi := src.point(i)
		dst := newCtrlp[i*dim : (i+1)*dim]
		for c := 0; c < dim; c++ {
			chord := p0[c] + t*(pLast[c]-p0[c])
			dst[c] = factor*pi[c] + (1-factor)*chord
		}
	}
	newKnots := make([]float64, src.nKnots)
	copy(newKnots, src.knots)

	z.deg, z.order, z.dim = src.deg, src.order, src.dim
	z.nCtrlp, z.nKnots = src.nCtrlp, src.nKnots
	z.ctrlp, z.knots = newCtrlp, newKnots
	return nil
}
