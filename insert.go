package bsplines

import "github.com/gomlx/exceptions"

// insertKnotFromNet is Böhm's algorithm: it splices n copies of net.U()
// into src's knot vector at net.K()+1, rebuilding the control points from
// the de Boor net that was computed for that same u, and writes the result
// into z (which may alias src).
func insertKnotFromNet(method string, z, src *BSpline, net *DeBoorNet, n int) error {
	if n < 0 {
		if z != src {
			z.reset()
		}
		return wrapf(method, ErrOverUnderflow)
	}
	if net.s+n > src.order {
		if z != src {
			z.reset()
		}
		return wrapf(method, ErrMultiplicity)
	}
	if n == 0 {
		return z.Resize(src, 0, true)
	}
	// n >= 1 and s+n <= order together imply s <= deg, i.e. net must have
	// come from the regular recursive evaluation, never the full-
	// multiplicity classification.
	if net.copiedPts != 0 {
		exceptions.Panicf("bsplines: internal: insertKnotFromNet called on a net with PointsCopied=%d, want a regular (s<=deg) net", net.copiedPts)
	}

	newNCtrlp, err := checkedAdd(src.nCtrlp, n)
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}
	newNKnots, err := checkedAdd(src.nKnots, n)
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}
	ctrlpLen, err := sizeCheck(newNCtrlp, src.dim)
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}

	dim := src.dim
	N := net.h + 1
	k := net.k
	cidx := k - src.deg + N
	kidx := k + 1
	prefixPts := k - src.deg

	newCtrlp := make([]float64, ctrlpLen)
	copy(newCtrlp[:prefixPts*dim], src.ctrlp[:prefixPts*dim])
	copy(newCtrlp[(cidx+n)*dim:], src.ctrlp[cidx*dim:])

	// Left edge: the n leftmost-column points, shallowest first.
	for j := 0; j < n; j++ {
		copy(newCtrlp[(prefixPts+j)*dim:(prefixPts+j+1)*dim], net.levelPoint(j, 0))
	}
	// Centre: the whole of level n, untouched by the left/right walks.
	for j := 0; j < N-n; j++ {
		copy(newCtrlp[(prefixPts+n+j)*dim:(prefixPts+n+j+1)*dim], net.levelPoint(n, j))
	}
	// Right edge: the n rightmost-column points, walked back up from the
	// deepest level (n-1) to the shallowest (0) so the point adjacent to
	// the untouched suffix is the original, unmodified control point.
	for j := 0; j < n; j++ {
		level := n - 1 - j
		localIdx := N - level - 1
		copy(newCtrlp[(cidx+j)*dim:(cidx+j+1)*dim], net.levelPoint(level, localIdx))
	}

	newKnots := make([]float64, newNKnots)
	copy(newKnots[:kidx], src.knots[:kidx])
	for j := 0; j < n; j++ {
		newKnots[kidx+j] = net.u
	}
	copy(newKnots[kidx+n:], src.knots[kidx:])

	z.deg, z.order, z.dim = src.deg, src.order, src.dim
	z.nCtrlp, z.nKnots = newNCtrlp, newNKnots
	z.ctrlp, z.knots = newCtrlp, newKnots
	return nil
}

// InsertKnot sets z to the result of inserting u into src's knot vector n
// times, rebuilding control points via Böhm's algorithm. z may alias src.
// It returns the index of the last of the n newly inserted knots (the
// evaluation's span index plus n; for n == 0, just the span index).
//
// It fails with ErrUndefinedParameter/ErrMultiplicity propagated from
// evaluating src at u, with ErrMultiplicity if u's resulting multiplicity
// would exceed src's order, or with ErrOverUnderflow/ErrMalloc from the
// resulting resize.
func (z *BSpline) InsertKnot(src *BSpline, u float64, n int) (int, error) {
	const method = "bsplines.InsertKnot"

	net, err := src.Evaluate(u)
	if err != nil {
		if z != src {
			z.reset()
		}
		return 0, wrapf(method, err)
	}
	if err := insertKnotFromNet(method, z, src, net, n); err != nil {
		net.Free()
		return 0, err
	}
	k := net.k + n
	net.Free()
	return k, nil
}
