package bsplines

// checkedAdd computes a+n, failing with ErrOverUnderflow if the sum
// disagrees with the sign of n (wrap-around) or would be negative (a size
// can never be negative).
func checkedAdd(a, n int) (int, error) {
	sum := a + n
	if n > 0 && sum < a {
		return 0, ErrOverUnderflow
	}
	if n < 0 && sum > a {
		return 0, ErrOverUnderflow
	}
	if sum < 0 {
		return 0, ErrOverUnderflow
	}
	return sum, nil
}

// resizeFloats grows or shrinks a dense array of oldCount elements of
// `stride` scalars each by n elements, with a side bias: back=true grows
// by appending at the high-index end and shrinks by dropping the tail;
// back=false grows by inserting at the low-index end (shifting existing
// data up) and shrinks by dropping the head.
func resizeFloats(old []float64, oldCount, newCount, n int, back bool, stride int) []float64 {
	out := make([]float64, newCount*stride)
	switch {
	case n == 0:
		copy(out, old)
	case back && n > 0:
		copy(out, old)
	case back && n < 0:
		copy(out, old[:newCount*stride])
	case !back && n > 0:
		copy(out[n*stride:], old)
	default: // !back && n < 0
		copy(out, old[-n*stride:])
	}
	return out
}

// Resize sets z to the result of growing or shrinking src's control-point
// and knot arrays by n (each), biased toward the high-index end of the
// array when back is true and the low-index end when back is false. z may
// alias src.
//
// n == 0 with z aliasing src is a no-op; n == 0 with z distinct from src
// behaves like Copy. Shrinking (n < 0) removes n_ctrlp and n_knots slots
// one-for-one from the chosen side.
func (z *BSpline) Resize(src *BSpline, n int, back bool) error {
	const method = "bsplines.Resize"

	newNCtrlp, err := checkedAdd(src.nCtrlp, n)
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}
	if newNCtrlp <= src.deg {
		if z != src {
			z.reset()
		}
		return wrapf(method, ErrDegGeNCtrlp)
	}
	newNKnots, err := checkedAdd(src.nKnots, n)
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}

	if n == 0 && z == src {
		return nil
	}

	if _, err := sizeCheck(newNCtrlp, src.dim); err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}

	newCtrlp := resizeFloats(src.ctrlp, src.nCtrlp, newNCtrlp, n, back, src.dim)
	newKnots := resizeFloats(src.knots, src.nKnots, newNKnots, n, back, 1)

	deg, order, dim := src.deg, src.order, src.dim
	z.deg, z.order, z.dim = deg, order, dim
	z.nCtrlp, z.nKnots = newNCtrlp, newNKnots
	z.ctrlp, z.knots = newCtrlp, newKnots
	return nil
}
