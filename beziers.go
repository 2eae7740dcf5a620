package bsplines

import "github.com/gomlx/exceptions"

// ToBeziers sets z to src decomposed into a sequence of Bézier segments
// glued together as one B-spline with Order()-multiplicity knots between
// segments. z may alias src.
//
// The boundary-clamping trim lengths are derived at runtime from the
// actual knot vector Split produces (scanning for the start/end of the
// newly full-multiplicity group) rather than from a closed-form index
// formula, per the invariant n_knots == n_ctrlp + order: whatever Split
// returns, the group's own extent in the resulting knot vector is always
// self-consistent with that invariant, so there is nothing to transcribe.
func (z *BSpline) ToBeziers(src *BSpline) error {
	const method = "bsplines.ToBeziers"

	cur, err := src.Clone()
	if err != nil {
		if z != src {
			z.reset()
		}
		return wrapf(method, err)
	}

	if !fequals(cur.knots[0], cur.knots[cur.deg]) {
		var tmp BSpline
		k1, err := tmp.Split(cur, cur.knots[cur.deg])
		if err != nil {
			if z != src {
				z.reset()
			}
			return wrapf(method, err)
		}
		d := firstIndexEqual(tmp.knots, tmp.knots[k1])
		cur = &tmp
		if d > 0 {
			var trimmed BSpline
			if err := trimmed.Resize(&tmp, -d, false); err != nil {
				if z != src {
					z.reset()
				}
				return wrapf(method, err)
			}
			cur = &trimmed
		}
	}

	if !fequals(cur.knots[cur.nKnots-1], cur.knots[cur.nKnots-cur.order]) {
		var tmp BSpline
		k1, err := tmp.Split(cur, cur.knots[cur.nKnots-cur.order])
		if err != nil {
			if z != src {
				z.reset()
			}
			return wrapf(method, err)
		}
		last := lastIndexEqual(tmp.knots, tmp.knots[k1])
		d := tmp.nKnots - 1 - last
		cur = &tmp
		if d > 0 {
			var trimmed BSpline
			if err := trimmed.Resize(&tmp, -d, true); err != nil {
				if z != src {
					z.reset()
				}
				return wrapf(method, err)
			}
			cur = &trimmed
		}
	}

	k := cur.order
	for k < cur.nKnots-cur.order {
		var tmp BSpline
		newK, err := tmp.Split(cur, cur.knots[k])
		if err != nil {
			if z != src {
				z.reset()
			}
			return wrapf(method, err)
		}
		cur = &tmp
		k = newK + 1
	}

	return z.Copy(cur)
}

func firstIndexEqual(xs []float64, v float64) int {
	for i, x := range xs {
		if fequals(x, v) {
			return i
		}
	}
	exceptions.Panicf("bsplines: internal: value %v not found in knot vector", v)
	return -1
}

func lastIndexEqual(xs []float64, v float64) int {
	last := -1
	for i, x := range xs {
		if fequals(x, v) {
			last = i
		}
	}
	if last < 0 {
		exceptions.Panicf("bsplines: internal: value %v not found in knot vector", v)
	}
	return last
}
