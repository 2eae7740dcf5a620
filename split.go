package bsplines

// Split sets z to the result of raising the multiplicity of u in src's
// knot vector to exactly Order(), producing a spline with a full-
// multiplicity knot at u. z may alias src. It returns the index of the
// knot at u.
//
// If u is already at full multiplicity (an endpoint, or an existing
// interior knot of full multiplicity), Split is a copy (or a no-op when z
// aliases src). Otherwise it inserts u net.H()+1 times via Böhm's
// algorithm, which is exactly enough to raise its multiplicity to Order().
func (z *BSpline) Split(src *BSpline, u float64) (int, error) {
	const method = "bsplines.Split"

	net, err := src.Evaluate(u)
	if err != nil {
		if z != src {
			z.reset()
		}
		return 0, wrapf(method, err)
	}
	defer net.Free()

	if net.copiedPts >= 1 {
		if err := z.Resize(src, 0, true); err != nil {
			return 0, err
		}
		return net.k, nil
	}

	n := net.h + 1
	k := net.k + n
	if err := insertKnotFromNet(method, z, src, net, n); err != nil {
		return 0, err
	}
	return k, nil
}
