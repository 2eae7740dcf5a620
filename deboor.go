package bsplines

// DeBoorNet is the transient artifact produced by evaluating a BSpline at a
// parameter u: the triangular de Boor scheme (or, for a full-multiplicity
// knot, the one or two raw control points adjacent to it).
type DeBoorNet struct {
	u         float64
	k, s, h   int
	dim       int
	nPoints   int
	points    []float64 // row-major, nPoints*dim scalars
	resultIdx int       // index, in POINT units, of the result within points
	copiedPts int       // 0 for the recursive case, 1 or 2 for full multiplicity
}

// U returns the (possibly snapped) parameter the net was evaluated at.
func (n *DeBoorNet) U() float64 { return n.u }

// K returns the knot-span index such that knots[K()] <= U() < knots[K()+1].
func (n *DeBoorNet) K() int { return n.k }

// S returns the multiplicity of U() in the source spline's knot vector.
func (n *DeBoorNet) S() int { return n.s }

// H returns the number of recursion levels that were run, max(deg-s, 0).
func (n *DeBoorNet) H() int { return n.h }

// Dim returns the dimension of the ambient space, same as the source spline.
func (n *DeBoorNet) Dim() int { return n.dim }

// NumPoints returns the number of points stored in Points().
func (n *DeBoorNet) NumPoints() int { return n.nPoints }

// Points returns the dense row-major storage holding the de Boor triangle
// (or the one/two raw control points for the full-multiplicity case). The
// returned slice aliases n's storage and must not be modified.
func (n *DeBoorNet) Points() []float64 { return n.points }

// Result returns the evaluated curve point: a view into Points().
func (n *DeBoorNet) Result() []float64 {
	return n.points[n.resultIdx*n.dim : (n.resultIdx+1)*n.dim]
}

// PointsCopied returns how many raw control points were copied without
// running the recursion: 0 for a regular (s <= deg) evaluation, or 1 or 2
// when u's multiplicity equals the spline's order.
func (n *DeBoorNet) PointsCopied() int { return n.copiedPts }

// levelPoint returns the point at local position localIdx within recursion
// level (0-indexed), using the compact triangular layout Evaluate built:
// level r starts at point-offset r*N - r*(r-1)/2 and holds N-r points,
// where N = H()+1. Only meaningful on a net produced by the regular
// (s <= deg) recursion, i.e. PointsCopied() == 0.
func (n *DeBoorNet) levelPoint(level, localIdx int) []float64 {
	N := n.h + 1
	off := level*N - level*(level-1)/2 + localIdx
	return n.points[off*n.dim : (off+1)*n.dim]
}

// IsZero reports whether n is in the default state.
func (n *DeBoorNet) IsZero() bool {
	return n == nil || (n.dim == 0 && n.nPoints == 0 && n.points == nil)
}

// Free resets n to the default state.
func (n *DeBoorNet) Free() {
	if n == nil {
		return
	}
	*n = DeBoorNet{}
}

// Evaluate computes the de Boor net for parameter u.
//
// It fails with ErrUndefinedParameter if u lies outside b's evaluable
// domain, and with ErrMultiplicity if u's multiplicity in the knot vector
// exceeds b's order.
func (b *BSpline) Evaluate(u float64) (*DeBoorNet, error) {
	const method = "bsplines.Evaluate"

	s := 0
	kRaw := b.nKnots
	for i := 0; i < b.nKnots; i++ {
		if fequals(u, b.knots[i]) {
			s++
		}
	}
	for i := 0; i < b.nKnots; i++ {
		if u < b.knots[i] {
			kRaw = i
			break
		}
	}
	k := kRaw - 1

	if kRaw == b.nKnots && s == 0 {
		return nil, wrapf(method, ErrUndefinedParameter)
	}
	// k <= 0 is the signed-arithmetic translation of the "k == 0 after the
	// loop" guard: with a signed span index, u strictly below every knot
	// decrements k past zero instead of wrapping, so both must be rejected.
	if k <= 0 {
		return nil, wrapf(method, ErrUndefinedParameter)
	}
	if s <= b.deg {
		// Unlike the k <= 0 guard above, this test is spelled against the
		// pre-decrement span index (kRaw), not k: the domain's two edges sit
		// exactly at knots[deg] and knots[nKnots-deg-1], and checking k here
		// instead would be off by one in both directions.
		padding := kRaw <= b.deg || kRaw > b.nKnots-b.deg+s-1
		if padding {
			return nil, wrapf(method, ErrUndefinedParameter)
		}
	}

	if fequals(u, b.knots[k]) {
		u = b.knots[k]
	}

	if s > b.order {
		return nil, wrapf(method, ErrMultiplicity)
	}

	if s == b.order {
		return b.evaluateFullMultiplicity(u, k, s), nil
	}
	return b.evaluateRecursive(u, k, s), nil
}

// evaluateFullMultiplicity handles s == order: u is an endpoint or an
// interior knot of full multiplicity. No recursion runs; the net holds the
// one or two control points adjacent to the break.
func (b *BSpline) evaluateFullMultiplicity(u float64, k, s int) *DeBoorNet {
	left := k - s
	right := left + 1

	net := &DeBoorNet{u: u, k: k, s: s, h: 0, dim: b.dim}
	switch {
	case left < 0:
		net.points = append([]float64(nil), b.point(right)...)
		net.nPoints = 1
		net.resultIdx = 0
		net.copiedPts = 1
	case right >= b.nCtrlp:
		net.points = append([]float64(nil), b.point(left)...)
		net.nPoints = 1
		net.resultIdx = 0
		net.copiedPts = 1
	default:
		net.points = make([]float64, 2*b.dim)
		copy(net.points[:b.dim], b.point(left))
		copy(net.points[b.dim:], b.point(right))
		net.nPoints = 2
		net.resultIdx = 1
		net.copiedPts = 2
	}
	return net
}

// evaluateRecursive runs the de Boor recursion for the regular (s <= deg)
// case and returns the resulting net.
func (b *BSpline) evaluateRecursive(u float64, k, s int) *DeBoorNet {
	deg, dim := b.deg, b.dim
	h := deg - s
	if h < 0 {
		h = 0
	}
	fst := k - deg
	lst := k - s
	N := lst - fst + 1 // == h+1
	nPoints := N * (N + 1) / 2

	points := make([]float64, nPoints*dim)
	// Level 0: the N initial affected control points p_{k-deg}..p_{k-s}.
	for i := 0; i < N; i++ {
		copy(points[i*dim:(i+1)*dim], b.point(fst+i))
	}

	prevOff := 0
	curOff := N
	for r := 1; r <= h; r++ {
		curLen := N - r
		for idx := 0; idx < curLen; idx++ {
			i := fst + r + idx
			left := points[(prevOff+idx)*dim : (prevOff+idx+1)*dim]
			right := points[(prevOff+idx+1)*dim : (prevOff+idx+2)*dim]
			alpha := (u - b.knots[i]) / (b.knots[i+deg-r+1] - b.knots[i])
			dst := points[(curOff+idx)*dim : (curOff+idx+1)*dim]
			for c := 0; c < dim; c++ {
				dst[c] = alpha*right[c] + (1-alpha)*left[c]
			}
		}
		prevOff = curOff
		curOff += curLen
	}

	resultIdx := nPoints - 1
	return &DeBoorNet{
		u: u, k: k, s: s, h: h, dim: dim,
		nPoints: nPoints, points: points, resultIdx: resultIdx, copiedPts: 0,
	}
}
