package bsplines

// Copy deep-copies src into z. Unlike every other mutating operation in
// this package, Copy forbids z and src aliasing the same value -- that
// would be a no-op through which no data could ever actually be copied --
// and instead reports ErrInputEqOutput, leaving z untouched. On any other
// failure z's previous buffers are released and z is reset to the default
// state, so a subsequent Free on z is always safe.
func (z *BSpline) Copy(src *BSpline) error {
	const method = "bsplines.Copy"
	if z == src {
		return wrapf(method, ErrInputEqOutput)
	}

	ctrlpLen, err := sizeCheck(src.nCtrlp, src.dim)
	if err != nil {
		z.reset()
		return wrapf(method, err)
	}

	ctrlp := make([]float64, ctrlpLen)
	copy(ctrlp, src.ctrlp)
	knots := make([]float64, src.nKnots)
	copy(knots, src.knots)

	z.deg = src.deg
	z.order = src.order
	z.dim = src.dim
	z.nCtrlp = src.nCtrlp
	z.nKnots = src.nKnots
	z.ctrlp = ctrlp
	z.knots = knots
	return nil
}

// Clone returns a deep copy of b as a freshly allocated BSpline.
func (b *BSpline) Clone() (*BSpline, error) {
	z := &BSpline{}
	if err := z.Copy(b); err != nil {
		return nil, err
	}
	return z, nil
}
