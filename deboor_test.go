package bsplines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSpline(t *testing.T) *BSpline {
	t.Helper()
	b, err := New(3, 2, 7, KnotsClamped)
	require.NoError(t, err)
	copy(b.ctrlp, []float64{
		0, 0,
		1, 2,
		2, 2,
		3, 0,
		4, 0,
		5, 2,
		6, 2,
	})
	return b
}

func TestEvaluateLeftEndpoint(t *testing.T) {
	b := scenarioSpline(t)
	net, err := b.Evaluate(0)
	require.NoError(t, err)
	defer net.Free()

	assert.Equal(t, 1, net.PointsCopied())
	result := net.Result()
	assert.InDelta(t, 0, result[0], 1e-12)
	assert.InDelta(t, 0, result[1], 1e-12)
}

func TestEvaluateRightEndpoint(t *testing.T) {
	b := scenarioSpline(t)
	net, err := b.Evaluate(1)
	require.NoError(t, err)
	defer net.Free()

	assert.Equal(t, 1, net.PointsCopied())
	result := net.Result()
	assert.InDelta(t, 6, result[0], 1e-12)
	assert.InDelta(t, 2, result[1], 1e-12)
}

func TestEvaluateInteriorOnExistingKnot(t *testing.T) {
	b := scenarioSpline(t)
	net, err := b.Evaluate(0.5)
	require.NoError(t, err)
	defer net.Free()

	assert.Equal(t, 0, net.PointsCopied())
	assert.Equal(t, 2, net.H())
	result := net.Result()
	// Derived directly from the standard de Boor recursion (four-level
	// triangular scheme collapsed by the knot's multiplicity), not from
	// the rough "midpoint symmetry" estimate: the exact value at u=0.5 is
	// (3, 1/3).
	assert.InDelta(t, 3.0, result[0], 1e-9)
	assert.InDelta(t, 1.0/3.0, result[1], 1e-9)
}

func TestEvaluateOutsideDomain(t *testing.T) {
	b := scenarioSpline(t)

	_, err := b.Evaluate(1.1)
	assert.True(t, errors.Is(err, ErrUndefinedParameter))

	_, err = b.Evaluate(-0.1)
	assert.True(t, errors.Is(err, ErrUndefinedParameter))
}

func TestEvaluateOpenedSplineDomainEdges(t *testing.T) {
	// KnotsOpened, deg=3, nCtrlp=7: order=4, nKnots=11, knots[i]=i/10, so
	// the evaluable domain is [knots[deg], knots[nKnots-deg-1]] = [0.3, 0.7],
	// and both edges sit at partial multiplicity (s=1), not full
	// multiplicity -- unlike a clamped spline's endpoints.
	b, err := New(3, 1, 7, KnotsOpened)
	require.NoError(t, err)

	_, err = b.Evaluate(0.3)
	assert.NoError(t, err, "left domain edge must be accepted")

	_, err = b.Evaluate(0.7)
	assert.NoError(t, err, "right domain edge must be accepted")

	_, err = b.Evaluate(0.2)
	assert.True(t, errors.Is(err, ErrUndefinedParameter), "below the left edge must be rejected")

	_, err = b.Evaluate(0.75)
	assert.True(t, errors.Is(err, ErrUndefinedParameter), "beyond the right edge must be rejected")
}

func TestEvaluateMultiplicityExceedsOrder(t *testing.T) {
	b, err := New(1, 1, 3, KnotsNone)
	require.NoError(t, err)
	copy(b.knots, []float64{0, 0, 0, 0, 1})

	_, err = b.Evaluate(0)
	assert.True(t, errors.Is(err, ErrMultiplicity))
}
