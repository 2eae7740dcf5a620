package bsplines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKnotPreservesCurve(t *testing.T) {
	src := scenarioSpline(t)

	sampleBefore := func(u float64) []float64 {
		net, err := src.Evaluate(u)
		require.NoError(t, err)
		defer net.Free()
		return append([]float64(nil), net.Result()...)
	}

	probes := []float64{0.1, 0.3, 0.4, 0.6, 0.9}
	before := make([][]float64, len(probes))
	for i, u := range probes {
		before[i] = sampleBefore(u)
	}

	var inserted BSpline
	k, err := inserted.InsertKnot(src, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, inserted.NumKnots())
	assert.Equal(t, 8, inserted.NumCtrlPoints())
	assert.GreaterOrEqual(t, k, 0)
	assert.InDelta(t, 0.5, inserted.Knots()[k], 1e-12)

	for i, u := range probes {
		net, err := inserted.Evaluate(u)
		require.NoError(t, err)
		got := net.Result()
		assert.InDelta(t, before[i][0], got[0], 1e-9, "x at u=%v", u)
		assert.InDelta(t, before[i][1], got[1], 1e-9, "y at u=%v", u)
		net.Free()
	}
}

func TestInsertKnotMultiplicityExceedsOrder(t *testing.T) {
	src := scenarioSpline(t)
	var z BSpline
	_, err := z.InsertKnot(src, 0.5, 4) // s=1, order=4 => max n is 3
	assert.True(t, errors.Is(err, ErrMultiplicity))
}

func TestInsertKnotZeroIsResize(t *testing.T) {
	src := scenarioSpline(t)
	before := append([]float64(nil), src.ctrlp...)

	_, err := src.InsertKnot(src, 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, before, src.ctrlp)
}
