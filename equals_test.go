package bsplines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualsWithinTolerance(t *testing.T) {
	a := scenarioSpline(t)
	b, err := a.Clone()
	require.NoError(t, err)

	assert.True(t, a.Equals(b, DefaultTolerance))

	b.ctrlp[0] += 1e-3
	assert.False(t, a.Equals(b, DefaultTolerance))
	assert.True(t, a.Equals(b, Tolerance{AbsEps: 1e-2, RelEps: 1e-2}))
}

func TestEqualsDetectsShapeMismatch(t *testing.T) {
	a := scenarioSpline(t)
	b, err := New(2, 2, 7, KnotsClamped)
	require.NoError(t, err)

	assert.False(t, a.Equals(b, DefaultTolerance))
}
