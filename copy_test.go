package bsplines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyRejectsAliasing(t *testing.T) {
	b, err := New(3, 2, 7, KnotsClamped)
	require.NoError(t, err)

	err = b.Copy(b)
	assert.True(t, errors.Is(err, ErrInputEqOutput))
}

func TestCopyIsDeepAndIndependent(t *testing.T) {
	src, err := New(3, 2, 7, KnotsClamped)
	require.NoError(t, err)
	copy(src.ctrlp, []float64{0, 0, 1, 2, 2, 2, 3, 0, 4, 0, 5, 2, 6, 2})

	var dst BSpline
	require.NoError(t, dst.Copy(src))

	assert.True(t, src.Equals(&dst, DefaultTolerance))

	dst.ctrlp[0] = 99
	assert.NotEqual(t, src.ctrlp[0], dst.ctrlp[0])
}

func TestCloneProducesEqualCopy(t *testing.T) {
	src, err := New(2, 1, 5, KnotsOpened)
	require.NoError(t, err)

	clone, err := src.Clone()
	require.NoError(t, err)
	assert.True(t, src.Equals(clone, DefaultTolerance))
	assert.NotSame(t, src, clone)
}
