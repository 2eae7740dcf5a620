package bsplines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToleranceApproxEqual(t *testing.T) {
	tol := DefaultTolerance
	assert.True(t, tol.ApproxEqual(1.0, 1.0))
	assert.True(t, tol.ApproxEqual(0.0, 1e-12))
	assert.True(t, tol.ApproxEqual(1e9, 1e9+1e-3))
	assert.False(t, tol.ApproxEqual(0.0, 0.1))
	assert.False(t, tol.ApproxEqual(1.0, 2.0))
}

func TestToleranceZeroMagnitude(t *testing.T) {
	tol := Tolerance{AbsEps: 1e-9, RelEps: 1e-9}
	assert.True(t, tol.ApproxEqual(0, 0))
}
