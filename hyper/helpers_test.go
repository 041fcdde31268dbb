// SPDX-License-Identifier: MIT

package hyper_test

import (
	"testing"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/assert"
)

// Single-level aliases over the float64 base.
type (
	R  = hyper.Real
	C  = hyper.Complex[hyper.Real]
	D  = hyper.Dual[hyper.Real]
	S  = hyper.Split[hyper.Real]
	K  = hyper.Diagonal[hyper.Real]
	CD = hyper.Complex[hyper.Dual[hyper.Real]]
)

const tol = 1e-9

// assertPairNear checks both components of a single-level pair against want.
func assertPairNear(t assert.TestingT, wantFirst, wantSecond float64, gotFirst, gotSecond R, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	assert.InDelta(t, wantFirst, gotFirst.Float64(), tol, msgAndArgs...)
	assert.InDelta(t, wantSecond, gotSecond.Float64(), tol, msgAndArgs...)
}

// assertComplexNear compares a Complex[Real] with a complex128 oracle value.
func assertComplexNear(t *testing.T, want complex128, got C, msgAndArgs ...interface{}) {
	t.Helper()
	assertPairNear(t, real(want), imag(want), got.First, got.Second, msgAndArgs...)
}
