// SPDX-License-Identifier: MIT

package hyper_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_Mul verifies (2,1)·(2,1) = (5,4).
func TestSplit_Mul(t *testing.T) {
	z := hyper.NewSplit[R](2, 1)

	assert.Equal(t, hyper.NewSplit[R](5, 4), z.Mul(z))
	assert.Equal(t, hyper.NewSplit[R](5, 4), z.Square())

	j := hyper.NewSplit[R](0, 1)
	assert.Equal(t, hyper.NewSplit[R](1, 0), j.Mul(j), "j² = +1")
}

// TestSplit_Unsupported ensures the circular family and Sqrt are never approximated.
func TestSplit_Unsupported(t *testing.T) {
	z := hyper.NewSplit[R](0.5, 0.25)
	for _, op := range []hyper.UnaryOp{
		hyper.OpSqrt, hyper.OpSin, hyper.OpCos, hyper.OpTan,
		hyper.OpAsin, hyper.OpAcos, hyper.OpAtan,
	} {
		_, err := hyper.Call(op, z)
		require.ErrorIs(t, err, hyper.ErrUnsupported, op.String())
		assert.Contains(t, err.Error(), "Split."+op.String())
	}
}

// TestSplit_ConjugateModulus verifies z·conj(z) = Mod(z)² exactly.
func TestSplit_ConjugateModulus(t *testing.T) {
	z := hyper.NewSplit[R](5, 3)

	assert.Equal(t, hyper.NewSplit[R](5, -3), z.Conj())

	m, err := z.Mod()
	require.NoError(t, err)
	assert.Equal(t, hyper.NewSplit[R](4, 0), m)
	assert.Equal(t, hyper.NewSplit[R](16, 0), z.Mul(z.Conj()))
	assert.True(t, z.Mul(z.Conj()).Equals(m.Square()))
}

// TestSplit_LightCone checks that values with a² = b² are not invertible.
func TestSplit_LightCone(t *testing.T) {
	for _, z := range []S{hyper.NewSplit[R](2, 2), hyper.NewSplit[R](-3, 3), hyper.NewSplit[R](0, 0)} {
		assert.False(t, z.IsInvertible(), z.String())

		_, err := hyper.NewSplit[R](1, 0).Div(z)
		assert.ErrorIs(t, err, hyper.ErrNotInvertible)
		_, err = z.Inv()
		assert.ErrorIs(t, err, hyper.ErrNotInvertible)
		_, err = z.Log()
		assert.ErrorIs(t, err, hyper.ErrNotInvertible)
	}
	assert.True(t, hyper.NewSplit[R](0, 1).IsInvertible())
}

// TestSplit_DivInverse checks (x/y)·y = x and y·y⁻¹ = 1.
func TestSplit_DivInverse(t *testing.T) {
	x := hyper.NewSplit[R](3, -2)
	y := hyper.NewSplit[R](0.5, 4)

	q, err := x.Div(y)
	require.NoError(t, err)
	back := q.Mul(y)
	assertPairNear(t, 3, -2, back.First, back.Second)

	inv, err := y.Inv()
	require.NoError(t, err)
	one := inv.Mul(y)
	assertPairNear(t, 1, 0, one.First, one.Second)
}

// TestSplit_Hyperbolic compares the exp-based family with closed forms.
func TestSplit_Hyperbolic(t *testing.T) {
	const a, b = 0.3, 0.2
	z := hyper.NewSplit[R](a, b)

	e, err := z.Exp()
	require.NoError(t, err)
	assertPairNear(t, math.Exp(a)*math.Cosh(b), math.Exp(a)*math.Sinh(b), e.First, e.Second)

	sh, err := z.Sinh()
	require.NoError(t, err)
	assertPairNear(t, math.Sinh(a)*math.Cosh(b), math.Cosh(a)*math.Sinh(b), sh.First, sh.Second)

	ch, err := z.Cosh()
	require.NoError(t, err)
	assertPairNear(t, math.Cosh(a)*math.Cosh(b), math.Sinh(a)*math.Sinh(b), ch.First, ch.Second)

	th, err := z.Tanh()
	require.NoError(t, err)
	want, err := sh.Div(ch)
	require.NoError(t, err)
	assertPairNear(t, want.First.Float64(), want.Second.Float64(), th.First, th.Second)
}

// TestSplit_LogExpRoundTrip checks log(2 + j) = (½ ln 3, ½ ln 3) and exp undoes it.
func TestSplit_LogExpRoundTrip(t *testing.T) {
	z := hyper.NewSplit[R](2, 1)

	l, err := z.Log()
	require.NoError(t, err)
	assertPairNear(t, math.Log(3)/2, math.Log(3)/2, l.First, l.Second)

	back, err := l.Exp()
	require.NoError(t, err)
	assertPairNear(t, 2, 1, back.First, back.Second)
}

// TestSplit_Pow covers a split exponent and the zero base.
func TestSplit_Pow(t *testing.T) {
	z := hyper.NewSplit[R](2, 1)

	p, err := z.PowInner(2)
	require.NoError(t, err)
	assertPairNear(t, 5, 4, p.First, p.Second)

	zero := hyper.NewSplit[R](0, 0)
	p, err = zero.Pow(hyper.NewSplit[R](3, 0))
	require.NoError(t, err)
	assert.Equal(t, zero, p)
	p, err = zero.Pow(zero)
	require.NoError(t, err)
	assert.Equal(t, hyper.NewSplit[R](1, 0), p)
}
