// SPDX-License-Identifier: MIT

package hyper_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComplex_Mul verifies (2,3)·(1,−1) = (5,1).
func TestComplex_Mul(t *testing.T) {
	z := hyper.NewComplex[R](2, 3)
	w := hyper.NewComplex[R](1, -1)

	assert.Equal(t, hyper.NewComplex[R](5, 1), z.Mul(w))
}

// TestComplex_DivByZero ensures (1,0)/(0,0) raises ErrNotInvertible instead of (Inf, NaN).
func TestComplex_DivByZero(t *testing.T) {
	_, err := hyper.NewComplex[R](1, 0).Div(hyper.NewComplex[R](0, 0))
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)

	_, err = hyper.NewComplex[R](0, 0).Inv()
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)

	_, err = hyper.NewComplex[R](0, 0).Log()
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)
}

// TestComplex_DivInverse checks (x/y)·y = x and y·y⁻¹ = 1.
func TestComplex_DivInverse(t *testing.T) {
	x := hyper.NewComplex[R](3, -2)
	y := hyper.NewComplex[R](0.5, 4)

	q, err := x.Div(y)
	require.NoError(t, err)
	back := q.Mul(y)
	assertPairNear(t, 3, -2, back.First, back.Second)

	inv, err := y.Inv()
	require.NoError(t, err)
	one := inv.Mul(y)
	assertPairNear(t, 1, 0, one.First, one.Second)
}

// TestComplex_Invertibility verifies that either component alone makes a value invertible.
func TestComplex_Invertibility(t *testing.T) {
	assert.True(t, hyper.NewComplex[R](1, 0).IsInvertible())
	assert.True(t, hyper.NewComplex[R](0, 1).IsInvertible())
	assert.False(t, hyper.NewComplex[R](0, 0).IsInvertible())
}

// TestComplex_ConjugateModulus verifies z·conj(z) = Mod(z)² exactly for integer inputs.
func TestComplex_ConjugateModulus(t *testing.T) {
	z := hyper.NewComplex[R](3, 4)

	assert.Equal(t, hyper.NewComplex[R](3, -4), z.Conj())

	m, err := z.Mod()
	require.NoError(t, err)
	assert.Equal(t, hyper.NewComplex[R](5, 0), m)
	assert.True(t, z.Mul(z.Conj()).Equals(m.Square()))
}

// TestComplex_MagnitudeArgument covers every quadrant, both axes and zero.
func TestComplex_MagnitudeArgument(t *testing.T) {
	cases := []complex128{1 + 1i, -1 + 1i, -1 - 1i, 1 - 1i, 2, -2, 3i, -3i, -0.5 + 1e-12i}
	for _, c := range cases {
		z := hyper.NewComplex(R(real(c)), R(imag(c)))
		mag, err := z.Magnitude()
		require.NoError(t, err)
		arg, err := z.Argument()
		require.NoError(t, err)
		assert.InDelta(t, cmplx.Abs(c), mag.Float64(), tol, "|%v|", c)
		assert.InDelta(t, cmplx.Phase(c), arg.Float64(), 1e-6, "arg %v", c)
	}

	arg, err := hyper.NewComplex[R](0, 0).Argument()
	require.NoError(t, err)
	assert.Equal(t, R(0), arg)
}

// TestComplex_Transcendentals compares every analytic operation with math/cmplx.
func TestComplex_Transcendentals(t *testing.T) {
	type fn struct {
		op     hyper.UnaryOp
		oracle func(complex128) complex128
	}
	fns := []fn{
		{hyper.OpSqrt, cmplx.Sqrt},
		{hyper.OpExp, cmplx.Exp},
		{hyper.OpLog, cmplx.Log},
		{hyper.OpSin, cmplx.Sin},
		{hyper.OpCos, cmplx.Cos},
		{hyper.OpTan, cmplx.Tan},
		{hyper.OpSinh, cmplx.Sinh},
		{hyper.OpCosh, cmplx.Cosh},
		{hyper.OpTanh, cmplx.Tanh},
		{hyper.OpAsin, cmplx.Asin},
		{hyper.OpAcos, cmplx.Acos},
		{hyper.OpAtan, cmplx.Atan},
		{hyper.OpSquare, func(c complex128) complex128 { return c * c }},
		{hyper.OpHalf, func(c complex128) complex128 { return c / 2 }},
		{hyper.OpDouble, func(c complex128) complex128 { return c * 2 }},
	}
	points := []complex128{0.3 + 0.4i, -1.2 + 0.7i, 0.5 - 1.5i, 2 + 0.1i}

	for _, f := range fns {
		for _, p := range points {
			z := hyper.NewComplex(R(real(p)), R(imag(p)))
			got, err := hyper.Call(f.op, z)
			require.NoError(t, err, "%s(%v)", f.op, p)
			assertComplexNear(t, f.oracle(p), got, "%s(%v)", f.op, p)
		}
	}
}

// TestComplex_EulerIdentity checks exp(iπ) = −1.
func TestComplex_EulerIdentity(t *testing.T) {
	got, err := hyper.NewComplex[R](0, math.Pi).Exp()
	require.NoError(t, err)
	assertComplexNear(t, -1, got)
}

// TestComplex_LogExpRoundTrip checks exp(log z) = z for invertible z.
func TestComplex_LogExpRoundTrip(t *testing.T) {
	for _, p := range []complex128{1.5 - 0.7i, -2 + 0.01i, 0.1i, -4} {
		z := hyper.NewComplex(R(real(p)), R(imag(p)))
		l, err := z.Log()
		require.NoError(t, err)
		back, err := l.Exp()
		require.NoError(t, err)
		assertComplexNear(t, p, back, "round trip %v", p)
	}
}

// TestComplex_Pow covers complex and inner-type exponents and a zero base.
func TestComplex_Pow(t *testing.T) {
	z := hyper.NewComplex[R](1, 1)

	p, err := z.Pow(hyper.NewComplex[R](2, 0))
	require.NoError(t, err)
	assertComplexNear(t, 2i, p)

	p, err = z.Pow(hyper.NewComplex[R](0.5, -1))
	require.NoError(t, err)
	assertComplexNear(t, cmplx.Pow(1+1i, 0.5-1i), p)

	p, err = hyper.NewComplex[R](0, 1).PowInner(2)
	require.NoError(t, err)
	assertComplexNear(t, -1, p)

	zero := hyper.NewComplex[R](0, 0)
	p, err = zero.Pow(hyper.NewComplex[R](2, 0))
	require.NoError(t, err)
	assert.Equal(t, zero, p)
	p, err = zero.Pow(zero)
	require.NoError(t, err)
	assert.Equal(t, hyper.NewComplex[R](1, 0), p)
}

// TestComplex_InnerArithmetic checks the mixed-level overloads.
func TestComplex_InnerArithmetic(t *testing.T) {
	z := hyper.NewComplex[R](2, -6)

	assert.Equal(t, hyper.NewComplex[R](5, -6), z.AddInner(3))
	assert.Equal(t, hyper.NewComplex[R](-1, -6), z.SubInner(3))
	assert.Equal(t, hyper.NewComplex[R](6, -18), z.MulInner(3))

	q, err := z.DivInner(2)
	require.NoError(t, err)
	assert.Equal(t, hyper.NewComplex[R](1, -3), q)

	_, err = z.DivInner(0)
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)
}

// TestComplex_OrderingAndEquality checks lexicographic Compare and component Equals.
func TestComplex_OrderingAndEquality(t *testing.T) {
	a := hyper.NewComplex[R](1, 5)
	b := hyper.NewComplex[R](2, -5)
	c := hyper.NewComplex[R](1, 6)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(a.Clone()))
	assert.True(t, a.Equals(hyper.ComplexOf[R](1).Add(hyper.NewComplex[R](0, 5))))
	assert.Equal(t, "(1, 5)", a.String())
}

// TestComplex_NestedErrorPropagates ensures an inner ErrUnsupported surfaces unchanged.
func TestComplex_NestedErrorPropagates(t *testing.T) {
	z := hyper.NewComplex(hyper.NewSplit[R](1, 0.5), hyper.NewSplit[R](0.2, 0))

	_, err := z.Exp()
	require.ErrorIs(t, err, hyper.ErrUnsupported)
	assert.Contains(t, err.Error(), "Split.Cos")
}
