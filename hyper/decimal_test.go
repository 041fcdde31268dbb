// SPDX-License-Identifier: MIT

package hyper_test

import (
	"math"
	"testing"

	"github.com/govalues/decimal"
	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) hyper.Decimal {
	t.Helper()
	d, err := hyper.ParseDecimal(s)
	require.NoError(t, err)

	return d
}

// TestDecimal_Exact checks that decimal fractions add without binary rounding.
func TestDecimal_Exact(t *testing.T) {
	sum := dec(t, "0.1").Add(dec(t, "0.2"))
	assert.True(t, sum.Equals(dec(t, "0.3")), sum.String())
	assert.Equal(t, "0.3", sum.String())

	assert.True(t, dec(t, "1.50").Equals(dec(t, "1.5")))
	assert.Equal(t, -1, dec(t, "-2").Compare(dec(t, "1")))
	assert.True(t, dec(t, "-7.25").Neg().Equals(hyper.NewDecimal(decimal.MustNew(725, 2))))
}

// TestDecimal_ConjugateModulus verifies the conjugate/modulus law exactly over
// an exact inner type, for both complex and split-complex doublings.
func TestDecimal_ConjugateModulus(t *testing.T) {
	z := hyper.NewComplex(dec(t, "3"), dec(t, "4"))
	m, err := z.Mod()
	require.NoError(t, err)
	assert.True(t, m.Equals(hyper.NewComplex(dec(t, "5"), dec(t, "0"))), m.String())
	assert.True(t, z.Mul(z.Conj()).Equals(m.Square()))

	s := hyper.NewSplit(dec(t, "5"), dec(t, "3"))
	sm, err := s.Mod()
	require.NoError(t, err)
	assert.True(t, sm.Equals(hyper.NewSplit(dec(t, "4"), dec(t, "0"))), sm.String())
	assert.True(t, s.Mul(s.Conj()).Equals(sm.Square()))
}

// TestDecimal_Overflow checks that coefficient overflow is absorbing and non-finite.
func TestDecimal_Overflow(t *testing.T) {
	big := dec(t, "9999999999999999999")
	assert.True(t, big.IsFinite())

	o := big.Mul(big)
	assert.False(t, o.IsFinite())
	assert.False(t, o.IsInvertible())
	assert.Equal(t, "overflow", o.String())
	assert.False(t, o.Add(dec(t, "1")).IsFinite())
	assert.Equal(t, 1, o.Compare(big))

	_, err := o.Exp()
	assert.ErrorIs(t, err, hyper.ErrNonFinite)
	_, err = big.Div(o)
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)
}

// TestDecimal_Errors covers division by zero, bad literals and float conversion.
func TestDecimal_Errors(t *testing.T) {
	_, err := dec(t, "1").Div(dec(t, "0"))
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)
	_, err = dec(t, "0").Inv()
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)

	_, err = hyper.ParseDecimal("one")
	assert.Error(t, err)

	_, err = hyper.DecimalFromFloat64(math.NaN())
	assert.ErrorIs(t, err, hyper.ErrNonFinite)

	_, err = dec(t, "-1").Log()
	assert.ErrorIs(t, err, hyper.ErrNonFinite)

	q, err := dec(t, "1").Div(dec(t, "8"))
	require.NoError(t, err)
	assert.True(t, q.Equals(dec(t, "0.125")))
}

// TestDecimal_Factory checks the constants and Create through a doubled level.
func TestDecimal_Factory(t *testing.T) {
	f := hyper.FactoryOf[hyper.Complex[hyper.Decimal]]()

	assert.True(t, f.RealOne().Equals(hyper.NewComplex(dec(t, "1"), dec(t, "0"))))
	assert.True(t, f.SpecialOne().Equals(hyper.NewComplex(dec(t, "0"), dec(t, "1"))))
	assert.True(t, f.Create(2.5, -1, 0, 0).Equals(hyper.NewComplex(dec(t, "2.5"), dec(t, "-1"))))
}
