// SPDX-License-Identifier: MIT

package hyper

import (
	"cmp"
	"math"
	"strconv"
)

// Real is the float64 base scalar every nesting usually bottoms out at.
// Field operations follow IEEE-754. Transcendental results are re-validated,
// so a NaN or ±Inf outcome is reported as ErrNonFinite instead of leaking.
type Real float64

// NewReal returns x as a Real, or ErrNonFinite if x is NaN or ±Inf.
func NewReal(x float64) (Real, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, hyperErrorf("NewReal", ErrNonFinite)
	}

	return Real(x), nil
}

// realResult validates a computed value on behalf of the operation tag.
func realResult(tag string, x float64) (Real, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, hyperErrorf("Real."+tag, ErrNonFinite)
	}

	return Real(x), nil
}

// Float64 returns x as a plain float64.
func (x Real) Float64() float64 { return float64(x) }

// String formats x in the shortest representation that round-trips.
func (x Real) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

func (x Real) Clone() Real            { return x }
func (x Real) Equals(o Real) bool     { return x == o }
func (x Real) Compare(o Real) int     { return cmp.Compare(x, o) }
func (x Real) Add(o Real) Real        { return x + o }
func (x Real) Sub(o Real) Real        { return x - o }
func (x Real) Mul(o Real) Real        { return x * o }
func (x Real) Neg() Real              { return -x }
func (x Real) Inc() Real              { return x + 1 }
func (x Real) Dec() Real              { return x - 1 }
func (x Real) Conj() Real             { return x }
func (x Real) Half() Real             { return x / 2 }
func (x Real) Double() Real           { return x * 2 }
func (x Real) Square() Real           { return x * x }
func (x Real) Mod() (Real, error)     { return Real(math.Abs(float64(x))), nil }
func (x Real) IsInvertible() bool     { return x != 0 }
func (x Real) IsFinite() bool         { return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0) }
func (x Real) Dimension() int         { return 1 }
func (x Real) Factory() *Factory[Real] { return cachedFactory(realFactory) }

// Div returns x / o, or ErrNotInvertible when o is zero.
func (x Real) Div(o Real) (Real, error) {
	if !o.IsInvertible() {
		return 0, hyperErrorf("Real.Div", ErrNotInvertible)
	}

	return x / o, nil
}

// Inv returns 1 / x, or ErrNotInvertible when x is zero.
func (x Real) Inv() (Real, error) {
	if !x.IsInvertible() {
		return 0, hyperErrorf("Real.Inv", ErrNotInvertible)
	}

	return 1 / x, nil
}

// Pow returns x^o. A zero base with a negative exponent is ErrNotInvertible.
func (x Real) Pow(o Real) (Real, error) {
	if x == 0 && o < 0 {
		return 0, hyperErrorf("Real.Pow", ErrNotInvertible)
	}

	return realResult("Pow", math.Pow(float64(x), float64(o)))
}

func (x Real) Sqrt() (Real, error) { return realResult("Sqrt", math.Sqrt(float64(x))) }
func (x Real) Exp() (Real, error)  { return realResult("Exp", math.Exp(float64(x))) }
func (x Real) Log() (Real, error)  { return realResult("Log", math.Log(float64(x))) }
func (x Real) Sin() (Real, error)  { return realResult("Sin", math.Sin(float64(x))) }
func (x Real) Cos() (Real, error)  { return realResult("Cos", math.Cos(float64(x))) }
func (x Real) Tan() (Real, error)  { return realResult("Tan", math.Tan(float64(x))) }
func (x Real) Sinh() (Real, error) { return realResult("Sinh", math.Sinh(float64(x))) }
func (x Real) Cosh() (Real, error) { return realResult("Cosh", math.Cosh(float64(x))) }
func (x Real) Tanh() (Real, error) { return realResult("Tanh", math.Tanh(float64(x))) }
func (x Real) Asin() (Real, error) { return realResult("Asin", math.Asin(float64(x))) }
func (x Real) Acos() (Real, error) { return realResult("Acos", math.Acos(float64(x))) }
func (x Real) Atan() (Real, error) { return realResult("Atan", math.Atan(float64(x))) }

func realFactory() *Factory[Real] {
	return NewFactory(Constants[Real]{
		Zero:            0,
		RealOne:         1,
		SpecialOne:      1,
		UnitsOne:        1,
		NonRealUnitsOne: 0,
		CombinedOne:     1,
		AllOne:          1,
	}, func(realUnit, _, _, _ float64) Real {
		return Real(realUnit)
	})
}
