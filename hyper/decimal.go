// SPDX-License-Identifier: MIT

package hyper

import (
	"math"

	"github.com/govalues/decimal"
)

// Decimal is an exact decimal base scalar backed by github.com/govalues/decimal.
//
// Add, Sub, Mul, Neg, Half, Double and Square are exact while the result fits
// the 19-digit coefficient; a result that overflows becomes a non-finite
// Decimal (IsFinite reports false) which absorbs every further operation.
// Div rounds like decimal.Quo. Transcendentals go through float64 and back.
type Decimal struct {
	v        decimal.Decimal
	overflow bool
}

// NewDecimal wraps d.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{v: d} }

// ParseDecimal parses a decimal literal such as "-12.375".
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, hyperErrorf("ParseDecimal", err)
	}

	return Decimal{v: d}, nil
}

// DecimalFromFloat64 converts f, or returns ErrNonFinite when f is NaN, ±Inf
// or outside the decimal range.
func DecimalFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, hyperErrorf("DecimalFromFloat64", ErrNonFinite)
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Decimal{}, hyperErrorf("DecimalFromFloat64", ErrNonFinite)
	}

	return Decimal{v: d}, nil
}

// Value returns the underlying decimal. It is meaningless when !IsFinite().
func (x Decimal) Value() decimal.Decimal { return x.v }

func (x Decimal) String() string {
	if x.overflow {
		return "overflow"
	}

	return x.v.String()
}

// settle turns the (value, error) pair of a decimal operation into a Decimal,
// mapping coefficient overflow to the absorbing non-finite state.
func settle(d decimal.Decimal, err error) Decimal {
	if err != nil {
		return Decimal{overflow: true}
	}

	return Decimal{v: d}
}

func (x Decimal) Clone() Decimal { return x }

func (x Decimal) Equals(o Decimal) bool {
	if x.overflow || o.overflow {
		return x.overflow == o.overflow
	}

	return x.v.Cmp(o.v) == 0
}

// Compare orders overflowed values above every finite value.
func (x Decimal) Compare(o Decimal) int {
	switch {
	case x.overflow && o.overflow:
		return 0
	case x.overflow:
		return 1
	case o.overflow:
		return -1
	}

	return x.v.Cmp(o.v)
}

func (x Decimal) Add(o Decimal) Decimal {
	if x.overflow || o.overflow {
		return Decimal{overflow: true}
	}

	return settle(x.v.Add(o.v))
}

func (x Decimal) Sub(o Decimal) Decimal {
	if x.overflow || o.overflow {
		return Decimal{overflow: true}
	}

	return settle(x.v.Sub(o.v))
}

func (x Decimal) Mul(o Decimal) Decimal {
	if x.overflow || o.overflow {
		return Decimal{overflow: true}
	}

	return settle(x.v.Mul(o.v))
}

// Div returns x / o, or ErrNotInvertible when o is zero or overflowed.
func (x Decimal) Div(o Decimal) (Decimal, error) {
	if !o.IsInvertible() {
		return Decimal{}, hyperErrorf("Decimal.Div", ErrNotInvertible)
	}
	if x.overflow {
		return x, nil
	}

	return settle(x.v.Quo(o.v)), nil
}

func (x Decimal) Inv() (Decimal, error) {
	if !x.IsInvertible() {
		return Decimal{}, hyperErrorf("Decimal.Inv", ErrNotInvertible)
	}

	return settle(decimal.One.Quo(x.v)), nil
}

func (x Decimal) Neg() Decimal {
	if x.overflow {
		return x
	}

	return Decimal{v: x.v.Neg()}
}

func (x Decimal) Inc() Decimal  { return x.Add(Decimal{v: decimal.One}) }
func (x Decimal) Dec() Decimal  { return x.Sub(Decimal{v: decimal.One}) }
func (x Decimal) Conj() Decimal { return x }

func (x Decimal) Mod() (Decimal, error) {
	if x.overflow {
		return x, nil
	}

	return Decimal{v: x.v.Abs()}, nil
}

func (x Decimal) Half() Decimal {
	if x.overflow {
		return x
	}

	return settle(x.v.Quo(decimalTwo))
}

func (x Decimal) Double() Decimal { return x.Add(x) }
func (x Decimal) Square() Decimal { return x.Mul(x) }

// viaFloat evaluates fn in float64 and converts the result back.
func (x Decimal) viaFloat(tag string, fn func(float64) float64) (Decimal, error) {
	if x.overflow {
		return Decimal{}, hyperErrorf("Decimal."+tag, ErrNonFinite)
	}
	f, ok := x.v.Float64()
	if !ok {
		return Decimal{}, hyperErrorf("Decimal."+tag, ErrNonFinite)
	}
	d, err := DecimalFromFloat64(fn(f))
	if err != nil {
		return Decimal{}, hyperErrorf("Decimal."+tag, ErrNonFinite)
	}

	return d, nil
}

func (x Decimal) Pow(o Decimal) (Decimal, error) {
	if o.overflow {
		return Decimal{}, hyperErrorf("Decimal.Pow", ErrNonFinite)
	}
	if !x.overflow && x.v.IsZero() && o.v.IsNeg() {
		return Decimal{}, hyperErrorf("Decimal.Pow", ErrNotInvertible)
	}
	p, ok := o.v.Float64()
	if !ok {
		return Decimal{}, hyperErrorf("Decimal.Pow", ErrNonFinite)
	}

	return x.viaFloat("Pow", func(f float64) float64 { return math.Pow(f, p) })
}

func (x Decimal) Sqrt() (Decimal, error) { return x.viaFloat("Sqrt", math.Sqrt) }
func (x Decimal) Exp() (Decimal, error)  { return x.viaFloat("Exp", math.Exp) }
func (x Decimal) Log() (Decimal, error)  { return x.viaFloat("Log", math.Log) }
func (x Decimal) Sin() (Decimal, error)  { return x.viaFloat("Sin", math.Sin) }
func (x Decimal) Cos() (Decimal, error)  { return x.viaFloat("Cos", math.Cos) }
func (x Decimal) Tan() (Decimal, error)  { return x.viaFloat("Tan", math.Tan) }
func (x Decimal) Sinh() (Decimal, error) { return x.viaFloat("Sinh", math.Sinh) }
func (x Decimal) Cosh() (Decimal, error) { return x.viaFloat("Cosh", math.Cosh) }
func (x Decimal) Tanh() (Decimal, error) { return x.viaFloat("Tanh", math.Tanh) }
func (x Decimal) Asin() (Decimal, error) { return x.viaFloat("Asin", math.Asin) }
func (x Decimal) Acos() (Decimal, error) { return x.viaFloat("Acos", math.Acos) }
func (x Decimal) Atan() (Decimal, error) { return x.viaFloat("Atan", math.Atan) }

func (x Decimal) IsInvertible() bool { return !x.overflow && !x.v.IsZero() }
func (x Decimal) IsFinite() bool     { return !x.overflow }
func (x Decimal) Dimension() int     { return 1 }

func (x Decimal) Factory() *Factory[Decimal] { return cachedFactory(decimalFactory) }

var decimalTwo = decimal.MustNew(2, 0)

func decimalFactory() *Factory[Decimal] {
	zero, one := Decimal{v: decimal.Zero}, Decimal{v: decimal.One}

	return NewFactory(Constants[Decimal]{
		Zero:            zero,
		RealOne:         one,
		SpecialOne:      one,
		UnitsOne:        one,
		NonRealUnitsOne: zero,
		CombinedOne:     one,
		AllOne:          one,
	}, func(realUnit, _, _, _ float64) Decimal {
		d, err := DecimalFromFloat64(realUnit)
		if err != nil {
			return Decimal{overflow: true}
		}

		return d
	})
}
