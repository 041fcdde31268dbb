// SPDX-License-Identifier: MIT

// Package hyper: helpers shared by the four pair types (Complex, Dual, Split,
// Diagonal). Everything here is algebra-independent: ordering, formatting and
// error chaining over the two components.
package hyper

import "fmt"

// comparePair orders (a, b) against (c, d) lexicographically: First, then Second.
func comparePair[T Number[T]](a, b, c, d T) int {
	if r := a.Compare(c); r != 0 {
		return r
	}

	return b.Compare(d)
}

// pairString renders a pair as "(first, second)"; nested pairs nest naturally.
func pairString(first, second any) string {
	return fmt.Sprintf("(%v, %v)", first, second)
}

// chain runs partial operations in sequence and keeps the first error.
// After a failure every further step is skipped and yields the zero T.
type chain[T Number[T]] struct {
	err error
}

// of evaluates f unless an earlier step already failed.
func (c *chain[T]) of(f func() (T, error)) T {
	var zero T
	if c.err != nil {
		return zero
	}
	v, err := f()
	if err != nil {
		c.err = err

		return zero
	}

	return v
}

// div evaluates x / y unless an earlier step already failed.
func (c *chain[T]) div(x, y T) T {
	return c.of(func() (T, error) { return x.Div(y) })
}

// pow evaluates x^y unless an earlier step already failed.
func (c *chain[T]) pow(x, y T) T {
	return c.of(func() (T, error) { return x.Pow(y) })
}

// isZero reports whether x is the additive identity of its type.
func isZero[T Number[T]](x T) bool {
	return x.Equals(x.Factory().Zero())
}

// zeroPow resolves 0^o: 1 when o is zero, 0 when o orders above zero, and
// ErrNotInvertible when o orders below zero, since that inverts the base.
func zeroPow[T Number[T]](tag string, o T) (T, error) {
	f := o.Factory()
	switch c := o.Compare(f.Zero()); {
	case c == 0:
		return f.RealOne(), nil
	case c < 0:
		return f.Zero(), hyperErrorf(tag, ErrNotInvertible)
	}

	return f.Zero(), nil
}

// maxNaturalExponent bounds the search in naturalExponent.
const maxNaturalExponent = 64

// naturalExponent reports whether o is the lift of an integer n in
// [1, maxNaturalExponent].
func naturalExponent[T Number[T]](o T) (int, bool) {
	f := o.Factory()
	for n := 1; n <= maxNaturalExponent; n++ {
		c := o.Compare(f.Create(float64(n), 0, 0, 0))
		if c == 0 {
			return n, true
		}
		if c < 0 {
			return 0, false
		}
	}

	return 0, false
}

// powNatural returns x^n for n ≥ 0 by square-and-multiply. It needs no
// inverse, so it is defined for zero divisors.
func powNatural[T Number[T]](x T, n int) T {
	acc := x.Factory().RealOne()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Mul(x)
		}
		x = x.Square()
	}

	return acc
}
