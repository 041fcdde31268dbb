// SPDX-License-Identifier: MIT

package hyper

// Dual is the doubling First + Second·ε with ε² = 0.
//
// Every analytic function follows the first-order Taylor rule
// f(a + bε) = f(a) + f'(a)·b·ε, which makes Dual over Real a forward-mode
// automatic differentiation carrier: Second holds the derivative.
// Invertibility depends on First alone.
type Dual[T Number[T]] struct {
	First  T
	Second T
}

// NewDual returns first + second·ε.
func NewDual[T Number[T]](first, second T) Dual[T] {
	return Dual[T]{First: first, Second: second}
}

// DualOf lifts x to (x, 0).
func DualOf[T Number[T]](x T) Dual[T] {
	return Dual[T]{First: x, Second: FactoryOf[T]().Zero()}
}

// Variable returns (x, 1): the seed of a derivative with respect to x.
func Variable[T Number[T]](x T) Dual[T] {
	return Dual[T]{First: x, Second: FactoryOf[T]().RealOne()}
}

func (z Dual[T]) String() string { return pairString(z.First, z.Second) }

func (z Dual[T]) Clone() Dual[T] {
	return Dual[T]{First: z.First.Clone(), Second: z.Second.Clone()}
}

func (z Dual[T]) Equals(o Dual[T]) bool {
	return z.First.Equals(o.First) && z.Second.Equals(o.Second)
}

func (z Dual[T]) Compare(o Dual[T]) int {
	return comparePair(z.First, z.Second, o.First, o.Second)
}

func (z Dual[T]) Add(o Dual[T]) Dual[T] {
	return Dual[T]{First: z.First.Add(o.First), Second: z.Second.Add(o.Second)}
}

func (z Dual[T]) Sub(o Dual[T]) Dual[T] {
	return Dual[T]{First: z.First.Sub(o.First), Second: z.Second.Sub(o.Second)}
}

// Mul returns (ac, ad + bc); the bd term vanishes with ε².
func (z Dual[T]) Mul(o Dual[T]) Dual[T] {
	a, b, c, d := z.First, z.Second, o.First, o.Second

	return Dual[T]{First: a.Mul(c), Second: a.Mul(d).Add(b.Mul(c))}
}

// Div returns (a/c, (bc − ad)/c²).
//
// When neither First component is invertible the quotient is taken as the
// limit (0 + bε)/(0 + dε) = b/d, giving (b/d, 0). Any other non-invertible
// divisor yields ErrNotInvertible.
func (z Dual[T]) Div(o Dual[T]) (Dual[T], error) {
	a, b, c, d := z.First, z.Second, o.First, o.Second
	if !c.IsInvertible() {
		if a.IsInvertible() {
			return Dual[T]{}, hyperErrorf("Dual.Div", ErrNotInvertible)
		}
		q, err := b.Div(d)
		if err != nil {
			return Dual[T]{}, err
		}

		return Dual[T]{First: q, Second: FactoryOf[T]().Zero()}, nil
	}
	var ch chain[T]
	first := ch.div(a, c)
	second := ch.div(b.Mul(c).Sub(a.Mul(d)), c.Square())
	if ch.err != nil {
		return Dual[T]{}, ch.err
	}

	return Dual[T]{First: first, Second: second}, nil
}

// Inv returns (1/a, −b/a²).
func (z Dual[T]) Inv() (Dual[T], error) {
	if !z.IsInvertible() {
		return Dual[T]{}, hyperErrorf("Dual.Inv", ErrNotInvertible)
	}
	var c chain[T]
	inv := c.of(z.First.Inv)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: inv, Second: z.Second.Neg().Mul(inv.Square())}, nil
}

// Pow returns z^o = exp(log(z)·o). A zero base follows zeroPow. When a is
// not invertible log z does not exist, so only an exponent without an ε part
// is accepted and the Taylor form of PowInner applies.
func (z Dual[T]) Pow(o Dual[T]) (Dual[T], error) {
	if isZero(z) {
		return zeroPow("Dual.Pow", o)
	}
	if !z.IsInvertible() {
		if !isZero(o.Second) {
			return Dual[T]{}, hyperErrorf("Dual.Pow", ErrNotInvertible)
		}

		return z.PowInner(o.First)
	}

	return PowExpLog(z, o)
}

// PowInner returns (a^p, p·a^(p−1)·b); z^0 is 1.
func (z Dual[T]) PowInner(p T) (Dual[T], error) {
	if isZero(p) {
		return z.Factory().RealOne(), nil
	}
	var c chain[T]
	ap := c.pow(z.First, p)
	apm1 := c.pow(z.First, p.Dec())
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: ap, Second: p.Mul(apm1).Mul(z.Second)}, nil
}

func (z Dual[T]) AddInner(x T) Dual[T] { return Dual[T]{First: z.First.Add(x), Second: z.Second} }
func (z Dual[T]) SubInner(x T) Dual[T] { return Dual[T]{First: z.First.Sub(x), Second: z.Second} }

func (z Dual[T]) MulInner(x T) Dual[T] {
	return Dual[T]{First: z.First.Mul(x), Second: z.Second.Mul(x)}
}

func (z Dual[T]) DivInner(x T) (Dual[T], error) {
	var c chain[T]
	out := Dual[T]{First: c.div(z.First, x), Second: c.div(z.Second, x)}
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return out, nil
}

func (z Dual[T]) Neg() Dual[T] { return Dual[T]{First: z.First.Neg(), Second: z.Second.Neg()} }
func (z Dual[T]) Inc() Dual[T] { return Dual[T]{First: z.First.Inc(), Second: z.Second} }
func (z Dual[T]) Dec() Dual[T] { return Dual[T]{First: z.First.Dec(), Second: z.Second} }

// Conj returns (a, −b).
func (z Dual[T]) Conj() Dual[T] { return Dual[T]{First: z.First, Second: z.Second.Neg()} }

// Mod returns (|a|, a·b/|a|), the Taylor rule for the modulus. At a
// non-invertible |a| the one-sided directional derivative |b| is used.
func (z Dual[T]) Mod() (Dual[T], error) {
	var c chain[T]
	m := c.of(z.First.Mod)
	if c.err != nil {
		return Dual[T]{}, c.err
	}
	if !m.IsInvertible() {
		mb := c.of(z.Second.Mod)
		if c.err != nil {
			return Dual[T]{}, c.err
		}

		return Dual[T]{First: m, Second: mb}, nil
	}
	second := c.div(z.First.Mul(z.Second), m)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: m, Second: second}, nil
}

func (z Dual[T]) Half() Dual[T]   { return Dual[T]{First: z.First.Half(), Second: z.Second.Half()} }
func (z Dual[T]) Double() Dual[T] { return Dual[T]{First: z.First.Double(), Second: z.Second.Double()} }

// Square returns (a², 2ab).
func (z Dual[T]) Square() Dual[T] {
	return Dual[T]{First: z.First.Square(), Second: z.First.Mul(z.Second).Double()}
}

// taylor builds (f(a), f'(a)·b) from already evaluated f(a) and f'(a).
func (z Dual[T]) taylor(fa, dfa T) Dual[T] {
	return Dual[T]{First: fa, Second: dfa.Mul(z.Second)}
}

// Sqrt returns (sqrt a, b / (2·sqrt a)).
func (z Dual[T]) Sqrt() (Dual[T], error) {
	var c chain[T]
	r := c.of(z.First.Sqrt)
	if c.err != nil {
		return Dual[T]{}, c.err
	}
	second := c.div(z.Second, r.Double())
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: r, Second: second}, nil
}

// Exp returns (e^a, e^a·b).
func (z Dual[T]) Exp() (Dual[T], error) {
	e, err := z.First.Exp()
	if err != nil {
		return Dual[T]{}, err
	}

	return z.taylor(e, e), nil
}

// Log returns (log a, b/a).
func (z Dual[T]) Log() (Dual[T], error) {
	var c chain[T]
	l := c.of(z.First.Log)
	second := c.div(z.Second, z.First)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: l, Second: second}, nil
}

// Sin returns (sin a, cos a·b).
func (z Dual[T]) Sin() (Dual[T], error) {
	var c chain[T]
	s, co := c.of(z.First.Sin), c.of(z.First.Cos)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return z.taylor(s, co), nil
}

// Cos returns (cos a, −sin a·b).
func (z Dual[T]) Cos() (Dual[T], error) {
	var c chain[T]
	s, co := c.of(z.First.Sin), c.of(z.First.Cos)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return z.taylor(co, s.Neg()), nil
}

// Tan returns (tan a, b / cos² a).
func (z Dual[T]) Tan() (Dual[T], error) {
	var c chain[T]
	t, co := c.of(z.First.Tan), c.of(z.First.Cos)
	if c.err != nil {
		return Dual[T]{}, c.err
	}
	second := c.div(z.Second, co.Square())
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: t, Second: second}, nil
}

// Sinh returns (sinh a, cosh a·b).
func (z Dual[T]) Sinh() (Dual[T], error) {
	var c chain[T]
	sh, ch := c.of(z.First.Sinh), c.of(z.First.Cosh)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return z.taylor(sh, ch), nil
}

// Cosh returns (cosh a, sinh a·b).
func (z Dual[T]) Cosh() (Dual[T], error) {
	var c chain[T]
	sh, ch := c.of(z.First.Sinh), c.of(z.First.Cosh)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return z.taylor(ch, sh), nil
}

// Tanh returns (tanh a, b / cosh² a).
func (z Dual[T]) Tanh() (Dual[T], error) {
	var c chain[T]
	th, ch := c.of(z.First.Tanh), c.of(z.First.Cosh)
	if c.err != nil {
		return Dual[T]{}, c.err
	}
	second := c.div(z.Second, ch.Square())
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: th, Second: second}, nil
}

// Asin returns (asin a, b / sqrt(1 − a²)).
func (z Dual[T]) Asin() (Dual[T], error) {
	var c chain[T]
	as := c.of(z.First.Asin)
	root := c.of(func() (T, error) { return oneMinusSquareRoot(z.First) })
	second := c.div(z.Second, root)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: as, Second: second}, nil
}

// Acos returns (acos a, −b / sqrt(1 − a²)).
func (z Dual[T]) Acos() (Dual[T], error) {
	var c chain[T]
	ac := c.of(z.First.Acos)
	root := c.of(func() (T, error) { return oneMinusSquareRoot(z.First) })
	second := c.div(z.Second.Neg(), root)
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: ac, Second: second}, nil
}

// Atan returns (atan a, b / (1 + a²)).
func (z Dual[T]) Atan() (Dual[T], error) {
	var c chain[T]
	at := c.of(z.First.Atan)
	second := c.div(z.Second, z.First.Square().Inc())
	if c.err != nil {
		return Dual[T]{}, c.err
	}

	return Dual[T]{First: at, Second: second}, nil
}

// IsInvertible depends on First only; the nilpotent part never helps or hurts.
func (z Dual[T]) IsInvertible() bool { return z.First.IsInvertible() }

func (z Dual[T]) IsFinite() bool { return z.First.IsFinite() && z.Second.IsFinite() }

func (z Dual[T]) Dimension() int {
	return cachedDimension[Dual[T]](func() int { return 2 * DimensionOf[T]() })
}

func (z Dual[T]) Factory() *Factory[Dual[T]] {
	return cachedFactory(func() *Factory[Dual[T]] { return doubledFactory(NewDual[T]) })
}
