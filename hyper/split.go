// SPDX-License-Identifier: MIT

package hyper

// Split is the doubling First + Second·j with j² = +1 (split-complex,
// hyperbolic numbers).
//
// The circular family (Sin, Cos, Tan, Asin, Acos, Atan) and Sqrt have no
// closed form in the general nested case and return ErrUnsupported.
// Exp, Log and the hyperbolic family use hyperbolic identities.
type Split[T Number[T]] struct {
	First  T
	Second T
}

// NewSplit returns first + second·j.
func NewSplit[T Number[T]](first, second T) Split[T] {
	return Split[T]{First: first, Second: second}
}

// SplitOf lifts x to (x, 0).
func SplitOf[T Number[T]](x T) Split[T] {
	return Split[T]{First: x, Second: FactoryOf[T]().Zero()}
}

func (z Split[T]) String() string { return pairString(z.First, z.Second) }

func (z Split[T]) Clone() Split[T] {
	return Split[T]{First: z.First.Clone(), Second: z.Second.Clone()}
}

func (z Split[T]) Equals(o Split[T]) bool {
	return z.First.Equals(o.First) && z.Second.Equals(o.Second)
}

func (z Split[T]) Compare(o Split[T]) int {
	return comparePair(z.First, z.Second, o.First, o.Second)
}

func (z Split[T]) Add(o Split[T]) Split[T] {
	return Split[T]{First: z.First.Add(o.First), Second: z.Second.Add(o.Second)}
}

func (z Split[T]) Sub(o Split[T]) Split[T] {
	return Split[T]{First: z.First.Sub(o.First), Second: z.Second.Sub(o.Second)}
}

// Mul returns (ac + bd, ad + bc).
func (z Split[T]) Mul(o Split[T]) Split[T] {
	a, b, c, d := z.First, z.Second, o.First, o.Second

	return Split[T]{
		First:  a.Mul(c).Add(b.Mul(d)),
		Second: a.Mul(d).Add(b.Mul(c)),
	}
}

// norm returns a² − b², the value z·conj(z) carries in First.
func (z Split[T]) norm() T { return z.First.Square().Sub(z.Second.Square()) }

// Div returns ((ac − bd)/(c² − d²), (bc − ad)/(c² − d²)).
func (z Split[T]) Div(o Split[T]) (Split[T], error) {
	if !o.IsInvertible() {
		return Split[T]{}, hyperErrorf("Split.Div", ErrNotInvertible)
	}
	a, b, c, d := z.First, z.Second, o.First, o.Second
	inv, err := o.norm().Inv()
	if err != nil {
		return Split[T]{}, err
	}

	return Split[T]{
		First:  a.Mul(c).Sub(b.Mul(d)).Mul(inv),
		Second: b.Mul(c).Sub(a.Mul(d)).Mul(inv),
	}, nil
}

// Inv returns (a, −b) / (a² − b²).
func (z Split[T]) Inv() (Split[T], error) {
	if !z.IsInvertible() {
		return Split[T]{}, hyperErrorf("Split.Inv", ErrNotInvertible)
	}
	inv, err := z.norm().Inv()
	if err != nil {
		return Split[T]{}, err
	}

	return Split[T]{First: z.First.Mul(inv), Second: z.Second.Neg().Mul(inv)}, nil
}

// Pow works in the null basis u = a+b, v = a−b, where multiplication is
// component-wise: z^o = (u^(c+d), v^(c−d)) mapped back. Light-cone bases are
// accepted wherever the inner power is. A zero base follows zeroPow.
func (z Split[T]) Pow(o Split[T]) (Split[T], error) {
	if isZero(z) {
		return zeroPow("Split.Pow", o)
	}
	pu, pv := o.null()

	return z.powNull(pu, pv)
}

// null returns the null-basis coordinates (a+b, a−b).
func (z Split[T]) null() (T, T) {
	return z.First.Add(z.Second), z.First.Sub(z.Second)
}

func (z Split[T]) powNull(pu, pv T) (Split[T], error) {
	u, v := z.null()
	var c chain[T]
	fu, fv := c.pow(u, pu), c.pow(v, pv)
	if c.err != nil {
		return Split[T]{}, c.err
	}

	return Split[T]{First: fu.Add(fv).Half(), Second: fu.Sub(fv).Half()}, nil
}

func (z Split[T]) AddInner(x T) Split[T] { return Split[T]{First: z.First.Add(x), Second: z.Second} }
func (z Split[T]) SubInner(x T) Split[T] { return Split[T]{First: z.First.Sub(x), Second: z.Second} }

func (z Split[T]) MulInner(x T) Split[T] {
	return Split[T]{First: z.First.Mul(x), Second: z.Second.Mul(x)}
}

func (z Split[T]) DivInner(x T) (Split[T], error) {
	var c chain[T]
	out := Split[T]{First: c.div(z.First, x), Second: c.div(z.Second, x)}
	if c.err != nil {
		return Split[T]{}, c.err
	}

	return out, nil
}

// PowInner returns z^p for an inner-type exponent: (u^p, v^p) in the null basis.
func (z Split[T]) PowInner(p T) (Split[T], error) {
	if isZero(z) {
		return zeroPow("Split.PowInner", SplitOf(p))
	}

	return z.powNull(p, p)
}

func (z Split[T]) Neg() Split[T] { return Split[T]{First: z.First.Neg(), Second: z.Second.Neg()} }
func (z Split[T]) Inc() Split[T] { return Split[T]{First: z.First.Inc(), Second: z.Second} }
func (z Split[T]) Dec() Split[T] { return Split[T]{First: z.First.Dec(), Second: z.Second} }

// Conj returns (a, −b).
func (z Split[T]) Conj() Split[T] { return Split[T]{First: z.First, Second: z.Second.Neg()} }

// Mod returns sqrt(z·conj(z)) = (sqrt(a² − b²), 0), the square root taken in the inner type.
func (z Split[T]) Mod() (Split[T], error) {
	m, err := z.norm().Sqrt()
	if err != nil {
		return Split[T]{}, err
	}

	return SplitOf(m), nil
}

func (z Split[T]) Half() Split[T] { return Split[T]{First: z.First.Half(), Second: z.Second.Half()} }

func (z Split[T]) Double() Split[T] {
	return Split[T]{First: z.First.Double(), Second: z.Second.Double()}
}

// Square returns (a² + b², 2ab).
func (z Split[T]) Square() Split[T] {
	return Split[T]{
		First:  z.First.Square().Add(z.Second.Square()),
		Second: z.First.Mul(z.Second).Double(),
	}
}

// Exp returns e^a·(cosh b, sinh b).
func (z Split[T]) Exp() (Split[T], error) {
	var c chain[T]
	ea, ch, sh := c.of(z.First.Exp), c.of(z.Second.Cosh), c.of(z.Second.Sinh)
	if c.err != nil {
		return Split[T]{}, c.err
	}

	return Split[T]{First: ea.Mul(ch), Second: ea.Mul(sh)}, nil
}

// Log returns (½·log(a² − b²), atanh(b/a)), with the hyperbolic angle written
// as ½·log((a + b)/(a − b)).
func (z Split[T]) Log() (Split[T], error) {
	if !z.IsInvertible() {
		return Split[T]{}, hyperErrorf("Split.Log", ErrNotInvertible)
	}
	var c chain[T]
	n := z.norm()
	ln := c.of(n.Log)
	q := c.div(z.First.Add(z.Second), z.First.Sub(z.Second))
	if c.err != nil {
		return Split[T]{}, c.err
	}
	angle := c.of(q.Log)
	if c.err != nil {
		return Split[T]{}, c.err
	}

	return Split[T]{First: ln.Half(), Second: angle.Half()}, nil
}

func (z Split[T]) Sinh() (Split[T], error) { return SinhExp(z) }
func (z Split[T]) Cosh() (Split[T], error) { return CoshExp(z) }
func (z Split[T]) Tanh() (Split[T], error) { return TanhExp(z) }

func (z Split[T]) Sqrt() (Split[T], error) { return Split[T]{}, hyperErrorf("Split.Sqrt", ErrUnsupported) }
func (z Split[T]) Sin() (Split[T], error)  { return Split[T]{}, hyperErrorf("Split.Sin", ErrUnsupported) }
func (z Split[T]) Cos() (Split[T], error)  { return Split[T]{}, hyperErrorf("Split.Cos", ErrUnsupported) }
func (z Split[T]) Tan() (Split[T], error)  { return Split[T]{}, hyperErrorf("Split.Tan", ErrUnsupported) }
func (z Split[T]) Asin() (Split[T], error) { return Split[T]{}, hyperErrorf("Split.Asin", ErrUnsupported) }
func (z Split[T]) Acos() (Split[T], error) { return Split[T]{}, hyperErrorf("Split.Acos", ErrUnsupported) }
func (z Split[T]) Atan() (Split[T], error) { return Split[T]{}, hyperErrorf("Split.Atan", ErrUnsupported) }

// IsInvertible reports whether a² − b² is invertible; the light-cone a = ±b
// consists of zero divisors.
func (z Split[T]) IsInvertible() bool { return z.norm().IsInvertible() }

func (z Split[T]) IsFinite() bool { return z.First.IsFinite() && z.Second.IsFinite() }

func (z Split[T]) Dimension() int {
	return cachedDimension[Split[T]](func() int { return 2 * DimensionOf[T]() })
}

func (z Split[T]) Factory() *Factory[Split[T]] {
	return cachedFactory(func() *Factory[Split[T]] { return doubledFactory(NewSplit[T]) })
}
