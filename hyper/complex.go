// SPDX-License-Identifier: MIT

package hyper

import "math"

// Complex is the doubling First + Second·i with i² = −1.
//
// Over Real it is the ordinary complex plane; over any other Number it is the
// corresponding Cayley–Dickson step (bicomplex, complex-dual, ...). Every
// transcendental uses the usual complex-analytic identity with the inner
// type's own operations, so errors from the inner level surface unchanged.
type Complex[T Number[T]] struct {
	First  T
	Second T
}

// NewComplex returns first + second·i.
func NewComplex[T Number[T]](first, second T) Complex[T] {
	return Complex[T]{First: first, Second: second}
}

// ComplexOf lifts x to (x, 0).
func ComplexOf[T Number[T]](x T) Complex[T] {
	return Complex[T]{First: x, Second: FactoryOf[T]().Zero()}
}

func (z Complex[T]) String() string { return pairString(z.First, z.Second) }

func (z Complex[T]) Clone() Complex[T] {
	return Complex[T]{First: z.First.Clone(), Second: z.Second.Clone()}
}

func (z Complex[T]) Equals(o Complex[T]) bool {
	return z.First.Equals(o.First) && z.Second.Equals(o.Second)
}

func (z Complex[T]) Compare(o Complex[T]) int {
	return comparePair(z.First, z.Second, o.First, o.Second)
}

func (z Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{First: z.First.Add(o.First), Second: z.Second.Add(o.Second)}
}

func (z Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{First: z.First.Sub(o.First), Second: z.Second.Sub(o.Second)}
}

// Mul returns (ac − bd, ad + bc).
func (z Complex[T]) Mul(o Complex[T]) Complex[T] {
	a, b, c, d := z.First, z.Second, o.First, o.Second

	return Complex[T]{
		First:  a.Mul(c).Sub(b.Mul(d)),
		Second: a.Mul(d).Add(b.Mul(c)),
	}
}

// Div returns ((ac+bd)/(c²+d²), (bc−ad)/(c²+d²)).
func (z Complex[T]) Div(o Complex[T]) (Complex[T], error) {
	if !o.IsInvertible() {
		return Complex[T]{}, hyperErrorf("Complex.Div", ErrNotInvertible)
	}
	a, b, c, d := z.First, z.Second, o.First, o.Second
	inv, err := c.Square().Add(d.Square()).Inv()
	if err != nil {
		return Complex[T]{}, err
	}

	return Complex[T]{
		First:  a.Mul(c).Add(b.Mul(d)).Mul(inv),
		Second: b.Mul(c).Sub(a.Mul(d)).Mul(inv),
	}, nil
}

// Inv returns (a/(a²+b²), −b/(a²+b²)).
func (z Complex[T]) Inv() (Complex[T], error) {
	if !z.IsInvertible() {
		return Complex[T]{}, hyperErrorf("Complex.Inv", ErrNotInvertible)
	}
	inv, err := z.First.Square().Add(z.Second.Square()).Inv()
	if err != nil {
		return Complex[T]{}, err
	}

	return Complex[T]{First: z.First.Mul(inv), Second: z.Second.Neg().Mul(inv)}, nil
}

// Pow returns z^o = exp(log(z)·o). A zero base follows zeroPow; any other
// non-invertible base is only raised to natural exponents.
func (z Complex[T]) Pow(o Complex[T]) (Complex[T], error) {
	if isZero(z) {
		return zeroPow("Complex.Pow", o)
	}
	if !z.IsInvertible() {
		n, ok := naturalExponent(o)
		if !ok {
			return Complex[T]{}, hyperErrorf("Complex.Pow", ErrNotInvertible)
		}

		return powNatural(z, n), nil
	}

	return PowExpLog(z, o)
}

// PowInner raises z to an inner-type exponent in polar form: |z|^p·(cos pθ, sin pθ).
func (z Complex[T]) PowInner(p T) (Complex[T], error) {
	if !z.IsInvertible() {
		return z.Pow(ComplexOf(p))
	}
	var c chain[T]
	mag := c.of(z.Magnitude)
	theta := c.of(z.Argument)
	if c.err != nil {
		return Complex[T]{}, c.err
	}
	r := c.pow(mag, p)
	angle := theta.Mul(p)
	cos, sin := c.of(angle.Cos), c.of(angle.Sin)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: r.Mul(cos), Second: r.Mul(sin)}, nil
}

func (z Complex[T]) AddInner(x T) Complex[T] {
	return Complex[T]{First: z.First.Add(x), Second: z.Second}
}

func (z Complex[T]) SubInner(x T) Complex[T] {
	return Complex[T]{First: z.First.Sub(x), Second: z.Second}
}

func (z Complex[T]) MulInner(x T) Complex[T] {
	return Complex[T]{First: z.First.Mul(x), Second: z.Second.Mul(x)}
}

func (z Complex[T]) DivInner(x T) (Complex[T], error) {
	var c chain[T]
	out := Complex[T]{First: c.div(z.First, x), Second: c.div(z.Second, x)}
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return out, nil
}

func (z Complex[T]) Neg() Complex[T] {
	return Complex[T]{First: z.First.Neg(), Second: z.Second.Neg()}
}

func (z Complex[T]) Inc() Complex[T] { return Complex[T]{First: z.First.Inc(), Second: z.Second} }
func (z Complex[T]) Dec() Complex[T] { return Complex[T]{First: z.First.Dec(), Second: z.Second} }

// Conj returns (a, −b).
func (z Complex[T]) Conj() Complex[T] {
	return Complex[T]{First: z.First, Second: z.Second.Neg()}
}

// Mod returns sqrt(z·conj(z)) = (sqrt(a²+b²), 0).
func (z Complex[T]) Mod() (Complex[T], error) {
	m, err := z.Magnitude()
	if err != nil {
		return Complex[T]{}, err
	}

	return ComplexOf(m), nil
}

// Magnitude returns sqrt(a² + b²) in the inner type.
func (z Complex[T]) Magnitude() (T, error) {
	return z.First.Square().Add(z.Second.Square()).Sqrt()
}

// Argument returns atan2(b, a) in the inner type, or zero when z is not invertible.
// It uses the half-angle form 2·atan(b / (|z| + a)). Where |z| + a vanishes
// (the negative real axis, or b too small to register) the result is ±π with
// the sign of b.
func (z Complex[T]) Argument() (T, error) {
	f := FactoryOf[T]()
	if !z.IsInvertible() {
		return f.Zero(), nil
	}
	mag, err := z.Magnitude()
	if err != nil {
		return mag, err
	}
	s := mag.Add(z.First)
	if !s.IsInvertible() {
		if z.Second.Compare(f.Zero()) < 0 {
			return f.Create(-math.Pi, 0, 0, 0), nil
		}

		return f.Create(math.Pi, 0, 0, 0), nil
	}
	t, err := z.Second.Div(s)
	if err != nil {
		return t, err
	}
	at, err := t.Atan()
	if err != nil {
		return at, err
	}

	return at.Double(), nil
}

func (z Complex[T]) Half() Complex[T] {
	return Complex[T]{First: z.First.Half(), Second: z.Second.Half()}
}

func (z Complex[T]) Double() Complex[T] {
	return Complex[T]{First: z.First.Double(), Second: z.Second.Double()}
}

// Square returns (a² − b², 2ab).
func (z Complex[T]) Square() Complex[T] {
	return Complex[T]{
		First:  z.First.Square().Sub(z.Second.Square()),
		Second: z.First.Mul(z.Second).Double(),
	}
}

// Sqrt uses the polar form sqrt(|z|)·(cos θ/2, sin θ/2); sqrt(0) = 0.
func (z Complex[T]) Sqrt() (Complex[T], error) {
	if !z.IsInvertible() {
		return z.Factory().Zero(), nil
	}
	var c chain[T]
	mag := c.of(z.Magnitude)
	theta := c.of(z.Argument)
	if c.err != nil {
		return Complex[T]{}, c.err
	}
	half := theta.Half()
	r, cos, sin := c.of(mag.Sqrt), c.of(half.Cos), c.of(half.Sin)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: r.Mul(cos), Second: r.Mul(sin)}, nil
}

// Exp returns e^a·(cos b, sin b).
func (z Complex[T]) Exp() (Complex[T], error) {
	var c chain[T]
	ea, cos, sin := c.of(z.First.Exp), c.of(z.Second.Cos), c.of(z.Second.Sin)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: ea.Mul(cos), Second: ea.Mul(sin)}, nil
}

// Log returns (log|z|, arg z); ErrNotInvertible for zero.
func (z Complex[T]) Log() (Complex[T], error) {
	if !z.IsInvertible() {
		return Complex[T]{}, hyperErrorf("Complex.Log", ErrNotInvertible)
	}
	var c chain[T]
	mag := c.of(z.Magnitude)
	theta := c.of(z.Argument)
	lm := c.of(mag.Log)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: lm, Second: theta}, nil
}

// Sin returns (sin a·cosh b, cos a·sinh b).
func (z Complex[T]) Sin() (Complex[T], error) {
	var c chain[T]
	sa, ca := c.of(z.First.Sin), c.of(z.First.Cos)
	shb, chb := c.of(z.Second.Sinh), c.of(z.Second.Cosh)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: sa.Mul(chb), Second: ca.Mul(shb)}, nil
}

// Cos returns (cos a·cosh b, −sin a·sinh b).
func (z Complex[T]) Cos() (Complex[T], error) {
	var c chain[T]
	sa, ca := c.of(z.First.Sin), c.of(z.First.Cos)
	shb, chb := c.of(z.Second.Sinh), c.of(z.Second.Cosh)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: ca.Mul(chb), Second: sa.Mul(shb).Neg()}, nil
}

// Tan returns (sin 2a, sinh 2b) / (cos 2a + cosh 2b).
func (z Complex[T]) Tan() (Complex[T], error) {
	var c chain[T]
	a2, b2 := z.First.Double(), z.Second.Double()
	s, co := c.of(a2.Sin), c.of(a2.Cos)
	sh, ch := c.of(b2.Sinh), c.of(b2.Cosh)
	if c.err != nil {
		return Complex[T]{}, c.err
	}
	den := co.Add(ch)
	out := Complex[T]{First: c.div(s, den), Second: c.div(sh, den)}
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return out, nil
}

// Sinh returns (sinh a·cos b, cosh a·sin b).
func (z Complex[T]) Sinh() (Complex[T], error) {
	var c chain[T]
	sha, cha := c.of(z.First.Sinh), c.of(z.First.Cosh)
	sb, cb := c.of(z.Second.Sin), c.of(z.Second.Cos)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: sha.Mul(cb), Second: cha.Mul(sb)}, nil
}

// Cosh returns (cosh a·cos b, sinh a·sin b).
func (z Complex[T]) Cosh() (Complex[T], error) {
	var c chain[T]
	sha, cha := c.of(z.First.Sinh), c.of(z.First.Cosh)
	sb, cb := c.of(z.Second.Sin), c.of(z.Second.Cos)
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return Complex[T]{First: cha.Mul(cb), Second: sha.Mul(sb)}, nil
}

// Tanh returns (sinh 2a, sin 2b) / (cosh 2a + cos 2b).
func (z Complex[T]) Tanh() (Complex[T], error) {
	var c chain[T]
	a2, b2 := z.First.Double(), z.Second.Double()
	sh, ch := c.of(a2.Sinh), c.of(a2.Cosh)
	s, co := c.of(b2.Sin), c.of(b2.Cos)
	if c.err != nil {
		return Complex[T]{}, c.err
	}
	den := ch.Add(co)
	out := Complex[T]{First: c.div(sh, den), Second: c.div(s, den)}
	if c.err != nil {
		return Complex[T]{}, c.err
	}

	return out, nil
}

func (z Complex[T]) Asin() (Complex[T], error) { return AsinLog(z, z.Factory().SpecialOne()) }
func (z Complex[T]) Acos() (Complex[T], error) { return AcosLog(z, z.Factory().SpecialOne()) }
func (z Complex[T]) Atan() (Complex[T], error) { return AtanLog(z, z.Factory().SpecialOne()) }

// IsInvertible reports whether either component is invertible.
func (z Complex[T]) IsInvertible() bool {
	return z.First.IsInvertible() || z.Second.IsInvertible()
}

func (z Complex[T]) IsFinite() bool { return z.First.IsFinite() && z.Second.IsFinite() }

func (z Complex[T]) Dimension() int {
	return cachedDimension[Complex[T]](func() int { return 2 * DimensionOf[T]() })
}

func (z Complex[T]) Factory() *Factory[Complex[T]] {
	return cachedFactory(func() *Factory[Complex[T]] { return doubledFactory(NewComplex[T]) })
}
