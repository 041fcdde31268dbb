// SPDX-License-Identifier: MIT

package hyper

// Diagonal is the doubling First + Second·k with k² = k (idempotent unit).
//
// In the idempotent basis {1 − k, k} a value is the pair of eigen-components
// (a, a + b) and multiplication acts on each independently. Every unary
// function f is therefore evaluated as f(a) and f(a + b) and converted back:
// (f(a), f(a + b) − f(a)).
type Diagonal[T Number[T]] struct {
	First  T
	Second T
}

// NewDiagonal returns first + second·k.
func NewDiagonal[T Number[T]](first, second T) Diagonal[T] {
	return Diagonal[T]{First: first, Second: second}
}

// DiagonalOf lifts x to (x, 0).
func DiagonalOf[T Number[T]](x T) Diagonal[T] {
	return Diagonal[T]{First: x, Second: FactoryOf[T]().Zero()}
}

// FromEigen builds the value whose eigen-components are lo (on 1 − k) and hi (on k).
func FromEigen[T Number[T]](lo, hi T) Diagonal[T] {
	return Diagonal[T]{First: lo, Second: hi.Sub(lo)}
}

// Eigen returns the eigen-components (a, a + b).
func (z Diagonal[T]) Eigen() (lo, hi T) {
	return z.First, z.First.Add(z.Second)
}

// apply evaluates op on both eigen-components.
func (z Diagonal[T]) apply(op UnaryOp) (Diagonal[T], error) {
	lo, hi := z.Eigen()
	var c chain[T]
	flo := c.of(func() (T, error) { return Call(op, lo) })
	fhi := c.of(func() (T, error) { return Call(op, hi) })
	if c.err != nil {
		return Diagonal[T]{}, c.err
	}

	return FromEigen(flo, fhi), nil
}

func (z Diagonal[T]) String() string { return pairString(z.First, z.Second) }

func (z Diagonal[T]) Clone() Diagonal[T] {
	return Diagonal[T]{First: z.First.Clone(), Second: z.Second.Clone()}
}

func (z Diagonal[T]) Equals(o Diagonal[T]) bool {
	return z.First.Equals(o.First) && z.Second.Equals(o.Second)
}

func (z Diagonal[T]) Compare(o Diagonal[T]) int {
	return comparePair(z.First, z.Second, o.First, o.Second)
}

func (z Diagonal[T]) Add(o Diagonal[T]) Diagonal[T] {
	return Diagonal[T]{First: z.First.Add(o.First), Second: z.Second.Add(o.Second)}
}

func (z Diagonal[T]) Sub(o Diagonal[T]) Diagonal[T] {
	return Diagonal[T]{First: z.First.Sub(o.First), Second: z.Second.Sub(o.Second)}
}

// Mul returns (ac, ad + bc + bd).
func (z Diagonal[T]) Mul(o Diagonal[T]) Diagonal[T] {
	a, b, c, d := z.First, z.Second, o.First, o.Second

	return Diagonal[T]{
		First:  a.Mul(c),
		Second: a.Mul(d).Add(b.Mul(c)).Add(b.Mul(d)),
	}
}

// Div returns (a/c, (b − a·d/c)/(c + d)).
func (z Diagonal[T]) Div(o Diagonal[T]) (Diagonal[T], error) {
	if !o.IsInvertible() {
		return Diagonal[T]{}, hyperErrorf("Diagonal.Div", ErrNotInvertible)
	}
	a, b, c, d := z.First, z.Second, o.First, o.Second
	var ch chain[T]
	first := ch.div(a, c)
	second := ch.div(b.Sub(ch.div(a.Mul(d), c)), c.Add(d))
	if ch.err != nil {
		return Diagonal[T]{}, ch.err
	}

	return Diagonal[T]{First: first, Second: second}, nil
}

// Inv returns (1/a, 1/(a + b) − 1/a).
func (z Diagonal[T]) Inv() (Diagonal[T], error) {
	if !z.IsInvertible() {
		return Diagonal[T]{}, hyperErrorf("Diagonal.Inv", ErrNotInvertible)
	}

	return z.apply(OpInv)
}

// Pow raises each eigen-component independently: (a^c, (a+b)^(c+d) − a^c).
func (z Diagonal[T]) Pow(o Diagonal[T]) (Diagonal[T], error) {
	lo, hi := z.Eigen()
	plo, phi := o.Eigen()
	var c chain[T]
	flo, fhi := c.pow(lo, plo), c.pow(hi, phi)
	if c.err != nil {
		return Diagonal[T]{}, c.err
	}

	return FromEigen(flo, fhi), nil
}

// PowInner returns (a^p, (a+b)^p − a^p).
func (z Diagonal[T]) PowInner(p T) (Diagonal[T], error) {
	lo, hi := z.Eigen()
	var c chain[T]
	flo, fhi := c.pow(lo, p), c.pow(hi, p)
	if c.err != nil {
		return Diagonal[T]{}, c.err
	}

	return FromEigen(flo, fhi), nil
}

func (z Diagonal[T]) AddInner(x T) Diagonal[T] {
	return Diagonal[T]{First: z.First.Add(x), Second: z.Second}
}

func (z Diagonal[T]) SubInner(x T) Diagonal[T] {
	return Diagonal[T]{First: z.First.Sub(x), Second: z.Second}
}

func (z Diagonal[T]) MulInner(x T) Diagonal[T] {
	return Diagonal[T]{First: z.First.Mul(x), Second: z.Second.Mul(x)}
}

func (z Diagonal[T]) DivInner(x T) (Diagonal[T], error) {
	var c chain[T]
	out := Diagonal[T]{First: c.div(z.First, x), Second: c.div(z.Second, x)}
	if c.err != nil {
		return Diagonal[T]{}, c.err
	}

	return out, nil
}

func (z Diagonal[T]) Neg() Diagonal[T] {
	return Diagonal[T]{First: z.First.Neg(), Second: z.Second.Neg()}
}

func (z Diagonal[T]) Inc() Diagonal[T] { return Diagonal[T]{First: z.First.Inc(), Second: z.Second} }
func (z Diagonal[T]) Dec() Diagonal[T] { return Diagonal[T]{First: z.First.Dec(), Second: z.Second} }

// Conj swaps the eigen-components: (a + b, −b).
func (z Diagonal[T]) Conj() Diagonal[T] {
	lo, hi := z.Eigen()

	return FromEigen(hi, lo)
}

func (z Diagonal[T]) Half() Diagonal[T] {
	return Diagonal[T]{First: z.First.Half(), Second: z.Second.Half()}
}

func (z Diagonal[T]) Double() Diagonal[T] {
	return Diagonal[T]{First: z.First.Double(), Second: z.Second.Double()}
}

// Square returns (a², (a+b)² − a²).
func (z Diagonal[T]) Square() Diagonal[T] {
	lo, hi := z.Eigen()

	return FromEigen(lo.Square(), hi.Square())
}

func (z Diagonal[T]) Mod() (Diagonal[T], error)  { return z.apply(OpMod) }
func (z Diagonal[T]) Sqrt() (Diagonal[T], error) { return z.apply(OpSqrt) }
func (z Diagonal[T]) Exp() (Diagonal[T], error)  { return z.apply(OpExp) }
func (z Diagonal[T]) Log() (Diagonal[T], error)  { return z.apply(OpLog) }
func (z Diagonal[T]) Sin() (Diagonal[T], error)  { return z.apply(OpSin) }
func (z Diagonal[T]) Cos() (Diagonal[T], error)  { return z.apply(OpCos) }
func (z Diagonal[T]) Tan() (Diagonal[T], error)  { return z.apply(OpTan) }
func (z Diagonal[T]) Sinh() (Diagonal[T], error) { return z.apply(OpSinh) }
func (z Diagonal[T]) Cosh() (Diagonal[T], error) { return z.apply(OpCosh) }
func (z Diagonal[T]) Tanh() (Diagonal[T], error) { return z.apply(OpTanh) }
func (z Diagonal[T]) Asin() (Diagonal[T], error) { return z.apply(OpAsin) }
func (z Diagonal[T]) Acos() (Diagonal[T], error) { return z.apply(OpAcos) }
func (z Diagonal[T]) Atan() (Diagonal[T], error) { return z.apply(OpAtan) }

// IsInvertible requires both eigen-components a and a + b to be invertible.
func (z Diagonal[T]) IsInvertible() bool {
	lo, hi := z.Eigen()

	return lo.IsInvertible() && hi.IsInvertible()
}

func (z Diagonal[T]) IsFinite() bool { return z.First.IsFinite() && z.Second.IsFinite() }

func (z Diagonal[T]) Dimension() int {
	return cachedDimension[Diagonal[T]](func() int { return 2 * DimensionOf[T]() })
}

func (z Diagonal[T]) Factory() *Factory[Diagonal[T]] {
	return cachedFactory(func() *Factory[Diagonal[T]] { return doubledFactory(NewDiagonal[T]) })
}
