// SPDX-License-Identifier: MIT

// Package hyper: generic dispatch and algebra-independent identities.
//
// Purpose:
//   - Let code manipulate an arbitrary Number without static knowledge of its algebra
//     (Clone, Equals, Compare, Call, CallBinary).
//   - Express composite formulas once, over the whole doubled value, so every algebra
//     and every nesting depth reuses them (PowExpLog, SinhExp, CoshExp, TanhExp,
//     AsinLog, AcosLog, AtanLog).
package hyper

// Clone returns an independent copy of x.
func Clone[T Number[T]](x T) T { return x.Clone() }

// Equals reports whether x and y are equal component-wise.
func Equals[T Number[T]](x, y T) bool { return x.Equals(y) }

// Compare orders x and y lexicographically by component.
func Compare[T Number[T]](x, y T) int { return x.Compare(y) }

// Call applies the unary operation op to x.
// An out-of-range op yields ErrUnknownOperation.
func Call[T Number[T]](op UnaryOp, x T) (T, error) {
	switch op {
	case OpClone:
		return x.Clone(), nil
	case OpNeg:
		return x.Neg(), nil
	case OpInc:
		return x.Inc(), nil
	case OpDec:
		return x.Dec(), nil
	case OpInv:
		return x.Inv()
	case OpConj:
		return x.Conj(), nil
	case OpMod:
		return x.Mod()
	case OpHalf:
		return x.Half(), nil
	case OpDouble:
		return x.Double(), nil
	case OpSquare:
		return x.Square(), nil
	case OpSqrt:
		return x.Sqrt()
	case OpExp:
		return x.Exp()
	case OpLog:
		return x.Log()
	case OpSin:
		return x.Sin()
	case OpCos:
		return x.Cos()
	case OpTan:
		return x.Tan()
	case OpSinh:
		return x.Sinh()
	case OpCosh:
		return x.Cosh()
	case OpTanh:
		return x.Tanh()
	case OpAsin:
		return x.Asin()
	case OpAcos:
		return x.Acos()
	case OpAtan:
		return x.Atan()
	}

	var zero T

	return zero, hyperErrorf("Call "+op.String(), ErrUnknownOperation)
}

// CallBinary applies the binary operation op to (x, y).
func CallBinary[T Number[T]](op BinaryOp, x, y T) (T, error) {
	switch op {
	case OpAdd:
		return x.Add(y), nil
	case OpSub:
		return x.Sub(y), nil
	case OpMul:
		return x.Mul(y), nil
	case OpDiv:
		return x.Div(y)
	case OpPow:
		return x.Pow(y)
	}

	var zero T

	return zero, hyperErrorf("CallBinary "+op.String(), ErrUnknownOperation)
}

// PowExpLog computes x^y as exp(log(x)·y). Valid for any exponent of the same
// type; the domain of Log decides which bases are accepted.
func PowExpLog[T Number[T]](x, y T) (T, error) {
	l, err := x.Log()
	if err != nil {
		return l, err
	}

	return l.Mul(y).Exp()
}

// SinhExp computes (exp(x) − exp(−x)) / 2.
func SinhExp[T Number[T]](x T) (T, error) {
	pos, neg, err := expPair(x)
	if err != nil {
		return pos, err
	}

	return pos.Sub(neg).Half(), nil
}

// CoshExp computes (exp(x) + exp(−x)) / 2.
func CoshExp[T Number[T]](x T) (T, error) {
	pos, neg, err := expPair(x)
	if err != nil {
		return pos, err
	}

	return pos.Add(neg).Half(), nil
}

// TanhExp computes (exp(2x) − 1) / (exp(2x) + 1).
func TanhExp[T Number[T]](x T) (T, error) {
	e2, err := x.Double().Exp()
	if err != nil {
		return e2, err
	}

	return e2.Dec().Div(e2.Inc())
}

// AsinLog computes −i·log(i·x + sqrt(1 − x²)), where i is a unit with i² = −1.
func AsinLog[T Number[T]](x, i T) (T, error) {
	root, err := oneMinusSquareRoot(x)
	if err != nil {
		return root, err
	}
	l, err := i.Mul(x).Add(root).Log()
	if err != nil {
		return l, err
	}

	return i.Neg().Mul(l), nil
}

// AcosLog computes −i·log(x + i·sqrt(1 − x²)), where i is a unit with i² = −1.
func AcosLog[T Number[T]](x, i T) (T, error) {
	root, err := oneMinusSquareRoot(x)
	if err != nil {
		return root, err
	}
	l, err := x.Add(i.Mul(root)).Log()
	if err != nil {
		return l, err
	}

	return i.Neg().Mul(l), nil
}

// AtanLog computes (i/2)·log((i + x) / (i − x)), where i is a unit with i² = −1.
func AtanLog[T Number[T]](x, i T) (T, error) {
	q, err := i.Add(x).Div(i.Sub(x))
	if err != nil {
		return q, err
	}
	l, err := q.Log()
	if err != nil {
		return l, err
	}

	return i.Half().Mul(l), nil
}

// expPair returns exp(x) and exp(−x).
func expPair[T Number[T]](x T) (pos, neg T, err error) {
	if pos, err = x.Exp(); err != nil {
		return pos, neg, err
	}
	neg, err = x.Neg().Exp()

	return pos, neg, err
}

// oneMinusSquareRoot returns sqrt(1 − x²).
func oneMinusSquareRoot[T Number[T]](x T) (T, error) {
	one := FactoryOf[T]().RealOne()

	return one.Sub(x.Square()).Sqrt()
}
