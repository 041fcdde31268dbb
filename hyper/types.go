// SPDX-License-Identifier: MIT

// Package hyper: the capability contract shared by every number type.
// This file holds ONLY the contract (Number), the operation enums used by the
// generic dispatcher, and their String forms. Factories live in factory.go.
package hyper

// Number is the capability contract every participating type satisfies, at
// any nesting level. T is the implementing type itself, so Complex[T] is a
// Number[Complex[T]] whenever T is a Number[T]; doubling is closed under the
// contract and can be nested arbitrarily deep.
//
// Total operations return T. Partial operations return (T, error), where the
// error matches ErrUnsupported, ErrNotInvertible or ErrNonFinite via errors.Is.
//
// The zero value of an implementing type must be a usable receiver: it is used
// to reach Factory and Dimension without an instance at hand.
type Number[T any] interface {
	// Clone returns an independent copy. A no-op for pure value types.
	Clone() T
	// Equals reports component-wise equality.
	Equals(other T) bool
	// Compare returns -1, 0 or +1; the order is total and consistent with Equals.
	Compare(other T) int

	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) (T, error)
	Pow(other T) (T, error)

	Neg() T
	Inc() T
	Dec() T
	Inv() (T, error)
	Conj() T
	Mod() (T, error)

	Half() T
	Double() T
	Square() T
	Sqrt() (T, error)
	Exp() (T, error)
	Log() (T, error)
	Sin() (T, error)
	Cos() (T, error)
	Tan() (T, error)
	Sinh() (T, error)
	Cosh() (T, error)
	Tanh() (T, error)
	Asin() (T, error)
	Acos() (T, error)
	Atan() (T, error)

	IsInvertible() bool
	IsFinite() bool
	// Dimension is the number of primitive components; it depends on the type only.
	Dimension() int
	// Factory exposes the seven canonical constants of the type.
	Factory() *Factory[T]
}

// UnaryOp names a single-operand operation of the contract.
type UnaryOp uint8

// Unary operations, in contract order.
const (
	OpClone UnaryOp = iota
	OpNeg
	OpInc
	OpDec
	OpInv
	OpConj
	OpMod
	OpHalf
	OpDouble
	OpSquare
	OpSqrt
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpSinh
	OpCosh
	OpTanh
	OpAsin
	OpAcos
	OpAtan

	unaryOpCount // sentinel; keep last
)

var unaryOpNames = [unaryOpCount]string{
	"Clone", "Neg", "Inc", "Dec", "Inv", "Conj", "Mod",
	"Half", "Double", "Square", "Sqrt", "Exp", "Log",
	"Sin", "Cos", "Tan", "Sinh", "Cosh", "Tanh",
	"Asin", "Acos", "Atan",
}

// String returns the operation name, e.g. "Sinh".
func (op UnaryOp) String() string {
	if op >= unaryOpCount {
		return "UnaryOp(?)"
	}

	return unaryOpNames[op]
}

// UnaryOps returns every defined unary operation in declaration order.
func UnaryOps() []UnaryOp {
	ops := make([]UnaryOp, 0, unaryOpCount)
	for op := UnaryOp(0); op < unaryOpCount; op++ {
		ops = append(ops, op)
	}

	return ops
}

// ParseUnaryOp resolves a case-sensitive operation name produced by String.
func ParseUnaryOp(name string) (UnaryOp, error) {
	for op := UnaryOp(0); op < unaryOpCount; op++ {
		if unaryOpNames[op] == name {
			return op, nil
		}
	}

	return 0, hyperErrorf("ParseUnaryOp "+name, ErrUnknownOperation)
}

// BinaryOp names a two-operand operation of the contract.
type BinaryOp uint8

// Binary operations.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow

	binaryOpCount // sentinel; keep last
)

var binaryOpNames = [binaryOpCount]string{"Add", "Sub", "Mul", "Div", "Pow"}

// String returns the operation name, e.g. "Mul".
func (op BinaryOp) String() string {
	if op >= binaryOpCount {
		return "BinaryOp(?)"
	}

	return binaryOpNames[op]
}

// ParseBinaryOp resolves a case-sensitive operation name produced by String.
func ParseBinaryOp(name string) (BinaryOp, error) {
	for op := BinaryOp(0); op < binaryOpCount; op++ {
		if binaryOpNames[op] == name {
			return op, nil
		}
	}

	return 0, hyperErrorf("ParseBinaryOp "+name, ErrUnknownOperation)
}
