// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/katalvlaran/hypernum/matrep"
)

// Algebras lists the accepted --algebra values.
var Algebras = []string{"complex", "dual", "split", "diagonal"}

// result is an evaluated pair rendered in its base scalar.
type result struct {
	First, Second string
}

func (r result) String() string { return "(" + r.First + ", " + r.Second + ")" }

// floats parses both components back to float64 for tolerance checks.
func (r result) floats() (float64, float64, error) {
	a, err := strconv.ParseFloat(r.First, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(r.Second, 64)

	return a, b, err
}

// evaluator runs operations of one algebra over one base scalar on textual operands.
type evaluator interface {
	unary(op hyper.UnaryOp, x []string) (result, error)
	binary(op hyper.BinaryOp, x, y []string) (result, error)
	matrix(x []string) (*matrep.Dense, error)
}

// pairAlgebra adapts a single-level pair type T over base B to evaluator.
type pairAlgebra[T hyper.Number[T], B hyper.Number[B]] struct {
	mk    func(first, second B) T
	parts func(T) (B, B)
	parse func(string) (B, error)
}

func (p pairAlgebra[T, B]) value(args []string) (T, error) {
	var zero T
	if len(args) != 2 {
		return zero, fmt.Errorf("want 2 components, got %d", len(args))
	}
	a, err := p.parse(args[0])
	if err != nil {
		return zero, fmt.Errorf("component %q: %w", args[0], err)
	}
	b, err := p.parse(args[1])
	if err != nil {
		return zero, fmt.Errorf("component %q: %w", args[1], err)
	}

	return p.mk(a, b), nil
}

func (p pairAlgebra[T, B]) render(v T) result {
	a, b := p.parts(v)

	return result{First: fmt.Sprint(a), Second: fmt.Sprint(b)}
}

func (p pairAlgebra[T, B]) unary(op hyper.UnaryOp, x []string) (result, error) {
	v, err := p.value(x)
	if err != nil {
		return result{}, err
	}
	out, err := hyper.Call(op, v)
	if err != nil {
		return result{}, err
	}

	return p.render(out), nil
}

func (p pairAlgebra[T, B]) binary(op hyper.BinaryOp, x, y []string) (result, error) {
	v, err := p.value(x)
	if err != nil {
		return result{}, err
	}
	w, err := p.value(y)
	if err != nil {
		return result{}, err
	}
	out, err := hyper.CallBinary(op, v, w)
	if err != nil {
		return result{}, err
	}

	return p.render(out), nil
}

func (p pairAlgebra[T, B]) matrix(x []string) (*matrep.Dense, error) {
	v, err := p.value(x)
	if err != nil {
		return nil, err
	}

	return matrep.LeftMul(v)
}

// newEvaluator resolves an algebra name; exact selects the decimal base scalar.
func newEvaluator(name string, exact bool) (evaluator, error) {
	if exact {
		return algebraOver(name, hyper.ParseDecimal)
	}

	return algebraOver(name, parseReal)
}

func algebraOver[B hyper.Number[B]](name string, parse func(string) (B, error)) (evaluator, error) {
	switch strings.ToLower(name) {
	case "complex":
		return pairAlgebra[hyper.Complex[B], B]{
			mk:    hyper.NewComplex[B],
			parts: func(z hyper.Complex[B]) (B, B) { return z.First, z.Second },
			parse: parse,
		}, nil
	case "dual":
		return pairAlgebra[hyper.Dual[B], B]{
			mk:    hyper.NewDual[B],
			parts: func(z hyper.Dual[B]) (B, B) { return z.First, z.Second },
			parse: parse,
		}, nil
	case "split":
		return pairAlgebra[hyper.Split[B], B]{
			mk:    hyper.NewSplit[B],
			parts: func(z hyper.Split[B]) (B, B) { return z.First, z.Second },
			parse: parse,
		}, nil
	case "diagonal":
		return pairAlgebra[hyper.Diagonal[B], B]{
			mk:    hyper.NewDiagonal[B],
			parts: func(z hyper.Diagonal[B]) (B, B) { return z.First, z.Second },
			parse: parse,
		}, nil
	}

	return nil, fmt.Errorf("unknown algebra %q: must be one of %v", name, Algebras)
}

// parseReal accepts a float literal or the constants "pi" and "e".
func parseReal(s string) (hyper.Real, error) {
	switch strings.ToLower(s) {
	case "pi":
		return hyper.Lift[hyper.Real](math.Pi), nil
	case "e":
		return hyper.Lift[hyper.Real](math.E), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return hyper.NewReal(f)
}

// operation is a parsed --op value: exactly one of the two kinds.
type operation struct {
	unary    hyper.UnaryOp
	binary   hyper.BinaryOp
	isBinary bool
}

func (o operation) String() string {
	if o.isBinary {
		return o.binary.String()
	}

	return o.unary.String()
}

// arity is the number of pair operands the operation takes.
func (o operation) arity() int {
	if o.isBinary {
		return 2
	}

	return 1
}

// parseOperation resolves an operation name case-insensitively.
func parseOperation(name string) (operation, error) {
	for _, op := range []hyper.BinaryOp{hyper.OpAdd, hyper.OpSub, hyper.OpMul, hyper.OpDiv, hyper.OpPow} {
		if strings.EqualFold(op.String(), name) {
			return operation{binary: op, isBinary: true}, nil
		}
	}
	for _, op := range hyper.UnaryOps() {
		if strings.EqualFold(op.String(), name) {
			return operation{unary: op}, nil
		}
	}

	return operation{}, fmt.Errorf("operation %q: %w", name, hyper.ErrUnknownOperation)
}

// evaluate applies op to the flat operand list: two components per pair.
func evaluate(ev evaluator, op operation, args []string) (result, error) {
	if len(args) != 2*op.arity() {
		return result{}, fmt.Errorf("%s takes %d operand components, got %d", op, 2*op.arity(), len(args))
	}
	if op.isBinary {
		return ev.binary(op.binary, args[:2], args[2:])
	}

	return ev.unary(op.unary, args)
}
