// SPDX-License-Identifier: MIT

package matrep

import "github.com/katalvlaran/hypernum/hyper"

// Basis returns the value whose j-th flat component is 1 and all others 0.
func Basis[T hyper.Number[T]](j int) (T, error) {
	n := hyper.DimensionOf[T]()
	if j < 0 || j >= n {
		var zero T

		return zero, matrepErrorf("Basis", ErrOutOfRange)
	}
	e := make([]float64, n)
	e[j] = 1

	return Unflatten[T](e)
}

// LeftMul returns the n×n real matrix L(x) of left multiplication by x, where
// n = Dimension(T): Flatten(x·y) = L(x)·Flatten(y) for every y.
//
// Column j is Flatten(x·e_j). Because every algebra here is commutative and
// associative, L is a ring homomorphism: L(x·y) = L(x)·L(y) and L(1) = I.
// Complexity: n multiplications of T.
func LeftMul[T hyper.Number[T]](x T) (*Dense, error) {
	n := hyper.DimensionOf[T]()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrepErrorf(opLeftMul, err)
	}
	for j := 0; j < n; j++ {
		e, err := Basis[T](j)
		if err != nil {
			return nil, matrepErrorf(opLeftMul, err)
		}
		col, err := Flatten(x.Mul(e))
		if err != nil {
			return nil, matrepErrorf(opLeftMul, err)
		}
		if len(col) != n {
			return nil, matrepErrorf(opLeftMul, ErrDimensionMismatch)
		}
		for i, v := range col {
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// FromMatrix recovers x from L(x): its first column is Flatten(x·1).
func FromMatrix[T hyper.Number[T]](m *Dense) (T, error) {
	col, err := m.Column(0)
	if err != nil {
		var zero T

		return zero, err
	}

	return Unflatten[T](col)
}
