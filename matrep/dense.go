// SPDX-License-Identifier: MIT

package matrep

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrepErrorf(fmt.Sprintf("%s(%d,%d)", tag, row, col), ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Column returns a copy of column j.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrepErrorf(fmt.Sprintf("Column(%d)", j), ErrOutOfRange)
	}
	col := make([]float64, m.r)
	for i := range col {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Mul returns the product a·b.
// Complexity: O(r·k·c); zero entries of a are skipped.
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, matrepErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrepErrorf(opMul, err)
	}
	var rowA, rowB, rowR int
	for i := 0; i < a.r; i++ {
		rowA, rowR = i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MulVec returns m·x.
func MulVec(m *Dense, x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, matrepErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var sum float64
		row := m.data[i*m.c : (i+1)*m.c]
		for k, v := range row {
			sum += v * x[k]
		}
		out[i] = sum
	}

	return out, nil
}

// Det returns the determinant using Doolittle elimination with partial pivoting.
// A singular matrix yields 0 rather than an error.
// Complexity: O(n³) time, O(n²) scratch.
func Det(m *Dense) (float64, error) {
	if m.r != m.c {
		return 0, matrepErrorf(opDet, ErrNonSquare)
	}
	n := m.r
	u := make([]float64, len(m.data))
	copy(u, m.data)

	det := 1.0
	for k := 0; k < n; k++ {
		// Pivot: largest magnitude in column k at or below the diagonal.
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(u[i*n+k]) > math.Abs(u[p*n+k]) {
				p = i
			}
		}
		if u[p*n+k] == 0 {
			return 0, nil
		}
		if p != k {
			for j := 0; j < n; j++ {
				u[k*n+j], u[p*n+j] = u[p*n+j], u[k*n+j]
			}
			det = -det
		}
		pivot := u[k*n+k]
		det *= pivot
		for i := k + 1; i < n; i++ {
			f := u[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				u[i*n+j] -= f * u[k*n+j]
			}
		}
	}

	return det, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |x − y| ≤ atol + rtol·|y|.
func AllClose(a, b *Dense, rtol, atol float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, x := range a.data {
		y := b.data[i]
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}
