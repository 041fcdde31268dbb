// SPDX-License-Identifier: MIT

package matrep_test

import (
	"testing"

	"github.com/katalvlaran/hypernum/matrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, vals [][]float64) *matrep.Dense {
	t.Helper()
	m, err := matrep.NewDense(len(vals), len(vals[0]))
	require.NoError(t, err)
	for i, row := range vals {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestDense_Errors(t *testing.T) {
	_, err := matrep.NewDense(0, 2)
	assert.ErrorIs(t, err, matrep.ErrBadShape)

	m := dense(t, [][]float64{{1, 2}, {3, 4}})
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrep.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrep.ErrOutOfRange)
	_, err = m.Column(5)
	assert.ErrorIs(t, err, matrep.ErrOutOfRange)

	r := dense(t, [][]float64{{1, 2, 3}})
	_, err = matrep.Mul(m, r)
	assert.ErrorIs(t, err, matrep.ErrDimensionMismatch)
	_, err = matrep.MulVec(m, []float64{1})
	assert.ErrorIs(t, err, matrep.ErrDimensionMismatch)
	_, err = matrep.Det(r)
	assert.ErrorIs(t, err, matrep.ErrNonSquare)
}

func TestDense_MulAndDet(t *testing.T) {
	a := dense(t, [][]float64{{1, 2}, {3, 4}})
	b := dense(t, [][]float64{{0, 1}, {1, 0}})

	p, err := matrep.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, matrep.AllClose(dense(t, [][]float64{{2, 1}, {4, 3}}), p, 0, 0))

	v, err := matrep.MulVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, v)

	d, err := matrep.Det(a)
	require.NoError(t, err)
	assert.InDelta(t, -2, d, 1e-12)

	// Row swap needed: zero in the leading position.
	d, err = matrep.Det(dense(t, [][]float64{{0, 2, 1}, {1, 1, 0}, {2, 0, 3}}))
	require.NoError(t, err)
	assert.InDelta(t, -8, d, 1e-12)

	d, err = matrep.Det(dense(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	assert.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
	assert.False(t, matrep.AllClose(a, dense(t, [][]float64{{1, 2, 3}}), 0, 0))
}
