// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"testing"

	"github.com/katalvlaran/hypernum/hyper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	v, d, err := derive(hyper.OpSin, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(0.5), v.Float64(), 1e-12)
	assert.InDelta(t, math.Cos(0.5), d.Float64(), 1e-12)

	_, _, err = derive(hyper.OpLog, 0)
	assert.Error(t, err)
}

func TestDeriveCommand(t *testing.T) {
	out, _, err := execute(t, "derive", "--fn", "exp", "--at", "0")
	require.NoError(t, err)
	assert.Equal(t, "f(0) = 1\nf'(0) = 1\n", out)

	out, _, err = execute(t, "derive", "-f", "square", "--at", "3")
	require.NoError(t, err)
	assert.Equal(t, "f(3) = 9\nf'(3) = 6\n", out)

	_, _, err = execute(t, "derive", "--fn", "mul")
	assert.ErrorContains(t, err, "binary")

	_, _, err = execute(t, "derive", "--fn", "sqrt", "--at", "0")
	assert.ErrorIs(t, err, hyper.ErrNotInvertible)
}
