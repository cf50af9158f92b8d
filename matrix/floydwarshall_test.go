// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/matrix"
)

func TestNewDistances(t *testing.T) {
	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 0.0, v)
			} else {
				assert.True(t, math.IsInf(v, 1), "(%d,%d) = %v", i, j, v)
			}
		}
	}
	_, err = matrix.NewDistances(0)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFloydWarshall_Chain(t *testing.T) {
	// 0 -1-> 1 -2-> 2 -3-> 3, plus a long 0->3 edge
	d, err := matrix.NewDistances(4)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, 1))
	require.NoError(t, d.Set(1, 2, 2))
	require.NoError(t, d.Set(2, 3, 3))
	require.NoError(t, d.Set(0, 3, 10))

	require.NoError(t, matrix.FloydWarshall(d))

	v, _ := d.At(0, 3)
	assert.Equal(t, 6.0, v)
	v, _ = d.At(0, 2)
	assert.Equal(t, 3.0, v)
	v, _ = d.At(3, 0)
	assert.True(t, math.IsInf(v, 1), "directed: no way back")
}

func TestFloydWarshall_Errors(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}
