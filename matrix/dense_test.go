// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	for _, sh := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		m, err := matrix.NewDense(sh[0], sh[1])
		require.Nil(t, m)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
	assert.NoError(t, m.Set(0, 0, math.Inf(1)))

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_FillCloneString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Fill([]float64{1}), matrix.ErrBadShape)
	require.ErrorIs(t, m.Fill([]float64{1, 2, math.NaN(), 4}), matrix.ErrNaN)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "Clone must not share storage")
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
