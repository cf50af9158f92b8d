package aoc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/aoc"
)

func TestMod(t *testing.T) {
	cases := []struct{ x, y, want int }{
		{4, 4, 0},
		{-5, 4, 3},
		{5, -4, -3},
		{-5, -4, -1},
		{7, 3, 1},
	}
	for _, tc := range cases {
		got, err := aoc.Mod(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Mod(%d, %d)", tc.x, tc.y)
	}

	got, err := aoc.Mod[int64](-5, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	_, err = aoc.Mod(4, 0)
	assert.ErrorIs(t, err, aoc.ErrDivisionByZero)
	assert.EqualError(t, err, "Division by zero")
}

func TestDivMod(t *testing.T) {
	cases := []struct{ x, y, q, r int }{
		{4, 4, 1, 0},
		{-5, 4, -2, 3},
		{-5, -4, 1, -1},
		{5, -4, -2, -3},
	}
	for _, tc := range cases {
		q, r, err := aoc.DivMod(tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.q, q, "quotient of %d/%d", tc.x, tc.y)
		assert.Equal(t, tc.r, r, "remainder of %d/%d", tc.x, tc.y)
		assert.Equal(t, tc.x, q*tc.y+r)
	}

	_, _, err := aoc.DivMod(4, 0)
	assert.ErrorIs(t, err, aoc.ErrDivisionByZero)
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n\n2\n"), 0o600))

	lines, err := aoc.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, lines)

	_, err = aoc.ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines_Lazy(t *testing.T) {
	s := aoc.Lines(strings.NewReader("a\nb\n\nc"))
	assert.False(t, s.Restartable())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	assert.Equal(t, []string{"b", "c"}, s.ToSlice())
}

func TestSplitBlocks(t *testing.T) {
	got := aoc.SplitBlocks("1\n2\n\n\n3\n\n4\n5\n")
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}, {"4", "5"}}, got)
	assert.Empty(t, aoc.SplitBlocks(""))
}

func TestInputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "day6.txt"), aoc.InputPath("inputs", 6))
}
