package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/counter"
)

func TestCounter_Total(t *testing.T) {
	c := counter.New[int]()
	assert.Equal(t, 1, c.Add(1, 2))
	assert.Equal(t, 2, c.Add(1, 2))
	assert.Equal(t, 1, c.Add(3, 4))

	assert.Equal(t, 2, c.Total(nil))
	assert.Equal(t, 1, c.Total(counter.CountIf(func(n int, _ string) bool { return n > 1 })))
	assert.Equal(t, 3, c.Total(counter.CountAll))
}

func TestCounter_Sum(t *testing.T) {
	var c counter.Counter[string]
	assert.Equal(t, 5, c.Sum(5, "a"))
	assert.Equal(t, 7, c.Sum(2, "a"))
	assert.Equal(t, 7, c.Get("a"))
	assert.Equal(t, 0, c.Get("b"))
	assert.Equal(t, 1, c.Size())
}

func TestCounter_Max(t *testing.T) {
	c := counter.New[string]()
	_, _, ok := c.Max()
	assert.False(t, ok)

	c.Add("x")
	c.Sum(3, "y")
	c.Sum(3, "b")
	k, n, ok := c.Max()
	require.True(t, ok)
	assert.Equal(t, "b", k)
	assert.Equal(t, 3, n)
}

func TestCounter_Entries(t *testing.T) {
	c := counter.New[int]()
	c.Add(2, 0)
	c.Add(1, 5)
	c.Add(1, 5)

	entries := c.Entries()
	assert.Equal(t, []counter.Entry{
		{Key: "1,5", Value: 2},
		{Key: "2,0", Value: 1},
	}, entries.ToSlice())

	// restartable and live
	c.Add(0)
	assert.Equal(t, 3, entries.Count())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "1,2", counter.Key(1, 2))
	assert.Equal(t, counter.Key("1", "2"), counter.Key(1, 2))
	assert.Equal(t, "", counter.Key[int]())
}
