package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/advent/dfs"
)

// edges builds a neighbor function from an adjacency map.
func edges(adj map[string][]string) func(string) []string {
	return func(n string) []string { return adj[n] }
}

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopo_NilNeighbors(t *testing.T) {
	order, err := dfs.TopologicalSort[string]([]string{"A"}, nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrNilNeighbors)
}

func TestTopo_NoRoots(t *testing.T) {
	order, err := dfs.TopologicalSort(nil, edges(nil))
	assert.NoError(t, err)
	assert.Empty(t, order)
	assert.NotNil(t, order)
}

// TestTopo_Diamond checks every edge goes forward in a diamond A→B,C→D.
func TestTopo_Diamond(t *testing.T) {
	adj := map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}}
	order, err := dfs.TopologicalSort([]string{"A"}, edges(adj))
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, order)
	for from, tos := range adj {
		for _, to := range tos {
			assert.Less(t, position(order, from), position(order, to), "%s→%s", from, to)
		}
	}
}

func TestTopo_MultipleRootsShareNodes(t *testing.T) {
	adj := map[string][]string{"X": {"Z"}, "Y": {"Z"}, "Z": {"W"}}
	order, err := dfs.TopologicalSort([]string{"X", "Y", "X"}, edges(adj))
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Less(t, position(order, "Y"), position(order, "Z"))
	assert.Less(t, position(order, "X"), position(order, "Z"))
	assert.Equal(t, "W", order[3])
}

func TestTopo_CycleDetected(t *testing.T) {
	adj := map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	_, err := dfs.TopologicalSort([]string{"A"}, edges(adj))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "[A B C A]")
}

func TestTopo_SelfLoop(t *testing.T) {
	_, err := dfs.TopologicalSort([]int{1}, func(n int) []int { return []int{n} })
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "[1 1]")
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort([]string{"A"}, edges(nil), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
