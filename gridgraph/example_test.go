package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/gridgraph"
)

// ExampleGridGraph_NeighborsFunc finds the shortest way through a maze.
func ExampleGridGraph_NeighborsFunc() {
	gg, _ := gridgraph.FromLines([]string{
		"S..#",
		".#.#",
		"...E",
	}, gridgraph.DefaultGridOptions())
	open := gg.NeighborsFunc(func(_, to gridgraph.Point) bool { return gg.At(to) != '#' })

	start, _ := gg.Find(func(b byte) bool { return b == 'S' }).First()
	end, _ := gg.Find(func(b byte) bool { return b == 'E' }).First()
	res, _ := bfs.BFS(start, open)
	fmt.Println(res.Depth[end])
	// Output: 5
}
