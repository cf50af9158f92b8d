package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/advent/dijkstra"
)

// ExampleDijkstra_grid walks a small maze where '#' is a wall and every
// step costs 1, except through '~' which costs 5.
func ExampleDijkstra_grid() {
	maze := []string{
		"S.~.",
		".#~#",
		"...E",
	}
	type cell struct{ r, c int }
	next := func(p cell) []dijkstra.Edge[cell] {
		var out []dijkstra.Edge[cell]
		for _, d := range []cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			n := cell{p.r + d.r, p.c + d.c}
			if n.r < 0 || n.c < 0 || n.r >= len(maze) || n.c >= len(maze[0]) || maze[n.r][n.c] == '#' {
				continue
			}
			w := int64(1)
			if maze[n.r][n.c] == '~' {
				w = 5
			}
			out = append(out, dijkstra.Edge[cell]{To: n, Weight: w})
		}
		return out
	}

	goal := cell{2, 3}
	res, err := dijkstra.Dijkstra(next, dijkstra.Source(cell{0, 0}), dijkstra.WithTarget(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := res.Distance(goal)
	path, _ := res.PathTo(goal)
	fmt.Println(d, len(path))
	// Output: 5 6
}
