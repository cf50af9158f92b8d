// Package gridgraph treats rectangular grids as implicit graphs.
//
// A GridGraph[T] stores cells indexed by Point{X, Y} and hands out
// neighbor functions, so a grid can be searched with bfs.BFS or
// dijkstra.Dijkstra without building an explicit graph:
//
//	gg, _ := gridgraph.FromLines(lines, gridgraph.DefaultGridOptions())
//	open := gg.NeighborsFunc(func(_, to gridgraph.Point) bool { return gg.At(to) != '#' })
//	res, _ := bfs.BFS(start, open)
//
// ConnectedComponents groups matching cells into regions ("islands").
package gridgraph
