package gridgraph

import (
	"github.com/katalvlaran/advent/bfs"
)

// ConnectedComponents finds all contiguous regions of cells for which
// member holds, according to gg.Conn connectivity. Components are ordered
// by their first cell in row-major order; the cells of each one are in
// breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents(member func(T) bool) ([][]Point, error) {
	seen := make(map[Point]bool)
	next := gg.NeighborsFunc(func(_, to Point) bool { return member(gg.At(to)) })

	var comps [][]Point
	it := gg.Find(member).Iterator()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if seen[p] {
			continue
		}
		res, err := bfs.BFS(p, next)
		if err != nil {
			return nil, err
		}
		for _, q := range res.Order {
			seen[q] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
