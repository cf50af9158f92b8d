package days

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/gridgraph"
)

// heightmap is the hill grid; S and E sit at elevations a and z.
type heightmap struct {
	grid       *gridgraph.GridGraph[byte]
	start, end gridgraph.Point
}

func parseHeightmap(input []byte) (*heightmap, error) {
	ls := lines(input)
	for i, l := range ls {
		for _, b := range []byte(l) {
			if b != 'S' && b != 'E' && (b < 'a' || b > 'z') {
				return nil, badInput(i, l)
			}
		}
	}
	grid, err := gridgraph.FromLines(ls, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, errors.Wrap(ErrBadInput, err.Error())
	}

	h := &heightmap{grid: grid}
	starts := grid.Find(func(b byte) bool { return b == 'S' }).ToSlice()
	ends := grid.Find(func(b byte) bool { return b == 'E' }).ToSlice()
	if len(starts) != 1 || len(ends) != 1 {
		return nil, errors.Wrapf(ErrBadInput, "want one S and one E, got %d and %d", len(starts), len(ends))
	}
	h.start, h.end = starts[0], ends[0]

	return h, nil
}

func elevation(b byte) byte {
	switch b {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	default:
		return b
	}
}

// climbs returns the steps out of p that rise by at most one.
func (h *heightmap) climbs(p gridgraph.Point) []dijkstra.Edge[gridgraph.Point] {
	var out []dijkstra.Edge[gridgraph.Point]
	for _, n := range h.grid.Neighbors(p) {
		if elevation(h.grid.At(n)) <= elevation(h.grid.At(p))+1 {
			out = append(out, dijkstra.Edge[gridgraph.Point]{To: n, Weight: 1})
		}
	}

	return out
}

// fewestSteps is the shortest climb from the nearest of sources to E, or -1.
func (h *heightmap) fewestSteps(sources []gridgraph.Point) (int, error) {
	res, err := dijkstra.Dijkstra(h.climbs, dijkstra.Source(sources...), dijkstra.WithTarget(h.end))
	if err != nil {
		return 0, errors.Wrap(err, "climb")
	}
	d, ok := res.Distance(h.end)
	if !ok {
		return -1, nil
	}

	return int(d), nil
}

// Day12 finds the fewest steps from S up to E, then from the best square
// at elevation a.
func Day12(input []byte) (Answers, error) {
	h, err := parseHeightmap(input)
	if err != nil {
		return Answers{}, err
	}

	part1, err := h.fewestSteps([]gridgraph.Point{h.start})
	if err != nil {
		return Answers{}, err
	}
	lows := h.grid.Find(func(b byte) bool { return elevation(b) == 'a' }).ToSlice()
	part2, err := h.fewestSteps(lows)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: part1, Part2: part2}, nil
}
