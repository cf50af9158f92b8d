package gridgraph

import (
	"github.com/katalvlaran/advent/sequence"
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed [y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[T any](values [][]T, opts GridOptions) (*GridGraph[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = append([]T(nil), values[y]...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// FromLines builds a byte grid from text lines, one cell per byte.
func FromLines(lines []string, opts GridOptions) (*GridGraph[byte], error) {
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}

	return NewGridGraph(rows, opts)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// At returns the value at p. p must be in bounds.
func (gg *GridGraph[T]) At(p Point) T {
	return gg.cells[p.Y][p.X]
}

// Neighbors returns the in-bounds neighbors of p in a fixed clockwise
// order starting north.
func (gg *GridGraph[T]) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if n := p.Add(d); gg.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// NeighborsFunc returns the neighbors of p for which keep(from, to) holds.
func (gg *GridGraph[T]) NeighborsFunc(keep func(from, to Point) bool) func(Point) []Point {
	return func(p Point) []Point {
		all := gg.Neighbors(p)
		out := all[:0]
		for _, n := range all {
			if keep(p, n) {
				out = append(out, n)
			}
		}
		return out
	}
}

// Points yields every cell position in row-major order.
func (gg *GridGraph[T]) Points() *sequence.Sequence[Point] {
	return sequence.Map(sequence.Range(gg.Width*gg.Height).Sequence, func(i, _ int) Point {
		return gg.Coordinate(i)
	})
}

// Find yields the positions of the cells matching pred, row-major.
func (gg *GridGraph[T]) Find(pred func(T) bool) *sequence.Sequence[Point] {
	return gg.Points().Filter(func(p Point, _ int) bool { return pred(gg.At(p)) })
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) Point {
	return Point{idx % gg.Width, idx / gg.Width}
}
