package days

import (
	"bytes"
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/aoc"
)

// ErrBadInput is wrapped by every parse failure.
var ErrBadInput = errors.New("days: malformed input")

// Answers holds the results of both puzzle parts.
type Answers struct {
	Part1 any `yaml:"part1"`
	Part2 any `yaml:"part2"`
}

// Solver solves one day's puzzle from its raw input.
type Solver func(input []byte) (Answers, error)

var registry = map[int]Solver{
	1:  Day1,
	3:  Day3,
	6:  Day6,
	12: Day12,
	15: Day15Params{Row: 2_000_000, Box: 4_000_000}.Solve,
	16: Day16,
	18: Day18,
	20: Day20,
	21: Day21,
	25: Day25,
}

// Lookup returns the solver for day.
func Lookup(day int) (Solver, bool) {
	s, ok := registry[day]

	return s, ok
}

// All returns the days that have a solver, ascending.
func All() []int {
	out := make([]int, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	slices.Sort(out)

	return out
}

// lines returns the non-empty lines of input.
func lines(input []byte) []string {
	return aoc.Lines(bytes.NewReader(input)).ToSlice()
}

// badInput wraps ErrBadInput with the offending line.
func badInput(lineNo int, line string) error {
	return errors.Wrapf(ErrBadInput, "line %d: %q", lineNo+1, line)
}
