package days

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/aoc"
	"github.com/katalvlaran/advent/sequence"
)

// Day1 totals the calories carried by every elf (blank-line separated
// groups) and reports the largest total and the sum of the top three.
func Day1(input []byte) (Answers, error) {
	blocks := aoc.SplitBlocks(strings.ReplaceAll(string(input), "\r", ""))
	elves := make([]int, 0, len(blocks))
	for _, block := range blocks {
		cals := make([]int, len(block))
		for i, l := range block {
			n, err := strconv.Atoi(strings.TrimSpace(l))
			if err != nil {
				return Answers{}, errors.Wrapf(ErrBadInput, "calories %q: %v", l, err)
			}
			cals[i] = n
		}
		elves = append(elves, sequence.NewNumbers(cals...).Sum())
	}
	if len(elves) == 0 {
		return Answers{}, errors.Wrap(ErrBadInput, "no elves")
	}

	slices.SortFunc(elves, func(a, b int) int { return b - a })
	top := sequence.Numbers(sequence.FromSlice(elves).Take(3))

	return Answers{Part1: elves[0], Part2: top.Sum()}, nil
}
