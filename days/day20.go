package days

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/aoc"
	"github.com/katalvlaran/advent/sequence"
)

const decryptionKey = 811589153

func parseNumbers(input []byte) ([]int, error) {
	var out []int
	for l := range aoc.Lines(bytes.NewReader(input)).All() {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, badInput(len(out), l)
		}
		out = append(out, n)
	}
	if len(out) < 2 {
		return nil, errors.Wrapf(ErrBadInput, "need at least two numbers, got %d", len(out))
	}
	if zeros := sequence.FromSlice(out).Filter(func(v, _ int) bool { return v == 0 }).Count(); zeros != 1 {
		return nil, errors.Wrapf(ErrBadInput, "want exactly one 0, got %d", zeros)
	}

	return out, nil
}

// mix moves every number, in its original order, by its own value around
// the circle, rounds times. A number that moves drops out of the circle
// first, so positions wrap modulo len(values)-1.
func mix(values []int, rounds int) ([]int, error) {
	n := len(values)
	ring := sequence.Range(n).ToSlice()
	for range rounds {
		for i, v := range values {
			from := slices.Index(ring, i)
			to, err := aoc.Mod(from+v, n-1)
			if err != nil {
				return nil, err
			}
			ring = slices.Delete(ring, from, from+1)
			ring = slices.Insert(ring, to, i)
		}
	}

	return sequence.Map(sequence.FromSlice(ring), func(i, _ int) int { return values[i] }).ToSlice(), nil
}

// groveSum adds the numbers 1000, 2000 and 3000 places after the 0.
func groveSum(mixed []int) int {
	zero := slices.Index(mixed, 0)
	coords := sequence.Map(sequence.Of(1000, 2000, 3000), func(k, _ int) int {
		return mixed[(zero+k)%len(mixed)]
	})

	return sequence.Numbers(coords).Sum()
}

// Day20 decrypts the grove coordinates: one mixing round of the raw file,
// then ten rounds with every number multiplied by the decryption key.
func Day20(input []byte) (Answers, error) {
	values, err := parseNumbers(input)
	if err != nil {
		return Answers{}, err
	}
	once, err := mix(values, 1)
	if err != nil {
		return Answers{}, err
	}
	keyed := sequence.Map(sequence.FromSlice(values), func(v, _ int) int { return v * decryptionKey }).ToSlice()
	tenTimes, err := mix(keyed, 10)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: groveSum(once), Part2: groveSum(tenTimes)}, nil
}
