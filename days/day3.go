package days

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/sequence"
)

// priority maps a..z to 1..26 and A..Z to 27..52; 0 means invalid.
func priority(c byte) uint {
	switch {
	case c >= 'a' && c <= 'z':
		return uint(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return uint(c-'A') + 27
	default:
		return 0
	}
}

// items returns the set of priorities in s.
func items(s string) (*bitset.BitSet, bool) {
	bs := bitset.New(53)
	for i := 0; i < len(s); i++ {
		p := priority(s[i])
		if p == 0 {
			return nil, false
		}
		bs.Set(p)
	}

	return bs, true
}

// common returns the one priority present in every set, or 0.
func common(sets ...*bitset.BitSet) int {
	acc := sets[0].Clone()
	for _, s := range sets[1:] {
		acc.InPlaceIntersection(s)
	}
	p, ok := acc.NextSet(0)
	if !ok {
		return 0
	}

	return int(p)
}

// Day3 sums the priority of the item type shared by both halves of every
// rucksack, then the badge shared by every group of three elves.
func Day3(input []byte) (Answers, error) {
	ls := lines(input)
	sacks := make([]*bitset.BitSet, len(ls))
	part1 := 0
	for i, l := range ls {
		if len(l)%2 != 0 {
			return Answers{}, badInput(i, l)
		}
		left, ok1 := items(l[:len(l)/2])
		right, ok2 := items(l[len(l)/2:])
		if !ok1 || !ok2 {
			return Answers{}, badInput(i, l)
		}
		part1 += common(left, right)
		sacks[i] = left.Union(right)
	}
	if len(sacks)%3 != 0 {
		return Answers{}, errors.Wrapf(ErrBadInput, "%d rucksacks do not form groups of three", len(sacks))
	}

	badges := sequence.Map(sequence.Chunks(sequence.FromSlice(sacks), 3), func(g []*bitset.BitSet, _ int) int {
		return common(g...)
	})

	return Answers{Part1: part1, Part2: sequence.Numbers(badges).Sum()}, nil
}
