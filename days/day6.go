package days

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/sequence"
)

// marker returns how many characters of signal must be read before the
// last n of them are pairwise distinct, or -1 if that never happens.
func marker(signal string, n int) int {
	i := sequence.Windows(sequence.FromString(signal), n).FindIndex(func(w []string, _ int) bool {
		return len(sequence.Histogram(sequence.FromSlice(w))) == n
	})
	if i < 0 {
		return -1
	}

	return i + n
}

// Day6 finds the start-of-packet (4 distinct) and start-of-message
// (14 distinct) markers in the datastream.
func Day6(input []byte) (Answers, error) {
	ls := lines(input)
	if len(ls) != 1 {
		return Answers{}, errors.Wrapf(ErrBadInput, "want one datastream line, got %d", len(ls))
	}

	return Answers{Part1: marker(ls[0], 4), Part2: marker(ls[0], 14)}, nil
}
