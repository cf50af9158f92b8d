package days

import (
	"bytes"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/aoc"
)

// snafuDigits lists the balanced base-5 digits in value order, -2 first.
const snafuDigits = "=-012"

func fromSNAFU(s string) (int, bool) {
	n := 0
	for _, c := range s {
		d := strings.IndexRune(snafuDigits, c)
		if d < 0 {
			return 0, false
		}
		n = 5*n + d - 2
	}

	return n, s != ""
}

func toSNAFU(n int) (string, error) {
	if n == 0 {
		return "0", nil
	}
	var out []byte
	for n != 0 {
		q, r, err := aoc.DivMod(n+2, 5)
		if err != nil {
			return "", err
		}
		out = append(out, snafuDigits[r])
		n = q
	}
	slices.Reverse(out)

	return string(out), nil
}

// Day25 sums the fuel requirements written in SNAFU and reports the sum in
// SNAFU and in decimal.
func Day25(input []byte) (Answers, error) {
	total, i := 0, 0
	for l := range aoc.Lines(bytes.NewReader(input)).All() {
		n, ok := fromSNAFU(l)
		if !ok {
			return Answers{}, badInput(i, l)
		}
		total += n
		i++
	}
	if i == 0 {
		return Answers{}, errors.Wrap(ErrBadInput, "no numbers")
	}
	snafu, err := toSNAFU(total)
	if err != nil {
		return Answers{}, err
	}

	return Answers{Part1: snafu, Part2: total}, nil
}
