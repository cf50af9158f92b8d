package sequence_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/sequence"
)

// ExampleRange shows that an unbounded range is only evaluated as far as it
// is consumed.
func ExampleRange() {
	squares := sequence.Map(sequence.Range(sequence.Infinity).Sequence, func(v, _ int) int {
		return v * v
	})
	fmt.Println(squares.Discard(2).Take(4).ToSlice())
	// Output:
	// [4 9 16 25]
}

// ExampleChunks splits a range into rows of three.
func ExampleChunks() {
	for row := range sequence.Chunks(sequence.Range(8).Sequence, 3).All() {
		fmt.Println(row)
	}
	// Output:
	// [0 1 2]
	// [3 4 5]
	// [6 7]
}

// ExamplePermutations lists the ordered pairs of three letters.
func ExamplePermutations() {
	perms := sequence.Map(sequence.Permutations(sequence.FromString("ABC"), 2), func(p []string, _ int) string {
		return strings.Join(p, "")
	})
	fmt.Println(perms.Join(" "))
	// Output:
	// AB AC BA BC CA CB
}

// ExampleSequence_Reduce reports the fixed error for an empty input.
func ExampleSequence_Reduce() {
	add := func(acc, v, _ int) int { return acc + v }

	total, err := sequence.Range(1, 11).Reduce(add)
	fmt.Println(total, err)

	_, err = sequence.Of[int]().Reduce(add)
	fmt.Println(err)
	// Output:
	// 55 <nil>
	// Empty iterable and no initializer
}

// ExampleNumberSequence_Stdev computes population statistics.
func ExampleNumberSequence_Stdev() {
	ns := sequence.NewNumbers(2, 4, 4, 4, 5, 5, 7, 9)
	fmt.Printf("%.1f %.1f\n", ns.Avg(), ns.Stdev())
	// Output:
	// 5.0 2.0
}
