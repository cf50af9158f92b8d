// Package sequence provides lazy, pull-based sequences with a rich
// combinator algebra and numeric reductions.
//
// 🚀 What is a Sequence?
//
//	A Sequence[T] wraps a source of elements (a slice, a string, a map,
//	a generator or another Sequence) and describes a pipeline of lazy
//	stages over it. Nothing is evaluated until a terminal operation
//	(ToSlice, Count, Reduce, Sum, ...) or a range loop pulls elements.
//	Every stage is an Iterator object holding its upstream Iterator, so a
//	pipeline is simply a chain of Next() calls.
//
// ✨ Key features:
//   - factories: Range, RangeI, ForEver, Once, Iterate, Factorial,
//     Product, Zip, Zip2, Concat
//   - element-wise stages: Map, Filter, FlatMap, Flat, Indexed, Dedup,
//     GroupBy, Windows, Chunks, NCycle
//   - combinatorics: Combinations, Permutations, Powerset, Product
//   - slicing: Take, Discard, Trunc, StartWhen, Until, Slice, Pick
//   - terminals: ToSlice, Count, First, Last, At, Every, Some, Find,
//     FindIndex, ForEach, Reduce, Fold, IsSorted, Histogram, Join
//   - numbers: Sum, Avg, Product, CumulativeAvg, CumulativeStdev, Stdev,
//     HistogramArray
//
// Restartability:
//
//	Sequences built from containers and factories can be iterated any
//	number of times. Sequences built from one-shot generators (FromIterator,
//	FromFunc) are exhausted after one pass; Restartable() reports which
//	kind a pipeline is. Consuming the same one-shot pipeline twice is not an
//	error, the second pass simply sees what is left.
//
// Infinite inputs:
//
//	Range(Infinity), ForEver, Iterate and Factorial never end. Stages that
//	must see the whole input before producing anything (Combinations,
//	Permutations, Powerset, Product, Slice with negative bounds) and
//	terminals such as Count, Last and ToSlice do not terminate on them.
//
// ⚙️ Usage:
//
//	evens := sequence.Range(0, 10, 2)            // 0 2 4 6 8
//	fmt.Println(evens.Count())                     // 5
//	fmt.Println(sequence.Chunks(sequence.Range(10).Sequence, 3).ToSlice())
//	// [[0 1 2] [3 4 5] [6 7 8] [9]]
//
//	for v := range sequence.Range(sequence.Infinity).Take(3).All() {
//		fmt.Println(v)
//	}
//
// Shape-changing stages (Map, Chunks, Windows, Combinations, ...) are
// package functions rather than methods, since Go methods cannot introduce
// new type parameters.
//
// Concurrency:
//
//	Sequences are single-goroutine values. No stage starts goroutines or
//	holds external resources, so abandoning an iteration half-way is free.
package sequence
