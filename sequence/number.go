package sequence

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of NumberSequence.
type Number interface {
	constraints.Integer | constraints.Float
}

// NumberSequence is a Sequence of numbers with arithmetic reductions on top.
// Every Sequence method is available through the embedded *Sequence.
type NumberSequence[N Number] struct {
	*Sequence[N]
}

// Numbers views s as a NumberSequence. No elements are read.
func Numbers[N Number](s *Sequence[N]) *NumberSequence[N] {
	return &NumberSequence[N]{Sequence: s}
}

// NewNumbers returns a restartable NumberSequence over items.
func NewNumbers[N Number](items ...N) *NumberSequence[N] {
	return Numbers(FromSlice(items))
}

// Sum adds every element; 0 when empty.
func (ns *NumberSequence[N]) Sum() N {
	var total N
	it := ns.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		total += v
	}

	return total
}

// Product multiplies every element; 1 when empty.
func (ns *NumberSequence[N]) Product() N {
	total := N(1)
	it := ns.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		total *= v
	}

	return total
}

// Avg returns the arithmetic mean, or NaN when empty.
func (ns *NumberSequence[N]) Avg() float64 {
	var (
		total float64
		n     int
	)
	it := ns.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		total += float64(v)
		n++
	}
	if n == 0 {
		return math.NaN()
	}

	return total / float64(n)
}

// CumulativeAvg yields the mean of the elements seen so far after every
// element: 0 1 2 3 4 becomes 0 0.5 1 1.5 2. The first value is the first
// element itself, not a leading 0.
func (ns *NumberSequence[N]) CumulativeAvg() *NumberSequence[float64] {
	return Numbers(derive(ns.Sequence, func(up Iterator[N]) Iterator[float64] {
		var w welford
		return IteratorFunc[float64](func() (float64, bool) {
			v, ok := up.Next()
			if !ok {
				return 0, false
			}
			w.add(float64(v))
			return w.mean, true
		})
	}))
}

// CumulativeStdev yields the population standard deviation of the elements
// seen so far after every element. The first value is always 0.
func (ns *NumberSequence[N]) CumulativeStdev() *NumberSequence[float64] {
	return Numbers(derive(ns.Sequence, func(up Iterator[N]) Iterator[float64] {
		var w welford
		return IteratorFunc[float64](func() (float64, bool) {
			v, ok := up.Next()
			if !ok {
				return 0, false
			}
			w.add(float64(v))
			return w.stdev(), true
		})
	}))
}

// Stdev returns the population standard deviation, or NaN when empty.
func (ns *NumberSequence[N]) Stdev() float64 {
	var w welford
	it := ns.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		w.add(float64(v))
	}
	if w.n == 0 {
		return math.NaN()
	}

	return w.stdev()
}

// HistogramArray counts occurrences by value into a dense slice: h[v] is
// how many times v occurred, 0 for values never seen. Every element must be
// a non-negative whole number no larger than math.MaxInt32; the first one
// that is not produces an error wrapping ErrNotIndex.
func (ns *NumberSequence[N]) HistogramArray() ([]int, error) {
	h := []int{}
	it := ns.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return h, nil
		}
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
			return nil, fmt.Errorf("%w: element %d is %v", ErrNotIndex, i, v)
		}
		idx := int(f)
		if idx >= len(h) {
			h = append(h, make([]int, idx+1-len(h))...)
		}
		h[idx]++
	}
}

// welford accumulates a running mean and sum of squared deviations.
type welford struct {
	n    int
	mean float64
	m2   float64
}

func (w *welford) add(x float64) {
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

func (w *welford) stdev() float64 {
	if w.n == 0 {
		return 0
	}

	return math.Sqrt(w.m2 / float64(w.n))
}
