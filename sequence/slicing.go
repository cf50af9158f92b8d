package sequence

import (
	"fmt"
	"math"
)

// bufferHint caps the capacity buffered stages reserve up front. Larger
// buffers grow as elements actually arrive.
const bufferHint = 64

// Discard skips the first n elements. n <= 0 keeps everything.
func (s *Sequence[T]) Discard(n int) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		skipped := false
		return IteratorFunc[T](func() (T, bool) {
			if !skipped {
				skipped = true
				for i := 0; i < n; i++ {
					if v, ok := up.Next(); !ok {
						return v, false
					}
				}
			}
			return up.Next()
		})
	})
}

// Take keeps the first n elements. A negative n keeps all but the last -n,
// which needs a finite s; see Trunc.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	if n < 0 {
		return s.Trunc(negate(n))
	}

	return derive(s, func(up Iterator[T]) Iterator[T] {
		left := n
		return IteratorFunc[T](func() (T, bool) {
			if left <= 0 {
				var zero T
				return zero, false
			}
			left--
			return up.Next()
		})
	})
}

// Trunc drops the last n elements. Output lags the input by n elements,
// held in a ring buffer. n <= 0 keeps everything.
func (s *Sequence[T]) Trunc(n int) *Sequence[T] {
	if n <= 0 {
		return derive(s, func(up Iterator[T]) Iterator[T] { return up })
	}

	return derive(s, func(up Iterator[T]) Iterator[T] {
		ring := make([]T, 0, min(n, bufferHint))
		pos := 0
		return IteratorFunc[T](func() (T, bool) {
			for len(ring) < n {
				v, ok := up.Next()
				if !ok {
					return v, false
				}
				ring = append(ring, v)
			}
			v, ok := up.Next()
			if !ok {
				return v, false
			}
			out := ring[pos]
			ring[pos] = v
			pos = (pos + 1) % n
			return out, true
		})
	})
}

// StartWhen skips elements until pred first holds, then yields that
// element and everything after it.
func (s *Sequence[T]) StartWhen(pred func(T) bool) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		started := false
		return IteratorFunc[T](func() (T, bool) {
			if started {
				return up.Next()
			}
			for {
				v, ok := up.Next()
				if !ok {
					return v, false
				}
				if pred(v) {
					started = true
					return v, true
				}
			}
		})
	})
}

// Until yields elements up to, but not including, the first one for which
// pred holds.
func (s *Sequence[T]) Until(pred func(T) bool) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		stopped := false
		return IteratorFunc[T](func() (T, bool) {
			if stopped {
				var zero T
				return zero, false
			}
			v, ok := up.Next()
			if !ok || pred(v) {
				stopped = true
				var zero T
				return zero, false
			}
			return v, true
		})
	})
}

// Slice selects elements Python style: Slice() is everything, Slice(start)
// runs to the end, Slice(start, end) stops before end. Negative bounds count
// from the end and need a finite s. Only a negative start forces s to be
// read in full before the first element comes out.
//
// Panics with ErrBadArguments for more than 2 bounds.
func (s *Sequence[T]) Slice(bounds ...int) *Sequence[T] {
	if len(bounds) > 2 {
		panic(fmt.Errorf("%w: Slice takes at most 2 bounds, got %d", ErrBadArguments, len(bounds)))
	}
	start := 0
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if start < 0 {
		return s.sliceFromEnd(start, bounds[1:])
	}
	out := s.Discard(start)
	if len(bounds) < 2 {
		return out
	}
	end := bounds[1]
	if end < 0 {
		return out.Trunc(negate(end))
	}

	return out.Take(max(0, end-start))
}

// sliceFromEnd handles a negative start: the tail is materialized, then the
// usual index clamping applies.
func (s *Sequence[T]) sliceFromEnd(start int, rest []int) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		var items []T
		loaded := false
		return IteratorFunc[T](func() (T, bool) {
			if !loaded {
				loaded = true
				all := drain(up)
				n := len(all)
				from := clampIndex(start, n)
				to := n
				if len(rest) > 0 {
					to = clampIndex(rest[0], n)
				}
				if from < to {
					items = all[from:to]
				}
			}
			if len(items) == 0 {
				var zero T
				return zero, false
			}
			v := items[0]
			items = items[1:]
			return v, true
		})
	})
}

// negate returns -n, saturating at math.MaxInt for math.MinInt.
func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}

	return -n
}

// clampIndex resolves a Python-style index against length n into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}

	return max(0, min(i, n))
}

// Pick yields the elements at indices, in the order the indices are given.
// Indices may repeat or go backwards; elements are buffered only as far as
// the largest index seen so far. Indices past the end, or negative ones,
// are skipped.
func (s *Sequence[T]) Pick(indices []int) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		var seen []T
		exhausted := false
		pos := 0
		return IteratorFunc[T](func() (T, bool) {
			for pos < len(indices) {
				idx := indices[pos]
				pos++
				if idx < 0 {
					continue
				}
				for !exhausted && len(seen) <= idx {
					v, ok := up.Next()
					if !ok {
						exhausted = true
						break
					}
					seen = append(seen, v)
				}
				if idx < len(seen) {
					return seen[idx], true
				}
			}
			var zero T
			return zero, false
		})
	})
}
