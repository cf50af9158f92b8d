package sequence

import (
	"fmt"
	"math"
	"math/big"
	"slices"
)

// Range returns the arithmetic progression described by bounds, Python style:
//
//	Range(stop)              0, 1, ..., stop-1
//	Range(start, stop)       start, ..., stop-1
//	Range(start, stop, step) start, start+step, ... while short of stop
//
// Pass Infinity (or NegInfinity with a negative step) as stop for an
// unbounded range. The range is empty when step is 0 or when step points away
// from stop; the direction is never flipped implicitly.
//
// Panics with ErrBadArguments unless 1 to 3 bounds are given.
func Range(bounds ...int) *NumberSequence[int] {
	start, stop, step := rangeBounds("Range", bounds)

	return Numbers(generate(func() Iterator[int] {
		return &rangeIter{next: start, stop: stop, step: step}
	}))
}

// RangeI is the inclusive variant of Range: stop itself is produced when the
// progression lands on it.
func RangeI(bounds ...int) *NumberSequence[int] {
	start, stop, step := rangeBounds("RangeI", bounds)

	return Numbers(generate(func() Iterator[int] {
		return &rangeIter{next: start, stop: stop, step: step, inclusive: true}
	}))
}

// rangeBounds expands the variadic bounds into (start, stop, step).
func rangeBounds(op string, bounds []int) (start, stop, step int) {
	switch len(bounds) {
	case 1:
		return 0, bounds[0], 1
	case 2:
		return bounds[0], bounds[1], 1
	case 3:
		return bounds[0], bounds[1], bounds[2]
	default:
		panic(fmt.Errorf("%w: %s takes 1 to 3 bounds, got %d", ErrBadArguments, op, len(bounds)))
	}
}

// rangeIter walks start, start+step, ... toward stop.
type rangeIter struct {
	next, stop, step int
	inclusive        bool
	done             bool
}

func (r *rangeIter) Next() (int, bool) {
	if r.done || !r.admits(r.next) {
		r.done = true
		return 0, false
	}
	v := r.next
	switch {
	case r.step == 0:
		// only reachable for an inclusive range with start == stop
		r.done = true
	case r.step > 0 && v > math.MaxInt-r.step,
		r.step < 0 && v < math.MinInt-r.step:
		r.done = true
	default:
		r.next += r.step
	}

	return v, true
}

// admits reports whether v lies inside the range.
func (r *rangeIter) admits(v int) bool {
	switch {
	case r.step > 0:
		if r.stop == Infinity {
			return true
		}
		if r.inclusive {
			return v <= r.stop
		}
		return v < r.stop
	case r.step < 0:
		if r.stop == NegInfinity {
			return true
		}
		if r.inclusive {
			return v >= r.stop
		}
		return v > r.stop
	default:
		return r.inclusive && v == r.stop
	}
}

// ForEver repeats v without end.
func ForEver[T any](v T) *Sequence[T] {
	return generate(func() Iterator[T] {
		return IteratorFunc[T](func() (T, bool) { return v, true })
	})
}

// Once yields v a single time.
func Once[T any](v T) *Sequence[T] {
	return Of(v)
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
func Iterate[T any](seed T, next func(T) T) *Sequence[T] {
	return generate(func() Iterator[T] {
		cur, started := seed, false
		return IteratorFunc[T](func() (T, bool) {
			if started {
				cur = next(cur)
			}
			started = true
			return cur, true
		})
	})
}

// Factorial yields 0!, 1!, 2!, ... without end. Each term is derived from
// the previous one with a single multiplication, and every yielded value is
// a fresh *big.Int the caller may keep or modify.
func Factorial() *Sequence[*big.Int] {
	return generate(func() Iterator[*big.Int] {
		n := int64(0)
		acc := big.NewInt(1)
		return IteratorFunc[*big.Int](func() (*big.Int, bool) {
			if n > 0 {
				acc.Mul(acc, big.NewInt(n))
			}
			n++
			return new(big.Int).Set(acc), true
		})
	})
}

// Product yields the Cartesian product of seqs repeated repeat times, with
// the rightmost position varying fastest:
//
//	Product([AB], 2)    -> [A A] [A B] [B A] [B B]
//	Product([AB, CD], 1) -> [A C] [A D] [B C] [B D]
//
// A repeat below 1 is treated as 1. The inputs are read once, on the first
// pull, and must be finite. Product of no inputs yields one empty tuple.
func Product[T any](seqs []*Sequence[T], repeat int) *Sequence[[]T] {
	if repeat < 1 {
		repeat = 1
	}
	restartable := true
	for _, s := range seqs {
		restartable = restartable && s.restartable
	}

	return &Sequence[[]T]{
		src: iterableFunc[[]T](func() Iterator[[]T] {
			return &productIter[T]{seqs: seqs, repeat: repeat}
		}),
		restartable: restartable,
	}
}

// productIter is an odometer over the materialized pools.
type productIter[T any] struct {
	seqs    []*Sequence[T]
	repeat  int
	pools   [][]T
	indices []int
	started bool
	done    bool
}

func (p *productIter[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}
	if !p.started {
		p.started = true
		base := make([][]T, len(p.seqs))
		for i, s := range p.seqs {
			base[i] = drain(s.Iterator())
		}
		for r := 0; r < p.repeat; r++ {
			p.pools = append(p.pools, base...)
		}
		for _, pool := range p.pools {
			if len(pool) == 0 {
				p.done = true
				return nil, false
			}
		}
		p.indices = make([]int, len(p.pools))

		return p.tuple(), true
	}

	i := len(p.indices) - 1
	for ; i >= 0; i-- {
		p.indices[i]++
		if p.indices[i] < len(p.pools[i]) {
			break
		}
		p.indices[i] = 0
	}
	if i < 0 {
		p.done = true
		return nil, false
	}

	return p.tuple(), true
}

func (p *productIter[T]) tuple() []T {
	out := make([]T, len(p.indices))
	for i, idx := range p.indices {
		out[i] = p.pools[i][idx]
	}

	return out
}

// Zip yields slices holding the i-th element of every input, stopping at
// the end of the shortest one. Zip of no inputs is empty; a nil input counts
// as an empty sequence.
func Zip[T any](seqs ...*Sequence[T]) *Sequence[[]T] {
	seqs = orEmpty(seqs)
	restartable := true
	for _, s := range seqs {
		restartable = restartable && s.restartable
	}

	return &Sequence[[]T]{
		src: iterableFunc[[]T](func() Iterator[[]T] {
			its := make([]Iterator[T], len(seqs))
			for i, s := range seqs {
				its[i] = s.Iterator()
			}
			done := len(its) == 0
			return IteratorFunc[[]T](func() ([]T, bool) {
				if done {
					return nil, false
				}
				row := make([]T, len(its))
				for i, it := range its {
					v, ok := it.Next()
					if !ok {
						done = true
						return nil, false
					}
					row[i] = v
				}
				return row, true
			})
		}),
		restartable: restartable,
	}
}

// Zip2 pairs the elements of a and b position by position, stopping at the
// end of the shorter one. A nil a or b counts as empty.
func Zip2[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	if a == nil {
		a = Of[A]()
	}
	if b == nil {
		b = Of[B]()
	}
	return &Sequence[Pair[A, B]]{
		src: iterableFunc[Pair[A, B]](func() Iterator[Pair[A, B]] {
			ia, ib := a.Iterator(), b.Iterator()
			done := false
			return IteratorFunc[Pair[A, B]](func() (Pair[A, B], bool) {
				if done {
					return Pair[A, B]{}, false
				}
				x, ok := ia.Next()
				if !ok {
					done = true
					return Pair[A, B]{}, false
				}
				y, ok := ib.Next()
				if !ok {
					done = true
					return Pair[A, B]{}, false
				}
				return Pair[A, B]{First: x, Second: y}, true
			})
		}),
		restartable: a.restartable && b.restartable,
	}
}

// Concat chains seqs end to end. Each input is only started once the
// previous one is exhausted. nil inputs are skipped.
func Concat[T any](seqs ...*Sequence[T]) *Sequence[T] {
	seqs = orEmpty(seqs)
	restartable := true
	for _, s := range seqs {
		restartable = restartable && s.restartable
	}

	return &Sequence[T]{
		src: iterableFunc[T](func() Iterator[T] {
			return &concatIter[T]{seqs: seqs}
		}),
		restartable: restartable,
	}
}

// Concat appends others after s.
func (s *Sequence[T]) Concat(others ...*Sequence[T]) *Sequence[T] {
	all := make([]*Sequence[T], 0, len(others)+1)
	all = append(all, s)

	return Concat(append(all, others...)...)
}

// orEmpty returns seqs with every nil entry replaced by an empty sequence.
// seqs itself is not modified.
func orEmpty[T any](seqs []*Sequence[T]) []*Sequence[T] {
	if !slices.Contains(seqs, nil) {
		return seqs
	}
	out := make([]*Sequence[T], len(seqs))
	for i, s := range seqs {
		if s == nil {
			s = Of[T]()
		}
		out[i] = s
	}

	return out
}

type concatIter[T any] struct {
	seqs []*Sequence[T]
	pos  int
	cur  Iterator[T]
}

func (c *concatIter[T]) Next() (T, bool) {
	for {
		if c.cur == nil {
			if c.pos >= len(c.seqs) {
				var zero T
				return zero, false
			}
			c.cur = c.seqs[c.pos].Iterator()
			c.pos++
		}
		if v, ok := c.cur.Next(); ok {
			return v, true
		}
		c.cur = nil
	}
}
