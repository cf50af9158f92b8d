package sequence

// Combinations yields every k-element selection of s, ordered
// lexicographically by position (not by value):
//
//	Combinations(Range(3), 2) -> [0 1] [0 2] [1 2]
//
// k larger than the input, or negative, yields nothing; k == 0 yields one
// empty selection. s is read in full on the first pull and must be finite.
func Combinations[T any](s *Sequence[T], k int) *Sequence[[]T] {
	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		var comb *combination[T]
		return IteratorFunc[[]T](func() ([]T, bool) {
			if comb == nil {
				comb = newCombination(drain(up), k)
			}
			return comb.Next()
		})
	})
}

// combination walks the k-subsets of pool in index order.
type combination[T any] struct {
	pool    []T
	indices []int
	started bool
	done    bool
}

func newCombination[T any](pool []T, k int) *combination[T] {
	c := &combination[T]{pool: pool}
	if k < 0 || k > len(pool) {
		c.done = true
		return c
	}
	c.indices = make([]int, k)
	for i := range c.indices {
		c.indices[i] = i
	}

	return c
}

func (c *combination[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	if c.started {
		n, k := len(c.pool), len(c.indices)
		// rightmost index that can still move right
		i := k - 1
		for i >= 0 && c.indices[i] == i+n-k {
			i--
		}
		if i < 0 {
			c.done = true
			return nil, false
		}
		c.indices[i]++
		for j := i + 1; j < k; j++ {
			c.indices[j] = c.indices[j-1] + 1
		}
	}
	c.started = true

	return pick(c.pool, c.indices), true
}

// Permutations yields every ordered arrangement of k distinct positions of
// s, lexicographically by position:
//
//	Permutations(ABC, 2) -> AB AC BA BC CA CB
//
// k <= 0 or k larger than the input yields nothing. s is read in full on
// the first pull and must be finite.
func Permutations[T any](s *Sequence[T], k int) *Sequence[[]T] {
	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		var perm *permutation[T]
		return IteratorFunc[[]T](func() ([]T, bool) {
			if perm == nil {
				perm = newPermutation(drain(up), k)
			}
			return perm.Next()
		})
	})
}

// permutation keeps a cycle counter per output position; a counter
// reaching zero rotates the tail of indices back into order.
type permutation[T any] struct {
	pool    []T
	indices []int
	cycles  []int
	k       int
	started bool
	done    bool
}

func newPermutation[T any](pool []T, k int) *permutation[T] {
	n := len(pool)
	p := &permutation[T]{pool: pool, k: k}
	if k <= 0 || k > n {
		p.done = true
		return p
	}
	p.indices = make([]int, n)
	for i := range p.indices {
		p.indices[i] = i
	}
	p.cycles = make([]int, k)
	for i := range p.cycles {
		p.cycles[i] = n - i
	}

	return p
}

func (p *permutation[T]) Next() ([]T, bool) {
	if p.done {
		return nil, false
	}
	if !p.started {
		p.started = true
		return pick(p.pool, p.indices[:p.k]), true
	}
	n := len(p.pool)
	for i := p.k - 1; i >= 0; i-- {
		p.cycles[i]--
		if p.cycles[i] == 0 {
			// rotate indices[i:] left by one
			first := p.indices[i]
			copy(p.indices[i:], p.indices[i+1:])
			p.indices[n-1] = first
			p.cycles[i] = n - i
			continue
		}
		j := n - p.cycles[i]
		p.indices[i], p.indices[j] = p.indices[j], p.indices[i]
		return pick(p.pool, p.indices[:p.k]), true
	}
	p.done = true

	return nil, false
}

// Powerset yields every subset of s by increasing size, subsets of equal
// size in positional order:
//
//	Powerset(ABC) -> [] [A] [B] [C] [A B] [A C] [B C] [A B C]
//
// s is read in full on the first pull and must be finite.
func Powerset[T any](s *Sequence[T]) *Sequence[[]T] {
	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		var (
			pool []T
			size int
			comb *combination[T]
		)
		return IteratorFunc[[]T](func() ([]T, bool) {
			if comb == nil {
				pool = drain(up)
				comb = newCombination(pool, 0)
			}
			for {
				if v, ok := comb.Next(); ok {
					return v, true
				}
				if size >= len(pool) {
					return nil, false
				}
				size++
				comb = newCombination(pool, size)
			}
		})
	})
}

// pick copies pool[indices[0]], pool[indices[1]], ... into a new slice.
func pick[T any](pool []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = pool[idx]
	}

	return out
}
