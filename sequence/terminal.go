package sequence

import (
	"cmp"
	"fmt"
	"strings"
)

// ToSlice collects every element. s must be finite.
func (s *Sequence[T]) ToSlice() []T {
	out := drain(s.Iterator())
	if out == nil {
		out = []T{}
	}

	return out
}

// Count returns the number of elements. s must be finite.
func (s *Sequence[T]) Count() int {
	n := 0
	it := s.Iterator()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}

	return n
}

// IsEmpty reports whether s yields nothing. It pulls at most one element.
func (s *Sequence[T]) IsEmpty() bool {
	_, ok := s.Iterator().Next()

	return !ok
}

// First returns the first element, or false if s is empty.
func (s *Sequence[T]) First() (T, bool) {
	return s.Iterator().Next()
}

// Last returns the final element, or false if s is empty. s must be finite.
func (s *Sequence[T]) Last() (T, bool) {
	var last T
	found := false
	it := s.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		last, found = v, true
	}

	return last, found
}

// At returns the element at index n, or false when s is shorter than that
// or n is negative.
func (s *Sequence[T]) At(n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	it := s.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return zero, false
		}
		if i == n {
			return v, true
		}
	}
}

// Every reports whether pred holds for all elements, stopping at the first
// that fails. An empty sequence satisfies Every.
func (s *Sequence[T]) Every(pred func(item T, index int) bool) bool {
	_, i := s.find(func(v T, i int) bool { return !pred(v, i) })

	return i < 0
}

// Some reports whether pred holds for at least one element, stopping at the
// first match.
func (s *Sequence[T]) Some(pred func(item T, index int) bool) bool {
	_, i := s.find(pred)

	return i >= 0
}

// Find returns the first element satisfying pred.
func (s *Sequence[T]) Find(pred func(item T, index int) bool) (T, bool) {
	v, i := s.find(pred)

	return v, i >= 0
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (s *Sequence[T]) FindIndex(pred func(item T, index int) bool) int {
	_, i := s.find(pred)

	return i
}

func (s *Sequence[T]) find(pred func(T, int) bool) (T, int) {
	it := s.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return v, -1
		}
		if pred(v, i) {
			return v, i
		}
	}
}

// ForEach calls fn for every element with its index and s itself.
func (s *Sequence[T]) ForEach(fn func(item T, index int, seq *Sequence[T])) {
	it := s.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v, i, s)
	}
}

// ForEachWith is ForEach with recv handed to fn on every call, for callbacks
// that need a context value without closing over it.
func ForEachWith[T, R any](s *Sequence[T], recv R, fn func(recv R, item T, index int, seq *Sequence[T])) {
	s.ForEach(func(v T, i int, seq *Sequence[T]) {
		fn(recv, v, i, seq)
	})
}

// Reduce folds s from the left. Without initial the first element seeds the
// accumulator, and an empty s returns ErrEmptyNoInitializer. Only the first
// initial value is used.
func (s *Sequence[T]) Reduce(fn func(acc, item T, index int) T, initial ...T) (T, error) {
	it := s.Iterator()
	var acc T
	i := 0
	if len(initial) > 0 {
		acc = initial[0]
	} else {
		v, ok := it.Next()
		if !ok {
			return acc, ErrEmptyNoInitializer
		}
		acc = v
		i++
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		acc = fn(acc, v, i)
		i++
	}

	return acc, nil
}

// Fold folds s from the left into an accumulator of a different type.
func Fold[T, A any](s *Sequence[T], initial A, fn func(acc A, item T, index int) A) A {
	acc := initial
	it := s.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, v, i)
	}
}

// IsSorted reports whether s is in ascending order. Equal neighbours are
// allowed.
func IsSorted[T cmp.Ordered](s *Sequence[T]) bool {
	return s.IsSortedFunc(func(a, b T) bool { return cmp.Compare(a, b) <= 0 })
}

// IsSortedFunc reports whether le(prev, cur) holds for every adjacent pair.
// It stops at the first pair that fails.
func (s *Sequence[T]) IsSortedFunc(le func(prev, cur T) bool) bool {
	it := s.Iterator()
	prev, ok := it.Next()
	if !ok {
		return true
	}
	for cur, ok := it.Next(); ok; cur, ok = it.Next() {
		if !le(prev, cur) {
			return false
		}
		prev = cur
	}

	return true
}

// Histogram counts the occurrences of every distinct element.
func Histogram[T comparable](s *Sequence[T]) map[T]int {
	h := make(map[T]int)
	it := s.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		h[v]++
	}

	return h
}

// Join formats every element with fmt.Sprint and joins them with sep.
func (s *Sequence[T]) Join(sep string) string {
	var b strings.Builder
	it := s.Iterator()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return b.String()
		}
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
}
