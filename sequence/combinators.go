package sequence

import (
	"fmt"
	"reflect"
)

// Map applies fn to every element; fn also receives the element's index.
func Map[T, U any](s *Sequence[T], fn func(item T, index int) U) *Sequence[U] {
	return derive(s, func(up Iterator[T]) Iterator[U] {
		i := 0
		return IteratorFunc[U](func() (U, bool) {
			v, ok := up.Next()
			if !ok {
				var zero U
				return zero, false
			}
			i++
			return fn(v, i-1), true
		})
	})
}

// Filter keeps the elements for which pred holds. The index passed to pred
// is the element's position in s, not in the output.
func (s *Sequence[T]) Filter(pred func(item T, index int) bool) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		i := 0
		return IteratorFunc[T](func() (T, bool) {
			for {
				v, ok := up.Next()
				if !ok {
					return v, false
				}
				i++
				if pred(v, i-1) {
					return v, true
				}
			}
		})
	})
}

// FlatMap maps every element to an Iterable and splices its elements into
// the output. A nil Iterable contributes nothing.
func FlatMap[T, U any](s *Sequence[T], fn func(item T, index int) Iterable[U]) *Sequence[U] {
	return derive(s, func(up Iterator[T]) Iterator[U] {
		var inner Iterator[U]
		i := 0
		return IteratorFunc[U](func() (U, bool) {
			for {
				if inner != nil {
					if v, ok := inner.Next(); ok {
						return v, true
					}
					inner = nil
				}
				v, ok := up.Next()
				if !ok {
					var zero U
					return zero, false
				}
				i++
				if src := fn(v, i-1); src != nil {
					inner = src.Iterator()
				}
			}
		})
	})
}

// Flat splices nested iterables into the output, up to depth levels deep.
// Enumerable values (such as *Sequence) and slices or arrays are expanded;
// strings and maps are left whole. Use Unbounded to flatten completely.
func Flat(s *Sequence[any], depth int) *Sequence[any] {
	return derive(s, func(up Iterator[any]) Iterator[any] {
		return &flatIter{stack: []Iterator[any]{up}, depth: depth}
	})
}

type flatIter struct {
	stack []Iterator[any]
	depth int
}

func (f *flatIter) Next() (any, bool) {
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		v, ok := top.Next()
		if !ok {
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		if len(f.stack) <= f.depth {
			if inner, ok := enumerate(v); ok {
				f.stack = append(f.stack, inner)
				continue
			}
		}
		return v, true
	}

	return nil, false
}

// enumerate returns an Iterator over v when Flat should expand it.
func enumerate(v any) (Iterator[any], bool) {
	if v == nil {
		return nil, false
	}
	if e, ok := v.(Enumerable); ok {
		return e.Enumerate(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i := 0
		return IteratorFunc[any](func() (any, bool) {
			if i >= rv.Len() {
				return nil, false
			}
			i++
			return rv.Index(i - 1).Interface(), true
		}), true
	default:
		return nil, false
	}
}

// Indexed pairs every element with its position.
func Indexed[T any](s *Sequence[T]) *Sequence[IndexedValue[T]] {
	return Map(s, func(v T, i int) IndexedValue[T] {
		return IndexedValue[T]{Index: i, Value: v}
	})
}

// Dedup drops elements equal to the element right before them. Equal
// values that are not adjacent are all kept.
func Dedup[T comparable](s *Sequence[T]) *Sequence[T] {
	return s.DedupFunc(func(a, b T) bool { return a == b })
}

// DedupFunc is Dedup with a custom equality; eq receives the previous
// element and the current one.
func (s *Sequence[T]) DedupFunc(eq func(prev, cur T) bool) *Sequence[T] {
	return derive(s, func(up Iterator[T]) Iterator[T] {
		var prev T
		started := false
		return IteratorFunc[T](func() (T, bool) {
			for {
				v, ok := up.Next()
				if !ok {
					return v, false
				}
				if started && eq(prev, v) {
					prev = v
					continue
				}
				started = true
				prev = v
				return v, true
			}
		})
	})
}

// GroupBy splits s into runs of consecutive elements: a new run starts
// whenever rel(previous, current) is false.
func GroupBy[T any](s *Sequence[T], rel func(prev, cur T) bool) *Sequence[[]T] {
	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		var pending T
		has := false
		started := false
		return IteratorFunc[[]T](func() ([]T, bool) {
			if !started {
				started = true
				pending, has = up.Next()
			}
			if !has {
				return nil, false
			}
			group := []T{pending}
			for {
				v, ok := up.Next()
				if !ok {
					has = false
					return group, true
				}
				if !rel(group[len(group)-1], v) {
					pending = v
					return group, true
				}
				group = append(group, v)
			}
		})
	})
}

// Windows yields every run of n consecutive elements, moving one element at
// a time. Fewer than n elements produce nothing. Every window is a new
// slice.
//
// Panics with an error wrapping ErrInvalidSize if n < 1.
func Windows[T any](s *Sequence[T], n int) *Sequence[[]T] {
	if n < 1 {
		panic(fmt.Errorf("%w: Windows(%d)", ErrInvalidSize, n))
	}

	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		window := make([]T, 0, min(n, bufferHint))
		done := false
		return IteratorFunc[[]T](func() ([]T, bool) {
			if done {
				return nil, false
			}
			if len(window) == n {
				// slide by one
				copy(window, window[1:])
				window = window[:n-1]
			}
			for len(window) < n {
				v, ok := up.Next()
				if !ok {
					done = true
					return nil, false
				}
				window = append(window, v)
			}
			return append([]T(nil), window...), true
		})
	})
}

// Chunks splits s into consecutive slices of n elements; the last one may
// be shorter.
//
// Panics with an error wrapping ErrInvalidSize if n < 1. The check happens
// here, not when the sequence is iterated.
func Chunks[T any](s *Sequence[T], n int) *Sequence[[]T] {
	if n < 1 {
		panic(fmt.Errorf("%w: Chunks(%d)", ErrInvalidSize, n))
	}

	return derive(s, func(up Iterator[T]) Iterator[[]T] {
		done := false
		return IteratorFunc[[]T](func() ([]T, bool) {
			if done {
				return nil, false
			}
			chunk := make([]T, 0, min(n, bufferHint))
			for len(chunk) < n {
				v, ok := up.Next()
				if !ok {
					done = true
					break
				}
				chunk = append(chunk, v)
			}
			if len(chunk) == 0 {
				return nil, false
			}
			return chunk, true
		})
	})
}

// NCycle repeats the whole of s n times, re-iterating the source for each
// pass. A one-shot source only has one pass to give.
func (s *Sequence[T]) NCycle(n int) *Sequence[T] {
	return &Sequence[T]{
		src: iterableFunc[T](func() Iterator[T] {
			left := n
			var cur Iterator[T]
			yielded := false
			return IteratorFunc[T](func() (T, bool) {
				for {
					if cur == nil {
						if left <= 0 {
							var zero T
							return zero, false
						}
						left--
						yielded = false
						cur = s.src.Iterator()
					}
					if v, ok := cur.Next(); ok {
						yielded = true
						return v, true
					}
					cur = nil
					// an empty pass means every later pass is empty too
					if !yielded {
						left = 0
					}
				}
			})
		}),
		restartable: s.restartable,
	}
}
