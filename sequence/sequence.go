package sequence

import (
	"iter"
	"reflect"
)

// Sequence is a lazy, possibly infinite, stream of T.
//
// A Sequence never stores elements. It holds an Iterable source and builds a
// new Iterator chain every time it is iterated. Stages such as Filter or
// Take return a new *Sequence wrapping a new stage; the receiver is never
// modified.
type Sequence[T any] struct {
	src         Iterable[T]
	restartable bool
}

// sequenceTag marks values that are Sequences, whatever their element type.
type sequenceTag interface {
	isSequence()
}

// restarter is implemented by sources that know whether they can be
// iterated again, such as *Sequence and *NumberSequence.
type restarter interface {
	Restartable() bool
}

// New wraps src. A source that reports Restartable keeps that flag; any
// other Iterable is assumed to hand out a fresh Iterator on every call.
func New[T any](src Iterable[T]) *Sequence[T] {
	if s, ok := src.(*Sequence[T]); ok {
		return &Sequence[T]{src: s.src, restartable: s.restartable}
	}
	if r, ok := src.(restarter); ok {
		return &Sequence[T]{src: src, restartable: r.Restartable()}
	}

	return &Sequence[T]{src: src, restartable: true}
}

// Of returns a restartable Sequence over items.
func Of[T any](items ...T) *Sequence[T] {
	return FromSlice(items)
}

// FromSlice returns a restartable Sequence over items. The slice is not
// copied; mutating it changes what later iterations see.
func FromSlice[T any](items []T) *Sequence[T] {
	return generate(func() Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// FromString returns a Sequence yielding each rune of s as a string.
func FromString(s string) *Sequence[string] {
	runes := []rune(s)

	return generate(func() Iterator[string] {
		i := 0
		return IteratorFunc[string](func() (string, bool) {
			if i >= len(runes) {
				return "", false
			}
			i++
			return string(runes[i-1]), true
		})
	})
}

// FromMap returns a Sequence over the entries of m. Keys are snapshotted
// when iteration starts; their order is unspecified, as for any Go map.
func FromMap[K comparable, V any](m map[K]V) *Sequence[Entry[K, V]] {
	return generate(func() Iterator[Entry[K, V]] {
		keys := make([]K, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		i := 0
		return IteratorFunc[Entry[K, V]](func() (Entry[K, V], bool) {
			for i < len(keys) {
				k := keys[i]
				i++
				// skip keys deleted since the snapshot
				if v, ok := m[k]; ok {
					return Entry[K, V]{Key: k, Value: v}, true
				}
			}
			return Entry[K, V]{}, false
		})
	})
}

// FromIterator wraps a one-shot iterator. The resulting Sequence is not
// restartable: every iteration shares it. A nil it is an empty sequence.
func FromIterator[T any](it Iterator[T]) *Sequence[T] {
	if it == nil {
		it = empty[T]{}
	}

	return &Sequence[T]{
		src:         iterableFunc[T](func() Iterator[T] { return it }),
		restartable: false,
	}
}

// FromFunc wraps a generator function as a one-shot Sequence.
func FromFunc[T any](next func() (T, bool)) *Sequence[T] {
	return FromIterator[T](IteratorFunc[T](next))
}

// generate builds a restartable Sequence from an iterator constructor.
func generate[T any](fn func() Iterator[T]) *Sequence[T] {
	return &Sequence[T]{src: iterableFunc[T](fn), restartable: true}
}

// derive appends a stage to s. The new Sequence is restartable iff s is.
func derive[T, U any](s *Sequence[T], stage func(up Iterator[T]) Iterator[U]) *Sequence[U] {
	return &Sequence[U]{
		src: iterableFunc[U](func() Iterator[U] {
			return stage(s.src.Iterator())
		}),
		restartable: s.restartable,
	}
}

// Iterator starts a new pass over the sequence.
func (s *Sequence[T]) Iterator() Iterator[T] {
	return s.src.Iterator()
}

// Enumerate implements Enumerable.
func (s *Sequence[T]) Enumerate() Iterator[any] {
	it := s.src.Iterator()

	return IteratorFunc[any](func() (any, bool) {
		v, ok := it.Next()
		if !ok {
			return nil, false
		}
		return v, true
	})
}

// Restartable reports whether s can be iterated more than once with the
// same result.
func (s *Sequence[T]) Restartable() bool {
	return s.restartable
}

// All adapts s to a range-over-func iterator.
//
//	for v := range s.All() { ... }
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.src.Iterator()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s *Sequence[T]) isSequence() {}

// IsSequence reports whether x is a *Sequence (or *NumberSequence) of any
// element type.
func IsSequence(x any) bool {
	_, ok := x.(sequenceTag)

	return ok
}

// IsIterable reports whether x can be iterated: slices, arrays, maps,
// strings and Enumerable values. It returns false for nil, scalars and
// plain structs, and never panics.
func IsIterable(x any) bool {
	if x == nil {
		return false
	}
	if _, ok := x.(Enumerable); ok {
		return true
	}
	switch reflect.TypeOf(x).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return true
	default:
		return false
	}
}

// Equal reports whether a and b yield the same elements in the same order.
// A sequence is always equal to itself, even an infinite one.
func Equal[T comparable](a, b *Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T any](a, b *Sequence[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		x, okA := ia.Next()
		y, okB := ib.Next()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !eq(x, y) {
			return false
		}
	}
}

// sliceIter walks a slice front to back.
type sliceIter[T any] struct {
	items []T
	pos   int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	it.pos++

	return it.items[it.pos-1], true
}

// drain pulls every remaining element of it into a slice.
func drain[T any](it Iterator[T]) []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
