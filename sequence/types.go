package sequence

import "math"

// Iterator is the pull capability every pipeline stage implements.
// Next returns the next element and true, or the zero value and false once
// the iterator is exhausted. An exhausted iterator stays exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Iterable produces iterators. Restartable sources return a fresh Iterator
// on every call; one-shot sources keep returning the same one.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// Enumerable is the type-erased iteration capability used by IsIterable
// and Flat. Every *Sequence implements it.
type Enumerable interface {
	Enumerate() Iterator[any]
}

// IteratorFunc adapts a plain function to the Iterator interface.
type IteratorFunc[T any] func() (T, bool)

// Next calls f.
func (f IteratorFunc[T]) Next() (T, bool) { return f() }

// iterableFunc adapts a constructor to the Iterable interface.
type iterableFunc[T any] func() Iterator[T]

func (f iterableFunc[T]) Iterator() Iterator[T] { return f() }

// IndexedValue pairs an element with its position, as produced by Indexed.
type IndexedValue[T any] struct {
	Index int
	Value T
}

// Pair is the element type produced by Zip2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Entry is a key/value pair produced by FromMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

const (
	// Infinity as a Range/RangeI stop makes an ascending range unbounded.
	Infinity = math.MaxInt

	// NegInfinity as a Range/RangeI stop makes a descending range unbounded.
	NegInfinity = math.MinInt

	// Unbounded as a Flat depth flattens every nesting level.
	Unbounded = math.MaxInt
)

// empty is an Iterator that never yields.
type empty[T any] struct{}

func (empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}
