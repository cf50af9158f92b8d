// Package sequence: sentinel error set.
// Chainable stages cannot return errors, so argument violations at
// construction time panic with one of these values; callers that recover
// can still match them with errors.Is. Data-dependent failures in terminal
// operations are returned normally.

package sequence

import "errors"

var (
	// ErrInvalidSize is the range error raised by Chunks and Windows when
	// the requested size is not a positive integer.
	ErrInvalidSize = errors.New("sequence: size must be a positive integer")

	// ErrBadArguments is raised when a variadic bound list (Range, RangeI,
	// Slice) has the wrong number of entries.
	ErrBadArguments = errors.New("sequence: wrong number of arguments")

	// ErrEmptyNoInitializer is returned by Reduce on an empty sequence when
	// no initial value was supplied. The message is part of the contract.
	ErrEmptyNoInitializer = errors.New("Empty iterable and no initializer") //nolint:stylecheck // fixed message

	// ErrNotIndex is returned by HistogramArray when an element cannot be
	// used as a slice index (NaN, infinite, negative or fractional).
	ErrNotIndex = errors.New("sequence: element is not a valid array index")
)
