package aoc

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by Mod and DivMod for a zero divisor.
var ErrDivisionByZero = errors.New("Division by zero") //nolint:stylecheck // fixed message

// Mod returns x modulo y with the sign of y (floored modulo):
//
//	Mod(-5, 4)  ==  3
//	Mod(-5, -4) == -1
func Mod[T constraints.Signed](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r, nil
}

// DivMod returns the floored quotient and the Mod remainder, so that
// q*y + r == x always holds.
func DivMod[T constraints.Signed](x, y T) (q, r T, err error) {
	if y == 0 {
		return 0, 0, ErrDivisionByZero
	}
	q, r = x/y, x%y
	if r != 0 && (r < 0) != (y < 0) {
		q--
		r += y
	}

	return q, r, nil
}
