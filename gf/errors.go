// Package gf: sentinel error set. All public operations return these
// sentinels and callers match them via errors.Is; panics are reserved for
// programmer errors (indices outside [0, q)).
package gf

import "errors"

var (
	// ErrNotPrime is returned when the requested characteristic is not prime.
	ErrNotPrime = errors.New("gf: characteristic must be prime")

	// ErrBadExtension is returned when the extension degree is < 1.
	ErrBadExtension = errors.New("gf: extension degree must be >= 1")

	// ErrFieldTooLarge is returned when p^m exceeds the table-construction
	// bound (65536 elements).
	ErrFieldTooLarge = errors.New("gf: field order exceeds table bound")

	// ErrDivByZero is returned by Inv and Div when the divisor is zero.
	ErrDivByZero = errors.New("gf: division by zero")

	// ErrDimensionMismatch indicates incompatible matrix shapes, e.g. a
	// flat slice whose length is not n*n.
	ErrDimensionMismatch = errors.New("gf: dimension mismatch")

	// ErrSingular is returned when inverting a matrix with zero determinant.
	ErrSingular = errors.New("gf: singular matrix")
)
