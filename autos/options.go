package autos

import (
	"context"
	"errors"
	"fmt"
)

// DefaultCeiling bounds the subject order for full Aut searches. The
// search touches |G|·|gens| table entries per candidate, so the ceiling
// is far stricter than the closure engine's.
const DefaultCeiling = 400

// Sentinel errors for automorphism computation.
var (
	// ErrAutSearchTooLarge is returned when the subject group exceeds the
	// Aut search ceiling. Inner automorphisms remain available.
	ErrAutSearchTooLarge = errors.New("autos: subject exceeds automorphism search ceiling")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("autos: invalid option supplied")
)

// Option configures the Aut search via functional arguments.
type Option func(*Options)

// Options holds tuning parameters for the Aut search.
type Options struct {
	// Ctx allows cancellation between backtracking branches.
	Ctx context.Context

	// Ceiling is the maximum subject order the search accepts.
	Ceiling int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a background context and the default ceiling.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Ceiling: DefaultCeiling}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCeiling sets the subject-order ceiling for the Aut search.
//
//	n > 0: ceiling of n
//	n <= 0: invalid option → ErrOptionViolation
func WithCeiling(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Ceiling must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Ceiling = n
	}
}
