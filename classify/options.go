package classify

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("classify: invalid option supplied")

// Option configures classification via functional arguments.
type Option func(*Options)

// Options holds tuning parameters for a classification run.
type Options struct {
	// Ctx allows cancellation between classes.
	Ctx context.Context

	// Workers sets the conjugation fan-out; 1 means serial. Parallel runs
	// produce identical output to serial ones.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns serial execution under a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker-pool size for the inner conjugation loop.
//
//	n >= 1: use n workers
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
