package closure

import (
	"context"
	"fmt"

	"github.com/arbelos/burnside/algebra"
)

// DefaultMaxOrder is the materialization ceiling applied when no
// WithMaxOrder option is given.
const DefaultMaxOrder = 200_000

// Option configures a closure run via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Close is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a closure run. Ceilings are
// per-call values, never process-wide state, so behavior is reproducible.
type Options struct {
	// Ctx allows cancellation of long closures.
	Ctx context.Context

	// MaxOrder is the materialization ceiling: discovering more elements
	// fails the run with ErrGroupTooLarge.
	MaxOrder int

	// OrderOnly requests a stabilizer-chain group instead of
	// materialization. Permutation kind only.
	OrderOnly bool

	// OnDiscover is called for each newly discovered element with its
	// canonical index, identity included.
	OnDiscover func(e algebra.Element, index int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, the default
// ceiling, materialization mode and a no-op discovery hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxOrder:   DefaultMaxOrder,
		OnDiscover: func(algebra.Element, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxOrder sets the materialization ceiling.
//
//	n > 0: ceiling of n elements
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxOrder(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxOrder must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxOrder = n
	}
}

// WithOrderOnly requests a stabilizer-chain group: exact order and
// membership without materializing elements.
func WithOrderOnly() Option {
	return func(o *Options) {
		o.OrderOnly = true
	}
}

// WithOnDiscover registers a callback invoked once per discovered element.
func WithOnDiscover(fn func(e algebra.Element, index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
