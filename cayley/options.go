package cayley

import (
	"context"
	"errors"
)

// ErrNilGroup is returned by Build when the group is nil.
var ErrNilGroup = errors.New("cayley: nil group")

// ErrVertexRange is returned when a vertex index falls outside the graph.
var ErrVertexRange = errors.New("cayley: vertex index out of range")

// Option configures graph construction via functional arguments.
type Option func(*Options)

// Options holds parameters for a Build run.
type Options struct {
	// Ctx allows cancellation of the word-metric sweep on large groups.
	Ctx context.Context

	// Inverses controls whether generator inverses join the connection
	// set, making the graph undirected. On by default.
	Inverses bool
}

// DefaultOptions returns Options with background context and a
// symmetric connection set.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Inverses: true}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutInverses restricts the connection set to the generators
// themselves, producing a directed Cayley graph.
func WithoutInverses() Option {
	return func(o *Options) {
		o.Inverses = false
	}
}
