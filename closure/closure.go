package closure

import (
	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/group"
)

// engine encapsulates mutable closure state for one run.
type engine struct {
	gens []algebra.Element
	invs []algebra.Element
	opts Options

	elems    []algebra.Element
	seen     map[string]int
	frontier []algebra.Element
}

// Close computes the group generated by gens.
//
// In the default mode the full element set is materialized breadth-first
// and returned as a materialized group.Group; crossing the ceiling fails
// with ErrGroupTooLarge. With WithOrderOnly the element set is never
// built: permutation generators get a stabilizer-chain group instead, and
// other kinds fail with ErrOrderOnlyUnsupported.
func Close(gens *algebra.GeneratingSet, opts ...Option) (*group.Group, error) {
	if gens == nil {
		return nil, ErrNilGenerators
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.OrderOnly {
		return orderOnly(gens)
	}

	e := &engine{
		gens: gens.Elements(),
		opts: o,
		seen: make(map[string]int),
	}
	e.invs = make([]algebra.Element, len(e.gens))
	for i, g := range e.gens {
		e.invs[i] = g.Inverse()
	}

	if err := e.run(gens.Identity()); err != nil {
		return nil, err
	}
	return group.NewMaterialized(gens, e.elems)
}

// orderOnly builds the stabilizer-chain representation.
func orderOnly(gens *algebra.GeneratingSet) (*group.Group, error) {
	if gens.Kind() != algebra.KindPermutation {
		return nil, ErrOrderOnlyUnsupported
	}
	perms := make([]algebra.Perm, 0, gens.Len())
	for _, e := range gens.Elements() {
		perms = append(perms, e.(algebra.Perm))
	}
	return group.NewOrderOnly(gens, NewChain(perms[0].Degree(), perms)), nil
}

// run seeds the frontier with the identity and expands until exhaustion,
// the ceiling, or cancellation.
func (e *engine) run(identity algebra.Element) error {
	e.admit(identity)
	for len(e.frontier) > 0 {
		// cancellation check once per frontier element
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		cur := e.frontier[0]
		e.frontier = e.frontier[1:]
		// generator index order, each generator before its inverse
		for i := range e.gens {
			if err := e.expand(cur, e.gens[i]); err != nil {
				return err
			}
			if err := e.expand(cur, e.invs[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// expand admits cur·gen when unseen. Crossing the ceiling aborts the run.
func (e *engine) expand(cur, gen algebra.Element) error {
	prod, err := cur.Compose(gen)
	if err != nil {
		return err
	}
	if _, ok := e.seen[prod.Key()]; ok {
		return nil
	}
	if len(e.elems) >= e.opts.MaxOrder {
		return ErrGroupTooLarge
	}
	e.admit(prod)
	return nil
}

// admit records a newly discovered element and schedules its expansion.
func (e *engine) admit(el algebra.Element) {
	idx := len(e.elems)
	e.seen[el.Key()] = idx
	e.elems = append(e.elems, el)
	e.frontier = append(e.frontier, el)
	e.opts.OnDiscover(el, idx)
}
