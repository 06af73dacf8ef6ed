package group

import (
	"fmt"
	"iter"
	"math"
	"math/big"

	"github.com/arbelos/burnside/algebra"
)

// Chain is the order-only representation a closure engine may attach in
// place of a materialized element set: a stabilizer chain answering order
// and membership questions without enumeration.
type Chain interface {
	// Order returns the exact group order.
	Order() *big.Int
	// Contains reports membership by sifting through the chain.
	Contains(e algebra.Element) bool
}

// Group is a finite group produced by closure. It owns its generating set
// and either a materialized element slice (in canonical discovery order,
// identity first) or a stabilizer chain. Immutable after construction.
type Group struct {
	gens     *algebra.GeneratingSet
	identity algebra.Element

	// materialized representation
	elems []algebra.Element
	index map[string]int

	// order-only representation
	chain Chain
}

// NewMaterialized wraps a closed element set. elems must be in canonical
// enumeration order with the identity first; the closure engine guarantees
// both. Fails with ErrMissingIdentity otherwise.
func NewMaterialized(gens *algebra.GeneratingSet, elems []algebra.Element) (*Group, error) {
	if len(elems) == 0 || !elems[0].IsIdentity() {
		return nil, ErrMissingIdentity
	}
	idx := make(map[string]int, len(elems))
	for i, e := range elems {
		idx[e.Key()] = i
	}
	return &Group{
		gens:     gens,
		identity: elems[0],
		elems:    elems,
		index:    idx,
	}, nil
}

// NewOrderOnly wraps a stabilizer chain.
func NewOrderOnly(gens *algebra.GeneratingSet, chain Chain) *Group {
	return &Group{gens: gens, identity: gens.Identity(), chain: chain}
}

// Materialized reports whether the full element set is available.
func (g *Group) Materialized() bool { return g.chain == nil }

// Generators returns the generating set the group was built from.
func (g *Group) Generators() *algebra.GeneratingSet { return g.gens }

// Identity returns the group identity.
func (g *Group) Identity() algebra.Element { return g.identity }

// Order returns the group order. For order-only groups whose order
// exceeds the int range it saturates at math.MaxInt; use OrderBig there.
func (g *Group) Order() int {
	if g.chain == nil {
		return len(g.elems)
	}
	o := g.chain.Order()
	if o.IsInt64() && o.Int64() <= math.MaxInt {
		return int(o.Int64())
	}
	return math.MaxInt
}

// OrderBig returns the exact order as a big integer.
func (g *Group) OrderBig() *big.Int {
	if g.chain == nil {
		return big.NewInt(int64(len(g.elems)))
	}
	return new(big.Int).Set(g.chain.Order())
}

// Contains reports membership: by lookup for materialized groups, by
// chain sifting otherwise.
func (g *Group) Contains(e algebra.Element) bool {
	if e == nil {
		return false
	}
	if g.chain != nil {
		return g.chain.Contains(e)
	}
	_, ok := g.index[e.Key()]
	return ok
}

// Multiply returns a·b, failing with ErrNotAMember when either operand is
// outside the group.
func (g *Group) Multiply(a, b algebra.Element) (algebra.Element, error) {
	if !g.Contains(a) {
		return nil, fmt.Errorf("%w: left operand %v", ErrNotAMember, a)
	}
	if !g.Contains(b) {
		return nil, fmt.Errorf("%w: right operand %v", ErrNotAMember, b)
	}
	return a.Compose(b)
}

// Element returns the i-th element in canonical enumeration order.
// Requires a materialized group.
func (g *Group) Element(i int) algebra.Element { return g.elems[i] }

// Index returns the canonical position of e, or false when e is not a
// member or the group is order-only.
func (g *Group) Index(e algebra.Element) (int, bool) {
	if g.chain != nil || e == nil {
		return 0, false
	}
	i, ok := g.index[e.Key()]
	return i, ok
}

// Elements returns a restartable sequence over the materialized elements
// in canonical order. Order-only groups yield an empty sequence; check
// Materialized first.
func (g *Group) Elements() iter.Seq[algebra.Element] {
	return func(yield func(algebra.Element) bool) {
		for _, e := range g.elems {
			if !yield(e) {
				return
			}
		}
	}
}
