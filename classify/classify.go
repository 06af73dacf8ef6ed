package classify

import (
	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/group"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// Class is one conjugacy class: the representative (the member with the
// smallest canonical index) and all members in canonical index order.
type Class struct {
	Rep     algebra.Element
	Members []algebra.Element
}

// Size returns the number of elements in the class.
func (c Class) Size() int { return len(c.Members) }

// Classes partitions g into conjugacy classes. Classes are ordered by
// their smallest representative in canonical enumeration order; the
// identity's singleton class is always first. Fails with
// group.ErrRequiresMaterialized on order-only groups.
func Classes(g *group.Group, opts ...Option) ([]Class, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}

	n := g.Order()
	classified := bitset.New(uint(n))
	var classes []Class
	for i := 0; i < n; i++ {
		if classified.Test(uint(i)) {
			continue
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		members, err := orbit(g, i, o.Workers)
		if err != nil {
			return nil, err
		}
		class := Class{Rep: g.Element(i)}
		for j, ok := members.NextSet(0); ok; j, ok = members.NextSet(j + 1) {
			classified.Set(j)
			class.Members = append(class.Members, g.Element(int(j)))
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// orbit computes the conjugation orbit of g.Element(i) as an index bitmap.
// With workers > 1 the conjugating elements are split into ranges whose
// bitmaps are unioned afterwards; the union is order-insensitive, so the
// parallel result equals the serial one.
func orbit(g *group.Group, i, workers int) (*bitset.BitSet, error) {
	n := g.Order()
	x := g.Element(i)
	if workers <= 1 {
		return conjRange(g, x, 0, n)
	}
	if workers > n {
		workers = n
	}
	parts := make([]*bitset.BitSet, workers)
	var eg errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, min((w+1)*chunk, n)
		eg.Go(func() error {
			part, err := conjRange(g, x, lo, hi)
			parts[w] = part
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out.InPlaceUnion(p)
	}
	return out, nil
}

// conjRange conjugates x by g.Element(j) for j in [lo, hi).
func conjRange(g *group.Group, x algebra.Element, lo, hi int) (*bitset.BitSet, error) {
	out := bitset.New(uint(g.Order()))
	for j := lo; j < hi; j++ {
		conj, err := algebra.Conjugate(g.Element(j), x)
		if err != nil {
			return nil, err
		}
		idx, ok := g.Index(conj)
		if !ok {
			// closure guarantees conjugates stay inside
			return nil, group.ErrNotAMember
		}
		out.Set(uint(idx))
	}
	return out, nil
}
