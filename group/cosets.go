package group

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Coset is one right coset H·g: the representative and the members in
// canonical enumeration order of the ambient group.
type Coset struct {
	Rep     int // canonical index of the representative in the ambient group
	Members []int
}

// RightCosets partitions g into right cosets of the subgroup h. Both
// groups must be materialized. The representative of each coset is the
// first element of g (in canonical enumeration order) not covered by an
// earlier coset, so output is deterministic.
//
// Fails with ErrRequiresMaterialized on order-only inputs and with
// ErrNotASubgroup when h is not a subgroup of g.
func RightCosets(g, h *Group) ([]Coset, error) {
	if !g.Materialized() || !h.Materialized() {
		return nil, ErrRequiresMaterialized
	}
	if g.Order()%h.Order() != 0 {
		return nil, fmt.Errorf("%w: order %d does not divide %d", ErrNotASubgroup, h.Order(), g.Order())
	}
	for e := range h.Elements() {
		if !g.Contains(e) {
			return nil, fmt.Errorf("%w: %v outside the group", ErrNotASubgroup, e)
		}
	}

	n := g.Order()
	covered := bitset.New(uint(n))
	cosets := make([]Coset, 0, n/h.Order())
	for i := 0; i < n; i++ {
		if covered.Test(uint(i)) {
			continue
		}
		rep := g.Element(i)
		members := make([]int, 0, h.Order())
		for he := range h.Elements() {
			prod, err := he.Compose(rep)
			if err != nil {
				return nil, err
			}
			j, ok := g.Index(prod)
			if !ok {
				return nil, fmt.Errorf("%w: product %v escapes the group", ErrNotASubgroup, prod)
			}
			if covered.Test(uint(j)) {
				// cosets are disjoint; an overlap means h is not closed
				return nil, fmt.Errorf("%w: cosets overlap at %v", ErrNotASubgroup, prod)
			}
			covered.Set(uint(j))
			members = append(members, j)
		}
		cosets = append(cosets, Coset{Rep: i, Members: members})
	}
	return cosets, nil
}
