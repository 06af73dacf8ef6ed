package autos

import (
	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

// Inner computes Inn(G): the group of conjugation automorphisms, as
// permutations of g's canonical element indices. The map x ↦ φ_x is a
// homomorphism onto Inn(G) with kernel Z(G), so the result has order
// |G| / |Z(G)|. Requires a materialized group.
func Inner(g *group.Group) (*group.Group, error) {
	if !g.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}
	// generated by the conjugations of the subject's own generators
	gens := make([]algebra.Element, 0, g.Generators().Len())
	for _, x := range g.Generators().Elements() {
		phi, err := conjugationPerm(g, x)
		if err != nil {
			return nil, err
		}
		gens = append(gens, phi)
	}
	set, err := algebra.NewGeneratingSet(gens...)
	if err != nil {
		return nil, err
	}
	return closure.Close(set, closure.WithMaxOrder(g.Order()))
}

// conjugationPerm returns φ_x as a permutation of element indices:
// φ_x(e) = x·e·x⁻¹.
func conjugationPerm(g *group.Group, x algebra.Element) (algebra.Perm, error) {
	n := g.Order()
	images := make([]int, n)
	for i := 0; i < n; i++ {
		conj, err := algebra.Conjugate(x, g.Element(i))
		if err != nil {
			return algebra.Perm{}, err
		}
		idx, ok := g.Index(conj)
		if !ok {
			return algebra.Perm{}, group.ErrNotAMember
		}
		images[i] = idx
	}
	return algebra.NewPerm(images)
}
