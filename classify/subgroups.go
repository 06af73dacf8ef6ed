package classify

import (
	"fmt"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

// Center returns Z(G): the subgroup of elements commuting with all of G.
// An element commutes with everything iff it commutes with every
// generator, so membership is decided against the generating set.
func Center(g *group.Group) (*group.Group, error) {
	if !g.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}
	var central []algebra.Element
	gens := g.Generators().Elements()
	for e := range g.Elements() {
		ok, err := commutesWithAll(e, gens)
		if err != nil {
			return nil, err
		}
		if ok {
			central = append(central, e)
		}
	}
	return subgroupOf(g, central)
}

// Commutator returns the commutator subgroup [G, G]: the closure of the
// commutators a·b·a⁻¹·b⁻¹ over all element pairs. Commutators of the
// generating set alone would miss the normal closure, so the materialized
// element set is used as the generating subset; duplicates collapse in
// the generating set before the closure runs.
func Commutator(g *group.Group) (*group.Group, error) {
	if !g.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}
	comms := []algebra.Element{g.Identity()}
	for a := range g.Elements() {
		for b := range g.Elements() {
			c, err := algebra.Commutator(a, b)
			if err != nil {
				return nil, err
			}
			comms = append(comms, c)
		}
	}
	return subgroupOf(g, comms)
}

// Centralizer returns C_G(S): the elements commuting with every element
// of subset. Fails with group.ErrNotAMember when subset strays outside g.
func Centralizer(g *group.Group, subset []algebra.Element) (*group.Group, error) {
	if !g.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}
	for _, s := range subset {
		if !g.Contains(s) {
			return nil, fmt.Errorf("%w: %v", group.ErrNotAMember, s)
		}
	}
	var kept []algebra.Element
	for e := range g.Elements() {
		ok, err := commutesWithAll(e, subset)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return subgroupOf(g, kept)
}

// Normalizer returns N_G(H): the elements x with x·H·x⁻¹ = H.
func Normalizer(g, h *group.Group) (*group.Group, error) {
	if !g.Materialized() || !h.Materialized() {
		return nil, group.ErrRequiresMaterialized
	}
	for e := range h.Elements() {
		if !g.Contains(e) {
			return nil, fmt.Errorf("%w: %v", group.ErrNotAMember, e)
		}
	}
	var kept []algebra.Element
	for x := range g.Elements() {
		normalizes := true
		for e := range h.Elements() {
			conj, err := algebra.Conjugate(x, e)
			if err != nil {
				return nil, err
			}
			if !h.Contains(conj) {
				normalizes = false
				break
			}
		}
		if normalizes {
			kept = append(kept, x)
		}
	}
	return subgroupOf(g, kept)
}

// commutesWithAll reports whether e commutes with every element of set.
func commutesWithAll(e algebra.Element, set []algebra.Element) (bool, error) {
	for _, s := range set {
		es, err := e.Compose(s)
		if err != nil {
			return false, err
		}
		se, err := s.Compose(e)
		if err != nil {
			return false, err
		}
		if !es.Equal(se) {
			return false, nil
		}
	}
	return true, nil
}

// subgroupOf materializes the subgroup generated by elems, bounded by the
// ambient order so a bad generating set can never outgrow g.
func subgroupOf(g *group.Group, elems []algebra.Element) (*group.Group, error) {
	if len(elems) == 0 {
		elems = []algebra.Element{g.Identity()}
	}
	gens, err := algebra.NewGeneratingSet(elems...)
	if err != nil {
		return nil, err
	}
	return closure.Close(gens, closure.WithMaxOrder(g.Order()))
}
