package algebra

import "fmt"

// GeneratingSet is an ordered, deduplicated collection of compatible
// elements. It is the seed of every closure computation and is never
// mutated after construction.
type GeneratingSet struct {
	elems []Element
}

// NewGeneratingSet validates and builds a generating set:
//
//   - at least one element (ErrEmptyGenerators)
//   - all elements of one kind and parameter set (ErrMixedKinds)
//   - duplicates removed, first occurrence wins
//   - identity elements dropped, unless the set would become empty — the
//     trivial group keeps a single identity generator
func NewGeneratingSet(elems ...Element) (*GeneratingSet, error) {
	if len(elems) == 0 {
		return nil, ErrEmptyGenerators
	}
	first := elems[0]
	seen := make(map[string]bool, len(elems))
	kept := make([]Element, 0, len(elems))
	var identity Element
	for _, e := range elems {
		if e == nil {
			return nil, fmt.Errorf("%w: nil element", ErrMixedKinds)
		}
		if _, err := first.Compose(e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMixedKinds, err)
		}
		if e.IsIdentity() {
			identity = e
			continue
		}
		if k := e.Key(); !seen[k] {
			seen[k] = true
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		// the trivial group
		kept = append(kept, identity)
	}
	return &GeneratingSet{elems: kept}, nil
}

// Len returns the number of generators.
func (s *GeneratingSet) Len() int { return len(s.elems) }

// Element returns the i-th generator.
func (s *GeneratingSet) Element(i int) Element { return s.elems[i] }

// Elements returns a copy of the generator sequence.
func (s *GeneratingSet) Elements() []Element {
	return append([]Element(nil), s.elems...)
}

// Kind reports the shared kind of all generators.
func (s *GeneratingSet) Kind() Kind { return s.elems[0].Kind() }

// Identity derives the identity element of the generators' parameter set.
func (s *GeneratingSet) Identity() Element {
	g := s.elems[0]
	e, err := g.Compose(g.Inverse())
	if err != nil {
		// an element is always composable with its own inverse
		panic("algebra: identity derivation failed: " + err.Error())
	}
	return e
}
