package autos

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

// Result bundles the automorphism structure of a subject group.
type Result struct {
	// Subject is the group the automorphisms act on.
	Subject *group.Group
	// Inn is the inner automorphism group, normal in Aut.
	Inn *group.Group
	// Aut is the full automorphism group over element-index permutations.
	Aut *group.Group
	// OutReps are right-coset representatives of Inn in Aut, one per
	// outer class, in Aut's canonical enumeration order. |OutReps| =
	// |Aut| / |Inn|.
	OutReps []algebra.Perm
}

// step is one letter of a generator word: the generator index, possibly
// inverted.
type step struct {
	gen int
	inv bool
}

// Full computes Inn, Aut and Out for a materialized group below the
// search ceiling. Automorphism candidates are bijections of a generating
// subset's images, pruned by element order, expanded through generator
// words, and kept only when they preserve the whole multiplication table.
// Fails with ErrAutSearchTooLarge above the ceiling.
func Full(g *group.Group, opts ...Option) (*Result, error) {
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
	if g.Order() > o.Ceiling {
		return nil, ErrAutSearchTooLarge
	}

	inn, err := Inner(g)
	if err != nil {
		return nil, err
	}

	s := &search{g: g, opts: o}
	if err := s.prepare(); err != nil {
		return nil, err
	}
	if err := s.run(); err != nil {
		return nil, err
	}

	set, err := algebra.NewGeneratingSet(s.found...)
	if err != nil {
		return nil, err
	}
	// the exhaustive search already produced every automorphism, so the
	// closure only re-enumerates them in canonical order
	aut, err := closure.Close(set, closure.WithMaxOrder(len(s.found)))
	if err != nil {
		return nil, err
	}

	cosets, err := group.RightCosets(aut, inn)
	if err != nil {
		return nil, err
	}
	reps := make([]algebra.Perm, len(cosets))
	for i, c := range cosets {
		reps[i] = aut.Element(c.Rep).(algebra.Perm)
	}
	return &Result{Subject: g, Inn: inn, Aut: aut, OutReps: reps}, nil
}

// Outer returns one representative per outer automorphism class: the
// right cosets of Inn(G) in Aut(G). Convenience wrapper around Full.
func Outer(g *group.Group, opts ...Option) ([]algebra.Perm, error) {
	res, err := Full(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.OutReps, nil
}

// search holds the mutable state of one Aut backtracking run.
type search struct {
	g    *group.Group
	opts Options

	chosen     []algebra.Element // irredundant generating subset
	words      [][]step          // generator word per element index
	candidates [][]int           // candidate image indices per generator

	images []algebra.Element // current assignment
	found  []algebra.Element // verified automorphisms as index-perms
	seen   map[string]bool
}

// prepare picks the generating subset, expresses every element as a word
// in it, and prunes candidate images by element order.
func (s *search) prepare() error {
	if err := s.pickGenerators(); err != nil {
		return err
	}
	if err := s.buildWords(); err != nil {
		return err
	}
	n := s.g.Order()
	ords := make([]int, n)
	for i := 0; i < n; i++ {
		ords[i] = algebra.Order(s.g.Element(i))
	}
	s.candidates = make([][]int, len(s.chosen))
	for d, gen := range s.chosen {
		gi, _ := s.g.Index(gen)
		for j := 0; j < n; j++ {
			if ords[j] == ords[gi] {
				s.candidates[d] = append(s.candidates[d], j)
			}
		}
	}
	s.images = make([]algebra.Element, len(s.chosen))
	s.seen = make(map[string]bool)
	return nil
}

// pickGenerators greedily collects the first elements (in canonical
// order) that enlarge the generated subgroup, until it is the whole
// group. The result is irredundant and deterministic.
func (s *search) pickGenerators() error {
	cur, err := subgroupClosure(s.g, []algebra.Element{s.g.Identity()})
	if err != nil {
		return err
	}
	for cur.Order() < s.g.Order() {
		picked := false
		for e := range s.g.Elements() {
			if cur.Contains(e) {
				continue
			}
			s.chosen = append(s.chosen, e)
			picked = true
			break
		}
		if !picked {
			// cur is a proper subgroup, so an outside element exists
			return group.ErrNotAMember
		}
		if cur, err = subgroupClosure(s.g, s.chosen); err != nil {
			return err
		}
	}
	return nil
}

// buildWords BFS-expands every element as a word in the chosen subset.
func (s *search) buildWords() error {
	n := s.g.Order()
	s.words = make([][]step, n)
	visited := bitset.New(uint(n))
	visited.Set(0) // identity, the empty word
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curEl := s.g.Element(cur)
		for gi, gen := range s.chosen {
			for _, inv := range []bool{false, true} {
				next := gen
				if inv {
					next = gen.Inverse()
				}
				prod, err := curEl.Compose(next)
				if err != nil {
					return err
				}
				idx, ok := s.g.Index(prod)
				if !ok {
					return group.ErrNotAMember
				}
				if visited.Test(uint(idx)) {
					continue
				}
				visited.Set(uint(idx))
				word := make([]step, len(s.words[cur]), len(s.words[cur])+1)
				copy(word, s.words[cur])
				s.words[idx] = append(word, step{gen: gi, inv: inv})
				queue = append(queue, idx)
			}
		}
	}
	return nil
}

// run backtracks over candidate image assignments in ascending index
// order, verifying complete assignments.
func (s *search) run() error {
	return s.assign(0)
}

func (s *search) assign(depth int) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}
	if depth == len(s.chosen) {
		return s.verify()
	}
	for _, idx := range s.candidates[depth] {
		s.images[depth] = s.g.Element(idx)
		if err := s.assign(depth + 1); err != nil {
			return err
		}
	}
	return nil
}

// verify expands the current assignment into a full map and keeps it when
// it is a bijective homomorphism.
func (s *search) verify() error {
	n := s.g.Order()
	phi := make([]int, n)
	hit := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		cur := s.g.Identity()
		for _, st := range s.words[i] {
			im := s.images[st.gen]
			if st.inv {
				im = im.Inverse()
			}
			next, err := cur.Compose(im)
			if err != nil {
				return err
			}
			cur = next
		}
		idx, ok := s.g.Index(cur)
		if !ok || hit.Test(uint(idx)) {
			return nil // not a bijection onto the group
		}
		hit.Set(uint(idx))
		phi[i] = idx
	}

	// φ(x·s) = φ(x)·φ(s) for every x and generator s extends to the whole
	// table, since every element is a positive word in the generators
	for i := 0; i < n; i++ {
		for _, gen := range s.chosen {
			left, err := s.g.Element(i).Compose(gen)
			if err != nil {
				return err
			}
			li, _ := s.g.Index(left)
			gi, _ := s.g.Index(gen)
			right, err := s.g.Element(phi[i]).Compose(s.g.Element(phi[gi]))
			if err != nil {
				return err
			}
			ri, _ := s.g.Index(right)
			if phi[li] != ri {
				return nil
			}
		}
	}

	p, err := algebra.NewPerm(phi)
	if err != nil {
		return err
	}
	if !s.seen[p.Key()] {
		s.seen[p.Key()] = true
		s.found = append(s.found, p)
	}
	return nil
}

// subgroupClosure materializes ⟨elems⟩ inside g.
func subgroupClosure(g *group.Group, elems []algebra.Element) (*group.Group, error) {
	set, err := algebra.NewGeneratingSet(elems...)
	if err != nil {
		return nil, err
	}
	return closure.Close(set, closure.WithMaxOrder(g.Order()))
}
