package closure

import (
	"math/big"

	"github.com/arbelos/burnside/algebra"
)

// Chain is a Schreier–Sims stabilizer chain over a permutation group: a
// sequence of base points with, per level, the orbit of the point under
// the level's stabilizer generators and a transversal of coset
// representatives. The group order is the product of orbit lengths, and
// membership is decided by sifting — no enumeration of elements.
//
// Construction is deterministic: base points are always the smallest
// moved point of the generator that creates the level, and orbits are
// explored breadth-first in generator index order.
type Chain struct {
	degree int
	levels []*chainLevel
}

type chainLevel struct {
	point       int
	gens        []algebra.Perm
	orbit       []int
	transversal map[int]algebra.Perm // orbit point -> u with u(point) = orbit point
}

// NewChain builds the stabilizer chain for the group generated by gens,
// all of the given degree.
func NewChain(degree int, gens []algebra.Perm) *Chain {
	c := &Chain{degree: degree}
	for _, g := range gens {
		c.insert(g, 0)
	}
	return c
}

// Order returns the exact group order: the product of orbit sizes along
// the chain.
func (c *Chain) Order() *big.Int {
	ord := big.NewInt(1)
	for _, l := range c.levels {
		ord.Mul(ord, big.NewInt(int64(len(l.orbit))))
	}
	return ord
}

// Contains reports membership by sifting e through the chain.
func (c *Chain) Contains(e algebra.Element) bool {
	p, ok := e.(algebra.Perm)
	if !ok || p.Degree() != c.degree {
		return false
	}
	return c.sifts(p, 0)
}

// Base returns the base points, one per level.
func (c *Chain) Base() []int {
	base := make([]int, len(c.levels))
	for i, l := range c.levels {
		base[i] = l.point
	}
	return base
}

// insert extends the chain with g at level lev; g fixes the base points
// of every shallower level (NewChain starts at 0, Schreier generators of
// level i enter at i+1). Generators the chain already expresses sift to
// the identity and are dropped. Everything else joins the generator set
// of level lev itself — installing only the sift residue at a deeper
// level would leave S_lev incomplete, and every orbit and Schreier
// computation above would silently undercount.
func (c *Chain) insert(g algebra.Perm, lev int) {
	if g.IsIdentity() || c.sifts(g, lev) {
		return
	}
	if lev == len(c.levels) {
		b := firstMoved(g)
		c.levels = append(c.levels, &chainLevel{
			point:       b,
			orbit:       []int{b},
			transversal: map[int]algebra.Perm{b: algebra.IdentityPerm(c.degree)},
		})
	}
	c.levels[lev].gens = append(c.levels[lev].gens, g)
	c.rebuildLevel(lev)
}

// sifts reports whether p reduces to the identity against the
// transversals from level lev downward.
func (c *Chain) sifts(p algebra.Perm, lev int) bool {
	cur := p
	for i := lev; i < len(c.levels); i++ {
		l := c.levels[i]
		u, ok := l.transversal[cur.Image(l.point)]
		if !ok {
			return false
		}
		cur = mul(inv(u), cur)
	}
	return cur.IsIdentity()
}

// rebuildLevel recomputes the orbit and transversal of level i and pushes
// every nontrivial Schreier generator one level down, keeping the chain
// invariant: level i+1 generates exactly the stabilizer of the first i+1
// base points.
func (c *Chain) rebuildLevel(i int) {
	l := c.levels[i]
	trans := map[int]algebra.Perm{l.point: algebra.IdentityPerm(c.degree)}
	orbit := []int{l.point}
	for qi := 0; qi < len(orbit); qi++ {
		pt := orbit[qi]
		u := trans[pt]
		for _, s := range l.gens {
			img := s.Image(pt)
			if _, ok := trans[img]; !ok {
				trans[img] = mul(s, u)
				orbit = append(orbit, img)
			}
		}
	}
	l.orbit, l.transversal = orbit, trans

	for _, pt := range orbit {
		u := trans[pt]
		for _, s := range l.gens {
			rep := trans[s.Image(pt)]
			sg := mul(inv(rep), mul(s, u))
			if !sg.IsIdentity() {
				c.insert(sg, i+1)
			}
		}
	}
}

func firstMoved(p algebra.Perm) int {
	for i := 0; i < p.Degree(); i++ {
		if p.Image(i) != i {
			return i
		}
	}
	return -1
}

func mul(a, b algebra.Perm) algebra.Perm {
	e, err := a.Compose(b)
	if err != nil {
		// degrees agree along one chain
		panic("closure: chain composition failed: " + err.Error())
	}
	return e.(algebra.Perm)
}

func inv(p algebra.Perm) algebra.Perm {
	return p.Inverse().(algebra.Perm)
}
