package classical

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/num/quat"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

// Symmetric returns S_n acting on {0, …, n−1}, generated by an n-cycle
// and a transposition. n must be at least 1.
func Symmetric(n int, opts ...closure.Option) (*group.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParameter, n)
	}
	if n == 1 {
		return closeElements(opts, algebra.IdentityPerm(1))
	}
	cycle, err := algebra.PermFromCycles(n, [][]int{seq(n)})
	if err != nil {
		return nil, err
	}
	swap, err := algebra.PermFromCycles(n, [][]int{{0, 1}})
	if err != nil {
		return nil, err
	}
	return closeElements(opts, cycle, swap)
}

// Alternating returns A_n, the even permutations of {0, …, n−1},
// generated by the consecutive 3-cycles (i, i+1, i+2).
func Alternating(n int, opts ...closure.Option) (*group.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParameter, n)
	}
	if n <= 2 {
		return closeElements(opts, algebra.IdentityPerm(n))
	}
	gens := make([]algebra.Element, 0, n-2)
	for i := 0; i+2 < n; i++ {
		c, err := algebra.PermFromCycles(n, [][]int{{i, i + 1, i + 2}})
		if err != nil {
			return nil, err
		}
		gens = append(gens, c)
	}
	return closeElements(opts, gens...)
}

// Cyclic returns C_n as the group generated by a single n-cycle.
func Cyclic(n int, opts ...closure.Option) (*group.Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParameter, n)
	}
	if n == 1 {
		return closeElements(opts, algebra.IdentityPerm(1))
	}
	cycle, err := algebra.PermFromCycles(n, [][]int{seq(n)})
	if err != nil {
		return nil, err
	}
	return closeElements(opts, cycle)
}

// Dihedral returns D_n of order 2n, the symmetries of a regular n-gon:
// the rotation i ↦ i+1 (mod n) and the reflection i ↦ −i (mod n).
// n must be at least 3.
func Dihedral(n int, opts ...closure.Option) (*group.Group, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: dihedral needs n ≥ 3, got %d", ErrBadParameter, n)
	}
	rot, err := algebra.PermFromCycles(n, [][]int{seq(n)})
	if err != nil {
		return nil, err
	}
	images := make([]int, n)
	for i := range images {
		images[i] = (n - i) % n
	}
	refl, err := algebra.NewPerm(images)
	if err != nil {
		return nil, err
	}
	return closeElements(opts, rot, refl)
}

// Abelian returns the finite abelian group Π C_order^power described by
// orderPower, realized as disjoint cycles on a shared point set. The
// map {4: 1, 2: 2} yields C₄ × C₂ × C₂ of order 16.
func Abelian(orderPower map[int]int, opts ...closure.Option) (*group.Group, error) {
	orders := make([]int, 0, len(orderPower))
	for o, p := range orderPower {
		if o < 1 || p < 1 {
			return nil, fmt.Errorf("%w: factor C_%d^%d", ErrBadParameter, o, p)
		}
		orders = append(orders, o)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: empty factor map", ErrBadParameter)
	}
	sort.Ints(orders)

	degree := 0
	for _, o := range orders {
		degree += o * orderPower[o]
	}
	var (
		gens  []algebra.Element
		start int
	)
	for _, o := range orders {
		for k := 0; k < orderPower[o]; k++ {
			block := make([]int, o)
			for i := range block {
				block[i] = start + i
			}
			c, err := algebra.PermFromCycles(degree, [][]int{block})
			if err != nil {
				return nil, err
			}
			gens = append(gens, c)
			start += o
		}
	}
	return closeElements(opts, gens...)
}

// QuaternionGroup returns Q₈ = {±1, ±i, ±j, ±k} as unit quaternions.
func QuaternionGroup(opts ...closure.Option) (*group.Group, error) {
	i, err := algebra.NewQuaternion(quat.Number{Imag: 1})
	if err != nil {
		return nil, err
	}
	j, err := algebra.NewQuaternion(quat.Number{Jmag: 1})
	if err != nil {
		return nil, err
	}
	return closeElements(opts, i, j)
}

// Dicyclic returns the dicyclic group Dic_n of order 4n as unit
// quaternions: a primitive 2n-th root of unity in the ⟨1, i⟩ plane
// together with j. Dic_2 is Q₈. n must be at least 2.
func Dicyclic(n int, opts ...closure.Option) (*group.Group, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: dicyclic needs n ≥ 2, got %d", ErrBadParameter, n)
	}
	theta := math.Pi / float64(n)
	a, err := algebra.NewQuaternion(quat.Number{Real: math.Cos(theta), Imag: math.Sin(theta)})
	if err != nil {
		return nil, err
	}
	j, err := algebra.NewQuaternion(quat.Number{Jmag: 1})
	if err != nil {
		return nil, err
	}
	return closeElements(opts, a, j)
}

// closeElements wraps elements in a generating set and materializes the
// closure. Shared by every finite-family factory.
func closeElements(opts []closure.Option, elems ...algebra.Element) (*group.Group, error) {
	gens, err := algebra.NewGeneratingSet(elems...)
	if err != nil {
		return nil, err
	}
	return closure.Close(gens, opts...)
}

// seq returns [0, 1, …, n−1].
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
