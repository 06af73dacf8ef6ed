package closure_test

import (
	"math/big"
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/stretchr/testify/require"
)

func chainFor(t *testing.T, degree int, images ...[]int) *closure.Chain {
	t.Helper()
	perms := make([]algebra.Perm, 0, len(images))
	for _, img := range images {
		p, err := algebra.NewPerm(img)
		require.NoError(t, err)
		perms = append(perms, p)
	}
	return closure.NewChain(degree, perms)
}

func TestChain_SymmetricOrders(t *testing.T) {
	// S_n = ⟨(1 2 … n), (1 2)⟩; chain orders must equal n!
	fact := big.NewInt(1)
	for n := 3; n <= 9; n++ {
		fact.SetInt64(1)
		for k := 2; k <= n; k++ {
			fact.Mul(fact, big.NewInt(int64(k)))
		}
		cycle := make([]int, n)
		for i := range cycle {
			cycle[i] = (i + 1) % n
		}
		swap := make([]int, n)
		for i := range swap {
			swap[i] = i
		}
		swap[0], swap[1] = 1, 0
		c := chainFor(t, n, cycle, swap)
		require.Zero(t, fact.Cmp(c.Order()), "S_%d order mismatch: got %s want %s", n, c.Order(), fact)
	}
}

func TestChain_AlternatingOrder(t *testing.T) {
	// A4 = ⟨(1 2 3), (1 2)(3 4)⟩, order 12
	c := chainFor(t, 4, []int{1, 2, 0, 3}, []int{1, 0, 3, 2})
	require.Zero(t, big.NewInt(12).Cmp(c.Order()))
}

func TestChain_Membership(t *testing.T) {
	// A4: even permutations sift to identity, odd ones do not
	c := chainFor(t, 4, []int{1, 2, 0, 3}, []int{1, 0, 3, 2})

	even, err := algebra.NewPerm([]int{2, 3, 0, 1}) // (1 3)(2 4)
	require.NoError(t, err)
	require.True(t, c.Contains(even))

	odd, err := algebra.NewPerm([]int{1, 0, 2, 3}) // (1 2)
	require.NoError(t, err)
	require.False(t, c.Contains(odd))

	// wrong degree is never a member
	require.False(t, c.Contains(algebra.IdentityPerm(5)))
	require.True(t, c.Contains(algebra.IdentityPerm(4)))
}

func TestChain_MatchesMaterialization(t *testing.T) {
	// the chain and the materialized closure must agree on order and
	// membership, element for element
	cases := []struct {
		name   string
		degree int
		images [][]int
	}{
		{"S4", 4, [][]int{{1, 2, 3, 0}, {1, 0, 2, 3}}},
		{"A4", 4, [][]int{{1, 2, 0, 3}, {1, 0, 3, 2}}},
		{"D6", 6, [][]int{{1, 2, 3, 4, 5, 0}, {0, 5, 4, 3, 2, 1}}},
		{"C7", 7, [][]int{{1, 2, 3, 4, 5, 6, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			elems := make([]algebra.Element, 0, len(tc.images))
			for _, img := range tc.images {
				p, err := algebra.NewPerm(img)
				require.NoError(t, err)
				elems = append(elems, p)
			}
			gens, err := algebra.NewGeneratingSet(elems...)
			require.NoError(t, err)

			full, err := closure.Close(gens)
			require.NoError(t, err)
			lazy, err := closure.Close(gens, closure.WithOrderOnly())
			require.NoError(t, err)

			require.Equal(t, full.Order(), lazy.Order())
			for e := range full.Elements() {
				require.True(t, lazy.Contains(e), "chain rejects member %v", e)
			}
		})
	}
}

func TestChain_DeepStabilizers(t *testing.T) {
	// S7 from an n-cycle and a transposition: the transposition's sift
	// residue alone generates only a sliver of the point stabilizer, so
	// the chain must install the transposition at its entry level to
	// reach all five stabilizer levels and 7! = 5040.
	cycle := []int{1, 2, 3, 4, 5, 6, 0}
	swap := []int{1, 0, 2, 3, 4, 5, 6}
	c := chainFor(t, 7, cycle, swap)
	require.Zero(t, big.NewInt(5040).Cmp(c.Order()))
}

func TestChain_CyclicGroup(t *testing.T) {
	// ⟨(1 2 3 4 5)⟩ has order 5 and a single base point
	cycle := []int{1, 2, 3, 4, 0}
	c := chainFor(t, 5, cycle)
	require.Zero(t, big.NewInt(5).Cmp(c.Order()))
	require.Equal(t, []int{0}, c.Base())
}

func TestChain_TrivialGroup(t *testing.T) {
	c := closure.NewChain(3, []algebra.Perm{algebra.IdentityPerm(3)})
	require.Zero(t, big.NewInt(1).Cmp(c.Order()))
	require.True(t, c.Contains(algebra.IdentityPerm(3)))
	require.Empty(t, c.Base())
}
