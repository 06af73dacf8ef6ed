package cayley_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/cayley"
	"github.com/arbelos/burnside/classical"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
)

func TestBuild_CycleGraph(t *testing.T) {
	g, err := classical.Cyclic(6)
	require.NoError(t, err)

	cg, err := cayley.Build(g)
	require.NoError(t, err)
	require.Equal(t, 6, cg.Order())
	require.Equal(t, 2, cg.Degree()) // rotation and its inverse
	require.Equal(t, 3, cg.Diameter())

	// every vertex of a cycle has two distinct neighbors
	for v := 0; v < cg.Order(); v++ {
		nbrs, err := cg.Neighbors(v)
		require.NoError(t, err)
		require.Len(t, nbrs, 2)
		require.NotEqual(t, nbrs[0], nbrs[1])
	}
}

func TestBuild_Directed(t *testing.T) {
	g, err := classical.Cyclic(6)
	require.NoError(t, err)

	cg, err := cayley.Build(g, cayley.WithoutInverses())
	require.NoError(t, err)
	require.Equal(t, 1, cg.Degree())
	require.Equal(t, 5, cg.Diameter()) // one-way ring
}

func TestBuild_WordMetric(t *testing.T) {
	g, err := classical.Symmetric(3)
	require.NoError(t, err)

	cg, err := cayley.Build(g)
	require.NoError(t, err)
	require.Equal(t, 3, cg.Degree()) // r, s and r⁻¹; s is an involution
	require.Equal(t, 2, cg.Diameter())

	// identity at distance 0, everything reachable
	byLen := map[int]int{}
	for v := 0; v < cg.Order(); v++ {
		d, err := cg.WordLength(v)
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, 0)
		byLen[d]++
	}
	require.Equal(t, map[int]int{0: 1, 1: 3, 2: 2}, byLen)
}

func TestAdjacency(t *testing.T) {
	g, err := classical.Symmetric(3)
	require.NoError(t, err)

	cg, err := cayley.Build(g)
	require.NoError(t, err)
	a := cg.Adjacency()
	n, m := a.Dims()
	require.Equal(t, 6, n)
	require.Equal(t, 6, m)

	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			require.Equal(t, a.At(i, j), a.At(j, i), "undirected graph must be symmetric")
			require.Zero(t, a.At(i, i), "right multiplication by a non-identity never fixes a vertex")
			rowSum += a.At(i, j)
		}
		require.Equal(t, 3.0, rowSum)
	}
}

func TestBuild_Errors(t *testing.T) {
	if _, err := cayley.Build(nil); !errors.Is(err, cayley.ErrNilGroup) {
		t.Errorf("nil group: got %v", err)
	}

	r, err := algebra.NewPerm([]int{1, 2, 0})
	require.NoError(t, err)
	gens, err := algebra.NewGeneratingSet(r)
	require.NoError(t, err)
	lazy, err := closure.Close(gens, closure.WithOrderOnly())
	require.NoError(t, err)
	if _, err := cayley.Build(lazy); !errors.Is(err, group.ErrRequiresMaterialized) {
		t.Errorf("order-only group: got %v", err)
	}

	g, err := classical.Cyclic(4)
	require.NoError(t, err)
	cg, err := cayley.Build(g)
	require.NoError(t, err)
	if _, err := cg.Neighbors(99); !errors.Is(err, cayley.ErrVertexRange) {
		t.Errorf("vertex range: got %v", err)
	}
	if _, err := cg.WordLength(-1); !errors.Is(err, cayley.ErrVertexRange) {
		t.Errorf("vertex range: got %v", err)
	}
}
