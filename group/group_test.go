package group_test

import (
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
	"github.com/stretchr/testify/require"
)

func perm(t *testing.T, images ...int) algebra.Perm {
	t.Helper()
	p, err := algebra.NewPerm(images)
	require.NoError(t, err)
	return p
}

func genSet(t *testing.T, elems ...algebra.Element) *algebra.GeneratingSet {
	t.Helper()
	gens, err := algebra.NewGeneratingSet(elems...)
	require.NoError(t, err)
	return gens
}

// s3 materializes S3 = ⟨(1 2 3), (1 2)⟩.
func s3(t *testing.T) *group.Group {
	t.Helper()
	g, err := closure.Close(genSet(t, perm(t, 1, 2, 0), perm(t, 1, 0, 2)))
	require.NoError(t, err)
	return g
}

func TestNewMaterialized_IdentityFirst(t *testing.T) {
	gens := genSet(t, perm(t, 1, 0, 2))
	_, err := group.NewMaterialized(gens, []algebra.Element{perm(t, 1, 0, 2), algebra.IdentityPerm(3)})
	require.ErrorIs(t, err, group.ErrMissingIdentity)

	_, err = group.NewMaterialized(gens, nil)
	require.ErrorIs(t, err, group.ErrMissingIdentity)
}

func TestGroup_MembershipAndMultiply(t *testing.T) {
	g := s3(t)

	r := perm(t, 1, 2, 0)
	outside := algebra.IdentityPerm(4)
	require.True(t, g.Contains(r))
	require.False(t, g.Contains(outside))
	require.False(t, g.Contains(nil))

	prod, err := g.Multiply(r, r)
	require.NoError(t, err)
	require.True(t, g.Contains(prod))

	_, err = g.Multiply(r, outside)
	require.ErrorIs(t, err, group.ErrNotAMember)
	_, err = g.Multiply(outside, r)
	require.ErrorIs(t, err, group.ErrNotAMember)
}

func TestGroup_ElementsRestartable(t *testing.T) {
	g := s3(t)

	collect := func() []string {
		var keys []string
		for e := range g.Elements() {
			keys = append(keys, e.Key())
		}
		return keys
	}
	first := collect()
	second := collect()
	require.Len(t, first, 6)
	require.Equal(t, first, second)

	// early break must not poison later iterations
	for range g.Elements() {
		break
	}
	require.Equal(t, first, collect())
}

func TestGroup_IndexRoundTrip(t *testing.T) {
	g := s3(t)
	for i := 0; i < g.Order(); i++ {
		j, ok := g.Index(g.Element(i))
		require.True(t, ok)
		require.Equal(t, i, j)
	}
	_, ok := g.Index(algebra.IdentityPerm(5))
	require.False(t, ok)
}

func TestGroup_OrderOnlyVariant(t *testing.T) {
	gens := genSet(t, perm(t, 1, 2, 0), perm(t, 1, 0, 2))
	g, err := closure.Close(gens, closure.WithOrderOnly())
	require.NoError(t, err)

	require.False(t, g.Materialized())
	require.Equal(t, 6, g.Order())
	require.Equal(t, int64(6), g.OrderBig().Int64())
	require.True(t, g.Contains(perm(t, 1, 2, 0)))

	// enumeration-dependent surfaces are unavailable
	_, ok := g.Index(perm(t, 1, 2, 0))
	require.False(t, ok)
	count := 0
	for range g.Elements() {
		count++
	}
	require.Zero(t, count)
}
