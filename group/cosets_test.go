package group_test

import (
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/group"
	"github.com/stretchr/testify/require"
)

func TestRightCosets_A3InS3(t *testing.T) {
	g := s3(t)
	h, err := closure.Close(genSet(t, perm(t, 1, 2, 0))) // A3
	require.NoError(t, err)

	cosets, err := group.RightCosets(g, h)
	require.NoError(t, err)
	require.Len(t, cosets, 2) // |S3| / |A3|

	// union is everything, with no overlaps
	seen := make(map[int]bool)
	for _, c := range cosets {
		require.Len(t, c.Members, h.Order())
		for _, m := range c.Members {
			require.False(t, seen[m], "element %d covered twice", m)
			seen[m] = true
		}
	}
	require.Len(t, seen, g.Order())

	// representatives are first-uncovered in enumeration order: the first
	// coset is always H itself, represented by the identity
	require.Equal(t, 0, cosets[0].Rep)
}

func TestRightCosets_TrivialSubgroup(t *testing.T) {
	g := s3(t)
	triv, err := closure.Close(genSet(t, algebra.IdentityPerm(3)))
	require.NoError(t, err)

	cosets, err := group.RightCosets(g, triv)
	require.NoError(t, err)
	require.Len(t, cosets, g.Order())
	for i, c := range cosets {
		require.Equal(t, i, c.Rep)
		require.Equal(t, []int{i}, c.Members)
	}
}

func TestRightCosets_NotASubgroup(t *testing.T) {
	g := s3(t)

	// {e, (1 2 3)} is not closed: its cosets overlap
	gens := genSet(t, perm(t, 1, 2, 0))
	notClosed, err := group.NewMaterialized(gens, []algebra.Element{
		algebra.IdentityPerm(3), perm(t, 1, 2, 0),
	})
	require.NoError(t, err)
	_, err = group.RightCosets(g, notClosed)
	require.ErrorIs(t, err, group.ErrNotASubgroup)

	// a subgroup of a different group fails membership
	other, err := closure.Close(genSet(t, perm(t, 1, 0, 2, 3)))
	require.NoError(t, err)
	_, err = group.RightCosets(g, other)
	require.ErrorIs(t, err, group.ErrNotASubgroup)
}

func TestRightCosets_RequiresMaterialized(t *testing.T) {
	gens := genSet(t, perm(t, 1, 2, 0), perm(t, 1, 0, 2))
	chainGroup, err := closure.Close(gens, closure.WithOrderOnly())
	require.NoError(t, err)
	g := s3(t)

	_, err = group.RightCosets(chainGroup, g)
	require.ErrorIs(t, err, group.ErrRequiresMaterialized)
	_, err = group.RightCosets(g, chainGroup)
	require.ErrorIs(t, err, group.ErrRequiresMaterialized)
}
