package algebra_test

import (
	"errors"
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/stretchr/testify/require"
)

func mustPerm(t *testing.T, images ...int) algebra.Perm {
	t.Helper()
	p, err := algebra.NewPerm(images)
	require.NoError(t, err)
	return p
}

func TestNewPerm_Validation(t *testing.T) {
	if _, err := algebra.NewPerm(nil); !errors.Is(err, algebra.ErrInvalidElement) {
		t.Errorf("empty: want ErrInvalidElement, got %v", err)
	}
	if _, err := algebra.NewPerm([]int{0, 0, 1}); !errors.Is(err, algebra.ErrInvalidElement) {
		t.Errorf("repeat: want ErrInvalidElement, got %v", err)
	}
	if _, err := algebra.NewPerm([]int{0, 3}); !errors.Is(err, algebra.ErrInvalidElement) {
		t.Errorf("range: want ErrInvalidElement, got %v", err)
	}
}

func TestPerm_ComposeInverse(t *testing.T) {
	// (0 1 2) and (0 1) in S3
	r := mustPerm(t, 1, 2, 0)
	s := mustPerm(t, 1, 0, 2)

	// r∘s sends 0→r(1)=2
	rs, err := r.Compose(s)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, rs.(algebra.Perm).Images())

	// r·r⁻¹ = e
	id, err := r.Compose(r.Inverse())
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	// degree mismatch
	_, err = r.Compose(algebra.IdentityPerm(4))
	require.ErrorIs(t, err, algebra.ErrIncompatibleKind)
}

func TestPerm_OrderSignString(t *testing.T) {
	r := mustPerm(t, 1, 2, 0) // 3-cycle
	s := mustPerm(t, 1, 0, 2) // transposition

	require.Equal(t, 3, algebra.Order(r))
	require.Equal(t, 2, algebra.Order(s))
	require.Equal(t, 1, r.Sign())
	require.Equal(t, -1, s.Sign())
	require.Equal(t, "(1 2 3)", r.String())
	require.Equal(t, "(1 2)", s.String())
	require.Equal(t, "()", algebra.IdentityPerm(3).String())
}

func TestPermFromCycles(t *testing.T) {
	p, err := algebra.PermFromCycles(5, [][]int{{0, 1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 4, 3}, p.Images())
	require.Equal(t, 6, algebra.Order(p))

	_, err = algebra.PermFromCycles(3, [][]int{{0, 1}, {1, 2}})
	require.ErrorIs(t, err, algebra.ErrInvalidElement)
}

func TestPerm_KeyEqual(t *testing.T) {
	a := mustPerm(t, 1, 0, 2)
	b := mustPerm(t, 1, 0, 2)
	c := mustPerm(t, 2, 1, 0)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())
	require.False(t, a.Equal(c))
	require.NotEqual(t, a.Key(), c.Key())
}

func TestConjugateCommutator(t *testing.T) {
	r := mustPerm(t, 1, 2, 0)
	s := mustPerm(t, 1, 0, 2)

	// s·r·s⁻¹ is the other 3-cycle
	conj, err := algebra.Conjugate(s, r)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, conj.(algebra.Perm).Images())

	// [r, s] lands in A3
	comm, err := algebra.Commutator(r, s)
	require.NoError(t, err)
	require.Equal(t, 1, comm.(algebra.Perm).Sign())
	require.False(t, comm.IsIdentity())
}
