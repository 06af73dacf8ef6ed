package algebra_test

import (
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/gf"
	"github.com/stretchr/testify/require"
)

func gf3(t *testing.T) *gf.Field {
	t.Helper()
	f, err := gf.New(3, 1)
	require.NoError(t, err)
	return f
}

func TestNewFieldMatrix_Validation(t *testing.T) {
	f := gf3(t)

	_, err := algebra.NewFieldMatrix(f, 2, []int{1, 0, 0})
	require.ErrorIs(t, err, algebra.ErrInvalidElement)

	_, err = algebra.NewFieldMatrix(f, 2, []int{1, 0, 0, 5})
	require.ErrorIs(t, err, algebra.ErrInvalidElement)

	// singular matrices are not group elements
	_, err = algebra.NewFieldMatrix(f, 2, []int{1, 2, 2, 1})
	require.ErrorIs(t, err, algebra.ErrInvalidElement)
}

func TestFieldMatrix_ComposeInverse(t *testing.T) {
	f := gf3(t)
	a, err := algebra.NewFieldMatrix(f, 2, []int{1, 1, 0, 1}) // transvection
	require.NoError(t, err)

	// a³ = identity in characteristic 3
	sq, err := a.Compose(a)
	require.NoError(t, err)
	cube, err := sq.Compose(a)
	require.NoError(t, err)
	require.True(t, cube.IsIdentity())
	require.Equal(t, 3, algebra.Order(a))

	inv := a.Inverse().(algebra.FieldMatrix)
	require.Equal(t, []int{1, 2, 0, 1}, inv.Entries())

	id, err := a.Compose(a.Inverse())
	require.NoError(t, err)
	require.True(t, id.IsIdentity())
}

func TestFieldMatrix_IncompatibleParameters(t *testing.T) {
	f3 := gf3(t)
	f5, err := gf.New(5, 1)
	require.NoError(t, err)

	a := algebra.IdentityMatrix(f3, 2)
	b := algebra.IdentityMatrix(f5, 2)
	_, err = a.Compose(b)
	require.ErrorIs(t, err, algebra.ErrIncompatibleKind)

	// linear and projective flavours never mix
	p, err := algebra.NewProjectiveMatrix(f3, 2, []int{1, 0, 0, 1})
	require.NoError(t, err)
	_, err = a.Compose(p)
	require.ErrorIs(t, err, algebra.ErrIncompatibleKind)

	// kind mismatch
	_, err = a.Compose(algebra.IdentityPerm(2))
	require.ErrorIs(t, err, algebra.ErrIncompatibleKind)
}

func TestProjectiveMatrix_ScalarIdentification(t *testing.T) {
	f := gf3(t)

	a, err := algebra.NewProjectiveMatrix(f, 2, []int{1, 2, 0, 1})
	require.NoError(t, err)
	// 2·a is the same projective element
	b, err := algebra.NewProjectiveMatrix(f, 2, []int{2, 1, 0, 2})
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())

	// a scalar matrix is the projective identity
	s, err := algebra.NewProjectiveMatrix(f, 2, []int{2, 0, 0, 2})
	require.NoError(t, err)
	require.True(t, s.IsIdentity())

	// but not the linear identity
	l, err := algebra.NewFieldMatrix(f, 2, []int{2, 0, 0, 2})
	require.NoError(t, err)
	require.False(t, l.IsIdentity())
}

func TestFieldMatrix_DetString(t *testing.T) {
	f := gf3(t)
	a, err := algebra.NewFieldMatrix(f, 2, []int{1, 2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, a.Det())
	require.Equal(t, "[[1 2][0 1]]/GF(3)", a.String())
}
