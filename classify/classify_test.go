package classify_test

import (
	"testing"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/classify"
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

func materialize(t *testing.T, elems ...algebra.Element) *group.Group {
	t.Helper()
	gens, err := algebra.NewGeneratingSet(elems...)
	require.NoError(t, err)
	g, err := closure.Close(gens)
	require.NoError(t, err)
	return g
}

// s3 has classes {e}, {three transpositions}, {two 3-cycles}.
func s3(t *testing.T) *group.Group {
	t.Helper()
	return materialize(t, perm(t, 1, 2, 0), perm(t, 1, 0, 2))
}

func TestClasses_S3(t *testing.T) {
	classes, err := classify.Classes(s3(t))
	require.NoError(t, err)
	require.Len(t, classes, 3)

	// identity class first, always a singleton
	require.True(t, classes[0].Rep.IsIdentity())
	require.Equal(t, 1, classes[0].Size())

	sizes := map[int]int{}
	total := 0
	for _, c := range classes {
		sizes[c.Size()]++
		total += c.Size()
	}
	require.Equal(t, 6, total)
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, sizes)
}

func TestClasses_Partition(t *testing.T) {
	g := materialize(t, perm(t, 1, 2, 3, 0)) // C4
	classes, err := classify.Classes(g)
	require.NoError(t, err)

	// abelian group: every class is a singleton
	require.Len(t, classes, 4)
	seen := map[string]bool{}
	for _, c := range classes {
		for _, m := range c.Members {
			require.False(t, seen[m.Key()], "element in two classes")
			seen[m.Key()] = true
		}
	}
	require.Len(t, seen, 4)
}

func TestClasses_ParallelMatchesSerial(t *testing.T) {
	g := materialize(t, perm(t, 1, 2, 3, 0, 5, 4), perm(t, 1, 0, 2, 3, 4, 5))
	serial, err := classify.Classes(g)
	require.NoError(t, err)
	parallel, err := classify.Classes(g, classify.WithWorkers(4))
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		require.True(t, serial[i].Rep.Equal(parallel[i].Rep))
		require.Equal(t, serial[i].Size(), parallel[i].Size())
		for j := range serial[i].Members {
			require.True(t, serial[i].Members[j].Equal(parallel[i].Members[j]))
		}
	}
}

func TestClasses_OptionViolation(t *testing.T) {
	_, err := classify.Classes(s3(t), classify.WithWorkers(0))
	require.ErrorIs(t, err, classify.ErrOptionViolation)
}

func TestClasses_RequiresMaterialized(t *testing.T) {
	gens, err := algebra.NewGeneratingSet(perm(t, 1, 2, 0))
	require.NoError(t, err)
	g, err := closure.Close(gens, closure.WithOrderOnly())
	require.NoError(t, err)
	_, err = classify.Classes(g)
	require.ErrorIs(t, err, group.ErrRequiresMaterialized)
}
