package classical

import (
	"fmt"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/gf"
	"github.com/arbelos/burnside/group"
)

// Family names a classical group family accepted by Build.
type Family string

// Supported families.
const (
	FamilyGL  Family = "GL"
	FamilySL  Family = "SL"
	FamilyPGL Family = "PGL"
	FamilyPSL Family = "PSL"
	FamilyO   Family = "O"
	FamilySO  Family = "SO"
	FamilyPO  Family = "PO"
	FamilyPSO Family = "PSO"
)

// Build constructs the named classical group of degree n over f,
// dispatching to the linear or orthogonal factory.
func Build(family Family, n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	switch family {
	case FamilyGL:
		return GL(n, f, opts...)
	case FamilySL:
		return SL(n, f, opts...)
	case FamilyPGL:
		return PGL(n, f, opts...)
	case FamilyPSL:
		return PSL(n, f, opts...)
	case FamilyO:
		return O(n, f, opts...)
	case FamilySO:
		return SO(n, f, opts...)
	case FamilyPO:
		return PO(n, f, opts...)
	case FamilyPSO:
		return PSO(n, f, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

// Linear dispatches to the linear families GL, SL, PGL and PSL,
// rejecting other family names.
func Linear(family Family, n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	switch family {
	case FamilyGL, FamilySL, FamilyPGL, FamilyPSL:
		return Build(family, n, f, opts...)
	default:
		return nil, fmt.Errorf("%w: %q is not a linear family", ErrUnknownFamily, family)
	}
}

// GL returns the general linear group GL(n, f): all invertible n×n
// matrices over f. Generated by the SL transvections plus one diagonal
// matrix whose determinant is a primitive scalar.
func GL(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := linearGenerators(n, f, false)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, false, opts)
}

// SL returns the special linear group SL(n, f): determinant-one
// matrices, generated by the transvections I + λE_ij over a basis of f.
func SL(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := linearGenerators(n, f, true)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, false, opts)
}

// PGL returns the projective general linear group PGL(n, f), the
// quotient of GL(n, f) by its scalar matrices.
func PGL(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := linearGenerators(n, f, false)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, true, opts)
}

// PSL returns the projective special linear group PSL(n, f), the image
// of SL(n, f) in PGL(n, f).
func PSL(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := linearGenerators(n, f, true)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, true, opts)
}

// linearGenerators returns the entry slices of the generating matrices
// for SL(n, f), plus the primitive diagonal when special is false.
//
// Transvections I + λE_ij for i ≠ j and λ ranging over a basis of f
// generate SL(n, f); adding diag(ζ, 1, …, 1) for a field generator ζ
// reaches every determinant and hence all of GL(n, f).
func linearGenerators(n int, f *gf.Field, special bool) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadDimension, n)
	}
	var entries [][]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for _, lambda := range f.Basis() {
				t := f.MatIdentity(n)
				t[i*n+j] = lambda
				entries = append(entries, t)
			}
		}
	}
	if !special {
		d := f.MatIdentity(n)
		d[0] = f.Generator()
		entries = append(entries, d)
	}
	if len(entries) == 0 {
		// SL(1, f) is trivial.
		entries = append(entries, f.MatIdentity(n))
	}
	return entries, nil
}

// closeMatrices wraps entry slices as matrix elements (projective when
// asked) and materializes their closure.
func closeMatrices(f *gf.Field, n int, entries [][]int, projective bool, opts []closure.Option) (*group.Group, error) {
	elems := make([]algebra.Element, 0, len(entries))
	for _, e := range entries {
		var (
			m   algebra.FieldMatrix
			err error
		)
		if projective {
			m, err = algebra.NewProjectiveMatrix(f, n, e)
		} else {
			m, err = algebra.NewFieldMatrix(f, n, e)
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, m)
	}
	gens, err := algebra.NewGeneratingSet(elems...)
	if err != nil {
		return nil, err
	}
	return closure.Close(gens, opts...)
}
