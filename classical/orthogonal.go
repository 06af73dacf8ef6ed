package classical

import (
	"fmt"

	"github.com/arbelos/burnside/algebra"
	"github.com/arbelos/burnside/closure"
	"github.com/arbelos/burnside/gf"
	"github.com/arbelos/burnside/group"
)

// Orthogonal dispatches to the orthogonal families O, SO, PO and PSO,
// rejecting other family names.
func Orthogonal(family Family, n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	switch family {
	case FamilyO, FamilySO, FamilyPO, FamilyPSO:
		return Build(family, n, f, opts...)
	default:
		return nil, fmt.Errorf("%w: %q is not an orthogonal family", ErrUnknownFamily, family)
	}
}

// O returns the orthogonal group O(n, f) of the standard symmetric form
// B(x, y) = Σ xᵢyᵢ over an odd-characteristic field: all matrices
// preserving B. By Cartan–Dieudonné every isometry is a product of
// reflections, so the reflections in anisotropic vectors generate.
func O(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := reflectionGenerators(n, f)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, false, opts)
}

// SO returns the special orthogonal group SO(n, f): the determinant-one
// isometries, an index-2 subgroup of O(n, f) in odd characteristic.
func SO(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := rotationGenerators(n, f, opts)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, false, opts)
}

// PO returns the projective orthogonal group PO(n, f), the image of
// O(n, f) modulo scalar isometries.
func PO(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := reflectionGenerators(n, f)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, true, opts)
}

// PSO returns the projective special orthogonal group PSO(n, f), the
// image of SO(n, f) modulo scalar isometries.
func PSO(n int, f *gf.Field, opts ...closure.Option) (*group.Group, error) {
	entries, err := rotationGenerators(n, f, opts)
	if err != nil {
		return nil, err
	}
	return closeMatrices(f, n, entries, true, opts)
}

// reflectionGenerators enumerates one anisotropic vector per projective
// line (first nonzero coordinate fixed to 1) and emits the reflection
//
//	R_v = I − (2/Q(v)) · v·vᵀ,   Q(v) = B(v, v),
//
// which fixes v⊥ and negates v. Scaling v leaves R_v unchanged, hence
// the projective enumeration.
func reflectionGenerators(n int, f *gf.Field) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadDimension, n)
	}
	if f.Char() == 2 {
		return nil, fmt.Errorf("%w: GF(%d)", ErrBadCharacteristic, f.Order())
	}
	var entries [][]int
	v := make([]int, n)
	for {
		if normalized(v) {
			q := 0
			for _, c := range v {
				q = f.Add(q, f.Mul(c, c))
			}
			if q != 0 {
				scale, err := f.Div(f.Add(1, 1), q)
				if err != nil {
					return nil, err
				}
				r := f.MatIdentity(n)
				for a := 0; a < n; a++ {
					for b := 0; b < n; b++ {
						r[a*n+b] = f.Sub(r[a*n+b], f.Mul(scale, f.Mul(v[a], v[b])))
					}
				}
				entries = append(entries, r)
			}
		}
		if !nextVector(v, f.Order()) {
			break
		}
	}
	if len(entries) == 0 {
		// A totally isotropic form leaves no reflections; the identity
		// keeps the closure well defined. Does not arise over the
		// standard form in odd characteristic for n ≥ 1.
		entries = append(entries, f.MatIdentity(n))
	}
	return entries, nil
}

// rotationGenerators materializes O(n, f) and keeps its determinant-one
// elements. In odd characteristic every reflection has determinant −1,
// so the survivors are exactly SO(n, f) and regenerate it.
func rotationGenerators(n int, f *gf.Field, opts []closure.Option) ([][]int, error) {
	full, err := O(n, f, opts...)
	if err != nil {
		return nil, err
	}
	var entries [][]int
	for e := range full.Elements() {
		if m := e.(algebra.FieldMatrix); m.Det() == 1 {
			entries = append(entries, m.Entries())
		}
	}
	return entries, nil
}

// normalized reports whether the first nonzero coordinate of v is 1.
func normalized(v []int) bool {
	for _, c := range v {
		if c != 0 {
			return c == 1
		}
	}
	return false
}

// nextVector advances v through [0, q)^n odometer-style, reporting false
// after the last vector.
func nextVector(v []int, q int) bool {
	for i := len(v) - 1; i >= 0; i-- {
		v[i]++
		if v[i] < q {
			return true
		}
		v[i] = 0
	}
	return false
}
