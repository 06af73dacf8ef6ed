package algebra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbelos/burnside/gf"
)

// FieldMatrix is an invertible n×n matrix over a finite field, optionally
// taken projectively (equal up to a nonzero scalar). All numeric work is
// delegated to the gf provider; this layer only canonicalizes, compares
// and keys.
type FieldMatrix struct {
	field      *gf.Field
	n          int
	data       []int // row-major, canonicalized when projective
	projective bool
}

// NewFieldMatrix builds a matrix element from row-major entries. Fails
// with ErrInvalidElement when entries are out of range, the slice is not
// n×n, or the matrix is singular (group elements must be invertible).
func NewFieldMatrix(f *gf.Field, n int, entries []int) (FieldMatrix, error) {
	return newMatrix(f, n, entries, false)
}

// NewProjectiveMatrix builds a matrix element identified up to scalar
// multiples, as used by the P-prefixed classical families. Entries are
// canonicalized so the first nonzero entry is 1.
func NewProjectiveMatrix(f *gf.Field, n int, entries []int) (FieldMatrix, error) {
	return newMatrix(f, n, entries, true)
}

func newMatrix(f *gf.Field, n int, entries []int, projective bool) (FieldMatrix, error) {
	if n < 1 || len(entries) != n*n {
		return FieldMatrix{}, fmt.Errorf("%w: want %d entries, got %d", ErrInvalidElement, n*n, len(entries))
	}
	for _, v := range entries {
		if v < 0 || v >= f.Order() {
			return FieldMatrix{}, fmt.Errorf("%w: entry %d outside GF(%d)", ErrInvalidElement, v, f.Order())
		}
	}
	det, err := f.Det(entries, n)
	if err != nil {
		return FieldMatrix{}, err
	}
	if det == 0 {
		return FieldMatrix{}, fmt.Errorf("%w: singular matrix", ErrInvalidElement)
	}
	m := FieldMatrix{field: f, n: n, data: append([]int(nil), entries...), projective: projective}
	if projective {
		m.data = canonicalizeProjective(f, m.data)
	}
	return m, nil
}

// IdentityMatrix returns the n×n identity over f.
func IdentityMatrix(f *gf.Field, n int) FieldMatrix {
	return FieldMatrix{field: f, n: n, data: f.MatIdentity(n)}
}

// canonicalizeProjective scales so the first nonzero entry equals 1. Pure
// function on the data; elements themselves stay immutable.
func canonicalizeProjective(f *gf.Field, data []int) []int {
	for _, v := range data {
		if v != 0 {
			if v == 1 {
				return data
			}
			inv, _ := f.Inv(v)
			return f.MatScale(data, inv)
		}
	}
	return data // unreachable for invertible matrices
}

// Field returns the underlying finite field.
func (m FieldMatrix) Field() *gf.Field { return m.field }

// Dim returns n for an n×n matrix.
func (m FieldMatrix) Dim() int { return m.n }

// Projective reports whether the element is identified up to scalars.
func (m FieldMatrix) Projective() bool { return m.projective }

// Entry returns the (i, j) entry.
func (m FieldMatrix) Entry(i, j int) int { return m.data[i*m.n+j] }

// Entries returns a copy of the row-major entry slice.
func (m FieldMatrix) Entries() []int { return append([]int(nil), m.data...) }

// Det returns the determinant.
func (m FieldMatrix) Det() int {
	d, _ := m.field.Det(m.data, m.n)
	return d
}

// Kind reports KindFieldMatrix.
func (m FieldMatrix) Kind() Kind { return KindFieldMatrix }

// Compose returns the matrix product m·other.
func (m FieldMatrix) Compose(other Element) (Element, error) {
	o, ok := other.(FieldMatrix)
	if !ok || o.n != m.n || o.field != m.field || o.projective != m.projective {
		return nil, fmt.Errorf("%w: %s·%s", ErrIncompatibleKind, m.Kind(), other.Kind())
	}
	data, err := m.field.MatMul(m.data, o.data, m.n)
	if err != nil {
		return nil, err
	}
	out := FieldMatrix{field: m.field, n: m.n, data: data, projective: m.projective}
	if m.projective {
		out.data = canonicalizeProjective(m.field, out.data)
	}
	return out, nil
}

// Inverse returns the matrix inverse.
func (m FieldMatrix) Inverse() Element {
	data, err := m.field.MatInv(m.data, m.n)
	if err != nil {
		// constructors reject singular matrices
		panic("algebra: inverting a singular matrix: " + err.Error())
	}
	out := FieldMatrix{field: m.field, n: m.n, data: data, projective: m.projective}
	if m.projective {
		out.data = canonicalizeProjective(m.field, out.data)
	}
	return out
}

// Equal reports whether other is the same element (up to scalars for
// projective matrices — both sides are held in canonical form).
func (m FieldMatrix) Equal(other Element) bool {
	o, ok := other.(FieldMatrix)
	if !ok || o.n != m.n || o.field != m.field || o.projective != m.projective {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Key returns the canonical hash key.
func (m FieldMatrix) Key() string {
	var b strings.Builder
	b.Grow(4 * len(m.data))
	b.WriteByte('m')
	if m.projective {
		b.WriteByte('P')
	}
	b.WriteString(strconv.Itoa(m.field.Order()))
	for _, v := range m.data {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// IsIdentity reports whether the matrix is the identity (projectively: a
// scalar matrix, which canonicalizes to the identity).
func (m FieldMatrix) IsIdentity() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			want := 0
			if i == j {
				want = 1
			}
			if m.data[i*m.n+j] != want {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row by row, e.g. "[[1 2][0 1]]/GF(3)".
func (m FieldMatrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.n; i++ {
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(m.data[i*m.n+j]))
		}
		b.WriteByte(']')
	}
	b.WriteString("]/GF(")
	b.WriteString(strconv.Itoa(m.field.Order()))
	b.WriteByte(')')
	return b.String()
}
