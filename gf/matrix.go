// Dense linear algebra over the field. Matrices are flat row-major
// []int slices of length n*n; entries are field elements in [0, q). The
// slice layout mirrors the representation used by algebra.FieldMatrix so
// no conversion is needed at the boundary.

package gf

// MatIdentity returns the n×n identity matrix.
func (f *Field) MatIdentity(n int) []int {
	m := make([]int, n*n)
	for i := 0; i < n; i++ {
		m[i*n+i] = 1
	}
	return m
}

// MatMul returns a·b for n×n matrices, or ErrDimensionMismatch when either
// slice is not n*n long.
func (f *Field) MatMul(a, b []int, n int) ([]int, error) {
	if len(a) != n*n || len(b) != n*n {
		return nil, ErrDimensionMismatch
	}
	out := make([]int, n*n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i*n+j] = f.Add(out[i*n+j], f.Mul(aik, b[k*n+j]))
			}
		}
	}
	return out, nil
}

// MatScale returns s·a entrywise.
func (f *Field) MatScale(a []int, s int) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = f.Mul(s, v)
	}
	return out
}

// Det computes the determinant by Gaussian elimination with row pivoting.
// Fails with ErrDimensionMismatch for a non-n×n slice.
func (f *Field) Det(a []int, n int) (int, error) {
	if len(a) != n*n {
		return 0, ErrDimensionMismatch
	}
	w := append([]int(nil), a...)
	det := 1
	for col := 0; col < n; col++ {
		// find a pivot row
		pivot := -1
		for r := col; r < n; r++ {
			if w[r*n+col] != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return 0, nil
		}
		if pivot != col {
			swapRows(w, n, pivot, col)
			det = f.Neg(det)
		}
		pv := w[col*n+col]
		det = f.Mul(det, pv)
		pvInv, _ := f.Inv(pv)
		// eliminate below
		for r := col + 1; r < n; r++ {
			factor := f.Mul(w[r*n+col], pvInv)
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				w[r*n+c] = f.Sub(w[r*n+c], f.Mul(factor, w[col*n+c]))
			}
		}
	}
	return det, nil
}

// MatInv inverts an n×n matrix by Gauss–Jordan elimination. Fails with
// ErrSingular when no inverse exists.
func (f *Field) MatInv(a []int, n int) ([]int, error) {
	if len(a) != n*n {
		return nil, ErrDimensionMismatch
	}
	w := append([]int(nil), a...)
	inv := f.MatIdentity(n)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if w[r*n+col] != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingular
		}
		if pivot != col {
			swapRows(w, n, pivot, col)
			swapRows(inv, n, pivot, col)
		}
		pvInv, _ := f.Inv(w[col*n+col])
		for c := 0; c < n; c++ {
			w[col*n+c] = f.Mul(w[col*n+c], pvInv)
			inv[col*n+c] = f.Mul(inv[col*n+c], pvInv)
		}
		for r := 0; r < n; r++ {
			if r == col || w[r*n+col] == 0 {
				continue
			}
			factor := w[r*n+col]
			for c := 0; c < n; c++ {
				w[r*n+c] = f.Sub(w[r*n+c], f.Mul(factor, w[col*n+c]))
				inv[r*n+c] = f.Sub(inv[r*n+c], f.Mul(factor, inv[col*n+c]))
			}
		}
	}
	return inv, nil
}

func swapRows(m []int, n, r1, r2 int) {
	for c := 0; c < n; c++ {
		m[r1*n+c], m[r2*n+c] = m[r2*n+c], m[r1*n+c]
	}
}
