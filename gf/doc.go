// Package gf implements arithmetic in finite (Galois) fields GF(p^m) and
// dense linear algebra over them. It is the field-arithmetic provider for
// the rest of the library: algebra.FieldMatrix elements and the classical
// group factories never touch modular arithmetic directly.
//
// Construction searches for a primitive polynomial of degree m over GF(p)
// and precomputes logarithm / antilogarithm tables with respect to a
// primitive element, so multiplication, division and inversion are O(1)
// table lookups. Field elements are plain ints in [0, q): for m > 1 the
// base-p digits of the int are the polynomial coefficients, so 0 is the
// additive and 1 the multiplicative identity in every field.
//
// Performance:
//
//   - New:      O(q · candidates) table construction, done once per field
//   - Add/Mul:  O(m) / O(1)
//   - MatMul:   O(n³); MatInv, Det: O(n³) Gauss–Jordan / elimination
//
// Fields are immutable and safe for concurrent readers.
package gf
