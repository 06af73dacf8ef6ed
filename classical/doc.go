// Package classical constructs the well-known group families as concrete,
// materialized groups: the classical matrix groups GL, SL, O, SO and
// their projective quotients PGL, PSL, PO, PSO over a finite field, and
// the common finite families (symmetric, alternating, cyclic, dihedral,
// abelian, quaternion, dicyclic).
//
// 🚀 How factories work
//
//	Each factory knows a textbook generating set — transvections over a
//	field basis for SL, a primitive-scalar diagonal on top for GL,
//	reflections in anisotropic vectors for O — and delegates everything
//	else to the closure engine. Projective variants use projectively
//	canonicalized matrix elements, so scalar multiples collapse during
//	closure and the resulting order is the projective one.
//
// ⚙️ Ceilings
//
//	Classical groups grow fast: |GL(n, q)| ≈ q^(n²). Factories accept
//	closure options, so callers pick the materialization ceiling (or
//	order-only mode is unavailable here — matrix kind) appropriate to
//	their field and dimension; crossing it fails with
//	closure.ErrGroupTooLarge before memory does.
//
// Sample orders, used as cross-checks in the tests:
//
//	|GL(2,3)| = 48    |SL(2,3)| = 24    |PGL(2,3)| = 24   |PSL(2,3)| = 12
//	|O(2,3)|  = 8     |SO(3,3)| = 24    |S4| = 24         |Q8| = 8
package classical
