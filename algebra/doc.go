// Package algebra defines the element kinds every engine in burnside
// operates on, together with the generating sets that seed them.
//
// 🚀 What is an Element?
//
//	A single immutable group element with an associative composition, an
//	inverse and a canonical identity, in one of three kinds:
//	  • Perm        — a permutation of {0, …, n-1}
//	  • FieldMatrix — an invertible n×n matrix over a finite field gf.Field
//	  • Quaternion  — a unit quaternion (spin or rotation flavour)
//
// All kinds satisfy the same contract (Compose, Inverse, Equal, Key,
// IsIdentity), so the closure, classification and automorphism engines are
// kind-agnostic. Composing elements of different kinds — or of the same
// kind with different parameters (degree, field, projective flag) — fails
// with ErrIncompatibleKind.
//
// ✨ Canonical keys
//
//	Key() returns a string that is equal exactly for equal elements; the
//	discovered-sets of every search in the library hash on it. Projective
//	kinds (matrices modulo scalars, rotations with q ~ −q) canonicalize
//	before keying, so "equal up to scalar" and "same key" coincide.
//
// Elements are immutable: Compose and Inverse always return new values, so
// they may be freely shared across frontiers, cosets and goroutines.
package algebra
