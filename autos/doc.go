// Package autos computes the automorphism structure of finite groups:
// inner automorphisms Inn(G), the full automorphism group Aut(G) for
// small subjects, and outer representatives Out(G) = Aut(G)/Inn(G).
//
// 🚀 Representation
//
//	An automorphism of a materialized group G is stored as a permutation
//	of G's canonical element indices (algebra.Perm of degree |G|), not as
//	an element of G's own kind. That re-uses the whole machine: Inn and
//	Aut are ordinary permutation groups, closed with the closure engine
//	and decomposed into cosets with group.RightCosets.
//
// ⚙️ Algorithms
//
//	Inn — one conjugation permutation per element; duplicates collapse,
//	so |Inn(G)| = |G| / |Z(G)| falls out of the construction.
//
//	Aut — an irredundant generating subset is chosen greedily in
//	enumeration order; candidate images (pruned to equal element order)
//	are assigned by backtracking; each complete assignment is expanded
//	through generator words and verified against the multiplication
//	table. The subject must sit below the search ceiling
//	(WithCeiling, default 400) or the search fails with
//	ErrAutSearchTooLarge — callers with larger groups keep Inn.
//
//	Out — right-coset representatives of Inn inside Aut, in Aut's
//	canonical enumeration order; not materialized as a group.
package autos
