// Package burnside is an in-memory toolkit for computational finite group
// theory — from concrete group elements to closure, conjugacy, cosets and
// automorphism groups.
//
// 🚀 What is burnside?
//
//	A pure-Go library that turns algebraic structures into computable objects:
//		• Elements: permutations, matrices over finite fields, unit quaternions
//		• Closure: breadth-first generation of a group from a generating set
//		• Structure: conjugacy classes, center, commutator subgroup, cosets
//		• Symmetry of symmetry: Inn(G), Aut(G) and Out(G)
//		• Factories: GL, SL, O, SO and their projective quotients; S_n, A_n,
//		  cyclic, dihedral, abelian and quaternion families
//		• Cayley graphs: word metric, diameter, adjacency matrices
//
// ✨ Why choose burnside?
//
//   - Deterministic – every enumeration order is a documented contract
//   - Fail-fast – explicit ceilings instead of runaway memory
//   - Pure Go core – field arithmetic, closure and search with no cgo
//   - Extensible – hooks (OnDiscover…) for instrumenting long searches
//
// Everything is organized under small, focused subpackages:
//
//	algebra/    — Element kinds, composition, inversion, generating sets
//	gf/         — finite fields GF(p^m) and matrix arithmetic over them
//	closure/    — the breadth-first closure engine and stabilizer chains
//	group/      — materialized and order-only groups, coset enumeration
//	classify/   — conjugacy classes, center, commutator, (normal)izers
//	autos/      — inner, full and outer automorphism groups
//	classical/  — classical matrix families and common finite families
//	cayley/     — Cayley graphs of finite groups
//	invariants/ — statistical group theory (commuting probability & co.)
//
// Quick ASCII example:
//
//	    r───r²
//	    │    │
//	    1───r³      the cyclic group C4, generated by a single rotation r.
//
// Dive into each package's doc.go for algorithms, complexity notes and
// worked examples.
//
//	go get github.com/arbelos/burnside
package burnside
