// Package group holds the result type of a closure computation: a finite
// group, either fully materialized or represented order-only by a
// stabilizer chain, plus right-coset enumeration over it.
//
// 🚀 Two representations, one type
//
//	Materialized groups own every element in a deterministic enumeration
//	order (the closure engine's discovery order) and answer membership by
//	lookup. Order-only groups own a stabilizer chain instead: they answer
//	Order/OrderBig and Contains (by sifting) but cannot enumerate, and
//	algorithms that need enumeration fail with ErrRequiresMaterialized.
//	The variant is queryable with Materialized().
//
// ⚙️ Determinism
//
//	Element(i), Elements() and RightCosets all follow the canonical
//	enumeration order, so two runs over equal groups produce identical
//	output. Coset representatives are always the first uncovered element
//	in that order.
//
// Groups are immutable once constructed and safe for concurrent readers.
package group
