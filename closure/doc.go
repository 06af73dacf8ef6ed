// Package closure materializes finite groups from generating sets by
// breadth-first search, or represents them order-only through a
// Schreier–Sims stabilizer chain when materialization is off the table.
//
// 🚀 How closure works
//
//	Starting from the identity, every frontier element is composed with
//	each generator and the generator's inverse, in generator index order;
//	products not seen before (keyed by Element.Key) join the frontier.
//	The search stops when a pass adds nothing — the discovered set is then
//	closed under composition and inversion.
//
// ⚙️ Determinism contract
//
//	Discovery order is frontier insertion order × generator index order,
//	with each generator tried before its inverse. Two runs over the same
//	generating set enumerate the resulting group identically; every
//	downstream engine (classification, cosets, automorphisms) leans on
//	this ordering.
//
// 🛡 Ceilings
//
//	Closure never exhausts memory silently: crossing the materialization
//	ceiling (WithMaxOrder, default 200000) fails with ErrGroupTooLarge,
//	and the caller may instead request WithOrderOnly to get a
//	stabilizer-chain group — exact order and membership, no enumeration.
//	Order-only mode needs a faithful permutation action and is therefore
//	available for the permutation kind only.
//
// Performance:
//
//   - Close:       O(|G| · |gens| · cost(Compose)) time, O(|G|) memory
//   - order-only:  polynomial in the degree, independent of |G|
package closure
