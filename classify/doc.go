// Package classify partitions materialized groups into conjugacy classes
// and derives the classical subgroups: center, commutator subgroup,
// centralizers and normalizers.
//
// 🚀 Conjugacy classes
//
//	For each element x not yet classified (scanning canonical enumeration
//	order), the class {g·x·g⁻¹ : g ∈ G} is computed by direct conjugation
//	and all members are marked. Classes therefore come out ordered by
//	their smallest representative, with the identity's singleton class
//	first — deterministic across runs.
//
// ⚙️ Parallelism
//
//	WithWorkers(n) fans the inner conjugation loop out over a worker pool.
//	Workers fill index-addressed bitmaps that are merged in index order,
//	so the observable result is byte-identical to the serial one — only
//	wall-clock time changes.
//
// Complexity is O(|G|²) conjugations; the engine deliberately requires a
// materialized group and fails with group.ErrRequiresMaterialized on
// order-only (stabilizer-chain) groups.
package classify
