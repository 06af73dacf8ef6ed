// Package invariants computes probabilistic and statistical invariants
// of finite groups: quantities averaged over uniformly random choices
// of elements.
//
// ✨ Highlights
//
//	CommutingProbability — the chance two random elements commute,
//	which by Burnside's counting argument equals the number of
//	conjugacy classes divided by the group order. 5/8 is the famous
//	upper bound for any nonabelian group.
//
//	EqualOrderProbability — the chance two random elements share their
//	element order.
//
//	ExpectationNumber — the expected order of the subgroup generated by
//	k distinct uniformly chosen elements.
//
//	AverageCentralizerSize — the expected size of the centralizer of k
//	distinct uniformly chosen elements.
//
//	AverageNormalizerSize — the expected size of the normalizer of the
//	subgroup those k elements generate.
//
// ⚙️ Cost model
//
//	The k-subset invariants enumerate all C(|G|, k) subsets and close a
//	subgroup (or scan a centralizer) for each, so they are priced for
//	small groups. Pass a context to abandon a long enumeration.
package invariants
