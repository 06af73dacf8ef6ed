// Package cayley builds the Cayley graph of a materialized group with
// respect to its generating set, and answers word-metric questions on
// top of it.
//
// 🚀 What the graph is
//
//	Vertices are the group elements in canonical discovery order;
//	vertex i connects to the index of elemᵢ·s for every connection
//	generator s. Each vertex therefore has the same out-degree, and
//	with inverses included (the default) the graph is undirected and
//	vertex-transitive.
//
// ✨ Word metric
//
//	A single breadth-first sweep from the identity labels every vertex
//	with its word length — the least number of generator factors needed
//	to spell the element. The largest label is the graph's diameter.
//	Because a generating set reaches the whole group, the sweep always
//	covers every vertex.
//
// ⚙️ Interop
//
//	Adjacency exports the graph as a dense 0/1 matrix for spectral
//	work (eigenvalue gaps, expansion) with gonum.
package cayley
