// Package core provides the in-memory weighted graph shared by every
// algorithm in routegraph.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - AddEdge(a, b, w) stores the half a→b in a's adjacency and the mirror
//     b→a in b's adjacency; both halves share one edge ID ("e1", "e2", …).
//   - Vertices are created implicitly by the first edge that mentions them
//     (or explicitly with AddVertex) and remembered in discovery order.
//   - Adjacency lists keep insertion order. Parallel edges are kept as-is.
//   - Weights are int64 in [0, MaxWeight] (ErrNegativeWeight, ErrWeightTooLarge);
//     math.MaxInt64 is kept free to mean "unreachable".
//
// Why insertion order?
//
//	Prim and Dijkstra break frontier ties by the order in which vertices are
//	pushed, which in turn follows adjacency order. Keeping both orders stable
//	makes every result in this module reproducible run to run.
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1)
//	AddEdge(a, b string, w int64) (edgeID string, err)  // O(1) amortized
//	HasVertex(id string) bool                           // O(1)
//	HasEdge(a, b string) bool                           // O(deg a)
//	MinWeight(a, b string) (int64, bool)                // O(deg a)
//	Neighbors(id string) []*Edge                        // O(deg id), empty for unknown id
//	NeighborIDs(id string) []string                     // O(deg id)
//	Vertices() []string                                 // O(V), discovery order
//	Edges() []*Edge                                     // O(E), insertion order
//	VertexCount(), EdgeCount(), Degree(id), Stats()
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. The intended lifecycle is build
//	once, then read from any number of goroutines (see dijkstra.BuildTable).
package core
