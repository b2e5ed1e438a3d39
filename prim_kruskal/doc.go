// Package prim_kruskal computes Minimum Spanning Trees over an undirected,
// weighted *core.Graph: Prim's algorithm as the primary engine and Kruskal's
// algorithm as an independent reference.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with minimum total weight and no cycles. For a route network it
//     is the cheapest set of links that keeps every airport reachable.
//
// Algorithms Provided
//
//   - Prim(g, root) (*Tree, error)
//
//   - Strategy: keep, for every vertex, the lightest known edge weight
//     joining it to the growing tree (its key). A min-heap keyed by that
//     weight yields the next vertex to finalize; improved keys are pushed
//     again and stale entries are skipped when popped ("lazy deletion"), so
//     no decrease-key operation is needed.
//
//   - Ties: equal keys pop in push order, and pushes follow adjacency
//     insertion order, so the tree is deterministic for a fixed input.
//
//   - Disconnected input: the tree covers root's component only; other
//     vertices keep Key = Infinity and contribute nothing to TotalCost.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort edges by weight and add each edge that joins two
//     different union-find sets.
//
//   - Disconnected input: returns a minimum spanning forest.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(g, MSTOptions) dispatches on Method; Prim with an empty Root
//     starts from the first vertex in discovery order.
//
// Error Conditions
//
//   - ErrNilGraph              graph is nil.
//   - ErrEmptyRoot             Prim was given an empty root.
//   - core.ErrVertexNotFound   Prim's root is not in the graph (wrapped).
//   - ErrUnknownMethod         Compute got an unknown Method.
package prim_kruskal
