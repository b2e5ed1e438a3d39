// Package dfs implements depth-first traversal over a core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...) explores as far as possible along each branch
//     before backtracking, following adjacency insertion order. With
//     WithFullTraversal it restarts from every unvisited vertex in discovery
//     order and covers the whole forest.
//   - OnVisit (pre-order) and OnExit (post-order) hooks; an error from either
//     aborts the walk.
//   - FilterNeighbor lets the caller veto a neighbor before it is entered.
//     connectivity.Detector uses it to keep its lifetime visited set across
//     several traversals of the same graph.
//   - MaxDepth bounds the walk; ctx cancels it.
//
// The graph is undirected, so each edge is seen from both ends; the Visited
// set keeps every vertex to a single entry. Self-loops are never followed.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of the hooks and the filter.
//   - Memory: O(V) for the recursion stack and the result maps.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        walk cancelled through WithContext
//   - hook errors             wrapped from OnVisit or OnExit
package dfs
