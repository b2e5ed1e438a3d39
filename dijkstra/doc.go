// Package dijkstra provides single-source shortest paths and an all-pairs
// shortest-path Table over a core.Graph with non-negative int64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     vertex in O((V + E) log V) time, using a lazy-deletion min-heap.
//   - BuildTable repeats that for every vertex and keeps each row's distance
//     and predecessor maps, optionally spreading the runs over a bounded
//     errgroup of workers.
//   - ReconstructPath rebuilds the vertex sequence of a shortest path from a
//     predecessor map.
//
// Determinism:
//
//   - The heap orders entries by (distance, push order). Push order follows
//     the graph's adjacency insertion order, and relaxation only accepts a
//     strictly shorter distance, so ties keep the first predecessor found.
//     Parallel and serial tables are therefore identical.
//
// Unreachable vertices:
//
//   - Distances to unreachable vertices are Infinity (math.MaxInt64), a
//     value core reserves: edge weights stop at core.MaxWeight.
//   - Additions that would overflow are treated as unreachable, never wrapped.
//   - Table.Path returns an empty slice when Table.Reachable is false.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the Source string is empty.
//   - ErrNilGraph:       the graph pointer is nil.
//   - ErrVertexNotFound: the Source is not a vertex of the graph.
//   - ErrBadWorkers:     BuildTable received WithWorkers(n) with n < 1.
//
// Example usage:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("C", "B", 1)
//
//	table, err := dijkstra.BuildTable(ctx, g, dijkstra.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(table.Distance("A", "B"), table.Path("A", "B")) // 3 [A C B]
package dijkstra
