// Package routegraph computes spanning trees, shortest paths and attribute
// groups over small to medium in-memory graphs.
//
// What is in the box:
//
//	core/          : undirected multigraph with int64 weights, insertion-ordered adjacency
//	prim_kruskal/  : Prim (lazy min-heap, forest on disconnected input) and Kruskal references
//	dijkstra/      : single-source Dijkstra, the parallel all-pairs Table, path reconstruction
//	dfs/           : depth-first traversal with hooks, filters and depth limits
//	connectivity/  : attribute-clique network and the depth-first Detector
//	ingest/        : edge-list and entity CSV readers
//	report/        : text renderers for every result
//	cmd/routegraph : the CLI: mst, paths, connected
//
// Determinism:
//
//	Every frontier breaks ties by push order, and push order follows the
//	order in which edges were added. The same input therefore always yields
//	the same tree, the same predecessors and the same output, whether the
//	table is built by one worker or many.
//
// Quick start:
//
//	g, err := ingest.LoadEdgeList("data.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tree, _ := prim_kruskal.Prim(g, "JFK")
//	fmt.Println(tree.TotalCost())
//
//	table, _ := dijkstra.BuildTable(ctx, g, dijkstra.WithWorkers(runtime.NumCPU()))
//	fmt.Println(table.Distance("JFK", "LAX"), table.Path("JFK", "LAX"))
package routegraph
