// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("C", "B", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	fmt.Println(strings.Join(dijkstra.ReconstructPath(prev, "A", "B"), " -> "))
	// Output:
	// dist[A]=0, dist[B]=3, dist[C]=2
	// A -> C -> B
}

// ExampleBuildTable builds the all-pairs table with four workers.
func ExampleBuildTable() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("D", "E", 3)

	table, err := dijkstra.BuildTable(context.Background(), g, dijkstra.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(table.Distance("B", "A"), table.Path("B", "A"))
	fmt.Println(table.Reachable("A", "E"), len(table.Path("A", "E")))
	// Output:
	// 3 [B C A]
	// false 0
}
