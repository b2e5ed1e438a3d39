// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// On a disconnected graph it returns a minimum spanning forest.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// Kruskal computes a minimum spanning forest of graph using a disjoint-set
// (union-find) with path compression and union by rank.
//
// Unlike Prim, Kruskal has no root: on a disconnected graph it spans every
// component, so its total equals Prim's only for connected graphs.
//
// Error Conditions:
//   - ErrNilGraph: graph is nil.
//
// Steps:
//  1. Validate graph.
//  2. Collect all edges via graph.Edges(), skip self-loops.
//  3. Stable-sort edges by ascending Weight (ties keep insertion order).
//  4. Initialize parent[v] = v, rank[v] = 0 for each vertex.
//  5. For each edge (u,v): if find(u) != find(v), union and keep the edge.
//  6. Stop early once |V|-1 edges are kept.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := graph.Vertices()
	if len(vertices) < 2 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges, skipping self-loops.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort by weight; stable so equal weights keep insertion order.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint-set structures.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union by rank; reports whether two sets were merged.
	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 5. Build the forest.
	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		// 6. A spanning tree is complete.
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	return mst, totalWeight, nil
}
