// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root over an undirected, weighted *core.Graph using a vertex min-heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// Prim grows a Minimum Spanning Tree from root.
//
// Every vertex starts with Key = Infinity and no parent; root is keyed 0.
// The frontier is a min-heap of (vertex, key) entries ordered by key, ties
// broken by push order. Entries are never removed eagerly: a vertex is
// finalized the first time it is popped and later (stale) entries for it
// are skipped.
//
// Error Conditions:
//   - ErrNilGraph           : graph is nil.
//   - ErrEmptyRoot          : root is the empty string.
//   - core.ErrVertexNotFound: root is not a vertex of graph.
//
// A disconnected graph is not an error: the result spans root's component
// and every other vertex keeps Key = Infinity.
//
// Steps:
//  1. Validate graph and root.
//  2. Key[v] = Infinity for all v, Key[root] = 0, push root.
//  3. While the heap is not empty:
//     a. Pop the smallest entry u; skip it if u is already visited.
//     b. Mark u visited (its Key is now final).
//     c. For each edge u→v with v unvisited and w < Key[v]:
//     set Key[v] = w, Parent[v] = u and push (v, w).
//  4. Return the Tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (*Tree, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrNilGraph
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	// 2. Initialize keys and the frontier.
	vertices := graph.Vertices()
	n := len(vertices)
	t := &Tree{
		Root:   root,
		Key:    make(map[string]int64, n),
		Parent: make(map[string]string, n),
		order:  make([]string, 0, n),
		via:    make(map[string]*core.Edge, n),
	}
	for _, v := range vertices {
		t.Key[v] = Infinity
	}
	t.Key[root] = 0

	visited := make(map[string]bool, n)
	pq := make(keyPQ, 0, n)
	var seq uint64
	heap.Push(&pq, &keyItem{id: root, key: 0, seq: seq})

	// 3. Main loop.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*keyItem)
		u := item.id
		// 3a. Stale entry: u was finalized through a lighter edge already.
		if visited[u] {
			continue
		}
		// 3b. Finalize u.
		visited[u] = true
		t.order = append(t.order, u)

		// 3c. Relax edges to unvisited neighbors.
		for _, e := range graph.Neighbors(u) {
			v := e.To
			if visited[v] || e.Weight >= t.Key[v] {
				continue
			}
			t.Key[v] = e.Weight
			t.Parent[v] = u
			t.via[v] = e
			seq++
			heap.Push(&pq, &keyItem{id: v, key: e.Weight, seq: seq})
		}
	}

	return t, nil
}

// keyItem is a frontier entry: vertex id offered at connecting weight key.
// seq records push order and breaks ties between equal keys.
type keyItem struct {
	id  string
	key int64
	seq uint64
}

// keyPQ implements heap.Interface for a min-heap of *keyItem ordered by
// (key, seq).
type keyPQ []*keyItem

// Len returns the number of entries in the priority queue.
func (pq keyPQ) Len() int { return len(pq) }

// Less orders by key, then by push order.
func (pq keyPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps entries at indices i and j.
func (pq keyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *keyItem. Called by heap.Push.
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(*keyItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
