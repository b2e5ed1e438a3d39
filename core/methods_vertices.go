// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: vertex registration and read-only vertex queries.
// Determinism:
//   - Vertices() returns IDs in discovery order (first appearance in AddVertex/AddEdge).

package core

// AddVertex registers id as a vertex with an empty adjacency list.
// Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex creates the adjacency entry for id if missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether id is known to the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in discovery order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of half-edges stored for id: parallel edges count
// once each, a self-loop counts once. Unknown vertices have degree 0.
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
