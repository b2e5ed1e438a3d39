// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summary of a graph for diagnostics and logging.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int // number of vertices
	EdgeCount     int // number of undirected edges, parallel edges included
	LoopCount     int // edges whose endpoints coincide
	IsolatedCount int // vertices with no incident edge
	MaxDegree     int // largest Degree over all vertices
	TotalWeight   int64
}

// Stats scans the graph once and returns its summary.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
		if e.From == e.To {
			s.LoopCount++
		}
	}
	for _, id := range g.order {
		d := len(g.adjacency[id])
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
