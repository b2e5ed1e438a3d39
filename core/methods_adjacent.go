// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: adjacency queries used by every traversal in the module.

package core

// Neighbors returns the half-edges leaving id in insertion order.
//
// Unknown or isolated vertices yield an empty slice; this is a lookup, not a
// validation, so no error is reported. The slice is a fresh copy, the *Edge
// values are shared and must be treated as read-only.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out
}

// NeighborIDs returns the distinct neighbor IDs of id in first-seen order.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	seen := make(map[string]struct{}, len(adj))
	out := make([]string, 0, len(adj))
	for _, e := range adj {
		if _, dup := seen[e.To]; dup {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}

	return out
}
