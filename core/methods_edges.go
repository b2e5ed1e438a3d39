// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge insertion and edge catalog queries, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects origin and destination with an undirected edge of the
// given weight and returns the new edge ID.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Register unseen endpoints in discovery order (origin first).
//  3. Append origin→destination to origin's adjacency.
//  4. Append the mirror destination→origin unless this is a self-loop.
//
// Calling AddEdge twice for the same pair keeps both edges; algorithms
// simply prefer the lighter one during relaxation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(origin, destination string, weight int64) (string, error) {
	// 1) Input validation
	if origin == "" || destination == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", ErrNegativeWeight
	}
	if weight > MaxWeight {
		return "", ErrWeightTooLarge
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints
	g.ensureVertex(origin)
	g.ensureVertex(destination)

	// 3) Forward half
	eid := g.nextEdgeID()
	e := &Edge{ID: eid, From: origin, To: destination, Weight: weight}
	g.edges = append(g.edges, e)
	g.adjacency[origin] = append(g.adjacency[origin], e)

	// 4) Mirror half
	if origin != destination {
		g.adjacency[destination] = append(g.adjacency[destination],
			&Edge{ID: eid, From: destination, To: origin, Weight: weight})
	}

	return eid, nil
}

// nextEdgeID returns a fresh edge ID. Caller must hold g.mu for writing.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}

// HasEdge reports whether at least one edge joins a and b.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.MinWeight(a, b)

	return ok
}

// MinWeight returns the lightest weight among the edges joining a and b.
// ok is false when no such edge exists.
// Complexity: O(deg(a)).
func (g *Graph) MinWeight(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best, ok := int64(math.MaxInt64), false
	for _, e := range g.adjacency[a] {
		if e.To == b && e.Weight <= best {
			best, ok = e.Weight, true
		}
	}

	return best, ok
}

// Edges returns one half per undirected edge, in insertion order.
// The returned pointers are shared with the graph; treat them as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
