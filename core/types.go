// SPDX-License-Identifier: MIT
//
// This file declares Edge, Graph, the sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeWeight - AddEdge was called with weight < 0.
//	ErrWeightTooLarge - AddEdge was called with weight > MaxWeight.

package core

import (
	"errors"
	"math"
	"sync"
)

// MaxWeight is the largest accepted edge weight. math.MaxInt64 itself is
// reserved: Prim and Dijkstra use it as their infinity.
const MaxWeight int64 = math.MaxInt64 - 1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero. Neither Prim nor
	// Dijkstra is defined for such weights, so the model refuses them on entry.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight exceeds MaxWeight")
)

// Edge is one directed half of an undirected connection.
//
// AddEdge(a, b, w) stores {From: a, To: b} in a's adjacency and the mirror
// {From: b, To: a} in b's adjacency. Both halves carry the same ID.
type Edge struct {
	// ID identifies the undirected edge ("e1", "e2", ...).
	ID string

	// From is the vertex whose adjacency holds this half.
	From string

	// To is the neighbor reached through this half.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Graph is a static, in-memory, undirected weighted graph.
//
// Vertices are remembered in discovery order and every adjacency list keeps
// insertion order; all algorithms in this module iterate these orders, which
// is what makes their tie-breaking deterministic.
// mu guards every field; once construction is over the graph may be shared
// by any number of readers.
type Graph struct {
	mu sync.RWMutex

	edgeSeq uint64 // edge ID generator, guarded by mu

	order     []string           // vertex IDs in discovery order
	adjacency map[string][]*Edge // vertex ID → incident half-edges (insertion order)
	edges     []*Edge            // one half per undirected edge, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]*Edge),
	}
}
