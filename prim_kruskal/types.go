// Package prim_kruskal defines the MST result type, configuration options and
// sentinel errors shared by Prim and Kruskal.
package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/routegraph/core"
)

// Infinity is the key of a vertex that has not been connected to the tree.
// It lies above core.MaxWeight, so every accepted edge can relax it.
const Infinity int64 = math.MaxInt64

// ErrNilGraph indicates that a nil *core.Graph was passed to an MST routine.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Tree is the outcome of Prim's algorithm grown from Root.
//
// Key holds, for every vertex of the graph, the weight of the edge that
// joined it to the tree (0 for Root, Infinity for vertices outside Root's
// component). Parent holds an entry only for vertices that joined through an
// edge, so Root and unreachable vertices are absent.
type Tree struct {
	// Root is the vertex the tree was grown from.
	Root string

	// Key maps vertex ID → connecting weight (Infinity if never reached).
	Key map[string]int64

	// Parent maps vertex ID → the tree vertex it was joined through.
	Parent map[string]string

	order []string              // vertices in finalization order, Root first
	via   map[string]*core.Edge // vertex ID → half-edge Parent→vertex
}

// TotalCost is the sum of Key over every vertex that has a Parent.
// Vertices outside Root's component contribute nothing.
// Complexity: O(V).
func (t *Tree) TotalCost() int64 {
	var total int64
	for v := range t.Parent {
		total += t.Key[v]
	}

	return total
}

// Edges returns the tree edges in the order their far endpoint was finalized.
// Each edge is oriented Parent→child. A single-vertex tree has no edges.
// Complexity: O(V).
func (t *Tree) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(t.order))
	for _, v := range t.order {
		if e, ok := t.via[v]; ok {
			out = append(out, *e)
		}
	}

	return out
}

// Order returns the vertices in the order they were finalized (Root first).
func (t *Tree) Order() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Size returns the number of vertices spanned by the tree, Root included.
func (t *Tree) Size() int { return len(t.order) }

// InTree reports whether v was reached from Root.
func (t *Tree) InTree(v string) bool {
	if v == t.Root {
		return true
	}
	_, ok := t.Parent[v]

	return ok
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting vertex to use.
//
// Fields:
//
//	Method string : one of MethodPrim or MethodKruskal.
//	Root   string : start vertex ID for Prim; empty means the first vertex
//	                in discovery order. Ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Prim rooted at the first discovered vertex.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodPrim:    Prim(graph, root), where an empty Root resolves to the
//	                 first vertex in discovery order. An empty graph yields
//	                 an empty result.
//	– MethodKruskal: Kruskal(graph).
//	– otherwise:     ErrUnknownMethod.
//
// Returns the tree (or forest) edges and their total weight.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if graph == nil {
			return nil, 0, ErrNilGraph
		}
		root := opts.Root
		if root == "" {
			vertices := graph.Vertices()
			if len(vertices) == 0 {
				return []core.Edge{}, 0, nil
			}
			root = vertices[0]
		}
		tree, err := Prim(graph, root)
		if err != nil {
			return nil, 0, err
		}

		return tree.Edges(), tree.TotalCost(), nil
	default:
		return nil, 0, ErrUnknownMethod
	}
}
