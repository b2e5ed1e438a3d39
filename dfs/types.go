package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a DFS call.
type Option func(*DFSOptions)

// DFSOptions holds the knobs of one traversal.
type DFSOptions struct {
	// Ctx cancels the walk; checked on entry to every vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (pre-order).
	// A non-nil error aborts the walk and leaves Order empty.
	OnVisit func(id string) error

	// OnExit runs after all descendants of a vertex are finished (post-order),
	// right before the vertex is appended to Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, bounds the number of edges from the start.
	// 0 visits only the start vertex. Default -1 (unbounded).
	MaxDepth int

	// FilterNeighbor vetoes a neighbor: false skips it and counts it in
	// SkippedNeighbors.
	FilterNeighbor func(id string) bool

	// FullTraversal walks every component, not only the start vertex's.
	FullTraversal bool
}

// DefaultOptions returns a single-source, unbounded traversal with a
// background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the walk to limit edges from the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a neighbor filter; fn(id) == false skips id.
// The filter is consulted every time the neighbor is reached, so it may
// depend on state the hooks mutate during the same walk.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts the walk from every unvisited vertex, in the
// graph's discovery order.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult is the outcome of one traversal.
type DFSResult struct {
	// Order lists vertices as they finished (post-order).
	Order []string

	// Depth maps each visited vertex to its edge count from its tree's root.
	Depth map[string]int

	// Parent maps each visited non-root vertex to the vertex it was entered
	// from.
	Parent map[string]string

	// Visited flags every vertex the walk entered.
	Visited map[string]bool

	// SkippedNeighbors counts the neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
