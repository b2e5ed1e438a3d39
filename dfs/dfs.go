package dfs

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// walker carries the state of one DFS call.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS walks g depth-first from startID, or over every component when
// WithFullTraversal is given (startID is then ignored).
//
// On a hook error or cancellation the partial result is returned together
// with the error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 2. Result sized for the whole graph
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	// 3. Single tree or forest
	roots := []string{startID}
	if o.FullTraversal {
		roots = g.Vertices()
	}
	for _, root := range roots {
		if w.res.Visited[root] {
			continue
		}
		if err := w.visit(root, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// visit enters id at depth and recurses into its unvisited neighbors.
func (w *walker) visit(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range w.graph.Neighbors(id) {
			next := e.To
			if next == id || w.res.Visited[next] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[next] = id
			if err := w.visit(next, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
