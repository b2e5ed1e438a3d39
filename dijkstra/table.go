package dijkstra

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/routegraph/core"
)

// Table is the all-pairs shortest-path table: one full Dijkstra run per
// vertex, each row keeping its distance and predecessor maps.
//
// Lookups never fail: an unknown origin or destination reads as Infinity
// and an empty path.
type Table struct {
	vertices []string
	index    map[string]int
	dist     []map[string]int64
	prev     []map[string]string
}

// BuildTable runs Dijkstra from every vertex of g.
//
// With WithWorkers(n>1) the runs execute concurrently on an errgroup limited
// to n goroutines. Every run owns its heap and maps and writes only its own
// row, so no locking beyond the graph's own read lock is involved.
// Run options are validated up front: a bad WithMaxDistance or
// WithInfEdgeThreshold yields ErrBadMaxDistance or ErrBadInfThreshold.
// ctx is checked before each run is scheduled and started; cancellation
// returns ctx.Err() and no table.
//
// Complexity: O(V · (V + E) log V) total work.
func BuildTable(ctx context.Context, g *core.Graph, opts ...TableOption) (*Table, error) {
	cfg := tableOptions{workers: 1}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.workers < 1 {
		return nil, ErrBadWorkers
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkRunOptions(cfg.run); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	n := len(vertices)
	t := &Table{
		vertices: vertices,
		index:    make(map[string]int, n),
		dist:     make([]map[string]int64, n),
		prev:     make([]map[string]string, n),
	}
	for i, v := range vertices {
		t.index[v] = i
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, origin := range vertices {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			runOpts := make([]Option, 0, len(cfg.run)+2)
			runOpts = append(runOpts, cfg.run...)
			runOpts = append(runOpts, Source(origin), WithReturnPath())

			dist, prev, err := Dijkstra(g, runOpts...)
			if err != nil {
				return fmt.Errorf("dijkstra: row %q: %w", origin, err)
			}
			t.dist[i], t.prev[i] = dist, prev

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkRunOptions applies run once on the calling goroutine, turning the
// option constructors' panics into their sentinels before any worker starts.
func checkRunOptions(run []Option) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r {
		case ErrBadMaxDistance.Error():
			err = ErrBadMaxDistance
		case ErrBadInfThreshold.Error():
			err = ErrBadInfThreshold
		default:
			panic(r)
		}
	}()

	scratch := DefaultOptions("")
	for _, fn := range run {
		fn(&scratch)
	}

	return nil
}

// Vertices returns the table's vertex order (the graph's discovery order).
func (t *Table) Vertices() []string {
	out := make([]string, len(t.vertices))
	copy(out, t.vertices)

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.vertices) }

// Distance returns the shortest distance from origin to destination, or
// Infinity when either is unknown or destination is unreachable.
func (t *Table) Distance(origin, destination string) int64 {
	i, ok := t.index[origin]
	if !ok {
		return Infinity
	}
	d, ok := t.dist[i][destination]
	if !ok {
		return Infinity
	}

	return d
}

// Reachable reports whether destination has a finite distance from origin.
func (t *Table) Reachable(origin, destination string) bool {
	return t.Distance(origin, destination) != Infinity
}

// Row returns a copy of origin's distance map, or nil for an unknown origin.
func (t *Table) Row(origin string) map[string]int64 {
	i, ok := t.index[origin]
	if !ok {
		return nil
	}
	out := make(map[string]int64, len(t.dist[i]))
	for k, v := range t.dist[i] {
		out[k] = v
	}

	return out
}

// Path returns the shortest path from origin to destination, or an empty
// slice if destination is unreachable. Reachability is decided from the
// distance row, not from the shape of the reconstructed path.
func (t *Table) Path(origin, destination string) []string {
	if !t.Reachable(origin, destination) {
		return []string{}
	}

	return ReconstructPath(t.prev[t.index[origin]], origin, destination)
}
