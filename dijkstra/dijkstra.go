// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - Non-negative weights are guaranteed by core.Graph.AddEdge, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, which follows adjacency insertion order.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/routegraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Infinity if unreachable). Every
//     vertex of g has an entry.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u. Source and
//     unreachable vertices have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Prepare state
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 4) Run
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, thresholds, etc.).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64            // push counter for tie-breaking
}

// init sets dist[v] = Infinity for all v, dist[Source] = 0 and pushes Source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// push enqueues v at distance d with the next sequence number.
func (r *runner) push(v string, d int64) {
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the vertex with the minimum distance and
// relaxes its edges until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries for already finalized vertices.
		if r.visited[u] {
			continue
		}

		// 3) Everything left in the heap is at least this far away.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) u is final.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbor of u through u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) {
	du := r.dist[u]
	var (
		e       *core.Edge
		v       string
		w       int64
		newDist int64
	)
	for _, e = range r.g.Neighbors(u) {
		v = e.To
		w = e.Weight

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturate instead of wrapping around on huge weights.
		if w > Infinity-du {
			continue
		}
		newDist = du + w

		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict improvement only; equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}
}

// nodeItem represents a vertex and its distance estimate at push time.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem, ordered by dist then seq.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, earlier push on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
