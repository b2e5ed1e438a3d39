package connectivity

import (
	"strings"

	"github.com/katalvlaran/routegraph/dfs"
)

// Detector finds the entities reachable through a Network from every entity
// whose attribute matches a target.
//
// The visited set belongs to the Detector and survives across calls: an
// entity reported once is never reported again until Reset. A Detector is not
// safe for concurrent use.
type Detector struct {
	net     *Network
	visited map[int]bool
}

// NewDetector returns a Detector over net with an empty visited set.
func NewDetector(net *Network) *Detector {
	return &Detector{net: net, visited: make(map[int]bool)}
}

// FindConnected walks entities in order and, for each unvisited one whose
// Attribute equals target (case-insensitive), runs a depth-first search over
// the network from it. All discoveries of the call are returned together in
// discovery order.
//
// An entity that is not part of the network is reported on its own, with no
// connections. The result is never nil.
//
// Complexity: O(N + E) over the entities and links not yet visited.
func (d *Detector) FindConnected(entities []Entity, target string) []Entity {
	out := make([]Entity, 0)
	for _, e := range entities {
		if d.visited[e.ID] || !strings.EqualFold(e.Attribute, target) {
			continue
		}
		if _, known := d.net.Entity(e.ID); !known {
			d.visited[e.ID] = true
			out = append(out, e)
			continue
		}
		out = d.walk(e.ID, out)
	}

	return out
}

// FindConnectedAll runs FindConnected over the network's own entities.
func (d *Detector) FindConnectedAll(target string) []Entity {
	return d.FindConnected(d.net.Entities(), target)
}

// walk runs dfs.DFS over the network graph from id. The pre-order hook marks
// and records each entity; the neighbor filter consults the lifetime visited
// set, so entities reported by earlier walks are never re-entered.
func (d *Detector) walk(id int, out []Entity) []Entity {
	seen := func(vertex string) bool {
		e, ok := d.net.vertexEntity(vertex)
		return ok && d.visited[e.ID]
	}
	// No context, and the hook never fails, so DFS cannot return an error
	// for a vertex the network holds.
	_, _ = dfs.DFS(d.net.Graph(), key(id),
		dfs.WithFilterNeighbor(func(vertex string) bool { return !seen(vertex) }),
		dfs.WithOnVisit(func(vertex string) error {
			if e, ok := d.net.vertexEntity(vertex); ok {
				d.visited[e.ID] = true
				out = append(out, e)
			}

			return nil
		}))

	return out
}

// Visited reports whether id was reached by an earlier call.
func (d *Detector) Visited(id int) bool { return d.visited[id] }

// Reset forgets every visited entity.
func (d *Detector) Reset() {
	d.visited = make(map[int]bool)
}
