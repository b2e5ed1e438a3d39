// Package connectivity defines the entity type and the attribute-clique
// network explored by Detector.
package connectivity

import (
	"strconv"

	"github.com/katalvlaran/routegraph/core"
)

// Entity is a record grouped by Attribute (for example a user and country).
type Entity struct {
	ID        int
	Name      string
	Attribute string
}

// String renders the entity as "name (attribute)".
func (e Entity) String() string {
	return e.Name + " (" + e.Attribute + ")"
}

// key is the vertex ID used for e in the network graph.
func key(id int) string { return strconv.Itoa(id) }

// Network links every pair of entities that share the exact same Attribute.
// The links live in a core.Graph whose vertices are entity IDs and whose
// edges all weigh 0, so each attribute group is a clique.
//
// A Network is immutable after NewNetwork returns.
type Network struct {
	graph  *core.Graph
	byID   map[int]Entity
	order  []int
	groups map[string][]int
}

// NewNetwork builds the attribute-clique network for entities.
//
// Duplicate IDs keep the first entity and ignore later ones. Groups are
// formed on the exact attribute value; case folding happens only when a
// Detector matches a target.
//
// Complexity: O(N + Σ k²) for groups of size k.
func NewNetwork(entities []Entity) *Network {
	n := &Network{
		graph:  core.NewGraph(),
		byID:   make(map[int]Entity, len(entities)),
		order:  make([]int, 0, len(entities)),
		groups: make(map[string][]int),
	}

	var groupOrder []string
	for _, e := range entities {
		if _, dup := n.byID[e.ID]; dup {
			continue
		}
		n.byID[e.ID] = e
		n.order = append(n.order, e.ID)
		if _, seen := n.groups[e.Attribute]; !seen {
			groupOrder = append(groupOrder, e.Attribute)
		}
		n.groups[e.Attribute] = append(n.groups[e.Attribute], e.ID)
		// IDs are never empty, so AddVertex cannot fail.
		_ = n.graph.AddVertex(key(e.ID))
	}

	for _, attr := range groupOrder {
		members := n.groups[attr]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				// Both keys are non-empty and 0 is a valid weight, so AddEdge cannot fail.
				_, _ = n.graph.AddEdge(key(members[i]), key(members[j]), 0)
			}
		}
	}

	return n
}

// Len returns the number of distinct entities.
func (n *Network) Len() int { return len(n.order) }

// Entities returns the distinct entities in input order.
func (n *Network) Entities() []Entity {
	out := make([]Entity, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.byID[id])
	}

	return out
}

// Entity looks up an entity by ID.
func (n *Network) Entity(id int) (Entity, bool) {
	e, ok := n.byID[id]

	return e, ok
}

// GroupSize returns how many entities carry exactly attr.
func (n *Network) GroupSize(attr string) int { return len(n.groups[attr]) }

// Groups returns the number of distinct attribute values.
func (n *Network) Groups() int { return len(n.groups) }

// Graph exposes the underlying clique graph. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.graph }

// vertexEntity maps a graph vertex back to its entity.
func (n *Network) vertexEntity(vertex string) (Entity, bool) {
	id, err := strconv.Atoi(vertex)
	if err != nil {
		return Entity{}, false
	}

	return n.Entity(id)
}
