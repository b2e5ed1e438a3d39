package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/prim_kruskal"
)

// triple is an edge-list row used to (re)build graphs in property tests.
type triple struct {
	from, to string
	w        int64
}

// build constructs a graph from rows in order.
func build(t testing.TB, rows []triple) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, r := range rows {
		_, err := g.AddEdge(r.from, r.to, r.w)
		require.NoError(t, err)
	}

	return g
}

// randomConnected returns n vertices "V0".."V(n-1)" chained for connectivity
// plus extra random edges (self-loops skipped). Deterministic for a seed.
func randomConnected(r *rand.Rand, n, extra int) []triple {
	rows := make([]triple, 0, n-1+extra)
	for i := 1; i < n; i++ {
		rows = append(rows, triple{fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1 + r.Intn(20))})
	}
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		rows = append(rows, triple{fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(r.Intn(30))})
		i++
	}

	return rows
}

// bruteForceMST enumerates every (n-1)-edge subset and returns the lightest
// one that connects all n vertices. Only usable on tiny graphs.
func bruteForceMST(vertices []string, rows []triple) int64 {
	n := len(vertices)
	best := prim_kruskal.Infinity
	var pick func(start int, chosen []triple)
	pick = func(start int, chosen []triple) {
		if len(chosen) == n-1 {
			parent := make(map[string]string, n)
			for _, v := range vertices {
				parent[v] = v
			}
			find := func(x string) string {
				for parent[x] != x {
					x = parent[x]
				}
				return x
			}
			var total int64
			for _, e := range chosen {
				a, b := find(e.from), find(e.to)
				if a == b {
					return
				}
				parent[a] = b
				total += e.w
			}
			if total < best {
				best = total
			}
			return
		}
		for i := start; i < len(rows); i++ {
			pick(i+1, append(chosen, rows[i]))
		}
	}
	pick(0, make([]triple, 0, n-1))

	return best
}

func TestPrim_Triangle(t *testing.T) {
	g := build(t, []triple{{"A", "B", 4}, {"A", "C", 2}, {"C", "B", 1}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)

	assert.Equal(t, int64(3), tree.TotalCost())
	assert.Equal(t, map[string]string{"C": "A", "B": "C"}, tree.Parent)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2}, tree.Key)
	assert.Equal(t, []string{"A", "C", "B"}, tree.Order())
}

func TestPrim_MaxWeightEdgeJoinsTree(t *testing.T) {
	g := build(t, []triple{{"A", "B", core.MaxWeight}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.True(t, tree.InTree("B"))
	assert.Equal(t, "A", tree.Parent["B"])
	assert.Equal(t, core.MaxWeight, tree.TotalCost())

	_, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, total, tree.TotalCost())
}

func TestPrim_Validation(t *testing.T) {
	_, err := prim_kruskal.Prim(nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	g := build(t, []triple{{"A", "B", 1}})
	_, err = prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, err = prim_kruskal.Prim(g, "Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = prim_kruskal.Prim(core.NewGraph(), "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPrim_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	tree, err := prim_kruskal.Prim(g, "X")
	require.NoError(t, err)
	assert.Zero(t, tree.TotalCost())
	assert.Empty(t, tree.Edges())
	assert.Equal(t, 1, tree.Size())
	assert.True(t, tree.InTree("X"))
}

func TestPrim_DisconnectedYieldsStartComponent(t *testing.T) {
	g := build(t, []triple{{"A", "B", 3}, {"B", "C", 4}, {"D", "E", 1}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)

	assert.Equal(t, int64(7), tree.TotalCost())
	assert.Equal(t, 3, tree.Size())
	assert.False(t, tree.InTree("D"))
	assert.False(t, tree.InTree("E"))
	assert.Equal(t, prim_kruskal.Infinity, tree.Key["D"])
	assert.Equal(t, prim_kruskal.Infinity, tree.Key["E"])
	assert.Len(t, tree.Parent, 2)
}

func TestPrim_ParallelEdgesPreferLighter(t *testing.T) {
	g := build(t, []triple{{"A", "B", 5}, {"A", "B", 1}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), tree.TotalCost())

	edges := tree.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "e2", edges[0].ID)
}

func TestPrim_TieBreakFollowsInsertionOrder(t *testing.T) {
	// All weights equal: the frontier must release vertices in push order.
	g := build(t, []triple{{"R", "B", 1}, {"R", "A", 1}, {"R", "C", 1}, {"A", "C", 1}})

	tree, err := prim_kruskal.Prim(g, "R")
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "B", "A", "C"}, tree.Order())
	assert.Equal(t, "R", tree.Parent["C"])

	// Same input, same answer.
	again, err := prim_kruskal.Prim(g, "R")
	require.NoError(t, err)
	assert.Equal(t, tree.Order(), again.Order())
}

func TestPrim_ZeroWeightEdges(t *testing.T) {
	g := build(t, []triple{{"A", "B", 0}, {"B", "C", 0}, {"A", "C", 2}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Zero(t, tree.TotalCost())
	assert.Equal(t, 3, tree.Size())
}

func TestPrim_IgnoresSelfLoops(t *testing.T) {
	g := build(t, []triple{{"A", "A", 1}, {"A", "B", 6}})

	tree, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(6), tree.TotalCost())
}

func TestKruskal_Forest(t *testing.T) {
	g := build(t, []triple{{"A", "B", 3}, {"B", "C", 4}, {"A", "C", 9}, {"D", "E", 1}})

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, edges, 3)

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	edges, total, err = prim_kruskal.Kruskal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestPrim_MatchesReferences checks N-1 links and optimal cost against
// Kruskal on medium graphs and brute force on tiny ones.
func TestPrim_MatchesReferences(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(9)
		rows := randomConnected(r, n, r.Intn(2*n))
		g := build(t, rows)

		tree, err := prim_kruskal.Prim(g, "V0")
		require.NoError(t, err)
		assert.Len(t, tree.Parent, n-1, "round %d", round)
		assert.Len(t, tree.Edges(), n-1, "round %d", round)

		_, kTotal, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, kTotal, tree.TotalCost(), "round %d", round)

		if len(rows) <= 12 {
			assert.Equal(t, bruteForceMST(g.Vertices(), rows), tree.TotalCost(), "round %d", round)
		}
	}
}

// TestPrim_RootDoesNotChangeCost verifies that every root of a connected
// graph yields the same total.
func TestPrim_RootDoesNotChangeCost(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := build(t, randomConnected(r, 12, 20))

	first, err := prim_kruskal.Prim(g, "V0")
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		tree, err := prim_kruskal.Prim(g, v)
		require.NoError(t, err)
		assert.Equal(t, first.TotalCost(), tree.TotalCost(), "root %s", v)
	}
}

// TestPrim_WeightPerturbationIsMonotonic raises one edge weight at a time
// and checks the MST cost never drops.
func TestPrim_WeightPerturbationIsMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(1234))

	for round := 0; round < 25; round++ {
		rows := randomConnected(r, 8, 10)
		base, err := prim_kruskal.Prim(build(t, rows), "V0")
		require.NoError(t, err)

		i := r.Intn(len(rows))
		bumped := append([]triple(nil), rows...)
		bumped[i].w += int64(1 + r.Intn(15))

		after, err := prim_kruskal.Prim(build(t, bumped), "V0")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, after.TotalCost(), base.TotalCost(), "round %d edge %d", round, i)
	}
}

func TestCompute_Dispatch(t *testing.T) {
	g := build(t, []triple{{"A", "B", 4}, {"A", "C", 2}, {"C", "B", 1}})

	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, edges, 2)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithRoot("B")))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	edges, total, err = prim_kruskal.Compute(core.NewGraph(), prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	_, _, err = prim_kruskal.Compute(nil, prim_kruskal.DefaultOptions())
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
}
