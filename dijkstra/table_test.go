package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

func TestBuildTable_Validation(t *testing.T) {
	_, err := dijkstra.BuildTable(context.Background(), nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := build(t, []triple{{"A", "B", 1}})
	_, err = dijkstra.BuildTable(context.Background(), g, dijkstra.WithWorkers(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadWorkers)
}

func TestBuildTable_Triangle(t *testing.T) {
	g := build(t, []triple{{"A", "B", 4}, {"A", "C", 2}, {"C", "B", 1}})
	table, err := dijkstra.BuildTable(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, table.Vertices())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, map[string]int64{"A": 0, "B": 3, "C": 2}, table.Row("A"))
	assert.Equal(t, []string{"A", "C", "B"}, table.Path("A", "B"))
	assert.Equal(t, []string{"B", "C", "A"}, table.Path("B", "A"))
	assert.Equal(t, []string{"C"}, table.Path("C", "C"))

	// Undirected graph: the table is symmetric.
	for _, u := range table.Vertices() {
		for _, v := range table.Vertices() {
			assert.Equal(t, table.Distance(u, v), table.Distance(v, u))
		}
	}
}

func TestBuildTable_UnknownAndUnreachable(t *testing.T) {
	g := build(t, []triple{{"A", "B", 1}, {"C", "D", 1}})
	table, err := dijkstra.BuildTable(context.Background(), g)
	require.NoError(t, err)

	assert.False(t, table.Reachable("A", "C"))
	assert.Equal(t, dijkstra.Infinity, table.Distance("A", "C"))
	assert.Empty(t, table.Path("A", "C"))
	assert.NotNil(t, table.Path("A", "C"))

	assert.Equal(t, dijkstra.Infinity, table.Distance("Z", "A"))
	assert.Equal(t, dijkstra.Infinity, table.Distance("A", "Z"))
	assert.Empty(t, table.Path("Z", "A"))
	assert.Nil(t, table.Row("Z"))
}

func TestBuildTable_RowIsCopy(t *testing.T) {
	g := build(t, []triple{{"A", "B", 1}})
	table, err := dijkstra.BuildTable(context.Background(), g)
	require.NoError(t, err)

	row := table.Row("A")
	row["B"] = 100
	assert.Equal(t, int64(1), table.Distance("A", "B"))
}

func TestBuildTable_EmptyGraph(t *testing.T) {
	table, err := dijkstra.BuildTable(context.Background(), core.NewGraph(), dijkstra.WithWorkers(3))
	require.NoError(t, err)
	assert.Zero(t, table.Len())
}

func TestBuildTable_ParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	g := build(t, randomGraph(r, 40, 120))

	serial, err := dijkstra.BuildTable(context.Background(), g)
	require.NoError(t, err)
	parallel, err := dijkstra.BuildTable(context.Background(), g, dijkstra.WithWorkers(8))
	require.NoError(t, err)

	require.Equal(t, serial.Vertices(), parallel.Vertices())
	for _, u := range serial.Vertices() {
		assert.Equal(t, serial.Row(u), parallel.Row(u))
		for _, v := range serial.Vertices() {
			assert.Equal(t, serial.Path(u, v), parallel.Path(u, v), "%s->%s", u, v)
		}
	}
}

func TestBuildTable_RunOptions(t *testing.T) {
	g := build(t, []triple{{"A", "B", 2}, {"B", "C", 2}})
	table, err := dijkstra.BuildTable(context.Background(), g,
		dijkstra.WithRunOptions(dijkstra.WithMaxDistance(2)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), table.Distance("A", "B"))
	assert.False(t, table.Reachable("A", "C"))
}

func TestBuildTable_BadRunOptions(t *testing.T) {
	g := build(t, []triple{{"A", "B", 2}, {"B", "C", 2}})
	cases := []struct {
		name string
		opt  dijkstra.Option
		want error
	}{
		{"NegativeMaxDistance", dijkstra.WithMaxDistance(-1), dijkstra.ErrBadMaxDistance},
		{"ZeroInfThreshold", dijkstra.WithInfEdgeThreshold(0), dijkstra.ErrBadInfThreshold},
		{"NegativeInfThreshold", dijkstra.WithInfEdgeThreshold(-5), dijkstra.ErrBadInfThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				table *dijkstra.Table
				err   error
			)
			assert.NotPanics(t, func() {
				table, err = dijkstra.BuildTable(context.Background(), g,
					dijkstra.WithWorkers(4), dijkstra.WithRunOptions(tc.opt))
			})
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, table)
		})
	}
}

func TestBuildTable_Cancelled(t *testing.T) {
	g := build(t, []triple{{"A", "B", 1}, {"B", "C", 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := dijkstra.BuildTable(ctx, g, dijkstra.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, table)
}
