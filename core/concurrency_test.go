// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every edge appears in the hub's adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num+1, g.VertexCount())
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs many readers against a built graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i < 50; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(i))
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_ = g.Neighbors(v)
				_ = g.Degree(v)
			}
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
