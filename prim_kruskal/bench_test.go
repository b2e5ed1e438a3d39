package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/routegraph/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := build(b, randomConnected(rand.New(rand.NewSource(42)), 500, 1501))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph, always starting from "V0".
func BenchmarkPrim(b *testing.B) {
	g := build(b, randomConnected(rand.New(rand.NewSource(42)), 500, 1501))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "V0")
	}
}
