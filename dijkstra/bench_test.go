package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/graphbook/graphbook/dijkstra"
)

// buildRandomGraph constructs a directed graph with v vertices and m
// random edges, weights uniform in [1, 100]. Deterministic seed.
func buildRandomGraph(v, m int, seed int64) *dijkstra.Graph {
	r := rand.New(rand.NewSource(seed))
	g, _ := dijkstra.New(v, true)
	for i := 0; i < m; i++ {
		_ = g.AddEdge(r.Intn(v), r.Intn(v), 1+r.Int63n(100))
	}

	return g
}

func BenchmarkShortestPaths(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edges    int
		seed     int64
	}{
		{"Sparse1k", 1000, 5000, 42},
		{"Dense1k", 1000, 50000, 4242},
		{"Sparse10k", 10000, 50000, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := buildRandomGraph(tc.vertices, tc.edges, tc.seed)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := g.ShortestPaths(0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
