package bfs_test

import (
	"testing"

	"github.com/katalvlaran/valvenet/bfs"
)

// BenchmarkSweep_Chain measures a sweep over a linear chain of N+1 vertices.
func BenchmarkSweep_Chain(b *testing.B) {
	const N = 10000
	adj := make([][]int, N+1)
	for i := 0; i < N; i++ {
		adj[i] = append(adj[i], i+1)
		adj[i+1] = append(adj[i+1], i)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N + 1 + 2*N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Sweep(adj, 0)
	}
}

// BenchmarkSweep_BinaryTree runs a sweep on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkSweep_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices
	nodeCount := (1 << depth) - 1
	adj := make([][]int, nodeCount)
	// connect parent → children (heap layout, 0-based)
	for p := 0; 2*p+2 < nodeCount; p++ {
		adj[p] = append(adj[p], 2*p+1, 2*p+2)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Sweep(adj, 0)
	}
}
