// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/SebastianSpeitel/datalink/bfs"
	"github.com/SebastianSpeitel/datalink/graph"
)

// BenchmarkBFS_Star1000 visits a hub with 999 leaves.
func BenchmarkBFS_Star1000(b *testing.B) {
	g, err := graph.Build(nil, graph.Star(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g.Root())
	}
}

// BenchmarkBFS_Complete100 scans the 9900 links of K100.
func BenchmarkBFS_Complete100(b *testing.B) {
	g, err := graph.Build(nil, graph.Complete(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g.Root())
	}
}
