package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pressure/bfs"
	"github.com/katalvlaran/pressure/builder"
)

// BenchmarkBFS_Grid measures a full sweep over a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph("", nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
