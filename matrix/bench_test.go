package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pressure/builder"
	"github.com/katalvlaran/pressure/matrix"
)

func benchGraphDistances(b *testing.B, build func() error) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewDistances(b *testing.B) {
	g, err := builder.BuildGraph("", nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(60, 0.05))
	if err != nil {
		b.Fatal(err)
	}
	b.Run("FloydWarshall", func(b *testing.B) {
		benchGraphDistances(b, func() error { _, err := matrix.NewDistances(g); return err })
	})
	b.Run("BFS", func(b *testing.B) {
		benchGraphDistances(b, func() error { _, err := matrix.NewDistancesBFS(g); return err })
	})
}
