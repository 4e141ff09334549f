package fold_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/rna"
)

// benchmarkFold folds one seeded random sequence of length n with uniform
// random scores in [-1, 0). Setup is excluded from the timing.
func benchmarkFold(b *testing.B, n int, opts fold.Options) {
	seq := rna.Random(n, rna.WithSeed(int64(n))).String()
	rng := rand.New(rand.NewSource(int64(n)))
	scores, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = scores.SetSymmetric(i, j, -rng.Float64()); err != nil {
				b.Fatalf("SetSymmetric: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = fold.Fold(seq, scores, &opts); err != nil {
			b.Fatalf("Fold failed: %v", err)
		}
	}
}

// BenchmarkFold_N20 benchmarks a 20-nt fold.
func BenchmarkFold_N20(b *testing.B) { benchmarkFold(b, 20, fold.DefaultOptions()) }

// BenchmarkFold_N40 benchmarks a 40-nt fold.
func BenchmarkFold_N40(b *testing.B) { benchmarkFold(b, 40, fold.DefaultOptions()) }

// BenchmarkFold_N80 benchmarks an 80-nt fold.
func BenchmarkFold_N80(b *testing.B) { benchmarkFold(b, 80, fold.DefaultOptions()) }

// BenchmarkFold_N80Parallel splits each span over four workers.
func BenchmarkFold_N80Parallel(b *testing.B) {
	opts := fold.DefaultOptions()
	opts.Workers = 4
	benchmarkFold(b, 80, opts)
}
