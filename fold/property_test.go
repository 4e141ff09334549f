package fold_test

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// integerScores returns an n×n matrix of small integers in [-3, 1], so sums
// are exact and rounding never changes a candidate.
func integerScores(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, float64(rng.Intn(5)-3)))
		}
	}

	return m
}

// TestFold_RandomProperties checks structural and table invariants on
// seeded random inputs.
func TestFold_RandomProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 5 + int(seed)*3
		seq := rna.Random(n, rna.WithSeed(seed))
		scores := integerScores(t, n, seed)

		tables, err := fold.FoldTables(context.Background(), seq.String(), scores, nil)
		require.NoError(t, err)

		res, err := fold.Fold(seq.String(), scores, nil)
		require.NoError(t, err)

		// Structure is nested, canonical and respects the hairpin minimum.
		require.NoError(t, structure.ValidateCanonical(seq, res.Pairs, fold.MinHairpinSpan), "seed %d", seed)

		// Leaving everything unpaired is always available.
		assert.LessOrEqual(t, res.Score, 0.0, "seed %d", seed)
		assert.False(t, math.IsInf(res.Score, 0) || math.IsNaN(res.Score), "seed %d", seed)
		assert.Equal(t, tables.Score(), res.Score, "seed %d", seed)

		// W never exceeds V on any cell.
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				assert.LessOrEqual(t, tables.W(i, j), tables.V(i, j), "seed %d W/V(%d,%d)", seed, i, j)
			}
		}

		// Idempotent.
		again, err := fold.Fold(seq.String(), scores, nil)
		require.NoError(t, err)
		assert.Equal(t, res, again, "seed %d", seed)
	}
}

// TestFold_ChargedScoreIsPairSum checks that when every loop closure is
// charged the optimum equals the sum of S over the returned pairs.
func TestFold_ChargedScoreIsPairSum(t *testing.T) {
	opts := fold.DefaultOptions()
	opts.ChargeMultiloopClosure = true

	for seed := int64(1); seed <= 15; seed++ {
		n := 10 + int(seed)*2
		seq := rna.Random(n, rna.WithSeed(seed))
		scores := integerScores(t, n, seed+100)

		res, err := fold.Fold(seq.String(), scores, &opts)
		require.NoError(t, err)

		var sum float64
		for _, p := range res.Pairs {
			v, aerr := scores.At(p.I, p.J)
			require.NoError(t, aerr)
			sum += v
		}
		assert.Equal(t, sum, res.Score, "seed %d pairs %v", seed, res.Pairs)
	}
}

// TestFold_ParallelMatchesSerial checks that splitting spans across workers
// changes nothing.
func TestFold_ParallelMatchesSerial(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		n := 40 + int(seed)*5
		seq := rna.Random(n, rna.WithSeed(seed)).String()
		scores := integerScores(t, n, seed)

		serial, err := fold.Fold(seq, scores, nil)
		require.NoError(t, err)

		opts := fold.DefaultOptions()
		opts.Workers = 4
		parallel, err := fold.Fold(seq, scores, &opts)
		require.NoError(t, err)

		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Errorf("seed %d: parallel differs (-serial +parallel):\n%s", seed, diff)
		}
	}
}

// TestFold_UnpairableSuffix appends bases that cannot pair with anything in
// the sequence; score and structure must not change.
func TestFold_UnpairableSuffix(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		base := rna.Random(20, rna.WithSeed(seed), rna.WithAlphabet("ACG")).String()
		ext := base + strings.Repeat("A", 7)

		short, err := fold.Fold(base, uniform(t, len(base), -1), nil)
		require.NoError(t, err)
		long, err := fold.Fold(ext, uniform(t, len(ext), -1), nil)
		require.NoError(t, err)

		assert.Equal(t, short.Score, long.Score, "seed %d", seed)
		assert.Equal(t, short.Pairs, long.Pairs, "seed %d", seed)
	}
}

// TestFold_UnpairablePrefix prepends unpairable bases: the score is unchanged
// and every pair moves right by the prefix length.
func TestFold_UnpairablePrefix(t *testing.T) {
	const prefix = "AAAAAAA"
	for seed := int64(1); seed <= 10; seed++ {
		base := rna.Random(20, rna.WithSeed(seed), rna.WithAlphabet("ACG")).String()
		ext := prefix + base

		short, err := fold.Fold(base, uniform(t, len(base), -1), nil)
		require.NoError(t, err)
		long, err := fold.Fold(ext, uniform(t, len(ext), -1), nil)
		require.NoError(t, err)

		shifted := make(structure.Pairs, len(short.Pairs))
		for i, p := range short.Pairs {
			shifted[i] = structure.Pair{I: p.I + len(prefix), J: p.J + len(prefix)}
		}
		assert.Equal(t, short.Score, long.Score, "seed %d", seed)
		assert.Equal(t, shifted, long.Pairs, "seed %d", seed)
	}
}

// TestFold_NeverPairs checks that a sequence without complementary bases
// always folds to the empty structure.
func TestFold_NeverPairs(t *testing.T) {
	for _, alphabet := range []string{"A", "C", "AC", "AG"} {
		seq := rna.Random(30, rna.WithSeed(7), rna.WithAlphabet(alphabet)).String()
		res, err := fold.Fold(seq, uniform(t, len(seq), -5), nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Score, alphabet)
		assert.Empty(t, res.Pairs, alphabet)
	}
}
