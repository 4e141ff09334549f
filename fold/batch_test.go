package fold_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/rna"
)

// TestFoldAll_Order checks that results come back in job order and match
// independent folds.
func TestFoldAll_Order(t *testing.T) {
	var jobs []fold.Job
	for seed := int64(1); seed <= 12; seed++ {
		seq := rna.Random(10+int(seed)*4, rna.WithSeed(seed)).String()
		jobs = append(jobs, fold.Job{
			Name:     seq[:5],
			Sequence: seq,
			Scores:   integerScores(t, len(seq), seed),
		})
	}

	for _, workers := range []int{0, 1, 3} {
		got, err := fold.FoldAll(context.Background(), jobs, nil, workers)
		require.NoError(t, err)
		require.Len(t, got, len(jobs))

		for idx, job := range jobs {
			want, ferr := fold.Fold(job.Sequence, job.Scores, nil)
			require.NoError(t, ferr)
			assert.Equal(t, want, got[idx], "workers=%d job %d", workers, idx)
		}
	}
}

// TestFoldAll_Limit checks that a non-positive worker count still bounds the
// batch, at one fold per CPU.
func TestFoldAll_Limit(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), fold.BatchLimit_TestOnly(0))
	assert.Equal(t, runtime.NumCPU(), fold.BatchLimit_TestOnly(-2))
	assert.Equal(t, 3, fold.BatchLimit_TestOnly(3))
}

func TestFoldAll_Empty(t *testing.T) {
	got, err := fold.FoldAll(context.Background(), nil, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFoldAll_Error checks that a failing job aborts the batch with a
// wrapped, identifiable error.
func TestFoldAll_Error(t *testing.T) {
	jobs := []fold.Job{
		{Name: "ok", Sequence: "GAAAC", Scores: uniform(t, 5, -1)},
		{Name: "short", Sequence: "GAC", Scores: uniform(t, 3, -1)},
	}

	got, err := fold.FoldAll(context.Background(), jobs, nil, 1)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, fold.ErrTooShort)
	assert.Contains(t, err.Error(), "job 1 (short)")
}

func TestFoldAll_BadOptions(t *testing.T) {
	opts := fold.DefaultOptions()
	opts.Workers = -3

	_, err := fold.FoldAll(context.Background(), []fold.Job{{Sequence: "GAAAC", Scores: uniform(t, 5, -1)}}, &opts, 1)
	assert.ErrorIs(t, err, fold.ErrBadOptions)
}

func TestFoldAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []fold.Job{{Name: "ref", Sequence: referenceSeq, Scores: uniform(t, len(referenceSeq), -1)}}
	_, err := fold.FoldAll(ctx, jobs, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
