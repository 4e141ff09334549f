package fold

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rnafold/matrix"
)

// Job is one independent folding problem for FoldAll.
type Job struct {
	Name     string
	Sequence string
	Scores   matrix.Matrix
}

// FoldAll folds jobs concurrently with at most workers folds in flight
// (workers ≤ 0 means one per CPU). Results are returned in job order.
//
// Options are validated once up front. The first failing job cancels the
// others through the shared context and its error is returned, wrapped with
// the job index and name.
//
// Folds share no mutable state, so the results equal those of calling
// FoldContext on each job in turn.
func FoldAll(ctx context.Context, jobs []Job, opts *Options, workers int) ([]Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit(workers))

	out := make([]Result, len(jobs))
	for idx, job := range jobs {
		g.Go(func() error {
			res, ferr := FoldContext(gctx, job.Sequence, job.Scores, &o)
			if ferr != nil {
				return fmt.Errorf("job %d (%s): %w", idx, job.Name, ferr)
			}
			out[idx] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// batchLimit resolves the FoldAll concurrency: each fold holds seven n×n
// tables, so the number in flight is always bounded.
func batchLimit(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}

	return workers
}
