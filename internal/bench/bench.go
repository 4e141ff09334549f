// Package bench measures fold running time over a range of sequence lengths
// and fits the empirical exponent k of t ≈ c·N^k.
//
// Lengths are spaced quadratically between a minimum and a maximum so the
// long end, where the asymptotic term dominates, is sampled densely. Each
// length is folded Repeats times on fresh seeded random sequences by a
// bounded worker pool, and the mean wall time per length is regressed in
// log-log space.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/rna"
)

var (
	// ErrBadOptions indicates an unusable benchmark configuration.
	ErrBadOptions = errors.New("bench: invalid options")

	// ErrFit indicates too few usable samples for a regression.
	ErrFit = errors.New("bench: not enough samples to fit")
)

// Options configures Run.
type Options struct {
	Points    int   // number of lengths
	MinLength int   // shortest sequence, ≥ fold.MinLength
	MaxLength int   // longest sequence
	Repeats   int   // folds per length
	Workers   int   // concurrent folds; 0 means runtime.NumCPU()
	Seed      int64 // base seed for sequences and scores

	Fold fold.Options
}

// DefaultOptions returns a configuration that finishes in seconds.
func DefaultOptions() Options {
	return Options{
		Points:    8,
		MinLength: 20,
		MaxLength: 120,
		Repeats:   3,
		Seed:      1,
		Fold:      fold.DefaultOptions(),
	}
}

// Sample is the mean fold time at one length.
type Sample struct {
	Length int           `json:"length" yaml:"length"`
	Mean   time.Duration `json:"mean_ns" yaml:"mean_ns"`
}

// Report is the outcome of Run.
type Report struct {
	Samples []Sample `json:"samples" yaml:"samples"`

	// Exponent is the fitted k in t ≈ c·N^k; Intercept is ln c (seconds).
	Exponent  float64 `json:"exponent" yaml:"exponent"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
}

// Lengths returns points lengths spaced along lo + a·x², x = 1..points,
// with a chosen so the last length is hi.
func Lengths(points, lo, hi int) []int {
	out := make([]int, 0, points)
	span, denom := float64(hi-lo), float64(points*points)
	for x := 1; x <= points; x++ {
		out = append(out, int(span*float64(x*x)/denom)+lo)
	}

	return out
}

// RandomScores returns an n×n symmetric matrix of uniform values in [-1, 0).
func RandomScores(n int, rng *rand.Rand) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = m.SetSymmetric(i, j, -rng.Float64()); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func (o Options) validate() error {
	switch {
	case o.Points < 2:
		return fmt.Errorf("%w: points %d < 2", ErrBadOptions, o.Points)
	case o.MinLength < fold.MinLength:
		return fmt.Errorf("%w: min length %d < %d", ErrBadOptions, o.MinLength, fold.MinLength)
	case o.MaxLength <= o.MinLength:
		return fmt.Errorf("%w: max length %d <= min length %d", ErrBadOptions, o.MaxLength, o.MinLength)
	case o.Repeats < 1:
		return fmt.Errorf("%w: repeats %d < 1", ErrBadOptions, o.Repeats)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrBadOptions, o.Workers)
	}

	return nil
}

// Run times folds at every length and fits the exponent.
//
// Implementation:
//   - Stage 1: build the length grid and one job per (length, repeat).
//   - Stage 2: run jobs on an errgroup limited to Workers; each job draws
//     its own sequence and scores from a seed derived from (length, repeat),
//     so results do not depend on scheduling.
//   - Stage 3: average per length and fit with FitExponent.
func Run(ctx context.Context, opts Options) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	log := logr.FromContextOrDiscard(ctx)
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	// Stage 1: grid.
	lengths := Lengths(opts.Points, opts.MinLength, opts.MaxLength)
	elapsed := make([]time.Duration, len(lengths)*opts.Repeats)

	// Stage 2: worker pool.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for li, n := range lengths {
		for r := 0; r < opts.Repeats; r++ {
			slot := li*opts.Repeats + r
			seed := opts.Seed + int64(slot)
			g.Go(func() error {
				d, err := timeOne(gctx, n, seed, opts.Fold)
				if err != nil {
					return fmt.Errorf("length %d repeat %d: %w", n, r, err)
				}
				elapsed[slot] = d
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	// Stage 3: aggregate and fit.
	rep := Report{Samples: make([]Sample, len(lengths))}
	for li, n := range lengths {
		var sum time.Duration
		for r := 0; r < opts.Repeats; r++ {
			sum += elapsed[li*opts.Repeats+r]
		}
		rep.Samples[li] = Sample{Length: n, Mean: sum / time.Duration(opts.Repeats)}
		log.V(1).Info("length timed", "n", n, "mean", rep.Samples[li].Mean)
	}

	var err error
	if rep.Exponent, rep.Intercept, rep.RSquared, err = FitExponent(rep.Samples); err != nil {
		return rep, err
	}
	log.V(1).Info("exponent fitted", "k", rep.Exponent, "r2", rep.RSquared)

	return rep, nil
}

// timeOne folds one random instance of length n and returns the fold time.
// Input generation is not timed.
func timeOne(ctx context.Context, n int, seed int64, opts fold.Options) (time.Duration, error) {
	rng := rand.New(rand.NewSource(seed))
	seq := rna.Random(n, rna.WithRand(rng)).String()
	scores, err := RandomScores(n, rng)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	if _, err = fold.FoldContext(ctx, seq, scores, &opts); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}

// FitExponent regresses ln(seconds) on ln(length) by ordinary least
// squares. Samples with a non-positive duration are skipped.
//
// Returns the slope k, the intercept ln c and R².
// Errors: ErrFit with fewer than two usable samples of distinct length.
func FitExponent(samples []Sample) (k, lnC, r2 float64, err error) {
	var xs, ys []float64
	for _, s := range samples {
		if s.Mean <= 0 || s.Length <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(s.Length)))
		ys = append(ys, math.Log(s.Mean.Seconds()))
	}
	if len(xs) < 2 || stat.Variance(xs, nil) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: %d usable", ErrFit, len(xs))
	}

	lnC, k = stat.LinearRegression(xs, ys, nil, false)
	r2 = stat.RSquared(xs, ys, nil, lnC, k)

	return k, lnC, r2, nil
}
