package fold

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/rna"
)

// problem is the immutable per-call context shared by the evaluators, the
// table fill and nothing else. It is built once per fold and never mutated,
// so concurrent folds and span workers can read it freely.
type problem struct {
	seq      rna.Sequence
	n        int
	score    []float64 // row-major snapshot of the caller's matrix, upper triangle only
	pairable []bool    // pairable[i*n+j]: canonical, j-i >= MinHairpinSpan, S finite
	scale    float64   // 10^precision, or 0 when rounding is disabled
	charge   bool      // ChargeMultiloopClosure
}

// resolveOptions applies defaults and validates o.
func resolveOptions(o *Options) (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	out := *o
	if out.Precision == 0 {
		out.Precision = DefaultPrecision
	}
	if out.Precision > MaxPrecision {
		return Options{}, fmt.Errorf("%w: precision %d > %d", ErrBadOptions, out.Precision, MaxPrecision)
	}
	if out.Workers < 0 {
		return Options{}, fmt.Errorf("%w: workers %d < 0", ErrBadOptions, out.Workers)
	}

	return out, nil
}

// newProblem validates the inputs and snapshots the scores.
//
// Implementation:
//   - Stage 1: sequence alphabet and length.
//   - Stage 2: matrix nil/shape.
//   - Stage 3: copy the upper triangle, rejecting NaN/-Inf on cells the
//     recurrence can read (pairable cells); other cells are irrelevant.
//
// Complexity: O(n²).
func newProblem(s string, scores matrix.Matrix, opts Options) (*problem, error) {
	// Stage 1: sequence.
	seq, err := rna.NewSequence(s)
	if err != nil {
		if errors.Is(err, rna.ErrEmptySequence) {
			return nil, fmt.Errorf("%w: %w", ErrTooShort, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	n := seq.Len()
	if n < MinLength {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, n)
	}

	// Stage 2: matrix shape.
	if scores == nil {
		return nil, ErrNilMatrix
	}
	if err = matrix.ValidateShape(scores, n, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	// Stage 3: snapshot.
	p := &problem{
		seq:      seq,
		n:        n,
		score:    make([]float64, n*n),
		pairable: make([]bool, n*n),
		charge:   opts.ChargeMultiloopClosure,
	}
	if opts.Precision > 0 {
		p.scale = math.Pow(10, float64(opts.Precision))
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i + MinHairpinSpan; j < n; j++ {
			if !seq.CanPair(i, j) {
				continue
			}
			if v, err = scores.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
			}
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return nil, fmt.Errorf("%w: S[%d][%d]=%v", ErrInvalidScore, i, j, v)
			}
			if math.IsInf(v, 1) {
				continue // +Inf forbids the pair in every loop case
			}
			p.score[i*n+j] = v
			p.pairable[i*n+j] = true
		}
	}

	return p, nil
}

// round applies the configured E3/E4 rounding to x.
func (p *problem) round(x float64) float64 {
	if p.scale == 0 || math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*p.scale) / p.scale
}
