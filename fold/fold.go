package fold

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/rnafold/matrix"
)

// Fold computes the minimum-score secondary structure of seq under scores.
// A nil opts selects DefaultOptions().
//
// Contract:
//   - seq is uppercase over {A,C,G,U} with len(seq) ≥ MinLength.
//   - scores is len(seq)×len(seq); only cells (i, j), i < j, that can form
//     a canonical pair with j-i ≥ MinHairpinSpan are read. +Inf forbids a
//     pair; NaN and -Inf are rejected.
//   - scores is never modified.
//
// Errors (all match ErrInvalidInput): ErrTooShort, ErrNilMatrix,
// ErrDimensionMismatch, ErrInvalidScore, ErrBadOptions, and
// rna.ErrInvalidSymbol for symbols outside the alphabet.
//
// Deterministic: identical inputs always yield an identical Result.
//
// Complexity: O(n⁴) time, O(n²) memory.
func Fold(seq string, scores matrix.Matrix, opts *Options) (Result, error) {
	return FoldContext(context.Background(), seq, scores, opts)
}

// FoldContext is Fold with cancellation and logging. The context is checked
// between spans of the table fill; a logr.Logger stored in ctx (see
// logr.NewContext) receives V(1) progress messages.
func FoldContext(ctx context.Context, seq string, scores matrix.Matrix, opts *Options) (Result, error) {
	t, err := FoldTables(ctx, seq, scores, opts)
	if err != nil {
		return Result{}, err
	}
	pairs := t.Traceback()
	logr.FromContextOrDiscard(ctx).V(1).Info("fold complete", "n", t.N(), "score", t.Score(), "pairs", len(pairs))

	return Result{N: t.N(), Score: t.Score(), Pairs: pairs}, nil
}

// FoldTables validates the input and fills the V and W tables without
// running traceback. Useful for inspecting sub-optimal scores and for
// checking table invariants.
func FoldTables(ctx context.Context, seq string, scores matrix.Matrix, opts *Options) (*Tables, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := newProblem(seq, scores, o)
	if err != nil {
		return nil, err
	}

	return p.fill(ctx, o.Workers)
}
