package fold

import (
	"context"

	"github.com/katalvlaran/rnafold/matrix"
)

// Test-bridge exposing the loop-case evaluators to package fold_test.
// Compiled only with tests.

// Evaluators wraps a validated problem and a filled table set.
type Evaluators struct {
	p *problem
	t *Tables
}

// NewEvaluators_TestOnly validates the input, fills the tables and returns
// handles on the evaluators for the same problem.
func NewEvaluators_TestOnly(seq string, scores matrix.Matrix, opts *Options) (*Evaluators, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := newProblem(seq, scores, o)
	if err != nil {
		return nil, err
	}
	t, err := p.fill(context.Background(), o.Workers)
	if err != nil {
		return nil, err
	}

	return &Evaluators{p: p, t: t}, nil
}

// E1 forwards to hairpin.
func (e *Evaluators) E1(i, j int) float64 { return e.p.hairpin(i, j) }

// E2 forwards to interior.
func (e *Evaluators) E2(i, j int) (float64, int, int) { return e.p.interior(e.t, i, j) }

// E3 forwards to multiloop.
func (e *Evaluators) E3(i, j int) (float64, int) { return e.p.multiloop(e.t, i, j) }

// E4 forwards to bifurcation.
func (e *Evaluators) E4(i, j int) (float64, int) { return e.p.bifurcation(e.t, i, j) }

// Tables returns the filled tables.
func (e *Evaluators) Tables() *Tables { return e.t }

// BatchLimit_TestOnly exposes the FoldAll concurrency bound.
func BatchLimit_TestOnly(workers int) int { return batchLimit(workers) }
