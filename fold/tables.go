package fold

import (
	"context"
	"math"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// minParallelCells is the smallest span (in cells) worth splitting across
// workers; shorter spans are filled inline.
const minParallelCells = 16

// Tables holds the filled V and W tables of one fold plus the case tags
// and split points recorded by the forward pass.
//
// Storage is row-major n×n; only cells with i ≤ j are meaningful.
// A Tables value is read-only once returned by FoldTables.
type Tables struct {
	n    int
	v, w []float64
	vTag []vCase
	wTag []wCase
	vA   []int32 // E2: i'; E3: k
	vB   []int32 // E2: j'
	wK   []int32 // E4: k
}

// newTables allocates n×n tables with V = +Inf and W = 0 everywhere, which
// already encodes the base spans j-i < MinHairpinSpan.
func newTables(n int) *Tables {
	size := n * n
	t := &Tables{
		n:    n,
		v:    make([]float64, size),
		w:    make([]float64, size),
		vTag: make([]vCase, size),
		wTag: make([]wCase, size),
		vA:   make([]int32, size),
		vB:   make([]int32, size),
		wK:   make([]int32, size),
	}
	inf := math.Inf(1)
	for i := range t.v {
		t.v[i] = inf
	}

	return t
}

// N returns the sequence length the tables were filled for.
func (t *Tables) N() int { return t.n }

// Score returns W[0][n-1], the optimal total score.
func (t *Tables) Score() float64 { return t.w[t.n-1] }

// V returns V[i][j]: the best score on [i..j] with i paired to j, +Inf when
// that is impossible. Returns NaN unless 0 ≤ i ≤ j < N().
func (t *Tables) V(i, j int) float64 {
	if !t.inRange(i, j) {
		return math.NaN()
	}

	return t.v[i*t.n+j]
}

// W returns W[i][j]: the best score on [i..j]. Returns NaN unless
// 0 ≤ i ≤ j < N().
func (t *Tables) W(i, j int) float64 {
	if !t.inRange(i, j) {
		return math.NaN()
	}

	return t.w[i*t.n+j]
}

func (t *Tables) inRange(i, j int) bool {
	return i >= 0 && i <= j && j < t.n
}

// fill computes every cell by increasing span.
//
// Algorithm Outline:
//  1. Spans below MinHairpinSpan are already set by newTables.
//  2. For span = MinHairpinSpan .. n-1, for every i with j = i+span < n,
//     compute V[i][j] then W[i][j] (fillCell).
//  3. Cells of one span depend only on shorter spans and on V of the same
//     cell, so a span may be split across workers; Wait is the barrier
//     before the next span.
//
// The context is checked between spans. Cancellation returns ctx.Err().
//
// Complexity: O(n⁴) time, O(n²) memory.
func (p *problem) fill(ctx context.Context, workers int) (*Tables, error) {
	var (
		log = logr.FromContextOrDiscard(ctx)
		n   = p.n
		t   = newTables(n)
	)
	log.V(1).Info("filling tables", "n", n, "workers", workers)

	for span := MinHairpinSpan; span < n; span++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cells := n - span
		if workers <= 1 || cells < minParallelCells {
			for i := 0; i < cells; i++ {
				p.fillCell(t, i, i+span)
			}
		} else {
			p.fillSpanParallel(t, span, cells, workers)
		}
		log.V(2).Info("span filled", "span", span, "cells", cells)
	}
	log.V(1).Info("tables filled", "n", n, "score", t.Score())

	return t, nil
}

// fillSpanParallel splits the cells of one span into contiguous chunks, one
// goroutine per chunk. Every cell is written by exactly one goroutine.
func (p *problem) fillSpanParallel(t *Tables, span, cells, workers int) {
	var (
		g     errgroup.Group
		chunk = (cells + workers - 1) / workers
	)
	for lo := 0; lo < cells; lo += chunk {
		hi := min(lo+chunk, cells)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				p.fillCell(t, i, i+span)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

// fillCell computes V[i][j] and W[i][j] and records the winning cases.
// Ties keep the earlier case: E1, E2, E3 for V; skip-left, skip-right,
// paired, E4 for W.
func (p *problem) fillCell(t *Tables, i, j int) {
	idx := i*p.n + j

	// V[i][j]
	if p.pairable[idx] {
		best, tag := p.hairpin(i, j), vHairpin
		var a, b int32

		if e2, ip, jp := p.interior(t, i, j); e2 < best {
			best, tag, a, b = e2, vInterior, int32(ip), int32(jp)
		}
		if e3, k := p.multiloop(t, i, j); e3 < best {
			best, tag, a, b = e3, vMultiloop, int32(k), 0
		}
		t.v[idx], t.vTag[idx], t.vA[idx], t.vB[idx] = best, tag, a, b
	}

	// W[i][j]
	best, tag := t.w[idx+p.n], wSkipLeft // W[i+1][j]
	var k int32
	if left := t.w[idx-1]; left < best { // W[i][j-1]
		best, tag = left, wSkipRight
	}
	if v := t.v[idx]; v < best {
		best, tag = v, wPaired
	}
	if e4, c := p.bifurcation(t, i, j); e4 < best {
		best, tag, k = e4, wBifurcated, int32(c)
	}
	t.w[idx], t.wTag[idx], t.wK[idx] = best, tag, k
}
