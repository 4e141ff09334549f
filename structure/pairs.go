package structure

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rnafold/rna"
)

// Pair is a base pair between positions I and J, I < J, 0-indexed.
type Pair struct {
	I int `json:"i" yaml:"i"`
	J int `json:"j" yaml:"j"`
}

// String renders the pair as "(i,j)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.I, p.J) }

// Span returns J - I.
func (p Pair) Span() int { return p.J - p.I }

// Pairs is a list of base pairs. Functions in this package return it
// sorted by I ascending.
type Pairs []Pair

// Sort orders ps in place by I, then J.
func (ps Pairs) Sort() {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].I != ps[b].I {
			return ps[a].I < ps[b].I
		}
		return ps[a].J < ps[b].J
	})
}

// Sorted returns a sorted copy of ps.
func (ps Pairs) Sorted() Pairs {
	out := make(Pairs, len(ps))
	copy(out, ps)
	out.Sort()

	return out
}

// Contains reports whether p is in ps. O(len(ps)).
func (ps Pairs) Contains(p Pair) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}

	return false
}

// Validate checks structural validity of ps over a sequence of length n:
// every pair in range and ordered, no position used twice, no crossings.
//
// Implementation:
//   - Stage 1: range/order/overlap scan with a partner table.
//   - Stage 2: crossing scan with a stack over positions 0..n-1; a pair
//     closing out of stack order crosses another pair.
//
// Complexity: O(n + len(ps)).
func Validate(n int, ps Pairs) error {
	partner := make([]int, n)
	for i := range partner {
		partner[i] = -1
	}

	// Stage 1: range, order, overlap.
	for _, p := range ps {
		if p.I < 0 || p.J >= n {
			return fmt.Errorf("%v: %w", p, ErrOutOfRange)
		}
		if p.I >= p.J {
			return fmt.Errorf("%v: %w", p, ErrUnordered)
		}
		if partner[p.I] != -1 || partner[p.J] != -1 {
			return fmt.Errorf("%v: %w", p, ErrOverlap)
		}
		partner[p.I], partner[p.J] = p.J, p.I
	}

	// Stage 2: nesting.
	stack := make([]int, 0, len(ps))
	var k int
	for k = 0; k < n; k++ {
		switch q := partner[k]; {
		case q == -1:
			continue
		case q > k:
			stack = append(stack, k)
		default:
			top := stack[len(stack)-1]
			if top != q {
				return fmt.Errorf("(%d,%d) and (%d,%d): %w", top, partner[top], q, k, ErrCrossing)
			}
			stack = stack[:len(stack)-1]
		}
	}

	return nil
}

// ValidateCanonical checks Validate(seq.Len(), ps) and additionally that
// every pair is canonical for seq and spans at least minSpan (j-i >= minSpan).
//
// Complexity: O(n + len(ps)).
func ValidateCanonical(seq rna.Sequence, ps Pairs, minSpan int) error {
	if err := Validate(seq.Len(), ps); err != nil {
		return err
	}
	for _, p := range ps {
		if !seq.CanPair(p.I, p.J) {
			return fmt.Errorf("%v %c%c: %w", p, seq.At(p.I), seq.At(p.J), ErrNonCanonical)
		}
		if p.Span() < minSpan {
			return fmt.Errorf("%v span %d < %d: %w", p, p.Span(), minSpan, ErrLoopTooShort)
		}
	}

	return nil
}
