package structure

import (
	"fmt"

	"github.com/katalvlaran/rnafold/matrix"
)

// Dot-bracket symbols.
const (
	symOpen     = '('
	symClose    = ')'
	symUnpaired = '.'
)

// DotBracket renders ps over a sequence of length n, e.g. "((....))".
// ps must be valid for n (see Validate); pairs outside [0,n) are ignored.
//
// Complexity: O(n + len(ps)).
func DotBracket(n int, ps Pairs) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = symUnpaired
	}
	for _, p := range ps {
		if p.I < 0 || p.J >= n || p.I >= p.J {
			continue
		}
		buf[p.I], buf[p.J] = symOpen, symClose
	}

	return string(buf)
}

// ParseDotBracket decodes a dot-bracket string into sorted pairs.
//
// Errors: ErrBadSymbol, ErrUnbalanced.
// Complexity: O(len(s)).
func ParseDotBracket(s string) (Pairs, error) {
	var (
		stack []int
		out   Pairs
		i     int
	)
	for i = 0; i < len(s); i++ {
		switch s[i] {
		case symUnpaired:
		case symOpen:
			stack = append(stack, i)
		case symClose:
			if len(stack) == 0 {
				return nil, fmt.Errorf("position %d: %w", i, ErrUnbalanced)
			}
			out = append(out, Pair{I: stack[len(stack)-1], J: i})
			stack = stack[:len(stack)-1]
		default:
			return nil, fmt.Errorf("position %d (%q): %w", i, s[i], ErrBadSymbol)
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%d unclosed: %w", len(stack), ErrUnbalanced)
	}
	out.Sort()

	return out, nil
}

// PartnerTable returns t with t[i] = partner of i, or -1 if unpaired.
// Complexity: O(n + len(ps)).
func PartnerTable(n int, ps Pairs) []int {
	t := make([]int, n)
	for i := range t {
		t[i] = -1
	}
	for _, p := range ps {
		if p.I < 0 || p.J >= n {
			continue
		}
		t[p.I], t[p.J] = p.J, p.I
	}

	return t
}

// FromPartnerTable decodes a partner table. Entries equal to unpaired mark
// unpaired positions (-1 for tables from PartnerTable; some tools write 0).
//
// Errors: ErrOutOfRange, ErrAsymmetricTable.
// Complexity: O(n).
func FromPartnerTable(t []int, unpaired int) (Pairs, error) {
	var (
		out Pairs
		i   int
	)
	for i = 0; i < len(t); i++ {
		q := t[i]
		if q == unpaired {
			continue
		}
		if q < 0 || q >= len(t) || q == i {
			return nil, fmt.Errorf("position %d -> %d: %w", i, q, ErrOutOfRange)
		}
		if t[q] != i {
			return nil, fmt.Errorf("position %d -> %d -> %d: %w", i, q, t[q], ErrAsymmetricTable)
		}
		if i < q {
			out = append(out, Pair{I: i, J: q})
		}
	}

	return out, nil
}

// ContactMatrix returns the symmetric n×n 0/1 pairing matrix of ps.
//
// Errors: matrix.ErrInvalidDimensions for n <= 0, matrix.ErrOutOfRange for
// pairs outside [0,n).
// Complexity: O(n² + len(ps)).
func ContactMatrix(n int, ps Pairs) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		if err = m.SetSymmetric(p.I, p.J, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}
