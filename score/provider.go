package score

import (
	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/structure"
)

// Default values for indicator matrices, matching the toy scoring of the
// reference self-test: -1 per reference pair, 0 for everything else.
const (
	DefaultPaired   = -1.0
	DefaultUnpaired = 0.0
)

// Uniform returns an n×n matrix with every cell set to v.
//
// Errors: matrix.ErrInvalidDimensions for n <= 0.
// Complexity: O(n²).
func Uniform(n int, v float64) (*matrix.Dense, error) {
	return matrix.NewFilled(n, n, v)
}

// Indicator returns an n×n symmetric matrix with paired on every reference
// pair and other everywhere else.
//
// Errors: matrix.ErrInvalidDimensions for n <= 0; structure validation
// errors when ref is not a valid structure over n positions.
// Complexity: O(n² + len(ref)).
func Indicator(n int, ref structure.Pairs, paired, other float64) (*matrix.Dense, error) {
	if err := structure.Validate(n, ref); err != nil {
		return nil, err
	}
	m, err := matrix.NewFilled(n, n, other)
	if err != nil {
		return nil, err
	}
	for _, p := range ref {
		if err = m.SetSymmetric(p.I, p.J, paired); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromPartnerTable builds an Indicator matrix from a partner table, where
// entries equal to unpaired mark unpaired positions.
//
// Complexity: O(n²).
func FromPartnerTable(t []int, unpaired int, paired, other float64) (*matrix.Dense, error) {
	ref, err := structure.FromPartnerTable(t, unpaired)
	if err != nil {
		return nil, err
	}

	return Indicator(len(t), ref, paired, other)
}
