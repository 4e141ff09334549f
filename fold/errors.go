package fold

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every input error returned by this
// package. Callers that only care whether the input was rejected can test
// errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("fold: invalid input")

var (
	// ErrTooShort indicates a sequence shorter than MinLength; no pair can
	// enclose a hairpin loop of at least three bases.
	ErrTooShort = fmt.Errorf("%w: sequence shorter than %d nt", ErrInvalidInput, MinLength)

	// ErrNilMatrix indicates a nil score matrix.
	ErrNilMatrix = fmt.Errorf("%w: nil score matrix", ErrInvalidInput)

	// ErrDimensionMismatch indicates a score matrix whose shape is not n×n.
	ErrDimensionMismatch = fmt.Errorf("%w: score matrix shape does not match sequence", ErrInvalidInput)

	// ErrInvalidScore indicates NaN or -Inf in a score cell the engine reads.
	ErrInvalidScore = fmt.Errorf("%w: NaN or -Inf score", ErrInvalidInput)

	// ErrBadOptions indicates contradictory or out-of-range Options.
	ErrBadOptions = fmt.Errorf("%w: bad options", ErrInvalidInput)
)
