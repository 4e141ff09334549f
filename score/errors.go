package score

import "errors"

var (
	// ErrNoScores indicates a score document with neither a matrix nor a reference.
	ErrNoScores = errors.New("score: document has no scores and no reference")

	// ErrAmbiguous indicates a score document carrying both a matrix and a reference.
	ErrAmbiguous = errors.New("score: document has both scores and reference")

	// ErrLengthMismatch indicates a reference or matrix whose size differs from the sequence.
	ErrLengthMismatch = errors.New("score: size does not match sequence length")
)
