package rna

import "errors"

var (
	// ErrInvalidSymbol indicates a byte outside the alphabet {A,C,G,U}.
	ErrInvalidSymbol = errors.New("rna: invalid nucleotide symbol")

	// ErrEmptySequence indicates a zero-length sequence.
	ErrEmptySequence = errors.New("rna: empty sequence")
)
