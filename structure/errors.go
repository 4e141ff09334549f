package structure

import "errors"

var (
	// ErrOutOfRange indicates a pair index outside [0, n).
	ErrOutOfRange = errors.New("structure: pair index out of range")

	// ErrUnordered indicates a pair with I >= J.
	ErrUnordered = errors.New("structure: pair must satisfy i < j")

	// ErrOverlap indicates a position that appears in more than one pair.
	ErrOverlap = errors.New("structure: position paired more than once")

	// ErrCrossing indicates two pairs i1<i2<j1<j2 (a pseudoknot).
	ErrCrossing = errors.New("structure: crossing pairs")

	// ErrNonCanonical indicates a pair whose symbols are not in the canonical pair set.
	ErrNonCanonical = errors.New("structure: non-canonical pair")

	// ErrLoopTooShort indicates a pair enclosing fewer unpaired bases than required.
	ErrLoopTooShort = errors.New("structure: hairpin loop too short")

	// ErrUnbalanced indicates unmatched brackets in dot-bracket input.
	ErrUnbalanced = errors.New("structure: unbalanced brackets")

	// ErrBadSymbol indicates a dot-bracket symbol other than '(', ')' or '.'.
	ErrBadSymbol = errors.New("structure: invalid dot-bracket symbol")

	// ErrAsymmetricTable indicates a partner table where t[t[i]] != i.
	ErrAsymmetricTable = errors.New("structure: asymmetric partner table")
)
