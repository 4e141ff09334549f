package rna

import (
	"fmt"
	"strings"
)

// Sequence is an immutable RNA sequence over {A,C,G,U}, 0-indexed.
// The zero value is the empty sequence; build non-empty values with
// NewSequence so the alphabet invariant holds.
type Sequence struct {
	s string
}

// NewSequence validates s and wraps it as a Sequence.
//
// Errors:
//   - ErrEmptySequence if s == "".
//   - ErrInvalidSymbol (with position and byte) for any byte outside
//     {A,C,G,U}. Lowercase input is rejected; use Normalize first.
//
// Complexity: O(len(s)).
func NewSequence(s string) (Sequence, error) {
	if s == "" {
		return Sequence{}, ErrEmptySequence
	}
	if err := Validate(s); err != nil {
		return Sequence{}, err
	}

	return Sequence{s: s}, nil
}

// MustSequence is like NewSequence but panics on invalid input.
// Intended for literals in tests and examples.
func MustSequence(s string) Sequence {
	seq, err := NewSequence(s)
	if err != nil {
		panic(err)
	}

	return seq
}

// Validate checks that every byte of s is in the alphabet.
// The empty string is valid here; NewSequence rejects it separately.
func Validate(s string) error {
	var i int
	for i = 0; i < len(s); i++ {
		if !IsNucleotide(s[i]) {
			return fmt.Errorf("position %d (%q): %w", i, s[i], ErrInvalidSymbol)
		}
	}

	return nil
}

// Normalize upper-cases s, maps DNA T to U and drops whitespace.
// It does not validate; pass the result to NewSequence.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			continue
		case r == 't' || r == 'T':
			sb.WriteByte('U')
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Len returns the number of nucleotides.
func (q Sequence) Len() int { return len(q.s) }

// At returns the symbol at position i. Panics if i is out of range,
// like indexing a string.
func (q Sequence) At(i int) byte { return q.s[i] }

// String returns the underlying symbols.
func (q Sequence) String() string { return q.s }

// CanPair reports whether positions i and j carry a canonical pair.
// Out-of-range indices report false.
func (q Sequence) CanPair(i, j int) bool {
	if i < 0 || j < 0 || i >= len(q.s) || j >= len(q.s) {
		return false
	}

	return pairTable[q.s[i]][q.s[j]]
}

// Slice returns the subsequence [i, j) as a new Sequence.
// Indices are clamped to [0, Len()].
func (q Sequence) Slice(i, j int) Sequence {
	if i < 0 {
		i = 0
	}
	if j > len(q.s) {
		j = len(q.s)
	}
	if i >= j {
		return Sequence{}
	}

	return Sequence{s: q.s[i:j]}
}
