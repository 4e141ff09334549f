package rna

// Alphabet lists the accepted nucleotide symbols in canonical order.
const Alphabet = "ACGU"

// CanonicalPairSet is the static set of foldable symbol pairs.
// It is a domain constant, never derived from a score matrix.
var CanonicalPairSet = [...]string{"AU", "UA", "CG", "GC", "GU", "UG"}

// pairTable[a][b] is true when the pair a·b is canonical. Indexed by raw
// bytes so CanPair needs no allocation or map lookup.
var pairTable = func() (t [256][256]bool) {
	for _, p := range CanonicalPairSet {
		t[p[0]][p[1]] = true
	}

	return t
}()

// IsNucleotide reports whether b is one of A, C, G, U (uppercase only).
func IsNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'U':
		return true
	default:
		return false
	}
}

// CanPair reports whether symbols a and b form a canonical pair
// (order matters only in that both orientations are listed).
func CanPair(a, b byte) bool {
	return pairTable[a][b]
}
