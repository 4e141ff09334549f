// Package rna models RNA sequences and the pair-compatibility rule used by
// the folding engine.
//
// 🚀 What lives here?
//
//   - Sequence: an immutable, validated string over the alphabet {A,C,G,U}.
//   - CanonicalPairSet: the static Watson–Crick + wobble pair set
//     {AU, UA, CG, GC, GU, UG}. Two positions may pair only if the
//     concatenation of their symbols belongs to this set.
//   - Normalize: uppercase, T→U and whitespace stripping for text read from
//     files (FASTA, score files). NewSequence itself never normalises.
//   - Random: seeded random sequences for benchmarks and property tests.
//
// ⚙️ Usage:
//
//	seq, err := rna.NewSequence("GGGAAAUCC")
//	if err != nil {
//	  // errors.Is(err, rna.ErrInvalidSymbol)
//	}
//	ok := seq.CanPair(0, 8) // G·C → true
package rna
