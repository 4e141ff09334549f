// Package fold computes minimum-free-energy RNA secondary structures with a
// Zuker-style ("Mfold") dynamic program over an abstract pairwise score
// matrix.
//
// 🚀 What does it compute?
//
//	Given a sequence s[0..n-1] over {A,C,G,U} and an n×n score matrix S,
//	Fold returns the lowest total score achievable by a nested set of
//	canonical base pairs, together with that set of pairs.
//
// ✨ The recurrence:
//
//	V[i][j]  best score on [i..j] when i pairs with j (+Inf if impossible)
//	W[i][j]  best score on [i..j] with no constraint
//
//	V[i][j] = min( E1 hairpin     S[i][j]
//	               E2 interior    S[i][j] + V[i'][j']        i<i'<j'<j
//	               E3 multiloop   W[i+1][k] + W[k+1][j-1]    i+2 ≤ k ≤ j-3 )
//	W[i][j] = min( W[i+1][j], W[i][j-1], V[i][j],
//	               E4 bifurcation W[i][k] + W[k+1][j]        i < k < j-1 )
//
//	Spans below 4 (fewer than three unpaired bases inside a pair) have
//	V = +Inf and W = 0, so "leave everything unpaired" is always available
//	and W is always finite.
//
// The forward pass records which case won each cell and where it split.
// Traceback follows those tags; it never re-derives a case by comparing
// floating-point values. Ties resolve to the first case in the order listed
// above, and inside E2/E3/E4 to the first decomposition in ascending index
// order.
//
// ⚙️ Usage:
//
//	scores, _ := score.Uniform(len(seq), -1)
//	res, err := fold.Fold(seq, scores, nil) // nil → DefaultOptions()
//	if err != nil {
//	  // errors.Is(err, fold.ErrInvalidInput)
//	}
//	fmt.Println(res.Score, res.DotBracket())
//
// Performance:
//
//   - Time:   O(n⁴) (E2 scans all inner pairs of every cell)
//   - Memory: O(n²)
//
// Options.Workers > 1 spreads the cells of each span over goroutines with a
// barrier between spans; the result is identical to the serial fill.
// FoldAll folds independent sequences concurrently.
package fold
