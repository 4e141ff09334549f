package fold

import "math"

// The four loop-case evaluators. Each reads only the immutable problem and
// table cells of strictly shorter span, so any cell of the current span can
// be evaluated as soon as the previous span is complete.
//
// An empty search domain yields +Inf and split index -1: the case is
// infeasible for (i, j), which is not an error.

// hairpin is E1: i and j pair and everything between them is unpaired.
// Complexity: O(1).
func (p *problem) hairpin(i, j int) float64 {
	return p.score[i*p.n+j]
}

// interior is E2: i·j closes a stacked pair, bulge or interior loop around
// an inner pair i'·j' with i < i' < j' < j, i' ≤ j-3 and j' ≥ i'+3.
// Returns the best candidate and its (i', j').
//
// Complexity: O((j-i)²).
func (p *problem) interior(t *Tables, i, j int) (best float64, ip, jp int) {
	best, ip, jp = math.Inf(1), -1, -1
	var (
		n    = p.n
		sij  = p.score[i*n+j]
		a, b int
		cand float64
	)
	for a = i + 1; a < j-2; a++ {
		row := a * n
		for b = a + 3; b < j; b++ {
			if !p.pairable[row+b] {
				continue
			}
			cand = sij + t.v[row+b]
			if cand < best {
				best, ip, jp = cand, a, b
			}
		}
	}

	return best, ip, jp
}

// multiloop is E3: i·j closes a loop whose interior splits into two
// independent substructures [i+1..k] and [k+1..j-1], i+2 ≤ k ≤ j-3.
// The closing pair's own score is added only when p.charge is set.
// Candidates are rounded before comparison. Returns the best candidate and k.
//
// Complexity: O(j-i).
func (p *problem) multiloop(t *Tables, i, j int) (best float64, k int) {
	best, k = math.Inf(1), -1
	var (
		n       = p.n
		closing float64
		c       int
		cand    float64
	)
	if p.charge {
		closing = p.score[i*n+j]
	}
	for c = i + 2; c < j-2; c++ {
		cand = p.round(t.w[(i+1)*n+c] + t.w[(c+1)*n+j-1] + closing)
		if cand < best {
			best, k = cand, c
		}
	}

	return best, k
}

// bifurcation is E4: [i..j] splits into two independent substructures
// [i..k] and [k+1..j], i < k < j-1. Candidates are rounded before
// comparison. Returns the best candidate and k.
//
// Complexity: O(j-i).
func (p *problem) bifurcation(t *Tables, i, j int) (best float64, k int) {
	best, k = math.Inf(1), -1
	var (
		n    = p.n
		c    int
		cand float64
	)
	for c = i + 1; c < j-1; c++ {
		cand = p.round(t.w[i*n+c] + t.w[(c+1)*n+j])
		if cand < best {
			best, k = cand, c
		}
	}

	return best, k
}
