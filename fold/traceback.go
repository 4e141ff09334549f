package fold

import "github.com/katalvlaran/rnafold/structure"

// frame is one pending traceback step: a general (W) or paired (V) cell.
type frame struct {
	paired bool
	i, j   int32
}

// Traceback reconstructs the optimal structure from the case tags.
//
// Starting from W[0][n-1], a general frame follows its W tag:
//
//	skip-left  → general (i+1, j)
//	skip-right → general (i, j-1)
//	paired     → paired  (i, j)
//	E4         → general (i, k) and general (k+1, j)
//
// and a paired frame records (i, j) and follows its V tag:
//
//	E1 → stop
//	E2 → paired  (i', j')
//	E3 → general (i+1, k) and general (k+1, j-1)
//
// General frames with j-i < MinHairpinSpan are no-ops. The walk uses an
// explicit stack, so long sequences do not grow the goroutine stack.
//
// Complexity: O(n) frames per recorded pair chain, O(n²) worst case overall.
func (t *Tables) Traceback() structure.Pairs {
	out := structure.Pairs{}
	if t.n < MinLength {
		return out
	}

	var (
		n     = t.n
		stack = []frame{{i: 0, j: int32(n - 1)}}
		f     frame
	)
	for len(stack) > 0 {
		f, stack = stack[len(stack)-1], stack[:len(stack)-1]
		i, j := int(f.i), int(f.j)
		idx := i*n + j

		if f.paired {
			out = append(out, structure.Pair{I: i, J: j})
			switch t.vTag[idx] {
			case vInterior:
				stack = append(stack, frame{paired: true, i: t.vA[idx], j: t.vB[idx]})
			case vMultiloop:
				k := t.vA[idx]
				stack = append(stack,
					frame{i: k + 1, j: f.j - 1},
					frame{i: f.i + 1, j: k},
				)
			}
			continue
		}

		if j-i < MinHairpinSpan {
			continue
		}
		switch t.wTag[idx] {
		case wSkipLeft:
			stack = append(stack, frame{i: f.i + 1, j: f.j})
		case wSkipRight:
			stack = append(stack, frame{i: f.i, j: f.j - 1})
		case wPaired:
			stack = append(stack, frame{paired: true, i: f.i, j: f.j})
		case wBifurcated:
			k := t.wK[idx]
			stack = append(stack,
				frame{i: k + 1, j: f.j},
				frame{i: f.i, j: k},
			)
		}
	}
	out.Sort()

	return out
}
