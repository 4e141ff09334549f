package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/rnafold/structure"
)

func init() {
	Register("text", writeText)
	Register("ct", writeCT)
}

// writeText prints a FASTA-like block per report:
//
//	>name
//	SEQUENCE
//	((....)) (score)
//
// followed by a metrics line when a reference was given.
func writeText(w io.Writer, reports []Report) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		fmt.Fprintf(bw, ">%s\n%s\n%s (%g)\n", r.Name, r.Sequence, r.DotBracket, r.Score)
		if m := r.Metrics; m != nil {
			fmt.Fprintf(bw, "precision=%.3f recall=%.3f f1=%.3f\n", m.Precision, m.Recall, m.F1)
		}
	}

	return bw.Flush()
}

// writeCT prints connectivity tables (1-based, partner 0 = unpaired):
//
//	N  ENERGY = score  name
//	i  base  i-1  i+1  partner  i
func writeCT(w io.Writer, reports []Report) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		n := len(r.Sequence)
		partner := structure.PartnerTable(n, r.Pairs)
		fmt.Fprintf(bw, "%5d  ENERGY = %g  %s\n", n, r.Score, r.Name)
		for i := 0; i < n; i++ {
			next := i + 2
			if i == n-1 {
				next = 0
			}
			fmt.Fprintf(bw, "%5d %c %5d %5d %5d %5d\n", i+1, r.Sequence[i], i, next, partner[i]+1, i+1)
		}
	}

	return bw.Flush()
}
