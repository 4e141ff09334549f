package fold

import (
	"github.com/katalvlaran/rnafold/structure"
)

const (
	// MinHairpinSpan is the smallest j-i for which i and j may pair: at
	// least three unpaired bases lie strictly between them.
	MinHairpinSpan = 4

	// MinLength is the shortest sequence Fold accepts.
	MinLength = MinHairpinSpan + 1

	// DefaultPrecision is the number of decimals E3/E4 candidates are
	// rounded to before comparison.
	DefaultPrecision = 5

	// MaxPrecision bounds Options.Precision; beyond this float64 rounding
	// is meaningless.
	MaxPrecision = 15

	// NoRounding disables E3/E4 rounding when assigned to Options.Precision.
	NoRounding = -1
)

// Options configures a fold.
//
// Fields:
//   - Precision — decimals used to round multiloop (E3) and bifurcation
//     (E4) candidates before comparison. 0 selects DefaultPrecision,
//     a negative value (NoRounding) disables rounding, values above
//     MaxPrecision are rejected.
//   - ChargeMultiloopClosure — add S[i][j] to the E3 candidate, so a pair
//     closing a multiloop is scored like hairpin and interior closures.
//     Off by default: E3 is the sum of the two inner W values only.
//   - Workers — goroutines used per span during the table fill.
//     0 or 1 fills serially; negative values are rejected.
//
// Example:
//
//	opts := fold.DefaultOptions()
//	opts.Workers = runtime.NumCPU()
//	res, err := fold.Fold(seq, scores, &opts)
type Options struct {
	Precision              int
	ChargeMultiloopClosure bool
	Workers                int
}

// DefaultOptions returns the options used when a nil *Options is passed.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// Result is the outcome of a fold.
type Result struct {
	// N is the sequence length.
	N int `json:"n" yaml:"n"`

	// Score is W[0][N-1], the optimal total score. Always finite.
	Score float64 `json:"score" yaml:"score"`

	// Pairs is the optimal structure, sorted by I. Empty when leaving
	// every base unpaired is optimal.
	Pairs structure.Pairs `json:"pairs" yaml:"pairs"`
}

// DotBracket renders Pairs in dot-bracket notation.
func (r Result) DotBracket() string {
	return structure.DotBracket(r.N, r.Pairs)
}

// vCase tags the case that produced V[i][j].
type vCase uint8

const (
	vNone      vCase = iota // not pairable or span < MinHairpinSpan
	vHairpin                // E1
	vInterior               // E2, split at (vA, vB)
	vMultiloop              // E3, split at k = vA
)

// wCase tags the case that produced W[i][j].
type wCase uint8

const (
	wUnpaired   wCase = iota // base span, everything unpaired
	wSkipLeft                // W[i+1][j]
	wSkipRight               // W[i][j-1]
	wPaired                  // V[i][j]
	wBifurcated              // E4, split at k = wK
)
