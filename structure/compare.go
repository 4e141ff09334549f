package structure

// f1Epsilon keeps precision/recall/F1 defined when a denominator is zero.
const f1Epsilon = 1e-7

// Metrics summarises how well a predicted structure matches a reference.
type Metrics struct {
	TruePositives  int     `json:"true_positives" yaml:"true_positives"`
	FalsePositives int     `json:"false_positives" yaml:"false_positives"`
	FalseNegatives int     `json:"false_negatives" yaml:"false_negatives"`
	Precision      float64 `json:"precision" yaml:"precision"`
	Recall         float64 `json:"recall" yaml:"recall"`
	F1             float64 `json:"f1" yaml:"f1"`
}

// Compare scores predicted pairs against reference pairs by exact pair
// identity. Duplicates in either list count once.
//
//	precision = TP / (TP + FP + ε)
//	recall    = TP / (TP + FN + ε)
//	F1        = 2·P·R / (P + R + ε)
//
// Complexity: O(len(predicted) + len(reference)).
func Compare(predicted, reference Pairs) Metrics {
	ref := make(map[Pair]struct{}, len(reference))
	for _, p := range reference {
		ref[p] = struct{}{}
	}
	seen := make(map[Pair]struct{}, len(predicted))

	var m Metrics
	for _, p := range predicted {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := ref[p]; ok {
			m.TruePositives++
		} else {
			m.FalsePositives++
		}
	}
	m.FalseNegatives = len(ref) - m.TruePositives

	tp := float64(m.TruePositives)
	m.Precision = tp / (tp + float64(m.FalsePositives) + f1Epsilon)
	m.Recall = tp / (tp + float64(m.FalseNegatives) + f1Epsilon)
	m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall + f1Epsilon)

	return m
}
