package score

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rnafold/matrix"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// Document is the on-disk form of a folding problem. YAML is the native
// encoding; JSON documents parse too since JSON is valid YAML.
//
//	name: hairpin
//	sequence: GGGAAAUCC
//	reference: "(((...)))"  # or: scores: [[0, -1, ...], ...]
//	paired: -1
//	unpaired: 0
type Document struct {
	Name      string      `yaml:"name"`
	Sequence  string      `yaml:"sequence"`
	Scores    [][]float64 `yaml:"scores,omitempty"`
	Reference string      `yaml:"reference,omitempty"`
	Paired    *float64    `yaml:"paired,omitempty"`
	Unpaired  *float64    `yaml:"unpaired,omitempty"`
}

// Load decodes a Document from r. The sequence is normalised with
// rna.Normalize and validated.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("score: decode: %w", err)
	}
	doc.Sequence = rna.Normalize(doc.Sequence)
	if _, err := rna.NewSequence(doc.Sequence); err != nil {
		return nil, fmt.Errorf("score: %q: %w", doc.Name, err)
	}

	return &doc, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	doc, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}

	return doc, nil
}

// Matrix builds the score matrix the document describes.
//
// Errors: ErrNoScores, ErrAmbiguous, ErrLengthMismatch, and parse errors
// from matrix.FromRows / structure.ParseDotBracket.
func (d *Document) Matrix() (*matrix.Dense, error) {
	n := len(d.Sequence)
	switch {
	case len(d.Scores) > 0 && d.Reference != "":
		return nil, ErrAmbiguous
	case len(d.Scores) > 0:
		m, err := matrix.FromRows(d.Scores)
		if err != nil {
			return nil, err
		}
		if m.Rows() != n || m.Cols() != n {
			return nil, fmt.Errorf("scores %dx%d for %d nt: %w", m.Rows(), m.Cols(), n, ErrLengthMismatch)
		}
		return m, nil
	case d.Reference != "":
		if len(d.Reference) != n {
			return nil, fmt.Errorf("reference %d for %d nt: %w", len(d.Reference), n, ErrLengthMismatch)
		}
		ref, err := structure.ParseDotBracket(d.Reference)
		if err != nil {
			return nil, err
		}
		paired, other := DefaultPaired, DefaultUnpaired
		if d.Paired != nil {
			paired = *d.Paired
		}
		if d.Unpaired != nil {
			other = *d.Unpaired
		}
		return Indicator(n, ref, paired, other)
	default:
		return nil, ErrNoScores
	}
}

// ReferencePairs returns the parsed reference structure, or nil when the
// document carries none.
func (d *Document) ReferencePairs() (structure.Pairs, error) {
	if d.Reference == "" {
		return nil, nil
	}

	return structure.ParseDotBracket(d.Reference)
}
