package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/internal/fasta"
	"github.com/katalvlaran/rnafold/internal/output"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/score"
	"github.com/katalvlaran/rnafold/structure"
)

// errNoInput indicates neither sequences nor an input file were given.
var errNoInput = errors.New("no input: pass sequences as arguments or use --input")

// problem is one sequence to fold plus its optional reference structure.
type problem struct {
	job fold.Job
	ref structure.Pairs
}

func newFoldCmd(a *app) *cobra.Command {
	var (
		input     string
		reference string
	)
	cmd := &cobra.Command{
		Use:   "fold [SEQUENCE...]",
		Short: "Fold sequences and print their optimal structures",
		Long: `Fold one or more RNA sequences.

Sequences come from arguments, a FASTA file, or a YAML/JSON score document
(see score.Document). FASTA records and arguments are scored with a uniform
pair score (--uniform), or with indicator scores built from --reference
(--paired on reference pairs, --unpaired elsewhere). DNA input is accepted;
T is read as U.`,
		Annotations: map[string]string{bindAnnotation: "fold"},
		RunE: func(cmd *cobra.Command, args []string) error {
			probs, err := a.collect(args, input, reference)
			if err != nil {
				return err
			}
			return a.runFold(cmd, probs)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "FASTA (.fa, .fa.gz, - for stdin) or score document (.yaml, .yml, .json)")
	f.StringVarP(&reference, "reference", "r", "", "reference dot-bracket for a single argument sequence")
	f.StringP("format", "f", "text", "output format: "+strings.Join(output.Formats(), ", "))
	f.Int("precision", fold.DefaultPrecision, "decimals for multiloop/bifurcation rounding (-1 disables)")
	f.Bool("charge-multiloop", false, "add the closing pair score to multiloop candidates")
	f.Int("span-workers", 1, "goroutines per DP span inside one fold")
	f.Int("workers", 0, "concurrent folds (0 = one per CPU)")
	f.Float64("uniform", score.DefaultPaired, "pair score for sequences without a score matrix")
	f.Float64("paired", score.DefaultPaired, "indicator score on reference pairs")
	f.Float64("unpaired", score.DefaultUnpaired, "indicator score off reference pairs")

	return cmd
}

// collect turns arguments and the input file into fold problems.
func (a *app) collect(args []string, input, reference string) ([]problem, error) {
	if reference != "" && (len(args) != 1 || input != "") {
		return nil, errors.New("--reference needs exactly one argument sequence and no --input")
	}

	var probs []problem
	for i, s := range args {
		p, err := a.fromSequence(fmt.Sprintf("arg%d", i+1), s, reference)
		if err != nil {
			return nil, err
		}
		probs = append(probs, p)
	}

	switch ext := strings.ToLower(filepath.Ext(input)); {
	case input == "":
	case ext == ".yaml" || ext == ".yml" || ext == ".json":
		p, err := fromDocument(input)
		if err != nil {
			return nil, err
		}
		probs = append(probs, p)
	default:
		recs, err := fasta.ReadFile(input)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			p, err := a.fromSequence(rec.ID, rec.Seq, "")
			if err != nil {
				return nil, err
			}
			probs = append(probs, p)
		}
	}

	if len(probs) == 0 {
		return nil, errNoInput
	}

	return probs, nil
}

// fromSequence scores a raw sequence with uniform or reference-indicator
// scores from the configuration.
func (a *app) fromSequence(name, raw, reference string) (problem, error) {
	seq := rna.Normalize(raw)
	if _, err := rna.NewSequence(seq); err != nil {
		return problem{}, fmt.Errorf("%s: %w", name, err)
	}
	n := len(seq)
	fc := a.cfg.Fold

	if reference == "" {
		m, err := score.Uniform(n, fc.Uniform)
		if err != nil {
			return problem{}, fmt.Errorf("%s: %w", name, err)
		}
		return problem{job: fold.Job{Name: name, Sequence: seq, Scores: m}}, nil
	}

	if len(reference) != n {
		return problem{}, fmt.Errorf("%s: reference length %d != sequence length %d", name, len(reference), n)
	}
	ref, err := structure.ParseDotBracket(reference)
	if err != nil {
		return problem{}, fmt.Errorf("%s: %w", name, err)
	}
	m, err := score.Indicator(n, ref, fc.Paired, fc.Unpaired)
	if err != nil {
		return problem{}, fmt.Errorf("%s: %w", name, err)
	}

	return problem{job: fold.Job{Name: name, Sequence: seq, Scores: m}, ref: ref}, nil
}

// fromDocument loads a YAML/JSON score document.
func fromDocument(path string) (problem, error) {
	doc, err := score.LoadFile(path)
	if err != nil {
		return problem{}, err
	}
	m, err := doc.Matrix()
	if err != nil {
		return problem{}, fmt.Errorf("%s: %w", path, err)
	}
	ref, err := doc.ReferencePairs()
	if err != nil {
		return problem{}, fmt.Errorf("%s: %w", path, err)
	}

	return problem{job: fold.Job{Name: doc.Name, Sequence: doc.Sequence, Scores: m}, ref: ref}, nil
}

// runFold folds every problem concurrently and writes the reports.
func (a *app) runFold(cmd *cobra.Command, probs []problem) error {
	fc := a.cfg.Fold
	opts := fc.Options()

	jobs := make([]fold.Job, len(probs))
	for i, p := range probs {
		jobs[i] = p.job
	}
	a.log.V(1).Info("folding", "jobs", len(jobs), "workers", fc.Workers, "precision", opts.Precision)

	results, err := fold.FoldAll(cmd.Context(), jobs, &opts, fc.Workers)
	if err != nil {
		return err
	}

	reports := make([]output.Report, len(results))
	for i, res := range results {
		reports[i] = output.NewReport(jobs[i].Name, jobs[i].Sequence, res, probs[i].ref)
	}

	return output.Write(fc.Format, cmd.OutOrStdout(), reports)
}
