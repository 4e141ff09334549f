package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rnafold/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	d := bench.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time folds over increasing lengths and fit the running-time exponent",
		Long: `Fold random sequences with random scores at quadratically spaced lengths
and regress log(time) on log(length). The fitted exponent should approach 4
for long sequences.

Engine settings (--precision, --charge-multiloop, --span-workers) are read
from the fold section of the configuration.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{bindAnnotation: "bench"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.cfg.Bench.Options(a.cfg.Fold)
			rep, err := bench.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return writeBench(cmd.OutOrStdout(), format, rep)
		},
	}

	f := cmd.Flags()
	f.Int("points", d.Points, "number of lengths")
	f.Int("min-length", d.MinLength, "shortest sequence")
	f.Int("max-length", d.MaxLength, "longest sequence")
	f.Int("repeats", d.Repeats, "folds per length")
	f.Int("workers", d.Workers, "concurrent folds (0 = one per CPU)")
	f.Int64("seed", d.Seed, "random seed")
	f.StringP("format", "f", "text", "output format: text, json or yaml")

	return cmd
}

func writeBench(w io.Writer, format string, rep bench.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "length\tmean")
		for _, s := range rep.Samples {
			fmt.Fprintf(tw, "%d\t%s\n", s.Length, s.Mean)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "exponent=%.3f r2=%.4f\n", rep.Exponent, rep.RSquared)
		return err
	default:
		return fmt.Errorf("unknown bench format %q", format)
	}
}
