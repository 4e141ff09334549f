// Package output turns fold results into serialized reports.
//
// Design:
//   - Writers own all presentation knowledge (dot-bracket text, CT, JSON, YAML).
//   - The fold engine stays domain-only; the CLI only picks a format name.
//   - Formats are looked up in a registry populated from init() blocks.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/structure"
)

// ErrUnknownFormat indicates a format name with no registered writer.
var ErrUnknownFormat = errors.New("output: unknown format")

// Report is one folded sequence as presented to users.
type Report struct {
	Name       string             `json:"name" yaml:"name"`
	Sequence   string             `json:"sequence" yaml:"sequence"`
	Score      float64            `json:"score" yaml:"score"`
	DotBracket string             `json:"dot_bracket" yaml:"dot_bracket"`
	Pairs      structure.Pairs    `json:"pairs" yaml:"pairs"`
	Metrics    *structure.Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// NewReport builds a Report from a fold result. When ref is non-nil the
// prediction is compared against it.
func NewReport(name, seq string, res fold.Result, ref structure.Pairs) Report {
	r := Report{
		Name:       name,
		Sequence:   seq,
		Score:      res.Score,
		DotBracket: res.DotBracket(),
		Pairs:      res.Pairs,
	}
	if ref != nil {
		m := structure.Compare(res.Pairs, ref)
		r.Metrics = &m
	}

	return r
}

// WriterFunc serializes reports to w.
type WriterFunc func(w io.Writer, reports []Report) error

// writers maps format name → handler. Last registration wins.
var writers = map[string]WriterFunc{}

// Register installs fn for format.
func Register(format string, fn WriterFunc) { writers[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for name := range writers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Write dispatches to the writer registered for format. A downstream
// consumer closing the pipe early (e.g. `head`) is not an error.
func Write(format string, w io.Writer, reports []Report) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownFormat, format, Formats())
	}
	if err := fn(w, reports); err != nil && !IsBrokenPipe(err) {
		return err
	}

	return nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
