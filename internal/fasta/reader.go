// Package fasta reads (multi-)FASTA files of RNA or DNA sequences for the
// rnafold CLI. Plain and gzip-compressed files are supported, and "-"
// reads standard input.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader indicates sequence data before the first '>' header line.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

// Record is one FASTA entry. ID is the first whitespace-separated word of
// the header; Seq is the concatenated sequence lines, uppercased.
type Record struct {
	ID  string
	Seq string
}

// Reader yields records one at a time from an underlying stream.
type Reader struct {
	r      *bufio.Reader
	nextID string
	line   int
	done   bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF after the last one.
// Blank lines and ';' comment lines are skipped.
func (fr *Reader) Next() (Record, error) {
	var (
		buf bytes.Buffer
		id  = fr.nextID
	)
	for !fr.done {
		line, err := fr.r.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			fr.done = true
		} else if err != nil {
			return Record{}, err
		}
		fr.line++
		line = bytes.TrimRight(line, "\r\n")

		switch {
		case len(line) == 0 || line[0] == ';':
			continue
		case line[0] == '>':
			hdr := headerID(line[1:], fr.line)
			if id == "" && buf.Len() == 0 {
				id = hdr
				continue
			}
			fr.nextID = hdr
			return Record{ID: id, Seq: buf.String()}, nil
		default:
			if id == "" {
				return Record{}, fmt.Errorf("line %d: %w", fr.line, ErrNoHeader)
			}
			for _, f := range bytes.Fields(line) {
				buf.Write(bytes.ToUpper(f))
			}
		}
	}
	if id == "" {
		return Record{}, io.EOF
	}
	fr.nextID = ""

	return Record{ID: id, Seq: buf.String()}, nil
}

// headerID returns the first word of a header, or a line-based fallback
// for an empty header.
func headerID(hdr []byte, line int) string {
	if f := strings.Fields(string(hdr)); len(f) > 0 {
		return f[0]
	}

	return fmt.Sprintf("record@%d", line)
}

// ReadAll drains r into a slice.
func ReadAll(r io.Reader) ([]Record, error) {
	var (
		fr  = NewReader(r)
		out []Record
	)
	for {
		rec, err := fr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// ReadFile opens path (see Open) and reads every record.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// Open returns a reader for path: stdin for "-", transparently
// decompressed for a ".gz" suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, err
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}
