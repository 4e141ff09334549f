package fasta_test

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/internal/fasta"
)

const plain = `>seq1 first record
ggg aaa
UCCC
; comment

>seq2
GAAAC
>
ACGU`

func TestReadAll(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader(plain))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, fasta.Record{ID: "seq1", Seq: "GGGAAAUCCC"}, recs[0])
	assert.Equal(t, fasta.Record{ID: "seq2", Seq: "GAAAC"}, recs[1])
	assert.Equal(t, "record@8", recs[2].ID, "empty header falls back to its line")
	assert.Equal(t, "ACGU", recs[2].Seq)
}

func TestReadAll_Empty(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReadAll_NoHeader(t *testing.T) {
	_, err := fasta.ReadAll(strings.NewReader("ACGU\n>x\nA\n"))
	assert.ErrorIs(t, err, fasta.ErrNoHeader)
}

func TestReadFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(">a\nGAAAC\n>b\nCCCC\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	recs, err := fasta.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1].ID)
	assert.Equal(t, "CCCC", recs[1].Seq)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := fasta.ReadFile(filepath.Join(t.TempDir(), "nope.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
