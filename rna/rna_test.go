package rna_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/rna"
)

func TestNewSequence(t *testing.T) {
	seq, err := rna.NewSequence("GGGAAAUCCC")
	require.NoError(t, err)
	assert.Equal(t, 10, seq.Len())
	assert.Equal(t, byte('U'), seq.At(6))
	assert.Equal(t, "GGGAAAUCCC", seq.String())

	_, err = rna.NewSequence("")
	assert.ErrorIs(t, err, rna.ErrEmptySequence)

	for _, bad := range []string{"GGT", "ggg", "GN", "G G"} {
		_, err = rna.NewSequence(bad)
		assert.ErrorIs(t, err, rna.ErrInvalidSymbol, bad)
	}
}

func TestMustSequence_Panics(t *testing.T) {
	assert.NotPanics(t, func() { rna.MustSequence("ACGU") })
	assert.Panics(t, func() { rna.MustSequence("ACGT") })
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ACGUU", rna.Normalize(" acg\tUt\n"))
	assert.Equal(t, "GAAAC", rna.Normalize("GAAAC"))
	// Junk survives so NewSequence can report it.
	assert.Equal(t, "GN", rna.Normalize("gn"))
}

// TestCanPair checks the full 4×4 pairing table in both orientations.
func TestCanPair(t *testing.T) {
	want := map[string]bool{"AU": true, "UA": true, "CG": true, "GC": true, "GU": true, "UG": true}
	for _, a := range []byte(rna.Alphabet) {
		for _, b := range []byte(rna.Alphabet) {
			key := string([]byte{a, b})
			assert.Equal(t, want[key], rna.CanPair(a, b), key)
		}
	}
	assert.False(t, rna.CanPair('a', 'u'), "lowercase is not in the alphabet")
	assert.Len(t, rna.CanonicalPairSet, 6)
}

func TestSequence_CanPairAndSlice(t *testing.T) {
	seq := rna.MustSequence("GAAAC")
	assert.True(t, seq.CanPair(0, 4))
	assert.True(t, seq.CanPair(4, 0))
	assert.False(t, seq.CanPair(1, 2))
	assert.False(t, seq.CanPair(-1, 4))
	assert.False(t, seq.CanPair(0, 5))

	assert.Equal(t, "AAA", seq.Slice(1, 4).String())
	assert.Equal(t, "GAAAC", seq.Slice(-3, 99).String())
	assert.Equal(t, 0, seq.Slice(3, 2).Len())
}

func TestRandom_Deterministic(t *testing.T) {
	a := rna.Random(200, rna.WithSeed(42))
	b := rna.Random(200, rna.WithSeed(42))
	c := rna.Random(200, rna.WithSeed(43))
	assert.Equal(t, a, b, "same seed must give same sequence")
	assert.NotEqual(t, a, c)
	assert.NoError(t, rna.Validate(a.String()))

	d := rna.Random(200, rna.WithRand(rand.New(rand.NewSource(42))))
	assert.Equal(t, a, d, "WithRand and WithSeed agree on the same source")

	assert.Equal(t, rna.Random(50), rna.Random(50), "default seed is fixed")
}

func TestRandom_Alphabet(t *testing.T) {
	seq := rna.Random(100, rna.WithSeed(1), rna.WithAlphabet("GC"))
	assert.Empty(t, strings.Trim(seq.String(), "GC"))

	assert.Panics(t, func() { rna.WithAlphabet("") })
	assert.Panics(t, func() { rna.WithAlphabet("ACGT") })
	assert.Panics(t, func() { rna.WithRand(nil) })
	assert.Panics(t, func() { rna.Random(0) })
}
