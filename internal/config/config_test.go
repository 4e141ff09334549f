package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/internal/config"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := config.New("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, fold.DefaultPrecision, c.Fold.Precision)
	assert.Equal(t, "text", c.Fold.Format)
	assert.Equal(t, -1.0, c.Fold.Uniform)
	assert.Equal(t, 8, c.Bench.Points)

	opts := c.Fold.Options()
	assert.Equal(t, fold.DefaultPrecision, opts.Precision)
	assert.Equal(t, 1, opts.Workers)
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
fold:
  precision: 2
  charge-multiloop: true
  format: json
bench:
  repeats: 7
`), 0o600))
	t.Setenv("RNAFOLD_FOLD_SPAN_WORKERS", "4")

	v, err := config.New(path)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 2, c.Fold.Precision)
	assert.True(t, c.Fold.ChargeMultiloop)
	assert.Equal(t, 4, c.Fold.SpanWorkers, "environment overrides defaults")
	assert.Equal(t, "json", c.Fold.Format)

	bo := c.Bench.Options(c.Fold)
	assert.Equal(t, 7, bo.Repeats)
	assert.True(t, bo.Fold.ChargeMultiloopClosure)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
