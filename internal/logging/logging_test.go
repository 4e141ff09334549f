package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnafold/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]int{"": 0, "info": 0, "DEBUG": 1, "trace": 2} {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	log, err := logging.New(logging.Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, log.V(logging.DEBUG).Enabled())
	assert.False(t, log.V(logging.TRACE).Enabled())

	log, err = logging.New(logging.Config{})
	require.NoError(t, err)
	assert.False(t, log.V(logging.DEBUG).Enabled())

	_, err = logging.New(logging.Config{Format: "xml"})
	assert.Error(t, err)
}
