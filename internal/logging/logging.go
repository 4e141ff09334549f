// Package logging builds the logr.Logger used by the rnafold CLI, backed
// by zap. Library packages never import this; they pull a logger from the
// context with logr.FromContextOrDiscard.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Config selects the log format and verbosity.
type Config struct {
	Level  string `mapstructure:"level"`  // info, debug, trace
	Format string `mapstructure:"format"` // console or json
}

// ParseLevel maps a level name to a logr verbosity.
func ParseLevel(name string) (int, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New returns a logger writing to stderr. logr verbosity v maps to zap
// level -v, so V(1) messages appear at "debug" and V(2) at "trace".
func New(cfg Config) (logr.Logger, error) {
	v, err := ParseLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), err
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	case "json":
		zc = zap.NewProductionConfig()
		zc.Sampling = nil
	default:
		return logr.Discard(), fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: %w", err)
	}

	return zapr.NewLogger(zl), nil
}
