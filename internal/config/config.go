// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd/rnafold). Values come from, in increasing
// precedence: defaults, an optional config file, RNAFOLD_* environment
// variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/rnafold/fold"
	"github.com/katalvlaran/rnafold/internal/bench"
	"github.com/katalvlaran/rnafold/internal/logging"
	"github.com/katalvlaran/rnafold/score"
)

// EnvPrefix is prepended to every environment variable, e.g.
// RNAFOLD_FOLD_PRECISION.
const EnvPrefix = "RNAFOLD"

// FoldConfig holds engine and input settings for the fold command.
type FoldConfig struct {
	// decimals for E3/E4 rounding; 0 = default, -1 = off
	Precision int `mapstructure:"precision"`

	// add the closing pair score to multiloops
	ChargeMultiloop bool `mapstructure:"charge-multiloop"`

	// goroutines per span inside one fold
	SpanWorkers int `mapstructure:"span-workers"`

	// concurrent folds in a batch; 0 = one per CPU
	Workers int `mapstructure:"workers"`

	// score for every canonical pair when no score file is given
	Uniform float64 `mapstructure:"uniform"`

	// indicator scores for a --reference structure
	Paired   float64 `mapstructure:"paired"`
	Unpaired float64 `mapstructure:"unpaired"`

	// output format name, see internal/output
	Format string `mapstructure:"format"`
}

// Options converts the engine part of c to fold.Options.
func (c FoldConfig) Options() fold.Options {
	o := fold.DefaultOptions()
	o.Precision = c.Precision
	o.ChargeMultiloopClosure = c.ChargeMultiloop
	o.Workers = c.SpanWorkers

	return o
}

// BenchConfig mirrors bench.Options.
type BenchConfig struct {
	Points    int   `mapstructure:"points"`
	MinLength int   `mapstructure:"min-length"`
	MaxLength int   `mapstructure:"max-length"`
	Repeats   int   `mapstructure:"repeats"`
	Workers   int   `mapstructure:"workers"`
	Seed      int64 `mapstructure:"seed"`
}

// Options converts c to bench.Options using fold engine settings f.
func (c BenchConfig) Options(f FoldConfig) bench.Options {
	return bench.Options{
		Points:    c.Points,
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Repeats:   c.Repeats,
		Workers:   c.Workers,
		Seed:      c.Seed,
		Fold:      f.Options(),
	}
}

// Config is the root-level settings struct.
type Config struct {
	Log   logging.Config `mapstructure:"log"`
	Fold  FoldConfig     `mapstructure:"fold"`
	Bench BenchConfig    `mapstructure:"bench"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	bd := bench.DefaultOptions()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("fold.precision", fold.DefaultPrecision)
	v.SetDefault("fold.charge-multiloop", false)
	v.SetDefault("fold.span-workers", 1)
	v.SetDefault("fold.workers", 0)
	v.SetDefault("fold.uniform", score.DefaultPaired)
	v.SetDefault("fold.paired", score.DefaultPaired)
	v.SetDefault("fold.unpaired", score.DefaultUnpaired)
	v.SetDefault("fold.format", "text")

	v.SetDefault("bench.points", bd.Points)
	v.SetDefault("bench.min-length", bd.MinLength)
	v.SetDefault("bench.max-length", bd.MaxLength)
	v.SetDefault("bench.repeats", bd.Repeats)
	v.SetDefault("bench.workers", bd.Workers)
	v.SetDefault("bench.seed", bd.Seed)
}

// New returns a viper instance with defaults and environment binding.
// When file is non-empty it is read as the config file; otherwise an
// optional "rnafold.yaml" is looked up in the working directory.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("rnafold")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode into struct: %w", err)
	}

	return c, nil
}
